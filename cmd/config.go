package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFields = "configfile, server_url, chat_url, health_url, language, fallback_message, loading_text, request_timeout, log_file, log_level"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + configFields + `

Examples:
  chatc config               # Show all configuration
  chatc config server_url    # Show only the backend URL
  chatc config chat_url      # Show the resolved chat endpoint
  chatc config language      # Show only the language`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		texts := newTexts(cfg)

		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "server_url", "serverurl":
				fmt.Println(cfg.ServerURL)
			case "chat_url", "chaturl":
				fmt.Println(cfg.ChatURL())
			case "health_url", "healthurl":
				fmt.Println(cfg.HealthURL())
			case "language":
				fmt.Println(texts.Tag)
			case "fallback_message", "fallbackmessage":
				fmt.Println(texts.Fallback)
			case "loading_text", "loadingtext":
				fmt.Println(texts.Loading)
			case "request_timeout", "requesttimeout":
				fmt.Println(cfg.Timeout())
			case "log_file", "logfile":
				fmt.Println(cfg.LogFile)
			case "log_level", "loglevel":
				fmt.Println(cfg.LogLevel)
			default:
				fmt.Fprintf(os.Stderr, "Unknown field: %s\n", args[0])
				fmt.Fprintf(os.Stderr, "Available fields: %s\n", configFields)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("ServerURL: %s\n", cfg.ServerURL)
		fmt.Printf("ChatURL: %s\n", cfg.ChatURL())
		fmt.Printf("HealthURL: %s\n", cfg.HealthURL())
		fmt.Printf("Language: %s\n", texts.Tag)
		fmt.Printf("FallbackMessage: %s\n", texts.Fallback)
		fmt.Printf("LoadingText: %s\n", texts.Loading)
		fmt.Printf("RequestTimeout: %s\n", timeoutLabel(cfg))
		fmt.Printf("LogFile: %s\n", logFileLabel(cfg))
		fmt.Printf("LogLevel: %s\n", cfg.LogLevel)
	},
}

// timeoutLabel describes the request timeout for display
func timeoutLabel(cfg *config.Config) string {
	if cfg.Timeout() == 0 {
		return "none"
	}
	return cfg.Timeout().String()
}

// logFileLabel describes where diagnostics go for display
func logFileLabel(cfg *config.Config) string {
	if cfg.LogFile == "" {
		return "(stderr)"
	}
	return cfg.LogFile
}

func init() {
	rootCmd.AddCommand(configCmd)
}
