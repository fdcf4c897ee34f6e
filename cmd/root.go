/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool

	// logger is the diagnostic channel, set up by each command once its config is loaded
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatc",
	Short: "A terminal client for a RAG chat backend",
	Long: `chatc is a command-line client for a retrieval-augmented chat backend.
It sends your messages to the backend's /api/chat endpoint and shows the replies.
You can configure the tool using a TOML configuration file.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default handling after the first signal so a second one kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chatc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("server", "", "backend base URL (overrides server_url)")
	viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("CHATC")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	userConfigDir := filepath.Join(home, ".config", "chatc")

	defaultConfig := config.NewDefaultConfig()

	viper.SetDefault("server_url", defaultConfig.ServerURL)
	viper.SetDefault("chat_path", defaultConfig.ChatPath)
	viper.SetDefault("health_path", defaultConfig.HealthPath)
	viper.SetDefault("language", defaultConfig.Language)
	viper.SetDefault("fallback_message", defaultConfig.FallbackMessage)
	viper.SetDefault("loading_text", defaultConfig.LoadingText)
	viper.SetDefault("request_timeout", defaultConfig.RequestTimeout)
	viper.SetDefault("log_file", defaultConfig.LogFile)
	viper.SetDefault("log_level", defaultConfig.LogLevel)

	viper.BindEnv("server_url", "CHATC_SERVER_URL")
	viper.BindEnv("language", "CHATC_LANGUAGE")
	viper.BindEnv("request_timeout", "CHATC_REQUEST_TIMEOUT")
	viper.BindEnv("log_file", "CHATC_LOG_FILE")
	viper.BindEnv("log_level", "CHATC_LOG_LEVEL")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else {
		// Load system-wide config first (lower priority)
		for _, path := range []string{"/etc/chatc", "/usr/local/etc/chatc"} {
			viper.AddConfigPath(path)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		systemConfigLoaded := false
		if err := viper.ReadInConfig(); err == nil {
			systemConfigLoaded = true
			if verbose {
				fmt.Fprintln(os.Stderr, "Loaded system-wide config:", viper.ConfigFileUsed())
			}
		}

		// Load user config (higher priority) - merge with system config
		viper.AddConfigPath(userConfigDir)
		if systemConfigLoaded {
			if err := viper.MergeInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error merging user config file: %v\n", err)
				}
			} else if verbose {
				fmt.Fprintln(os.Stderr, "Merged user config:", viper.ConfigFileUsed())
			}
		} else {
			if err := viper.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				}
			}
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  CHATC_SERVER_URL:", viper.GetString("server_url"))
		fmt.Fprintln(os.Stderr, "  CHATC_LANGUAGE:", viper.GetString("language"))
		fmt.Fprintln(os.Stderr, "  CHATC_LOG_FILE:", viper.GetString("log_file"))
	}
}
