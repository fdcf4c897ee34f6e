package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Initialize the configuration file with default settings.
The config file will be created at $HOME/.config/chatc/config.toml by default.
You can specify a different location using the --config option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %v", err)
		}

		configFile := filepath.Join(home, ".config", "chatc", "config.toml")
		if cfgFile != "" {
			configFile = cfgFile
		}

		if err := writeDefaultConfig(configFile); err != nil {
			return err
		}

		fmt.Printf("Configuration file created at: %s\n", configFile)
		return nil
	},
}

// writeDefaultConfig creates configFile with default values.
// It refuses to overwrite an existing file.
func writeDefaultConfig(configFile string) error {
	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at: %s", configFile)
	}

	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config.NewDefaultConfig()); err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
