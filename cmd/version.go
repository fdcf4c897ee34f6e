/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/longkey1/chatc/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information including:
- Version number
- Git commit SHA
- Build time
- Go version
- The chat endpoint this build is configured to talk to`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Fprintln(out, version.Short())
			return nil
		}

		fmt.Fprintln(out, version.Info())
		// A broken config must not hide the version
		if cfg, err := config.LoadConfig(); err == nil {
			fmt.Fprintf(out, "Chat Endpoint: %s\n", cfg.ChatURL())
			fmt.Fprintf(out, "Language: %s\n", cfg.Language)
		} else {
			fmt.Fprintf(out, "Chat Endpoint: unavailable (%v)\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolP("short", "s", false, "Show only version number")
}
