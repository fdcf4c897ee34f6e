package cmd

import (
	"fmt"

	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the chat backend is up",
	Long: `Query the backend's health endpoint and print its status.
The command fails if the backend cannot be reached or does not report "ok".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := setupLogger(cfg, false); err != nil {
			return err
		}

		status, err := newBackend(cfg).Health(cmd.Context())
		if err != nil {
			logger.Error("health check failed", zap.String("url", cfg.HealthURL()), zap.Error(err))
			return fmt.Errorf("health check failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", status.Status)
		if status.Service != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Service: %s\n", status.Service)
		}
		if !status.OK() {
			return fmt.Errorf("backend reported status %q", status.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
