package cmd

import (
	"fmt"
	"os"

	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/longkey1/chatc/internal/terminal"
	"github.com/longkey1/chatc/internal/tui"
	"github.com/spf13/cobra"
)

var plainMode bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an interactive chat",
	Long: `Start an interactive chat with the backend.

By default a full-screen interface is shown: type a message and press Enter to send it.
While a reply is pending the loading indicator is shown and new messages cannot be sent.

With --plain, a line-oriented prompt is used instead, which works in any terminal.

Examples:
  chatc start                                # Full-screen chat
  chatc start --plain                        # Line-oriented chat
  chatc start --server http://rag.local:8000 # Chat with another backend`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := setupLogger(cfg, !plainMode); err != nil {
			return err
		}

		texts := newTexts(cfg)
		client := newBackend(cfg)

		if verbose {
			fmt.Fprintf(os.Stderr, "Server: %s\n", cfg.ChatURL())
			fmt.Fprintf(os.Stderr, "Language: %s\n", texts.Tag)
		}

		if !plainMode {
			title := fmt.Sprintf("chatc · %s", cfg.ServerURL)
			if err := tui.Run(cmd.Context(), client, texts, title, widgetOptions(texts)...); err != nil {
				return fmt.Errorf("interactive mode: %w", err)
			}
			return nil
		}

		view := terminal.NewView(os.Stdout, os.Stderr, texts)
		widget := chatc.NewWidget(view, client, widgetOptions(texts)...)
		repl := terminal.NewREPL(widget, view, os.Stdin, os.Stdout, os.Stderr, terminal.SessionInfo{
			ServerURL: cfg.ServerURL,
			Language:  texts.Tag.String(),
		})
		if err := repl.Run(cmd.Context()); err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().BoolVar(&plainMode, "plain", false, "Use a line-oriented prompt instead of the full-screen interface")
}
