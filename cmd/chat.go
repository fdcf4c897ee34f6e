/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/config"
	"github.com/longkey1/chatc/internal/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	useEditor bool
	noSpinner bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message to the chat backend",
	Long: `Send a message to the chat backend and print the reply.
This command performs a single request to the backend's chat endpoint.

For interactive conversations, use 'chatc start' instead.

If no message is provided as an argument, it reads from stdin.
If --editor flag is set, it opens the default editor (from EDITOR environment variable) to compose the message.

Leading and trailing whitespace is removed. An empty message is not sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := setupLogger(cfg, false); err != nil {
			return err
		}

		// Get message from arguments, editor, or stdin
		var message string
		if useEditor {
			message, err = getMessageFromEditor()
			if err != nil {
				return fmt.Errorf("getting message from editor: %w", err)
			}
		} else if len(args) > 0 {
			message = strings.Join(args, " ")
		} else {
			message, err = readInput(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
		}

		var status io.Writer = os.Stderr
		if noSpinner || !term.IsTerminal(int(os.Stderr.Fd())) {
			status = io.Discard
		}

		texts := newTexts(cfg)
		view := terminal.NewView(cmd.OutOrStdout(), status, texts, terminal.WithLabels(false))
		widget := chatc.NewWidget(view, newBackend(cfg), widgetOptions(texts)...)

		if !widget.Submit(cmd.Context(), message) {
			return fmt.Errorf("message is empty")
		}
		return nil
	},
}

// readInput reads r to EOF, giving up when ctx is done
func readInput(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return string(res.data), res.err
	}
}

// getMessageFromEditor opens the default editor and returns the edited message
func getMessageFromEditor() (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return "", fmt.Errorf("EDITOR environment variable is not set")
	}

	tmpFile, err := os.CreateTemp("", "chatc-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %v", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	cmd := exec.Command(editor, tmpFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %v", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %v", err)
	}

	return string(content), nil
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVarP(&useEditor, "editor", "e", false, "Use default editor (from EDITOR environment variable) to compose message")
	chatCmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Do not show the loading spinner")
}
