package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/longkey1/chatc/internal/chatc"
)

// SessionInfo is shown by the /info command
type SessionInfo struct {
	ServerURL string
	Language  string
}

// REPL runs a line-oriented interactive chat on top of a View
type REPL struct {
	widget *chatc.Widget
	view   *View
	in     io.Reader
	out    io.Writer // Screen control sequences
	errOut io.Writer // Prompt, banners and command output
	info   SessionInfo
}

// NewREPL creates a new interactive loop.
// widget must render to view.
func NewREPL(widget *chatc.Widget, view *View, in io.Reader, out, errOut io.Writer, info SessionInfo) *REPL {
	return &REPL{
		widget: widget,
		view:   view,
		in:     in,
		out:    out,
		errOut: errOut,
		info:   info,
	}
}

// Run reads lines until EOF, /exit or ctx is done.
// Lines are read in a separate goroutine so that cancelling ctx returns
// even while the prompt is waiting for input.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintf(r.errOut, "\n=== chatc [%s] ===\n", r.info.ServerURL)
	fmt.Fprintf(r.errOut, "Type '/help' for commands, '/exit' or 'Ctrl+D' to quit\n")
	fmt.Fprintf(r.errOut, "===================================\n\n")

	done := make(chan struct{})
	defer close(done)
	lines := readLines(r.in, done)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.errOut, "You> ")

		var line lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.errOut, "\nGoodbye!")
			return nil
		case line = <-lines:
		}
		// both may be ready; cancellation wins
		if ctx.Err() != nil {
			fmt.Fprintln(r.errOut, "\nGoodbye!")
			return nil
		}

		if line.eof {
			if line.err != nil {
				return fmt.Errorf("input error: %w", line.err)
			}
			// Clean EOF
			fmt.Fprintln(r.errOut, "\nGoodbye!")
			return nil
		}

		input := strings.TrimSpace(line.text)
		if input == "" {
			continue
		}

		// "//" sends a message that starts with a literal slash
		if strings.HasPrefix(input, "/") && !strings.HasPrefix(input, "//") {
			if r.handleSpecialCommand(input) {
				continue
			}
			return nil
		}
		input = strings.TrimPrefix(input, "/")

		r.widget.Submit(ctx, input)
	}
}

type lineResult struct {
	text string
	eof  bool
	err  error
}

// readLines scans in until EOF or until done is closed
func readLines(in io.Reader, done <-chan struct{}) <-chan lineResult {
	lines := make(chan lineResult)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- lineResult{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		select {
		case lines <- lineResult{eof: true, err: scanner.Err()}:
		case <-done:
		}
	}()
	return lines
}

// handleSpecialCommand processes special commands in interactive mode
// Returns true to continue the loop, false to exit
func (r *REPL) handleSpecialCommand(command string) bool {
	command = strings.ToLower(strings.TrimSpace(command))

	switch command {
	case "/help", "/h":
		fmt.Fprintln(r.errOut, "\nAvailable commands:")
		fmt.Fprintln(r.errOut, "  /help, /h     - Show this help message")
		fmt.Fprintln(r.errOut, "  /info, /i     - Show connection information")
		fmt.Fprintln(r.errOut, "  /clear, /c    - Clear screen")
		fmt.Fprintln(r.errOut, "  /exit, /quit  - Exit interactive mode")
		fmt.Fprintln(r.errOut, "  //text        - Send a message starting with '/'")
		fmt.Fprintln(r.errOut, "  Ctrl+D        - Exit interactive mode")
		fmt.Fprintln(r.errOut, "")
		return true

	case "/info", "/i":
		fmt.Fprintln(r.errOut, "\nSession Information:")
		fmt.Fprintf(r.errOut, "  Server: %s\n", r.info.ServerURL)
		fmt.Fprintf(r.errOut, "  Language: %s\n", r.info.Language)
		fmt.Fprintf(r.errOut, "  Messages: %d sent, %d received\n",
			r.view.Count(chatc.SenderUser), r.view.Count(chatc.SenderBot))
		fmt.Fprintln(r.errOut, "")
		return true

	case "/clear", "/c":
		fmt.Fprint(r.out, "\033[H\033[2J")
		return true

	case "/exit", "/quit", "/q":
		fmt.Fprintln(r.errOut, "Goodbye!")
		return false

	default:
		fmt.Fprintf(r.errOut, "Unknown command: %s (type '/help' for available commands)\n", command)
		return true
	}
}
