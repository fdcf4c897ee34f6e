// Package terminal renders the chat log on a plain terminal.
package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/locale"
)

// View implements chatc.View by writing entries to out and showing the
// loading entry as a spinner on status.
type View struct {
	out        io.Writer
	status     io.Writer
	texts      locale.Strings
	transcript chatc.Transcript
	busy       bool
	spinner    *spinner

	echoUser bool
	labels   bool
	interval time.Duration
}

// ViewOption configures a View
type ViewOption func(*View)

// WithEcho prints user entries as well as bot entries
func WithEcho(echo bool) ViewOption {
	return func(v *View) {
		v.echoUser = echo
	}
}

// WithLabels prefixes every entry with its sender label
func WithLabels(labels bool) ViewOption {
	return func(v *View) {
		v.labels = labels
	}
}

// WithSpinnerInterval sets the spinner frame interval
func WithSpinnerInterval(interval time.Duration) ViewOption {
	return func(v *View) {
		if interval > 0 {
			v.interval = interval
		}
	}
}

// NewView creates a new terminal view
func NewView(out, status io.Writer, texts locale.Strings, opts ...ViewOption) *View {
	v := &View{
		out:      out,
		status:   status,
		texts:    texts,
		labels:   true,
		interval: 80 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AppendMessage records msg and prints it
func (v *View) AppendMessage(msg chatc.Message) {
	v.transcript.Append(msg)

	if msg.Sender == chatc.SenderUser && !v.echoUser {
		return
	}
	text := chatc.Printable(msg.Text)
	if !v.labels {
		fmt.Fprintln(v.out, text)
		return
	}
	fmt.Fprintf(v.out, "\n%s> %s\n\n", v.texts.Label(msg.Sender), text)
}

// SetLoading starts or stops the loading entry
func (v *View) SetLoading(loading bool) {
	v.busy = loading
	if loading {
		if _, exists := v.transcript.Find(chatc.LoadingID); exists {
			return
		}
		v.transcript.Append(chatc.NewLoadingMessage(v.texts.Loading))
		v.spinner = startSpinner(v.status, v.texts.Loading, v.interval)
		return
	}

	if v.transcript.Remove(chatc.LoadingID) && v.spinner != nil {
		v.spinner.stop()
		v.spinner = nil
	}
}

// ClearInput is a no-op: a line is consumed as soon as it is read
func (v *View) ClearInput() {}

// Busy reports whether a request is in flight
func (v *View) Busy() bool {
	return v.busy
}

// Transcript returns the entries shown so far
func (v *View) Transcript() []chatc.Message {
	return v.transcript.Entries()
}

// Count returns the number of entries from sender
func (v *View) Count(sender chatc.Sender) int {
	return v.transcript.Count(sender)
}
