package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequester struct {
	answer string
	err    error
	calls  []string
	onCall func()
}

func (s *stubRequester) SubmitRequest(ctx context.Context, req chatc.ChatRequest) (*chatc.ChatResponse, error) {
	s.calls = append(s.calls, req.Message)
	if s.onCall != nil {
		s.onCall()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &chatc.ChatResponse{Answer: s.answer}, nil
}

func newTestView(opts ...ViewOption) (*View, *bytes.Buffer, *bytes.Buffer) {
	var out, status bytes.Buffer
	opts = append([]ViewOption{WithSpinnerInterval(time.Millisecond)}, opts...)
	return NewView(&out, &status, locale.Lookup("pt-BR"), opts...), &out, &status
}

func TestView_LoadingLifecycle(t *testing.T) {
	view, _, status := newTestView()

	view.SetLoading(true)
	view.SetLoading(true)
	assert.True(t, view.Busy())
	loading := 0
	for _, msg := range view.Transcript() {
		if msg.IsLoading() {
			loading++
		}
	}
	assert.Equal(t, 1, loading, "at most one loading entry")

	view.SetLoading(false)
	assert.False(t, view.Busy())
	assert.Empty(t, view.Transcript())
	assert.Contains(t, status.String(), "Digitando...")
	assert.True(t, strings.HasSuffix(status.String(), "\r\033[K"))

	// tolerant of a second release
	require.NotPanics(t, func() { view.SetLoading(false) })
}

func TestView_RendersBotEntries(t *testing.T) {
	view, out, _ := newTestView()

	view.AppendMessage(chatc.NewMessage("oi", chatc.SenderUser))
	view.AppendMessage(chatc.NewMessage("Olá!", chatc.SenderBot))

	assert.Equal(t, "\nAssistente> Olá!\n\n", out.String())
	assert.Len(t, view.Transcript(), 2)
}

func TestView_EchoAndPlainOutput(t *testing.T) {
	view, out, _ := newTestView(WithEcho(true), WithLabels(false))

	view.AppendMessage(chatc.NewMessage("oi", chatc.SenderUser))
	view.AppendMessage(chatc.NewMessage("\x1b[2Jhi", chatc.SenderBot))

	assert.Equal(t, "oi\n\\x1b[2Jhi\n", out.String())
}

func TestWidgetOnView(t *testing.T) {
	view, out, _ := newTestView()
	req := &stubRequester{answer: "Olá, como posso ajudar?"}
	req.onCall = func() {
		assert.True(t, view.Busy())
	}
	widget := chatc.NewWidget(view, req)

	widget.Submit(context.Background(), "oi")

	entries := view.Transcript()
	require.Len(t, entries, 2)
	assert.Equal(t, "oi", entries[0].Text)
	assert.Equal(t, "Olá, como posso ajudar?", entries[1].Text)
	assert.False(t, view.Busy())
	assert.Contains(t, out.String(), "Olá, como posso ajudar?")
}

func TestREPL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		answer    string
		err       error
		wantCalls []string
		wantOut   []string
		wantErr   []string
	}{
		{
			name:      "single message then EOF",
			input:     "oi\n",
			answer:    "Olá!",
			wantCalls: []string{"oi"},
			wantOut:   []string{"Assistente> Olá!"},
			wantErr:   []string{"Goodbye!"},
		},
		{
			name:      "blank lines are skipped",
			input:     "\n   \n\t\n",
			wantCalls: nil,
			wantErr:   []string{"Goodbye!"},
		},
		{
			name:      "exit stops reading",
			input:     "/exit\nnever sent\n",
			wantCalls: nil,
			wantErr:   []string{"Goodbye!"},
		},
		{
			name:      "failure shows fallback",
			input:     "oi\n",
			err:       errors.New("connection refused"),
			wantCalls: []string{"oi"},
			wantOut:   []string{chatc.DefaultFallbackMessage},
		},
		{
			name:      "help and info",
			input:     "/help\noi\n/info\n/bogus\n",
			answer:    "ok",
			wantCalls: []string{"oi"},
			wantErr:   []string{"Available commands:", "Server: http://localhost:8000", "1 sent, 1 received", "Unknown command: /bogus"},
		},
		{
			name:      "double slash sends a literal slash",
			input:     "//api está fora?\n",
			answer:    "não",
			wantCalls: []string{"/api está fora?"},
			wantOut:   []string{"Assistente> não"},
		},
		{
			name:      "double slash does not run commands",
			input:     "//exit\noi\n",
			answer:    "ok",
			wantCalls: []string{"/exit", "oi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, out, _ := newTestView()
			req := &stubRequester{answer: tt.answer, err: tt.err}
			widget := chatc.NewWidget(view, req)
			var errOut bytes.Buffer

			repl := NewREPL(widget, view, strings.NewReader(tt.input), out, &errOut, SessionInfo{
				ServerURL: "http://localhost:8000",
				Language:  "pt-BR",
			})
			require.NoError(t, repl.Run(context.Background()))

			assert.Equal(t, tt.wantCalls, req.calls)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			for _, want := range tt.wantErr {
				assert.Contains(t, errOut.String(), want)
			}
		})
	}
}

func TestREPL_CancelledContext(t *testing.T) {
	view, out, _ := newTestView()
	req := &stubRequester{answer: "x"}
	widget := chatc.NewWidget(view, req)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repl := NewREPL(widget, view, strings.NewReader("oi\n"), out, &bytes.Buffer{}, SessionInfo{})
	require.NoError(t, repl.Run(ctx))
	assert.Empty(t, req.calls)
}

func TestREPL_CancelWhileWaitingForInput(t *testing.T) {
	view, out, _ := newTestView()
	req := &stubRequester{answer: "x"}
	widget := chatc.NewWidget(view, req)

	in, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	var errOut syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	repl := NewREPL(widget, view, in, out, &errOut, SessionInfo{})

	done := make(chan error, 1)
	go func() { done <- repl.Run(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "You> ")
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Empty(t, req.calls)
	assert.Contains(t, errOut.String(), "Goodbye!")
}

func TestREPL_ReadsFromPipe(t *testing.T) {
	view, out, _ := newTestView()
	req := &stubRequester{answer: "Olá!"}
	widget := chatc.NewWidget(view, req)

	in, w := io.Pipe()
	go func() {
		_, _ = io.WriteString(w, "oi\n")
		_ = w.Close()
	}()

	repl := NewREPL(widget, view, in, out, &bytes.Buffer{}, SessionInfo{})
	require.NoError(t, repl.Run(context.Background()))
	assert.Equal(t, []string{"oi"}, req.calls)
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
