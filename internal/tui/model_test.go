package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequester struct {
	answer string
	err    error
	calls  int
}

func (s *stubRequester) SubmitRequest(ctx context.Context, req chatc.ChatRequest) (*chatc.ChatResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &chatc.ChatResponse{Answer: s.answer}, nil
}

// newTestModel wires a model to a view that records messages instead of
// sending them to a program
func newTestModel(req chatc.Requester) (Model, *[]tea.Msg) {
	var sent []tea.Msg
	view := &programView{send: func(msg tea.Msg) { sent = append(sent, msg) }}
	widget := chatc.NewWidget(view, req)
	m := NewModel(context.Background(), widget, locale.Lookup("pt-BR"), "chatc")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), &sent
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	result, ok := updated.(Model)
	require.True(t, ok)
	return result, cmd
}

// submit types text, presses enter and replays everything the widget sent
func submit(t *testing.T, m Model, sent *[]tea.Msg, text string) (Model, []Model) {
	t.Helper()
	m.input.SetValue(text)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return m, nil
	}

	done := cmd()
	require.IsType(t, submitDoneMsg{}, done)

	var states []Model
	for _, msg := range *sent {
		m, _ = update(t, m, msg)
		states = append(states, m)
	}
	*sent = nil
	m, _ = update(t, m, done)
	return m, states
}

func countLoading(m Model) int {
	n := 0
	for _, entry := range m.Transcript() {
		if entry.IsLoading() {
			n++
		}
	}
	return n
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(&stubRequester{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 40-headerHeight-inputHeight-hintHeight, m.viewport.Height)

	require.NotPanics(t, func() {
		update(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
	})
}

func TestSubmit_Success(t *testing.T) {
	req := &stubRequester{answer: "Olá!"}
	m, sent := newTestModel(req)

	m, states := submit(t, m, sent, "oi")

	entries := m.Transcript()
	require.Len(t, entries, 2)
	assert.Equal(t, chatc.SenderUser, entries[0].Sender)
	assert.Equal(t, "oi", entries[0].Text)
	assert.Equal(t, chatc.SenderBot, entries[1].Sender)
	assert.Equal(t, "Olá!", entries[1].Text)

	assert.Empty(t, m.input.Value())
	assert.False(t, m.Disabled())
	assert.Equal(t, 0, countLoading(m))
	assert.Equal(t, 1, req.calls)

	// while in flight the loading entry was shown exactly once
	maxLoading := 0
	for _, s := range states {
		if n := countLoading(s); n > maxLoading {
			maxLoading = n
		}
		if countLoading(s) == 1 {
			assert.True(t, s.Disabled())
		}
	}
	assert.Equal(t, 1, maxLoading)
}

func TestSubmit_Failure(t *testing.T) {
	req := &stubRequester{err: errors.New("connection refused")}
	m, sent := newTestModel(req)

	m, _ = submit(t, m, sent, "oi")

	entries := m.Transcript()
	require.Len(t, entries, 2)
	assert.Equal(t, chatc.DefaultFallbackMessage, entries[1].Text)
	assert.False(t, m.Disabled())
	assert.Equal(t, 0, countLoading(m))
}

func TestSubmit_BlankInput(t *testing.T) {
	req := &stubRequester{answer: "unused"}
	m, sent := newTestModel(req)

	m.input.SetValue("   ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, m.Transcript())
	assert.Empty(t, *sent)
	assert.Zero(t, req.calls)
	assert.False(t, m.Disabled())
}

func TestSubmit_IgnoredWhileDisabled(t *testing.T) {
	req := &stubRequester{answer: "x"}
	m, _ := newTestModel(req)

	m.input.SetValue("first")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Disabled())

	m.input.SetValue("second")
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestLoadingMsg_Idempotent(t *testing.T) {
	m, _ := newTestModel(&stubRequester{})

	m, _ = update(t, m, loadingMsg{loading: true})
	m, _ = update(t, m, loadingMsg{loading: true})
	assert.Equal(t, 1, countLoading(m))

	m, _ = update(t, m, loadingMsg{loading: false})
	m, _ = update(t, m, loadingMsg{loading: false})
	assert.Equal(t, 0, countLoading(m))
	assert.False(t, m.Disabled())
}

func TestView_RendersEntriesVerbatim(t *testing.T) {
	m, _ := newTestModel(&stubRequester{})

	m, _ = update(t, m, appendMsg{msg: chatc.NewMessage("<b>oi</b>", chatc.SenderUser)})
	m, _ = update(t, m, appendMsg{msg: chatc.NewMessage("resposta", chatc.SenderBot)})

	out := m.View()
	assert.Contains(t, out, "<b>oi</b>")
	assert.Contains(t, out, "Você")
	assert.Contains(t, out, "Assistente")
	assert.True(t, strings.Contains(out, "resposta"))
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(&stubRequester{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
