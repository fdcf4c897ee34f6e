// Package tui implements the full-screen chat interface.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/longkey1/chatc/internal/chatc"
	"github.com/longkey1/chatc/internal/chatc/locale"
)

const (
	headerHeight = 1
	inputHeight  = 3 // input line plus border
	hintHeight   = 1
)

// Model is the bubbletea model of the chat screen
type Model struct {
	ctx     context.Context
	widget  *chatc.Widget
	texts   locale.Strings
	styles  styles
	title   string

	transcript chatc.Transcript
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model

	disabled bool // Submit control state
	ready    bool
	width    int
	height   int
}

// NewModel creates the chat screen for widget.
// widget must render to the programView the model's program feeds.
func NewModel(ctx context.Context, widget *chatc.Widget, texts locale.Strings, title string) Model {
	ti := textinput.New()
	ti.Placeholder = texts.Prompt
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		widget:   widget,
		texts:    texts,
		styles:   defaultStyles(),
		title:    title,
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  sp,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case appendMsg:
		m.transcript.Append(msg.msg)
		m.refresh()
		return m, nil

	case clearInputMsg:
		m.input.Reset()
		return m, nil

	case loadingMsg:
		m.disabled = msg.loading
		if !msg.loading {
			m.transcript.Remove(chatc.LoadingID)
			m.refresh()
			return m, nil
		}
		if _, exists := m.transcript.Find(chatc.LoadingID); !exists {
			m.transcript.Append(chatc.NewLoadingMessage(m.texts.Loading))
		}
		m.refresh()
		return m, m.spinner.Tick

	case submitDoneMsg:
		return m, nil

	case spinner.TickMsg:
		if _, loading := m.transcript.Find(chatc.LoadingID); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit starts a submission unless one is in flight or the input is blank
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.disabled {
		return m, nil
	}
	input := m.input.Value()
	if chatc.Normalize(input) == "" {
		return m, nil
	}

	// Disable right away: the widget's own SetLoading arrives asynchronously.
	m.disabled = true
	ctx, widget := m.ctx, m.widget
	return m, func() tea.Msg {
		widget.Submit(ctx, input)
		return submitDoneMsg{}
	}
}

func (m *Model) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width, m.height = width, height

	vpHeight := height - headerHeight - inputHeight - hintHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = max(width-6, 1)
	m.ready = true
	m.refresh()
}

// refresh re-renders the log and scrolls to its end
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m Model) renderLog() string {
	width := m.viewport.Width
	if width < 4 {
		width = 4
	}
	body := m.styles.body.Width(width - 2)

	var b strings.Builder
	for i, entry := range m.transcript.Entries() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.label(entry.Sender).Render(m.texts.Label(entry.Sender)))
		b.WriteString("\n")
		if entry.IsLoading() {
			b.WriteString(body.Render(m.spinner.View() + " " + m.styles.loading.Render(chatc.Printable(entry.Text))))
		} else {
			b.WriteString(body.Render(chatc.Printable(entry.Text)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "\n  " + m.texts.Loading
	}

	hint := "Enter: send · PgUp/PgDn: scroll · Esc: quit"
	if m.disabled {
		hint = m.texts.Loading
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.header.Render(m.title),
		m.viewport.View(),
		m.styles.inputBox.Width(max(m.width-2, 1)).Render(m.input.View()),
		m.styles.hint.Render(hint),
	)
}

// Transcript returns the entries currently on screen
func (m Model) Transcript() []chatc.Message {
	return m.transcript.Entries()
}

// Disabled reports whether the submit control is disabled
func (m Model) Disabled() bool {
	return m.disabled
}

// Run starts the full-screen chat and blocks until the user quits
func Run(ctx context.Context, requester chatc.Requester, texts locale.Strings, title string, opts ...chatc.Option) error {
	view := &programView{}
	widget := chatc.NewWidget(view, requester, opts...)
	model := NewModel(ctx, widget, texts, title)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	view.send = p.Send

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
