package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/longkey1/chatc/internal/chatc"
)

type appendMsg struct{ msg chatc.Message }

type loadingMsg struct{ loading bool }

type clearInputMsg struct{}

// submitDoneMsg is returned once the widget is back to idle
type submitDoneMsg struct{}

// programView implements chatc.View by forwarding every call to the
// running program, so the model is only ever mutated by Update.
type programView struct {
	send func(tea.Msg)
}

func (v *programView) AppendMessage(msg chatc.Message) {
	v.send(appendMsg{msg: msg})
}

func (v *programView) SetLoading(loading bool) {
	v.send(loadingMsg{loading: loading})
}

func (v *programView) ClearInput() {
	v.send(clearInputMsg{})
}
