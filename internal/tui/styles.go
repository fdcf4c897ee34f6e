package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/longkey1/chatc/internal/chatc"
)

type styles struct {
	header    lipgloss.Style
	userLabel lipgloss.Style
	botLabel  lipgloss.Style
	loading   lipgloss.Style
	body      lipgloss.Style
	hint      lipgloss.Style
	inputBox  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#5A56E0")).Padding(0, 1),
		userLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		botLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		loading:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#9CA3AF")),
		body:      lipgloss.NewStyle().PaddingLeft(2),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		inputBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5A56E0")).Padding(0, 1),
	}
}

// label returns the style for the sender of an entry
func (s styles) label(sender chatc.Sender) lipgloss.Style {
	if sender == chatc.SenderUser {
		return s.userLabel
	}
	return s.botLabel
}
