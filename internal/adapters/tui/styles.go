package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	frame   lipgloss.Style
	label   lipgloss.Style
	message lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
}

func newStyles() styles {
	return styles{
		frame:   lipgloss.NewStyle().Padding(1, 2),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		message: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")).MarginBottom(1),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
