package gallery

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	index   lipgloss.Style
	entry   lipgloss.Style
	latest  lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		entry:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		latest:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
	}
}
