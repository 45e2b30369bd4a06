package gallery

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

func renderPage(p page, s styles) string {
	lines := []string{
		s.title.Render(p.title),
		s.header.Render(fmt.Sprintf("entries: %d", p.total)),
	}

	if p.empty() {
		lines = append(lines, s.section.Render(s.empty.Render("No messages yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := len(fmt.Sprintf("%d", p.total))
	rows := make([]string, 0, len(p.entries))
	for i, entry := range p.entries {
		entryStyle := s.entry
		if p.latest(i) {
			entryStyle = s.latest
		}
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.index.Render(fmt.Sprintf("%*d.", width, p.number(i))),
			" ",
			entryStyle.Render(entry),
		))
	}

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func SanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
