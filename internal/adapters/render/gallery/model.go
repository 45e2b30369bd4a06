package gallery

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "Галерея"

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type RenderOptions struct {
	Title string
	// Limit keeps only the newest entries; zero shows everything.
	Limit int
}

// page is the slice of history a gallery shows. Numbering stays relative to the full history.
type page struct {
	title   string
	total   int
	offset  int
	entries []string
}

func newPage(entries []string, opts RenderOptions) page {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}

	offset := 0
	if opts.Limit > 0 && len(entries) > opts.Limit {
		offset = len(entries) - opts.Limit
	}

	visible := make([]string, 0, len(entries)-offset)
	for _, entry := range entries[offset:] {
		visible = append(visible, SanitizeForTerminal(entry))
	}

	return page{
		title:   title,
		total:   len(entries),
		offset:  offset,
		entries: visible,
	}
}

func (p page) empty() bool {
	return p.total == 0
}

func (p page) number(i int) int {
	return p.offset + i + 1
}

func (p page) latest(i int) bool {
	return p.number(i) == p.total
}

type galleryReadyMsg struct{}

type model struct {
	page   page
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return galleryReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(galleryReadyMsg); ok {
		m.output = renderPage(m.page, m.styles)
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render lays out the history gallery.
func Render(entries []string, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{page: newPage(entries, opts), styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// View lays out the gallery without running a program; embedding shells call it from their own View.
func View(entries []string, opts RenderOptions) string {
	return renderPage(newPage(entries, opts), newStyles())
}
