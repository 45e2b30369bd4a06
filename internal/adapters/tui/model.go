package tui

import (
	"context"

	"github.com/bnema/cave/internal/adapters/render/countdown"
	"github.com/bnema/cave/internal/adapters/render/gallery"
	"github.com/bnema/cave/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Timer is the part of the countdown controller the shell drives.
type Timer interface {
	Start(ctx context.Context, input string) (domain.CountdownState, error)
	Cancel() domain.CountdownState
	Reset() domain.CountdownState
	State() domain.CountdownState
}

// Recorder records finished countdowns and exposes the history.
type Recorder interface {
	Complete(ctx context.Context) (string, error)
	History() []string
}

type screen int

const (
	screenMain screen = iota
	screenRunning
	screenResult
	screenMessage
	screenGallery
)

func (s screen) String() string {
	switch s {
	case screenMain:
		return "main"
	case screenRunning:
		return "running"
	case screenResult:
		return "result"
	case screenMessage:
		return "message"
	case screenGallery:
		return "gallery"
	default:
		return "unknown"
	}
}

type tickMsg struct{ state domain.CountdownState }

type completeMsg struct{ state domain.CountdownState }

type cancelMsg struct{ state domain.CountdownState }

type recordedMsg struct {
	message string
	err     error
}

type keyMap struct {
	start   key.Binding
	gallery key.Binding
	cancel  key.Binding
	done    key.Binding
	notDone key.Binding
	back    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Старт")),
		gallery: key.NewBinding(key.WithKeys("tab", "g"), key.WithHelp("tab", "Посмотреть галерею")),
		cancel:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "Не сложилось")),
		done:    key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "Дело сделано")),
		notDone: key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc", "Не сложилось")),
		back:    key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "Назад")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type Model struct {
	ctx      context.Context
	timer    Timer
	recorder Recorder
	keys     keyMap
	styles   styles

	input   textinput.Model
	screen  screen
	label   string
	state   domain.CountdownState
	message string
	err     error
	width   int
}

func NewModel(ctx context.Context, timer Timer, recorder Recorder) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "Отведенное время"
	input.CharLimit = 16
	input.Focus()

	return Model{
		ctx:      ctx,
		timer:    timer,
		recorder: recorder,
		keys:     newKeyMap(),
		styles:   newStyles(),
		input:    input,
		screen:   screenMain,
		label:    countdown.IdleLabel,
		state:    timer.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		if m.currentRun(msg.state) {
			m.state = msg.state
		}
		return m, nil
	case completeMsg:
		if m.currentRun(msg.state) {
			m.state = msg.state
			m.screen = screenResult
		}
		return m, nil
	case cancelMsg:
		if m.currentRun(msg.state) {
			m.toMain(countdown.CancelledLabel)
		}
		return m, nil
	case recordedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.message = msg.message
		m.screen = screenMessage
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.timer.Cancel()
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	if m.screen == screenMain {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMain:
		switch {
		case key.Matches(msg, m.keys.start):
			state, err := m.timer.Start(m.ctx, m.input.Value())
			if err != nil {
				m.label = countdown.ErrorLabel(err)
				return m, nil
			}
			m.state = state
			m.screen = screenRunning
			return m, nil
		case msg.Type == tea.KeyTab:
			m.screen = screenGallery
			return m, nil
		case msg.Type == tea.KeyEsc:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case screenRunning:
		if key.Matches(msg, m.keys.cancel) {
			m.timer.Cancel()
			m.toMain(countdown.CancelledLabel)
		}
		return m, nil
	case screenResult:
		switch {
		case key.Matches(msg, m.keys.done):
			return m, m.record()
		case key.Matches(msg, m.keys.notDone):
			m.timer.Reset()
			m.toMain(countdown.CancelledLabel)
		}
		return m, nil
	case screenMessage:
		switch {
		case key.Matches(msg, m.keys.gallery), msg.Type == tea.KeyEnter:
			m.screen = screenGallery
		case key.Matches(msg, m.keys.back):
			m.timer.Reset()
			m.toMain(countdown.IdleLabel)
		}
		return m, nil
	case screenGallery:
		if key.Matches(msg, m.keys.back) || msg.Type == tea.KeyEnter {
			m.timer.Reset()
			m.toMain(m.label)
		}
		return m, nil
	}

	return m, nil
}

// currentRun drops messages from a countdown that was cancelled or replaced before they arrived.
func (m Model) currentRun(state domain.CountdownState) bool {
	return m.screen == screenRunning && state.ID == m.state.ID
}

func (m Model) record() tea.Cmd {
	ctx := m.ctx
	recorder := m.recorder
	return func() tea.Msg {
		message, err := recorder.Complete(ctx)
		return recordedMsg{message: message, err: err}
	}
}

func (m *Model) toMain(label string) {
	m.screen = screenMain
	m.label = label
	m.state = m.timer.State()
	m.message = ""
	m.err = nil
	m.input.Reset()
	m.input.Focus()
}

func (m Model) View() string {
	var body string

	switch m.screen {
	case screenRunning:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			countdown.Line(m.state, barWidth(m.width)),
			m.styles.help.Render("esc Не сложилось"),
		)
	case screenResult:
		lines := []string{
			countdown.Line(m.state, 0),
			m.styles.help.Render("enter Дело сделано  esc Не сложилось"),
		}
		if m.err != nil {
			lines = append(lines, m.styles.err.Render(m.err.Error()))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	case screenMessage:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.message.Render(gallery.SanitizeForTerminal(m.message)),
			m.styles.help.Render("tab Посмотреть галерею  esc Назад"),
		)
	case screenGallery:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			gallery.View(m.recorder.History(), gallery.RenderOptions{}),
			m.styles.help.Render("esc Назад"),
		)
	default:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.label.Render(m.label),
			m.input.View(),
			m.styles.help.Render("enter Старт  tab Посмотреть галерею  esc quit"),
		)
	}

	return m.styles.frame.Render(body)
}

func barWidth(width int) int {
	if width <= 0 {
		return countdown.DefaultBarWidth
	}
	// label, clock and brackets take roughly forty cells
	bar := width - 40
	if bar < 8 {
		return 0
	}
	if bar > countdown.DefaultBarWidth*2 {
		return countdown.DefaultBarWidth * 2
	}
	return bar
}
