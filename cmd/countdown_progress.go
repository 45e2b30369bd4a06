package cmd

import (
	"context"
	"fmt"
	"io"

	countdownadapter "github.com/bnema/cave/internal/adapters/render/countdown"
	"github.com/bnema/cave/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type countdownStateMsg struct {
	state domain.CountdownState
}

type countdownProgressModel struct {
	spinner spinner.Model
	events  <-chan domain.CountdownState
	state   domain.CountdownState
	done    bool
}

func newCountdownProgressModel(initial domain.CountdownState, events <-chan domain.CountdownState) countdownProgressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return countdownProgressModel{
		spinner: s,
		events:  events,
		state:   initial,
	}
}

func (m countdownProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForCountdown(m.events))
}

func (m countdownProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case countdownStateMsg:
		m.state = msg.state
		if !msg.state.Running {
			m.done = true
			return m, tea.Quit
		}
		return m, waitForCountdown(m.events)
	default:
		return m, nil
	}
}

func (m countdownProgressModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), countdownadapter.Line(m.state, countdownadapter.DefaultBarWidth))
}

func waitForCountdown(events <-chan domain.CountdownState) tea.Cmd {
	return func() tea.Msg {
		return countdownStateMsg{state: <-events}
	}
}

// runCountdownProgress draws a live countdown until events reports a stopped countdown.
func runCountdownProgress(ctx context.Context, output io.Writer, initial domain.CountdownState, events <-chan domain.CountdownState) (domain.CountdownState, error) {
	p := tea.NewProgram(
		newCountdownProgressModel(initial, events),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.CountdownState{}, err
	}

	result, ok := finalModel.(countdownProgressModel)
	if !ok {
		return domain.CountdownState{}, fmt.Errorf("unexpected final countdown model type %T", finalModel)
	}

	return result.state, nil
}

// waitCountdownPlain prints one line per tick; used when output is not interactive.
func waitCountdownPlain(ctx context.Context, output io.Writer, initial domain.CountdownState, events <-chan domain.CountdownState) (domain.CountdownState, error) {
	if _, err := fmt.Fprintln(output, countdownadapter.RemainingLabel(initial.Remaining)); err != nil {
		return domain.CountdownState{}, err
	}

	for {
		select {
		case <-ctx.Done():
			return domain.CountdownState{}, ctx.Err()
		case state := <-events:
			if !state.Running {
				return state, nil
			}
			if _, err := fmt.Fprintln(output, countdownadapter.RemainingLabel(state.Remaining)); err != nil {
				return domain.CountdownState{}, err
			}
		}
	}
}
