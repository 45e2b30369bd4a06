package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type sender interface {
	Send(msg tea.Msg)
}

// ListenableTimer is a Timer whose transitions can be observed.
type ListenableTimer interface {
	Timer
	SetListener(listener application.TimerListener)
}

type Options struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Listener forwards controller transitions into a running program.
func Listener(p sender) application.TimerListener {
	return application.TimerListenerFuncs{
		Tick: func(state domain.CountdownState) {
			p.Send(tickMsg{state: state})
		},
		Complete: func(state domain.CountdownState) {
			p.Send(completeMsg{state: state})
		},
		// Cancel can fire from inside Update, where a synchronous Send would block the event loop.
		Cancel: func(state domain.CountdownState) {
			go p.Send(cancelMsg{state: state})
		},
	}
}

// Run blocks until the user quits or ctx is cancelled. A running countdown is cancelled on exit.
func Run(ctx context.Context, timer ListenableTimer, recorder Recorder, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(ctx, timer, recorder), programOpts...)
	timer.SetListener(Listener(p))
	defer func() {
		timer.SetListener(nil)
		timer.Cancel()
	}()

	log.Debug().Msg("terminal ui started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	return nil
}
