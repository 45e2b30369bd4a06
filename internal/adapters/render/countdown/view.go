package countdown

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/cave/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultBarWidth = 24

	IdleLabel      = "ММ:СС или в секундах"
	CompletedLabel = "Время"
	CancelledLabel = "Таймер остановлен."
)

type styles struct {
	label      lipgloss.Style
	clock      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	done       lipgloss.Style
	cancelled  lipgloss.Style
}

func newStyles() styles {
	return styles{
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		clock:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		done:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		cancelled:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Line renders the countdown status used by the interactive shells.
func Line(state domain.CountdownState, width int) string {
	s := newStyles()

	switch state.Phase {
	case domain.PhaseCompleted:
		return s.done.Render(CompletedLabel)
	case domain.PhaseCancelled:
		return s.cancelled.Render(CancelledLabel)
	case domain.PhaseRunning:
	default:
		return s.label.Render(IdleLabel)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(RemainingLabel(state.Remaining)),
		" ",
		s.clock.Render(domain.FormatClock(state.Remaining)),
		" ",
		progressBar(state, width, s),
	)
}

// ErrorLabel is the text shown in place of the label when a duration is rejected.
func ErrorLabel(err error) string {
	switch {
	case err == nil:
		return IdleLabel
	case errors.Is(err, domain.ErrDurationTooShort):
		return fmt.Sprintf("Время должно быть не менее %d секунд.", domain.MinDurationSeconds)
	case errors.Is(err, domain.ErrInvalidDuration):
		return "Введите ММ:СС или число секунд."
	case errors.Is(err, domain.ErrTimerRunning):
		return "Таймер уже запущен."
	default:
		return err.Error()
	}
}

func RemainingLabel(remaining int) string {
	return fmt.Sprintf("Осталось времени: %d секунд", remaining)
}

func progressBar(state domain.CountdownState, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 0.0
	if state.Total > 0 {
		fraction = float64(state.Elapsed()) / float64(state.Total)
	}
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
