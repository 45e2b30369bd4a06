package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinDurationSeconds is the shortest countdown a user may start.
const MinDurationSeconds = 5

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseRunning   Phase = "running"
	PhaseCompleted Phase = "completed"
	PhaseCancelled Phase = "cancelled"
)

type CountdownState struct {
	ID        string
	Remaining int
	Running   bool
	Phase     Phase
	Total     int
}

// ParseDuration accepts either "MM:SS" or a plain number of seconds.
func ParseDuration(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}

	var seconds int
	if strings.Contains(trimmed, ":") {
		parts := strings.Split(trimmed, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("%w: %q is not MM:SS", ErrInvalidDuration, input)
		}

		minutes, err := parseField(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: minutes in %q", ErrInvalidDuration, input)
		}
		secs, err := parseField(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: seconds in %q", ErrInvalidDuration, input)
		}
		seconds = minutes*60 + secs
	} else {
		value, err := parseField(trimmed)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
		}
		seconds = value
	}

	if seconds < MinDurationSeconds {
		return 0, fmt.Errorf("%w: %d seconds, need at least %d", ErrDurationTooShort, seconds, MinDurationSeconds)
	}

	return seconds, nil
}

func parseField(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("negative value %d", value)
	}

	return value, nil
}

func NewCountdown(id string, seconds int) (CountdownState, error) {
	if seconds < MinDurationSeconds {
		return CountdownState{}, fmt.Errorf("%w: %d seconds, need at least %d", ErrDurationTooShort, seconds, MinDurationSeconds)
	}

	return CountdownState{
		ID:        id,
		Remaining: seconds,
		Running:   true,
		Phase:     PhaseRunning,
		Total:     seconds,
	}, nil
}

// Tick consumes one second and reports whether the countdown just completed.
func (s *CountdownState) Tick() bool {
	if s == nil || !s.Running {
		return false
	}

	if s.Remaining > 0 {
		s.Remaining--
	}
	if s.Remaining > 0 {
		return false
	}

	s.Running = false
	s.Phase = PhaseCompleted
	return true
}

func (s *CountdownState) Cancel() {
	if s == nil {
		return
	}

	s.Remaining = 0
	s.Running = false
	if s.Phase == PhaseRunning {
		s.Phase = PhaseCancelled
	}
}

func (s CountdownState) Elapsed() int {
	if s.Total <= s.Remaining {
		return 0
	}

	return s.Total - s.Remaining
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
