package domain

import "errors"

var (
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrDurationTooShort = errors.New("duration is too short")
	ErrTimerRunning     = errors.New("timer is already running")
)
