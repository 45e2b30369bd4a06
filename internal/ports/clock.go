package ports

import "github.com/jonboulle/clockwork"

// Clock is the tick source used by the timer controller.
type Clock = clockwork.Clock

func SystemClock() Clock {
	return clockwork.NewRealClock()
}
