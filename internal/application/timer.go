package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/cave/internal/domain"
	"github.com/bnema/cave/internal/ports"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const TickInterval = time.Second

// TimerListener receives controller transitions. Callbacks run outside the controller lock,
// on the goroutine that caused the transition.
type TimerListener interface {
	OnStart(state domain.CountdownState)
	OnTick(state domain.CountdownState)
	OnComplete(state domain.CountdownState)
	OnCancel(state domain.CountdownState)
}

// TimerListenerFuncs adapts plain functions to TimerListener. Nil fields are skipped.
type TimerListenerFuncs struct {
	Start    func(domain.CountdownState)
	Tick     func(domain.CountdownState)
	Complete func(domain.CountdownState)
	Cancel   func(domain.CountdownState)
}

func (f TimerListenerFuncs) OnStart(state domain.CountdownState) {
	if f.Start != nil {
		f.Start(state)
	}
}

func (f TimerListenerFuncs) OnTick(state domain.CountdownState) {
	if f.Tick != nil {
		f.Tick(state)
	}
}

func (f TimerListenerFuncs) OnComplete(state domain.CountdownState) {
	if f.Complete != nil {
		f.Complete(state)
	}
}

func (f TimerListenerFuncs) OnCancel(state domain.CountdownState) {
	if f.Cancel != nil {
		f.Cancel(state)
	}
}

type TimerController struct {
	clock    ports.Clock
	interval time.Duration
	newID    func() string

	mu       sync.Mutex
	state    domain.CountdownState
	ticker   clockwork.Ticker
	done     chan struct{}
	listener TimerListener
}

func NewTimerController(clock ports.Clock, listener TimerListener) *TimerController {
	if clock == nil {
		clock = ports.SystemClock()
	}
	if listener == nil {
		listener = TimerListenerFuncs{}
	}

	return &TimerController{
		clock:    clock,
		interval: TickInterval,
		newID:    uuid.NewString,
		state:    domain.CountdownState{Phase: domain.PhaseIdle},
		listener: listener,
	}
}

// SetListener swaps the listener; shells that are built after the controller use it.
func (c *TimerController) SetListener(listener TimerListener) {
	if listener == nil {
		listener = TimerListenerFuncs{}
	}

	c.mu.Lock()
	c.listener = listener
	c.mu.Unlock()
}

func (c *TimerController) Start(ctx context.Context, input string) (domain.CountdownState, error) {
	seconds, err := domain.ParseDuration(input)
	if err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	if c.state.Running {
		state := c.state
		c.mu.Unlock()
		return state, domain.ErrTimerRunning
	}

	state, err := domain.NewCountdown(c.newID(), seconds)
	if err != nil {
		c.mu.Unlock()
		return c.State(), fmt.Errorf("start countdown: %w", err)
	}

	ticker := c.clock.NewTicker(c.interval)
	done := make(chan struct{})
	c.state = state
	c.ticker = ticker
	c.done = done
	listener := c.listener
	c.mu.Unlock()

	log.Debug().
		Str("run_id", state.ID).
		Int("remaining", state.Remaining).
		Msg("countdown started")

	listener.OnStart(state)
	go c.run(ctx, ticker, done)

	return state, nil
}

func (c *TimerController) run(ctx context.Context, ticker clockwork.Ticker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			c.abort(done)
			return
		case <-ticker.Chan():
			c.tickRun(done)
		}
	}
}

// abort cancels the run owning done, unless a newer run already replaced it.
func (c *TimerController) abort(done <-chan struct{}) {
	c.mu.Lock()
	current := c.done
	c.mu.Unlock()

	if current != nil && current == done {
		c.Cancel()
	}
}

// Tick consumes one second of the running countdown and reports completion.
func (c *TimerController) Tick() (domain.CountdownState, bool) {
	return c.tick(nil)
}

// tickRun is the ticker goroutine's Tick; it is a no-op once the run owning done was cancelled
// or replaced, so a tick already in flight cannot reach the next run.
func (c *TimerController) tickRun(done <-chan struct{}) {
	c.tick(done)
}

func (c *TimerController) tick(owner <-chan struct{}) (domain.CountdownState, bool) {
	c.mu.Lock()
	if !c.state.Running || (owner != nil && c.done != owner) {
		state := c.state
		c.mu.Unlock()
		return state, false
	}

	completed := c.state.Tick()
	if completed {
		c.stopTickerLocked()
	}
	state := c.state
	listener := c.listener
	c.mu.Unlock()

	listener.OnTick(state)
	if completed {
		log.Debug().Str("run_id", state.ID).Msg("countdown completed")
		listener.OnComplete(state)
	}

	return state, completed
}

func (c *TimerController) Cancel() domain.CountdownState {
	c.mu.Lock()
	wasRunning := c.state.Running
	c.stopTickerLocked()
	c.state.Cancel()
	state := c.state
	listener := c.listener
	c.mu.Unlock()

	if wasRunning {
		log.Debug().Str("run_id", state.ID).Msg("countdown cancelled")
		listener.OnCancel(state)
	}

	return state
}

// Reset returns a finished controller to idle. It cancels a running countdown first.
func (c *TimerController) Reset() domain.CountdownState {
	c.Cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.CountdownState{Phase: domain.PhaseIdle}
	return c.state
}

func (c *TimerController) State() domain.CountdownState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *TimerController) stopTickerLocked() {
	if c.ticker == nil {
		return
	}

	c.ticker.Stop()
	c.ticker = nil
	close(c.done)
	c.done = nil
}
