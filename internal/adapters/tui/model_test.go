package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelStartInvalidInputReplacesLabel(t *testing.T) {
	m := newTestModel(t, &stubRecorder{})

	m = typeText(t, m, "3")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenMain, m.screen)
	assert.Equal(t, "Время должно быть не менее 5 секунд.", m.label)
	assert.Contains(t, m.View(), "Время должно быть не менее 5 секунд.")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "abc")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Введите ММ:СС или число секунд.", m.label)
}

func TestModelFullRoundTripRecordsMessage(t *testing.T) {
	recorder := &stubRecorder{message: "Так держать"}
	m := newTestModel(t, recorder)

	m = typeText(t, m, "0:05")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenRunning, m.screen)
	assert.Contains(t, m.View(), "Осталось времени: 5 секунд")

	m = update(t, m, tickMsg{state: runState(m, 4, domain.PhaseRunning)})
	assert.Contains(t, m.View(), "Осталось времени: 4 секунд")

	m = update(t, m, completeMsg{state: runState(m, 0, domain.PhaseCompleted)})
	require.Equal(t, screenResult, m.screen)
	assert.Contains(t, m.View(), "Время")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	require.Equal(t, screenMessage, m.screen)
	assert.Contains(t, m.View(), "Так держать")
	assert.Equal(t, 1, recorder.calls)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenGallery, m.screen)
	view := m.View()
	assert.Contains(t, view, "Галерея")
	assert.Contains(t, view, "1. Так держать")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMain, m.screen)
	assert.Empty(t, m.input.Value())
}

func TestModelRecordFailureStaysOnResultScreen(t *testing.T) {
	m := newTestModel(t, &stubRecorder{err: errors.New("save history: disk full")})

	m = typeText(t, m, "5")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, completeMsg{state: runState(m, 0, domain.PhaseCompleted)})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = next.(Model)
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, screenResult, m.screen)
	assert.Contains(t, m.View(), "disk full")
}

func TestModelNotDoneReturnsToMainWithoutRecording(t *testing.T) {
	recorder := &stubRecorder{message: "x"}
	m := newTestModel(t, recorder)

	m = typeText(t, m, "5")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, completeMsg{state: runState(m, 0, domain.PhaseCompleted)})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenMain, m.screen)
	assert.Equal(t, "Таймер остановлен.", m.label)
	assert.Zero(t, recorder.calls)
	assert.Equal(t, domain.PhaseIdle, m.timer.State().Phase)
}

func TestModelCancelWhileRunning(t *testing.T) {
	m := newTestModel(t, &stubRecorder{})

	m = typeText(t, m, "30")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenRunning, m.screen)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenMain, m.screen)
	assert.Equal(t, "Таймер остановлен.", m.label)
	assert.False(t, m.timer.State().Running)

	m = update(t, m, tickMsg{state: domain.CountdownState{Remaining: 29, Running: true, Phase: domain.PhaseRunning}})
	assert.Equal(t, screenMain, m.screen)
}

func TestModelIgnoresMessagesFromReplacedRun(t *testing.T) {
	m := newTestModel(t, &stubRecorder{})

	m = typeText(t, m, "30")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.state
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = typeText(t, m, "30")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenRunning, m.screen)
	require.NotEqual(t, first.ID, m.state.ID)

	cancelled := first
	cancelled.Running = false
	cancelled.Remaining = 0
	cancelled.Phase = domain.PhaseCancelled
	m = update(t, m, cancelMsg{state: cancelled})
	assert.Equal(t, screenRunning, m.screen)

	stale := first
	stale.Remaining = 1
	m = update(t, m, tickMsg{state: stale})
	assert.Equal(t, 30, m.state.Remaining)

	finished := first
	finished.Remaining = 0
	finished.Running = false
	finished.Phase = domain.PhaseCompleted
	m = update(t, m, completeMsg{state: finished})
	assert.Equal(t, screenRunning, m.screen)
	assert.True(t, m.timer.State().Running)

	m = update(t, m, cancelMsg{state: m.timer.Cancel()})
	assert.Equal(t, screenMain, m.screen)
	assert.Equal(t, "Таймер остановлен.", m.label)
}

func TestModelGalleryFromMainShowsEmptyState(t *testing.T) {
	m := newTestModel(t, &stubRecorder{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.Equal(t, screenGallery, m.screen)
	assert.Contains(t, m.View(), "No messages yet.")
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t, &stubRecorder{})
	m = typeText(t, m, "30")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.timer.State().Running)
}

func TestListenerForwardsControllerTransitions(t *testing.T) {
	clock := clockwork.NewFakeClock()
	controller := application.NewTimerController(clock, nil)
	p := &recordingSender{msgs: make(chan tea.Msg, 16)}
	controller.SetListener(Listener(p))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := controller.Start(context.Background(), "5")
	require.NoError(t, err)

	for want := 4; want >= 0; want-- {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(application.TickInterval)
		msg := p.next(t)
		tick, ok := msg.(tickMsg)
		require.True(t, ok, "got %T", msg)
		assert.Equal(t, want, tick.state.Remaining)
	}

	_, ok := p.next(t).(completeMsg)
	assert.True(t, ok)
}

func runState(m Model, remaining int, phase domain.Phase) domain.CountdownState {
	return domain.CountdownState{
		ID:        m.state.ID,
		Remaining: remaining,
		Total:     m.state.Total,
		Running:   phase == domain.PhaseRunning,
		Phase:     phase,
	}
}

func newTestModel(t *testing.T, recorder *stubRecorder) Model {
	t.Helper()

	controller := application.NewTimerController(clockwork.NewFakeClock(), nil)
	t.Cleanup(func() { controller.Cancel() })

	return NewModel(context.Background(), controller, recorder)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	return update(t, m, msg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "unexpected model type %T", next)
	return model
}

type stubRecorder struct {
	message string
	err     error
	calls   int
	history []string
}

func (r *stubRecorder) Complete(context.Context) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	r.history = append(r.history, r.message)
	return r.message, nil
}

func (r *stubRecorder) History() []string {
	return append([]string(nil), r.history...)
}

type recordingSender struct {
	mu   sync.Mutex
	msgs chan tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs <- msg
}

func (s *recordingSender) next(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-s.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for program message")
		return nil
	}
}
