package gui

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRejectsShortInputInPlace(t *testing.T) {
	shell, _, _ := newTestShell(t, &stubRecorder{})

	test.Type(shell.input, "4")
	test.Tap(shell.startBtn)

	assert.Equal(t, "Время должно быть не менее 5 секунд.", shell.label.Text)
	assert.False(t, shell.startBtn.Disabled())
	assert.NotNil(t, findButton(shell.content, "Старт"))
}

func TestShellCountdownToMessageAndGallery(t *testing.T) {
	recorder := &stubRecorder{message: "Так держать"}
	shell, controller, clock := newTestShell(t, recorder)

	test.Type(shell.input, "0:05")
	test.Tap(shell.startBtn)
	require.Equal(t, "Осталось времени: 5 секунд", shell.label.Text)
	require.True(t, shell.startBtn.Disabled())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := 0; i < 5; i++ {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(application.TickInterval)
		want := 4 - i
		if want > 0 {
			assert.Eventually(t, func() bool {
				return controller.State().Remaining == want
			}, time.Second, 5*time.Millisecond)
		}
	}

	var done *widget.Button
	require.Eventually(t, func() bool {
		done = findButton(shell.content, "Дело сделано")
		return done != nil
	}, 2*time.Second, 5*time.Millisecond)

	test.Tap(done)
	assert.Equal(t, "Так держать", shell.message.Text)
	assert.Equal(t, 1, recorder.calls)

	gallery := findButton(shell.content, "Посмотреть галерею")
	require.NotNil(t, gallery)
	test.Tap(gallery)
	assert.NotNil(t, findLabel(shell.content, "Галерея"))
	assert.NotNil(t, findLabel(shell.content, "Так держать"))

	back := findButton(shell.content, "Назад")
	require.NotNil(t, back)
	test.Tap(back)
	assert.NotNil(t, findButton(shell.content, "Старт"))
	assert.False(t, shell.startBtn.Disabled())
}

func TestShellCancelDuringCountdown(t *testing.T) {
	shell, controller, _ := newTestShell(t, &stubRecorder{})

	test.Type(shell.input, "30")
	test.Tap(shell.startBtn)
	require.True(t, controller.State().Running)

	test.Tap(shell.cancelBtn)

	assert.False(t, controller.State().Running)
	assert.Equal(t, "Таймер остановлен.", shell.label.Text)
	assert.True(t, shell.cancelBtn.Disabled())
	assert.NotNil(t, findButton(shell.content, "Старт"))
}

func TestShellDropsCallbacksFromCancelledRun(t *testing.T) {
	recorder := &stubRecorder{message: "x"}
	shell, controller, _ := newTestShell(t, recorder)

	test.Type(shell.input, "30")
	test.Tap(shell.startBtn)
	run := controller.State()

	test.Tap(shell.cancelBtn)
	require.Equal(t, "Таймер остановлен.", shell.label.Text)

	tick := run
	tick.Remaining = 12
	shell.onTick(tick)
	assert.Equal(t, "Таймер остановлен.", shell.label.Text)

	finished := run
	finished.Remaining = 0
	finished.Running = false
	finished.Phase = domain.PhaseCompleted
	shell.onComplete(finished)

	assert.Nil(t, findButton(shell.content, "Дело сделано"))
	assert.NotNil(t, findButton(shell.content, "Старт"))
	assert.Zero(t, recorder.calls)
}

func TestShellDropsCallbacksFromReplacedRun(t *testing.T) {
	shell, controller, _ := newTestShell(t, &stubRecorder{})

	test.Type(shell.input, "30")
	test.Tap(shell.startBtn)
	first := controller.State()
	test.Tap(shell.cancelBtn)

	test.Tap(shell.startBtn)
	second := controller.State()
	require.NotEqual(t, first.ID, second.ID)

	stale := first
	stale.Remaining = 3
	shell.onTick(stale)
	assert.Equal(t, "Осталось времени: 30 секунд", shell.label.Text)

	current := second
	current.Remaining = 29
	shell.onTick(current)
	assert.Equal(t, "Осталось времени: 29 секунд", shell.label.Text)
}

func TestShellRecordFailureKeepsResultScreen(t *testing.T) {
	recorder := &stubRecorder{err: errors.New("save history: disk full")}
	shell, _, _ := newTestShell(t, recorder)

	shell.showResult()
	done := findButton(shell.content, "Дело сделано")
	require.NotNil(t, done)

	test.Tap(done)

	assert.Equal(t, 1, recorder.calls)
	assert.NotNil(t, findButton(shell.content, "Дело сделано"))
	assert.Empty(t, shell.message.Text)
}

func newTestShell(t *testing.T, recorder *stubRecorder) (*Shell, *application.TimerController, *clockwork.FakeClock) {
	t.Helper()

	test.NewTempApp(t)
	window := test.NewTempWindow(t, nil)
	clock := clockwork.NewFakeClock()
	controller := application.NewTimerController(clock, nil)

	shell := New(context.Background(), window, controller, recorder)
	t.Cleanup(shell.Close)

	return shell, controller, clock
}

func findButton(root fyne.CanvasObject, text string) *widget.Button {
	var found *widget.Button
	walk(root, func(obj fyne.CanvasObject) bool {
		if button, ok := obj.(*widget.Button); ok && button.Text == text {
			found = button
			return true
		}
		return false
	})
	return found
}

func findLabel(root fyne.CanvasObject, text string) *widget.Label {
	var found *widget.Label
	walk(root, func(obj fyne.CanvasObject) bool {
		if label, ok := obj.(*widget.Label); ok && label.Text == text {
			found = label
			return true
		}
		return false
	})
	return found
}

func walk(obj fyne.CanvasObject, visit func(fyne.CanvasObject) bool) bool {
	if visit(obj) {
		return true
	}

	switch typed := obj.(type) {
	case *fyne.Container:
		for _, child := range typed.Objects {
			if walk(child, visit) {
				return true
			}
		}
	case *container.Scroll:
		return walk(typed.Content, visit)
	}

	return false
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
