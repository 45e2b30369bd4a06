package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/bnema/cave/internal/adapters/render/countdown"
	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/domain"
	"github.com/rs/zerolog/log"
)

// Timer is the countdown controller surface the window drives.
type Timer interface {
	Start(ctx context.Context, input string) (domain.CountdownState, error)
	Cancel() domain.CountdownState
	Reset() domain.CountdownState
	SetListener(listener application.TimerListener)
}

type Recorder interface {
	Complete(ctx context.Context) (string, error)
	History() []string
}

// Shell is the desktop window. All widget access happens on the fyne goroutine;
// controller callbacks hop over with fyne.Do.
type Shell struct {
	ctx      context.Context
	window   fyne.Window
	timer    Timer
	recorder Recorder

	content *fyne.Container
	// runID is the countdown this window is showing; empty once it was cancelled or recorded.
	runID string

	label      *widget.Label
	input      *widget.Entry
	startBtn   *widget.Button
	galleryBtn *widget.Button
	cancelBtn  *widget.Button

	message *widget.Label
}

func New(ctx context.Context, window fyne.Window, timer Timer, recorder Recorder) *Shell {
	if ctx == nil {
		ctx = context.Background()
	}

	s := &Shell{
		ctx:      ctx,
		window:   window,
		timer:    timer,
		recorder: recorder,
		content:  container.NewStack(),
		label:    widget.NewLabel(countdown.IdleLabel),
		input:    widget.NewEntry(),
		message:  widget.NewLabel(""),
	}

	s.label.Alignment = fyne.TextAlignCenter
	s.label.Wrapping = fyne.TextWrapWord
	s.message.Alignment = fyne.TextAlignCenter
	s.message.Wrapping = fyne.TextWrapWord
	s.message.TextStyle = fyne.TextStyle{Bold: true}

	s.input.SetPlaceHolder("Отведенное время")
	s.input.OnSubmitted = func(string) { s.start() }
	s.startBtn = widget.NewButton("Старт", s.start)
	s.galleryBtn = widget.NewButton("Посмотреть галерею", s.showGallery)
	s.cancelBtn = widget.NewButton("Не сложилось", s.cancel)
	s.cancelBtn.Disable()

	timer.SetListener(application.TimerListenerFuncs{
		Tick: func(state domain.CountdownState) {
			fyne.Do(func() { s.onTick(state) })
		},
		Complete: func(state domain.CountdownState) {
			fyne.Do(func() { s.onComplete(state) })
		},
	})

	s.showMain()
	window.SetContent(s.content)

	return s
}

// Close detaches the shell from the controller and stops a running countdown.
func (s *Shell) Close() {
	s.timer.SetListener(nil)
	s.timer.Cancel()
}

func (s *Shell) start() {
	state, err := s.timer.Start(s.ctx, s.input.Text)
	if err != nil {
		s.label.SetText(countdown.ErrorLabel(err))
		return
	}

	s.runID = state.ID
	s.label.SetText(countdown.RemainingLabel(state.Remaining))
	s.startBtn.Disable()
	s.cancelBtn.Enable()
	s.setScreen(container.NewVBox(s.label, s.cancelBtn))
}

func (s *Shell) onTick(state domain.CountdownState) {
	if !state.Running || !s.currentRun(state) {
		return
	}
	s.label.SetText(countdown.RemainingLabel(state.Remaining))
}

func (s *Shell) onComplete(state domain.CountdownState) {
	if !s.currentRun(state) {
		return
	}
	s.showResult()
}

func (s *Shell) currentRun(state domain.CountdownState) bool {
	return s.runID != "" && state.ID == s.runID
}

func (s *Shell) cancel() {
	s.runID = ""
	s.timer.Reset()
	s.label.SetText(countdown.CancelledLabel)
	s.showMain()
}

func (s *Shell) showMain() {
	s.startBtn.Enable()
	s.cancelBtn.Disable()
	s.setScreen(container.NewVBox(s.label, s.input, s.startBtn, s.galleryBtn))
}

func (s *Shell) showResult() {
	title := widget.NewLabel(countdown.CompletedLabel)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	s.setScreen(container.NewVBox(
		title,
		widget.NewButton("Дело сделано", s.recordDone),
		widget.NewButton("Не сложилось", s.cancel),
	))
}

func (s *Shell) recordDone() {
	message, err := s.recorder.Complete(s.ctx)
	if err != nil {
		log.Error().Err(err).Msg("record message")
		dialog.ShowError(err, s.window)
		return
	}

	s.runID = ""
	s.timer.Reset()
	s.label.SetText(countdown.IdleLabel)
	s.input.SetText("")
	s.message.SetText(message)
	s.setScreen(container.NewVBox(
		s.message,
		widget.NewButton("Посмотреть галерею", s.showGallery),
	))
}

func (s *Shell) showGallery() {
	title := widget.NewLabel("Галерея")
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	entries := container.NewVBox()
	for _, entry := range s.recorder.History() {
		label := widget.NewLabel(entry)
		label.Wrapping = fyne.TextWrapWord
		entries.Add(label)
	}

	back := widget.NewButton("Назад", s.showMain)

	s.setScreen(container.NewBorder(title, back, nil, nil, container.NewVScroll(entries)))
}

func (s *Shell) setScreen(screen fyne.CanvasObject) {
	s.content.Objects = []fyne.CanvasObject{screen}
	s.content.Refresh()
}
