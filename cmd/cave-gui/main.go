package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/bnema/cave/internal/adapters/gui"
	"github.com/bnema/cave/internal/adapters/repo/jsonfile"
	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/config"
	"github.com/bnema/cave/internal/logging"
	"github.com/bnema/cave/internal/ports"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const appID = "io.github.bnema.cave"

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	_, logCloser, err := logging.Setup(cfg.Log.Level, cfg.Log.File, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("setup logging")
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	historyRepo, err := jsonfile.NewHistoryRepository(cfg.History.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("wire history repository")
	}
	source, err := jsonfile.NewMessageSource(cfg.Messages.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("wire message source")
	}
	store, err := application.NewStore(ctx, historyRepo, source, nil)
	if err != nil {
		log.Fatal().Err(err).Str("history", cfg.History.Path).Str("messages", cfg.Messages.Path).Msg("load data files")
	}

	a := fyneapp.NewWithID(appID)
	window := a.NewWindow("cave")
	window.Resize(fyne.NewSize(360, 280))

	shell := gui.New(ctx, window, application.NewTimerController(ports.SystemClock(), nil), store)
	window.SetOnClosed(shell.Close)

	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	window.ShowAndRun()
}
