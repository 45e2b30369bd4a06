package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	galleryadapter "github.com/bnema/cave/internal/adapters/render/gallery"
	"github.com/bnema/cave/internal/adapters/repo/jsonfile"
	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/config"
	"github.com/bnema/cave/internal/logging"
	"github.com/bnema/cave/internal/ports"
	"github.com/spf13/viper"
)

// Swapped by tests.
var (
	newClock  = ports.SystemClock
	newRandom = func() ports.Random { return ports.SystemRandom{} }
	logOutput io.Writer = os.Stderr
)

type app struct {
	config          config.Config
	store           *application.Store
	timer           *application.TimerController
	galleryRenderer func([]string, galleryadapter.RenderOptions) (string, error)
	logCloser       io.Closer
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	_, logCloser, err := logging.Setup(cfg.Log.Level, cfg.Log.File, logOutput)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	store, err := wireStore(cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	return &app{
		config:          cfg,
		store:           store,
		timer:           application.NewTimerController(newClock(), nil),
		galleryRenderer: galleryadapter.Render,
		logCloser:       logCloser,
	}, nil
}

func wireStore(cfg config.Config) (*application.Store, error) {
	historyRepo, err := jsonfile.NewHistoryRepository(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("wire history repository: %w", err)
	}

	source, err := jsonfile.NewMessageSource(cfg.Messages.Path)
	if err != nil {
		return nil, fmt.Errorf("wire message source: %w", err)
	}

	store, err := application.NewStore(context.Background(), historyRepo, source, newRandom())
	if err != nil {
		return nil, fmt.Errorf("wire store: %w", err)
	}

	return store, nil
}
