package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"audioshelf/internal/adapters/covers"
	"audioshelf/internal/adapters/opener"
	"audioshelf/internal/adapters/sqlite"
	"audioshelf/internal/adapters/tui"
	"audioshelf/internal/adapters/tui/shelf"
	"audioshelf/internal/adapters/tui/views"
	"audioshelf/internal/config"
	"audioshelf/internal/logging"
	"audioshelf/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.NewFile(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	lib := sqlite.NewLibrary()
	if err := lib.Open(cfg.Library.Path); err != nil {
		return err
	}
	defer lib.Close()

	loader, events, closeCovers, err := openCovers(cfg.Covers, log)
	if err != nil {
		return err
	}
	defer closeCovers()

	app := tui.NewApp(lib, loader, events, views.ShelfConfig{
		Binder: shelf.BinderConfig{
			MaxImageSize: cfg.Covers.MaxImageSize,
			CoverCols:    shelf.DefaultCoverCols,
			CoverRows:    shelf.DefaultCoverRows,
		},
		Refresh: time.Duration(cfg.Library.RefreshSeconds) * time.Second,
	}, log)
	if cfg.Covers.Bucket == "" {
		app.SetCoverOpener(opener.NewOpener(cfg.Covers.Dir))
	}

	log.Info("starting shelf",
		zap.String("library", cfg.Library.Path),
		zap.String("covers", coverSource(cfg.Covers)))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// openCovers picks the object store when a bucket is configured and the
// watched covers directory otherwise.
func openCovers(cfg config.CoversConfig, log *zap.Logger) (ports.CoverLoader, <-chan string, func(), error) {
	if cfg.Bucket != "" {
		client, err := covers.NewMinioClient(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to cover store: %w", err)
		}
		return covers.NewObjectLoader(client, cfg.Bucket, cfg.MaxImageSize), nil, func() {}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create covers directory: %w", err)
	}
	loader := covers.NewFileLoader(cfg.Dir)

	watcher, err := covers.NewWatcher(cfg.Dir, log)
	if err != nil {
		log.Warn("cover watcher disabled", zap.Error(err))
		return loader, nil, func() {}, nil
	}
	return loader, watcher.Events(), func() { watcher.Close() }, nil
}

func coverSource(cfg config.CoversConfig) string {
	if cfg.Bucket != "" {
		return cfg.Endpoint + "/" + cfg.Bucket
	}
	return cfg.Dir
}
