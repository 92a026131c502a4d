// Package app wires the record store, scoring service and milestone
// notifier from configuration. The HTTP server and the admin CLI share it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DhavalSuthar-24/scorebook/config"
	"github.com/DhavalSuthar-24/scorebook/internal/match"
	"github.com/DhavalSuthar-24/scorebook/internal/metrics"
	"github.com/DhavalSuthar-24/scorebook/internal/milestone"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"github.com/DhavalSuthar-24/scorebook/internal/store/memory"
	"github.com/DhavalSuthar-24/scorebook/internal/tournament"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    store.Store
	Metrics  *metrics.Metrics
	Matches  *match.Service
	Notifier *milestone.Notifier
}

// Build opens the store for cfg.App.Env and wires the services on top. db is
// ignored in memory mode.
func Build(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*App, error) {
	st, err := openStore(cfg, db)
	if err != nil {
		return nil, err
	}
	if err := store.SeedSettings(ctx, st); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}

	m := metrics.New()
	rc := tournament.NewRecomputer(st, logger, m)
	svc := match.NewService(st, rc, m, logger, match.Options{
		DefaultTotalOvers:   cfg.Scoring.TotalOvers,
		ClearRevertsBatters: cfg.Scoring.ClearRevertsBatters,
	})
	notifier := milestone.NewNotifier(st, milestone.NewWatcher(nil), cfg.Milestones.DisplayDuration,
		milestone.WithLogger(logger),
		milestone.WithMetrics(m),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    st,
		Metrics:  m,
		Matches:  svc,
		Notifier: notifier,
	}, nil
}

func openStore(cfg *config.Config, db *gorm.DB) (store.Store, error) {
	if cfg.App.Env == config.EnvMemory {
		return memory.New(), nil
	}
	if db == nil {
		return nil, fmt.Errorf("database is not connected")
	}
	if err := db.AutoMigrate(store.AllModels()...); err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return store.NewGormStore(db), nil
}
