package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/scorebook/config"
	_ "github.com/DhavalSuthar-24/scorebook/docs"
	"github.com/DhavalSuthar-24/scorebook/internal/app"
	"github.com/DhavalSuthar-24/scorebook/internal/scheduler"
	"github.com/DhavalSuthar-24/scorebook/routes"
)

// @title Scorebook REST API
// @version 1.0
// @description Ball-by-ball cricket scoring with live tournament standings 🏏.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Initialize(); err != nil {
		return err
	}
	cfg := config.GetConfig()
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, config.DB, logger)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(cfg.Milestones.RefreshInterval, logger)
	if err != nil {
		return err
	}
	sched.Add("milestone-refresh", scheduler.RefreshFunc(func(ctx context.Context) error {
		_, err := a.Notifier.Refresh(ctx)
		return err
	}))
	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	r := routes.SetupRoutes(routes.Deps{
		Config:   cfg,
		Store:    a.Store,
		Matches:  a.Matches,
		Notifier: a.Notifier,
		Metrics:  a.Metrics,
		Logger:   logger,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
