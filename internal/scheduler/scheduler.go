package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Refresher is a job run on every tick.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error { return f(ctx) }

type Scheduler struct {
	s        gocron.Scheduler
	interval time.Duration
	jobs     map[string]Refresher
	logger   *slog.Logger
}

func NewScheduler(interval time.Duration, logger *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", interval)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		interval: interval,
		jobs:     make(map[string]Refresher),
		logger:   logger,
	}, nil
}

// Add registers a named job. Jobs must be added before Start.
func (s *Scheduler) Add(name string, r Refresher) {
	s.jobs[name] = r
}

func (s *Scheduler) Start() error {
	for name, r := range s.jobs {
		_, err := s.s.NewJob(
			gocron.DurationJob(s.interval),
			gocron.NewTask(s.run, name, r),
			gocron.WithName(name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to create %s job: %w", name, err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) run(name string, r Refresher) {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	if err := r.Refresh(ctx); err != nil {
		s.logger.Error("scheduled job failed", "job", name, "error", err)
	}
}
