package tournament

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/metrics"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
)

// Recomputer runs Rebuild against a store, one run at a time. Callers that
// queue up behind a running rebuild share the next run instead of each
// starting their own.
type Recomputer struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics

	requested atomic.Uint64

	mu          sync.Mutex
	doneThrough uint64
	last        Report
}

// NewRecomputer creates a Recomputer. m may be nil.
func NewRecomputer(st store.Store, logger *slog.Logger, m *metrics.Metrics) *Recomputer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recomputer{store: st, logger: logger, metrics: m}
}

// Run rebuilds standings and career stats from every completed match and
// commits them in one write. It returns once a run that started after this
// call has committed. On failure nothing is written and the stored standings
// keep their previous values.
func (r *Recomputer) Run(ctx context.Context) (Report, error) {
	ticket := r.requested.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.doneThrough >= ticket {
		return r.last, nil
	}

	covers := r.requested.Load()
	started := time.Now()
	report, err := r.run(ctx)
	r.metrics.ObserveRecompute(time.Since(started), err)
	if err != nil {
		r.logger.Error("tournament recompute failed", "error", err)
		return Report{}, err
	}

	r.doneThrough = covers
	r.last = report
	r.logger.Info("tournament recomputed",
		"matches", report.MatchesProcessed,
		"players_credited", report.PlayersCredited,
		"skipped", len(report.Skipped),
		"duration", time.Since(started),
	)
	for _, s := range report.Skipped {
		r.logger.Warn("recompute skipped entry without roster row",
			"match_id", s.MatchID, "name", s.Name, "team", s.Team,
			"role", s.Role, "suggestion", s.Suggestion,
		)
	}
	return report, nil
}

func (r *Recomputer) run(ctx context.Context) (Report, error) {
	matches, err := r.store.ListMatches(ctx)
	if err != nil {
		return Report{}, scoring.Persist("list matches", err)
	}
	teams, err := r.store.ListTeams(ctx)
	if err != nil {
		return Report{}, scoring.Persist("list teams", err)
	}
	players, err := r.store.ListPlayers(ctx)
	if err != nil {
		return Report{}, scoring.Persist("list players", err)
	}

	res := Rebuild(matches, teams, players)
	if err := r.store.ReplaceStandings(ctx, res.Teams, res.Players); err != nil {
		return Report{}, scoring.Persist("write standings", err)
	}
	return res.Report, nil
}

// Last returns the report of the most recent successful run.
func (r *Recomputer) Last() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// String summarizes the report on one line.
func (rep Report) String() string {
	return fmt.Sprintf("%d matches, %d players credited, %d skipped",
		rep.MatchesProcessed, rep.PlayersCredited, len(rep.Skipped))
}
