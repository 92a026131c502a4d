package match

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/metrics"
	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"github.com/DhavalSuthar-24/scorebook/internal/tournament"
)

// Options tunes the scoring service.
type Options struct {
	// DefaultTotalOvers applies to matches created without total_overs.
	DefaultTotalOvers int
	// ClearRevertsBatters makes ClearOver also unwind batter attributions.
	ClearRevertsBatters bool
}

// Service owns every match mutation. Mutations run one at a time: each
// loads the match, applies the engine operation, rederives the score blocks
// and persists before the next one starts.
type Service struct {
	store      store.Store
	recomputer *tournament.Recomputer
	metrics    *metrics.Metrics
	logger     *slog.Logger
	opts       Options

	mu sync.Mutex
}

func NewService(st store.Store, rc *tournament.Recomputer, m *metrics.Metrics, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.DefaultTotalOvers <= 0 {
		opts.DefaultTotalOvers = 20
	}
	return &Service{store: st, recomputer: rc, metrics: m, logger: logger, opts: opts}
}

// Ref addresses one innings of one match.
type Ref struct {
	MatchID uint
	Innings int
}

// Patch is a partial match update. Nil fields are left alone.
type Patch struct {
	Title       *string
	Venue       *string
	ScheduledAt *time.Time
	Team1       *string
	Team2       *string
	TotalOvers  *int
	Status      *models.MatchStatus
	Team1Score  *scoring.Score
	Team2Score  *scoring.Score
	Team1Squad  []string
	Team2Squad  []string
}

// Scorecard is the read model of a match: both innings, derived scores and
// the chase projection once the first innings has begun.
type Scorecard struct {
	Match      models.Match   `json:"match"`
	Team1Score scoring.Score  `json:"team1_score"`
	Team2Score scoring.Score  `json:"team2_score"`
	Chase      *scoring.Chase `json:"chase,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]models.Match, error) {
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return nil, s.persistErr("list matches", err)
	}
	return matches, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Match, error) {
	m, err := s.store.GetMatch(ctx, id)
	if err != nil {
		return nil, s.persistErr("get match", err)
	}
	if m == nil {
		return nil, scoring.Missing("match", id)
	}
	return m, nil
}

// Create stores a new match. A match created already completed is folded
// into the standings before Create returns.
func (s *Service) Create(ctx context.Context, m *models.Match) (*models.Match, error) {
	m.Team1 = strings.TrimSpace(m.Team1)
	m.Team2 = strings.TrimSpace(m.Team2)
	if err := validateTeams(m.Team1, m.Team2); err != nil {
		return nil, err
	}
	if m.Status == "" {
		m.Status = models.StatusMatchUpcoming
	}
	if !m.Status.Valid() {
		return nil, scoring.Invalid("unknown match status %q", m.Status)
	}
	if m.TotalOvers <= 0 {
		m.TotalOvers = s.opts.DefaultTotalOvers
	}
	if m.ScheduledAt.IsZero() {
		m.ScheduledAt = time.Now().UTC()
	}
	if m.Title == "" {
		m.Title = m.Team1 + " vs " + m.Team2
	}
	m.RefreshScores()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.CreateMatch(ctx, m); err != nil {
		return nil, s.persistErr("create match", err)
	}
	if m.Status == models.StatusMatchCompleted {
		if err := s.recompute(ctx); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func validateTeams(team1, team2 string) error {
	if team1 == "" || team2 == "" {
		return scoring.Invalid("team name is required")
	}
	if strings.EqualFold(team1, team2) {
		return scoring.Invalid("a match needs two different teams")
	}
	return nil
}

// Update applies p and recomputes the standings.
func (s *Service) Update(ctx context.Context, id uint, p Patch) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m, p); err != nil {
		return nil, err
	}
	m.RefreshScores()
	if err := s.store.UpdateMatch(ctx, m); err != nil {
		return nil, s.persistErr("update match", err)
	}
	if err := s.recompute(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func applyPatch(m *models.Match, p Patch) error {
	if p.Title != nil {
		m.Title = strings.TrimSpace(*p.Title)
	}
	if p.Venue != nil {
		m.Venue = strings.TrimSpace(*p.Venue)
	}
	if p.ScheduledAt != nil {
		m.ScheduledAt = *p.ScheduledAt
	}
	if p.Team1 != nil {
		m.Team1 = strings.TrimSpace(*p.Team1)
	}
	if p.Team2 != nil {
		m.Team2 = strings.TrimSpace(*p.Team2)
	}
	if err := validateTeams(m.Team1, m.Team2); err != nil {
		return err
	}
	if p.TotalOvers != nil {
		if *p.TotalOvers <= 0 {
			return scoring.Invalid("total_overs must be positive")
		}
		m.TotalOvers = *p.TotalOvers
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return scoring.Invalid("unknown match status %q", *p.Status)
		}
		m.Status = *p.Status
	}
	if p.Team1Score != nil {
		if len(m.Innings1.Overs) > 0 {
			return scoring.Invalid("team1 score is derived from its overs and cannot be set")
		}
		m.Team1Score = *p.Team1Score
	}
	if p.Team2Score != nil {
		if len(m.Innings2.Overs) > 0 {
			return scoring.Invalid("team2 score is derived from its overs and cannot be set")
		}
		m.Team2Score = *p.Team2Score
	}
	if p.Team1Squad != nil {
		m.Team1Squad = models.StringSlice(p.Team1Squad)
	}
	if p.Team2Squad != nil {
		m.Team2Squad = models.StringSlice(p.Team2Squad)
	}
	return nil
}

// Delete removes the match and retracts its contribution to the standings.
func (s *Service) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteMatch(ctx, id); err != nil {
		return s.persistErr("delete match", err)
	}
	return s.recompute(ctx)
}

// Start moves an upcoming match to live, records both squads and seeds each
// batting order with the squad as next to bat.
func (s *Service) Start(ctx context.Context, id uint, squad1, squad2 []string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.StatusMatchUpcoming {
		return nil, scoring.Invalid("match %d is %s; only upcoming matches can start", id, m.Status)
	}
	m.Team1Squad = cleanSquad(squad1)
	m.Team2Squad = cleanSquad(squad2)
	for _, seed := range []struct {
		in    *scoring.Innings
		squad []string
	}{
		{m.Innings1.Innings(), m.Team1Squad},
		{m.Innings2.Innings(), m.Team2Squad},
	} {
		for _, name := range seed.squad {
			if seed.in.Batter(name) != nil {
				continue
			}
			if err := seed.in.AddBatter(name, scoring.DismissalNextToBat); err != nil {
				return nil, err
			}
		}
	}
	m.Status = models.StatusMatchLive

	if err := s.store.UpdateMatch(ctx, m); err != nil {
		return nil, s.persistErr("start match", err)
	}
	return m, nil
}

func cleanSquad(names []string) models.StringSlice {
	out := make(models.StringSlice, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Complete moves a live match to completed and folds it into the standings.
func (s *Service) Complete(ctx context.Context, id uint) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.StatusMatchLive {
		return nil, scoring.Invalid("match %d is %s; only live matches can complete", id, m.Status)
	}
	m.Status = models.StatusMatchCompleted
	m.RefreshScores()
	if err := s.store.UpdateMatch(ctx, m); err != nil {
		return nil, s.persistErr("complete match", err)
	}
	if err := s.recompute(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Scorecard projects the match for display. It is recomputed on every read.
func (s *Service) Scorecard(ctx context.Context, id uint) (*Scorecard, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.RefreshScores()
	card := &Scorecard{Match: *m, Team1Score: m.Team1Score, Team2Score: m.Team2Score}
	if len(m.Innings1.Overs) > 0 || m.Team1Score.Runs > 0 {
		chase := scoring.ProjectChase(m.Team1Score, m.Team2Score, scoring.Innings(m.Innings2), m.TotalOvers)
		card.Chase = &chase
	}
	return card, nil
}

// Mutate runs fn against one innings of a match and persists the result.
// fn errors abort without writing. Edits to a completed match also refresh
// the standings.
func (s *Service) Mutate(ctx context.Context, ref Ref, fn func(*scoring.Innings) error) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(ctx, ref.MatchID)
	if err != nil {
		return nil, err
	}
	in := m.InningsAt(ref.Innings)
	if in == nil {
		return nil, scoring.Invalid("innings must be 1 or 2, got %d", ref.Innings)
	}
	if err := fn(in); err != nil {
		return nil, err
	}
	m.RefreshScores()
	if err := s.store.UpdateMatch(ctx, m); err != nil {
		return nil, s.persistErr("update match", err)
	}
	if m.Status == models.StatusMatchCompleted {
		if err := s.recompute(ctx); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddOver appends the next over to the innings ledger.
func (s *Service) AddOver(ctx context.Context, ref Ref) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		in.AddOver()
		return nil
	})
}

// RecordBall writes a raw ball value. needsBatter reports that the value
// carries runs and awaits AssignBatter.
func (s *Service) RecordBall(ctx context.Context, ref Ref, over, ball int, value string) (m *models.Match, needsBatter bool, err error) {
	m, err = s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		numeric, err := in.RecordBall(over, ball, value)
		needsBatter = numeric
		return err
	})
	return m, needsBatter, err
}

func (s *Service) AssignBatter(ctx context.Context, ref Ref, over, ball int, batter string) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.AssignBatterToBall(over, ball, batter)
	})
}

func (s *Service) AddBallSlot(ctx context.Context, ref Ref, over int) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.AddBallSlot(over)
	})
}

func (s *Service) RemoveBallSlot(ctx context.Context, ref Ref, over int) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.RemoveBallSlot(over)
	})
}

func (s *Service) UpdateOver(ctx context.Context, ref Ref, over int, p scoring.OverPatch) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.UpdateOver(over, p)
	})
}

// SaveOver commits the over to its bowler's figures.
func (s *Service) SaveOver(ctx context.Context, ref Ref, over int) (*models.Match, error) {
	m, err := s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		_, err := in.SaveOver(over)
		return err
	})
	if err == nil {
		s.metrics.OverSaved()
	}
	return m, err
}

// ClearOver unwinds and empties the over.
func (s *Service) ClearOver(ctx context.Context, ref Ref, over int) (*models.Match, error) {
	opts := scoring.ClearOptions{RevertBatters: s.opts.ClearRevertsBatters}
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.ClearOver(over, opts)
	})
}

func (s *Service) AddBatter(ctx context.Context, ref Ref, name string, t scoring.DismissalType) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.AddBatter(name, t)
	})
}

func (s *Service) SetDismissal(ctx context.Context, ref Ref, name string, t scoring.DismissalType, bowler, fielder string) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.SetDismissal(name, t, bowler, fielder)
	})
}

func (s *Service) OverrideBatter(ctx context.Context, ref Ref, name string, f scoring.BatterFigures) (*models.Match, error) {
	return s.Mutate(ctx, ref, func(in *scoring.Innings) error {
		return in.OverrideBatter(name, f)
	})
}

// Recompute rebuilds the standings on demand.
func (s *Service) Recompute(ctx context.Context) (tournament.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputer.Run(ctx)
}

// Wipe clears every match, team and player and restores default settings.
func (s *Service) Wipe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.WipeAll(ctx); err != nil {
		return s.persistErr("wipe", err)
	}
	s.logger.Warn("record store wiped")
	return nil
}

func (s *Service) load(ctx context.Context, id uint) (*models.Match, error) {
	m, err := s.store.GetMatch(ctx, id)
	if err != nil {
		return nil, s.persistErr("get match", err)
	}
	if m == nil {
		return nil, scoring.Missing("match", id)
	}
	return m, nil
}

// recompute must be called with s.mu held so no match mutation interleaves
// with the rebuild.
func (s *Service) recompute(ctx context.Context) error {
	_, err := s.recomputer.Run(ctx)
	return err
}

// persistErr logs a store failure and wraps it. Taxonomy errors the store
// returns itself (not found, duplicates) pass through unchanged.
func (s *Service) persistErr(op string, err error) error {
	if isTaxonomy(err) {
		return err
	}
	s.logger.Error("record store failure", "op", op, "error", err)
	return scoring.Persist(op, err)
}

func isTaxonomy(err error) bool {
	return errors.Is(err, scoring.ErrValidation) ||
		errors.Is(err, scoring.ErrNotFound) ||
		errors.Is(err, scoring.ErrPersistence)
}
