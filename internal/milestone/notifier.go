package milestone

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/metrics"
	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/google/uuid"
)

// MatchLister is the slice of the record store the notifier reads.
type MatchLister interface {
	ListMatches(ctx context.Context) ([]models.Match, error)
}

// Notification is a milestone on display.
type Notification struct {
	Candidate
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	FiredAt   time.Time `json:"fired_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier polls live matches and keeps the one milestone on display until it
// expires or is dismissed.
type Notifier struct {
	matches MatchLister
	watcher *Watcher
	display time.Duration
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	current *Notification
}

type Option func(*Notifier)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) { n.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(n *Notifier) { n.metrics = m }
}

func NewNotifier(matches MatchLister, watcher *Watcher, display time.Duration, opts ...Option) *Notifier {
	n := &Notifier{
		matches: matches,
		watcher: watcher,
		display: display,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Refresh evaluates the live matches once. A newly fired milestone replaces
// whatever is on display.
func (n *Notifier) Refresh(ctx context.Context) (*Notification, error) {
	matches, err := n.matches.ListMatches(ctx)
	if err != nil {
		return nil, scoring.Persist("list matches", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	c, ok := n.watcher.Next(matches)
	if !ok {
		return n.currentLocked(), nil
	}
	now := n.now()
	n.current = &Notification{
		ID:        uuid.NewString(),
		Candidate: c,
		Message:   c.Text(),
		FiredAt:   now,
		ExpiresAt: now.Add(n.display),
	}
	n.metrics.MilestoneFired(string(c.Kind))
	n.logger.Info("milestone fired",
		"match_id", c.MatchID, "player", c.Player, "label", c.Label, "id", n.current.ID)
	out := *n.current
	return &out, nil
}

// Current returns the milestone on display, or nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentLocked()
}

func (n *Notifier) currentLocked() *Notification {
	if n.current == nil {
		return nil
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return nil
	}
	out := *n.current
	return &out
}

// Dismiss removes the milestone on display if its id matches.
func (n *Notifier) Dismiss(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if cur := n.currentLocked(); cur == nil || cur.ID != id {
		return scoring.Missing("milestone", id)
	}
	n.current = nil
	return nil
}
