// Package memory is an in-process Store used by tests and APP_ENV=memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
)

// Store keeps every record in maps guarded by one RWMutex. Records are
// copied on the way in and out so callers never share state with the store.
type Store struct {
	mu       sync.RWMutex
	matches  map[uint]models.Match
	teams    map[string]models.TeamRecord
	players  map[uint]models.PlayerRecord
	settings models.Settings
	nextID   uint
	failWith error
}

var _ store.Store = (*Store)(nil)

// New returns an empty store seeded with the default settings.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.matches = make(map[uint]models.Match)
	s.teams = make(map[string]models.TeamRecord)
	s.players = make(map[uint]models.PlayerRecord)
	s.settings = models.DefaultSettings()
}

// FailWrites makes every subsequent write return err until called with nil.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func stamp(updated, created *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func (s *Store) ListMatches(_ context.Context) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetMatch(_ context.Context, id uint) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, nil
	}
	c := m.Clone()
	return &c, nil
}

func (s *Store) CreateMatch(_ context.Context, m *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	m.ID = s.id()
	stamp(&m.UpdatedAt, &m.CreatedAt)
	s.matches[m.ID] = m.Clone()
	return nil
}

func (s *Store) UpdateMatch(_ context.Context, m *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	old, ok := s.matches[m.ID]
	if !ok {
		return scoring.Missing("match", m.ID)
	}
	m.CreatedAt = old.CreatedAt
	stamp(&m.UpdatedAt, &m.CreatedAt)
	s.matches[m.ID] = m.Clone()
	return nil
}

func (s *Store) DeleteMatch(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.matches[id]; !ok {
		return scoring.Missing("match", id)
	}
	delete(s.matches, id)
	return nil
}

// ListTeams returns teams ordered by points, won, NRR, then name.
func (s *Store) ListTeams(_ context.Context) ([]models.TeamRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeamRecord, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t)
	}
	models.SortStandings(out)
	return out, nil
}

func (s *Store) CreateTeam(_ context.Context, t *models.TeamRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.teams[t.Name]; ok {
		return scoring.Invalid("team %q already exists", t.Name)
	}
	t.ID = s.id()
	stamp(&t.UpdatedAt, &t.CreatedAt)
	s.teams[t.Name] = *t
	return nil
}

func (s *Store) upsertTeam(t models.TeamRecord) {
	if old, ok := s.teams[t.Name]; ok {
		t.ID, t.CreatedAt = old.ID, old.CreatedAt
	} else {
		t.ID = s.id()
	}
	stamp(&t.UpdatedAt, &t.CreatedAt)
	s.teams[t.Name] = t
}

func (s *Store) BulkUpsertTeams(_ context.Context, teams []models.TeamRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	for _, t := range teams {
		s.upsertTeam(t)
	}
	return nil
}

func (s *Store) ReplaceTeams(_ context.Context, teams []models.TeamRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.teams = make(map[string]models.TeamRecord, len(teams))
	for _, t := range teams {
		t.ID = 0
		s.upsertTeam(t)
	}
	return nil
}

func (s *Store) DeleteTeam(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.teams[name]; !ok {
		return scoring.Missing("team", name)
	}
	delete(s.teams, name)
	return nil
}

// ListPlayers returns players ordered by team then name.
func (s *Store) ListPlayers(_ context.Context) ([]models.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PlayerRecord, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) GetPlayer(_ context.Context, id uint) (*models.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) findPlayer(name, team string) (uint, bool) {
	for id, p := range s.players {
		if p.Name == name && p.Team == team {
			return id, true
		}
	}
	return 0, false
}

func (s *Store) CreatePlayer(_ context.Context, p *models.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.findPlayer(p.Name, p.Team); ok {
		return scoring.Invalid("player %q of %q already exists", p.Name, p.Team)
	}
	p.ID = s.id()
	stamp(&p.UpdatedAt, &p.CreatedAt)
	s.players[p.ID] = *p
	return nil
}

func (s *Store) UpdatePlayer(_ context.Context, p *models.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	old, ok := s.players[p.ID]
	if !ok {
		return scoring.Missing("player", p.ID)
	}
	if id, dup := s.findPlayer(p.Name, p.Team); dup && id != p.ID {
		return scoring.Invalid("player %q of %q already exists", p.Name, p.Team)
	}
	p.CreatedAt = old.CreatedAt
	stamp(&p.UpdatedAt, &p.CreatedAt)
	s.players[p.ID] = *p
	return nil
}

func (s *Store) upsertPlayer(p models.PlayerRecord) {
	if id, ok := s.findPlayer(p.Name, p.Team); ok {
		p.ID, p.CreatedAt = id, s.players[id].CreatedAt
	} else {
		p.ID = s.id()
	}
	stamp(&p.UpdatedAt, &p.CreatedAt)
	s.players[p.ID] = p
}

func (s *Store) BulkUpsertPlayers(_ context.Context, players []models.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	for _, p := range players {
		s.upsertPlayer(p)
	}
	return nil
}

func (s *Store) DeletePlayer(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.players[id]; !ok {
		return scoring.Missing("player", id)
	}
	delete(s.players, id)
	return nil
}

// ReplaceStandings writes the derived counters of rows that still exist, and
// adds teams that arrive without an ID. Both happen under one lock, or neither.
func (s *Store) ReplaceStandings(_ context.Context, teams []models.TeamRecord, players []models.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	for _, t := range teams {
		name, ok := s.teamName(t)
		if !ok {
			if t.ID == 0 {
				s.upsertTeam(t)
			}
			continue
		}
		old := s.teams[name]
		old.CopyStandings(t)
		stamp(&old.UpdatedAt, &old.CreatedAt)
		s.teams[name] = old
	}
	for _, p := range players {
		old, ok := s.players[p.ID]
		if !ok {
			continue
		}
		old.CopyCareer(p)
		stamp(&old.UpdatedAt, &old.CreatedAt)
		s.players[p.ID] = old
	}
	return nil
}

// teamName finds the stored row for t: by ID when it has one, else by name.
func (s *Store) teamName(t models.TeamRecord) (string, bool) {
	if t.ID == 0 {
		_, ok := s.teams[t.Name]
		return t.Name, ok
	}
	for name, old := range s.teams {
		if old.ID == t.ID {
			return name, true
		}
	}
	return "", false
}

func (s *Store) GetSettings(_ context.Context) (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySettings(), nil
}

func (s *Store) copySettings() models.Settings {
	out := make(models.Settings, len(s.settings))
	for k, v := range s.settings {
		out[k] = v
	}
	return out
}

func (s *Store) PutSettings(_ context.Context, partial models.Settings) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	for k, v := range partial {
		s.settings[k] = v
	}
	return s.copySettings(), nil
}

func (s *Store) WipeAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.reset()
	return nil
}
