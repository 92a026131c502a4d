// Package milestone watches live matches for batting and bowling landmarks.
package milestone

import (
	"fmt"
	"sync"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
)

const (
	halfCentury = 50
	century     = 100
	wicketHaul  = 3
)

type Kind string

const (
	KindHalfCentury Kind = "half_century"
	KindCentury     Kind = "century"
	KindWicketHaul  Kind = "wicket_haul"
)

// Key identifies one milestone. A key fires at most once per NotifiedSet.
type Key struct {
	MatchID uint   `json:"match_id"`
	Player  string `json:"player"`
	Label   string `json:"label"`
}

// Candidate is a milestone a live match currently qualifies for.
type Candidate struct {
	Key
	Kind  Kind   `json:"kind"`
	Team  string `json:"team"`
	Value int    `json:"value"`
}

// Text renders the candidate for display.
func (c Candidate) Text() string {
	switch c.Kind {
	case KindCentury:
		return fmt.Sprintf("Century! %s (%s) reaches %d", c.Player, c.Team, c.Value)
	case KindHalfCentury:
		return fmt.Sprintf("Fifty! %s (%s) reaches %d", c.Player, c.Team, c.Value)
	default:
		return fmt.Sprintf("%s (%s) has %d wickets", c.Player, c.Team, c.Value)
	}
}

// NotifiedSet remembers which keys have already fired.
type NotifiedSet interface {
	Seen(Key) bool
	Mark(Key)
}

// MemorySet is a process-lifetime NotifiedSet.
type MemorySet struct {
	mu   sync.Mutex
	keys map[Key]struct{}
}

func NewMemorySet() *MemorySet {
	return &MemorySet{keys: make(map[Key]struct{})}
}

func (s *MemorySet) Seen(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[k]
	return ok
}

func (s *MemorySet) Mark(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[k] = struct{}{}
}

// Candidates lists every milestone the live matches qualify for, in scan
// order: per match, batting (innings 1 then 2) before bowling.
func Candidates(matches []models.Match) []Candidate {
	var out []Candidate
	for _, m := range matches {
		if m.Status != models.StatusMatchLive {
			continue
		}
		batting := []struct {
			team    string
			entries []scoring.BatterEntry
		}{
			{m.Team1, m.Innings1.Batting},
			{m.Team2, m.Innings2.Batting},
		}
		for _, side := range batting {
			for _, b := range side.entries {
				if c, ok := battingCandidate(m.ID, side.team, b); ok {
					out = append(out, c)
				}
			}
		}
		bowling := []struct {
			team    string
			entries []scoring.BowlerEntry
		}{
			{m.Team2, m.Innings1.Bowling},
			{m.Team1, m.Innings2.Bowling},
		}
		for _, side := range bowling {
			for _, b := range side.entries {
				if b.Wickets >= wicketHaul {
					out = append(out, Candidate{
						Key:   Key{MatchID: m.ID, Player: b.Name, Label: fmt.Sprintf("%dW", b.Wickets)},
						Kind:  KindWicketHaul,
						Team:  side.team,
						Value: b.Wickets,
					})
				}
			}
		}
	}
	return out
}

// battingCandidate picks the highest threshold reached; a century shadows
// the fifty.
func battingCandidate(matchID uint, team string, b scoring.BatterEntry) (Candidate, bool) {
	c := Candidate{Key: Key{MatchID: matchID, Player: b.Name}, Team: team, Value: b.Runs}
	switch {
	case b.Runs >= century:
		c.Label, c.Kind = "100", KindCentury
	case b.Runs >= halfCentury:
		c.Label, c.Kind = "50", KindHalfCentury
	default:
		return Candidate{}, false
	}
	return c, true
}

// Watcher surfaces at most one new milestone per evaluation.
type Watcher struct {
	set NotifiedSet
}

// NewWatcher creates a Watcher; a nil set gets a fresh MemorySet.
func NewWatcher(set NotifiedSet) *Watcher {
	if set == nil {
		set = NewMemorySet()
	}
	return &Watcher{set: set}
}

// Next returns the first candidate whose key has not fired yet and marks it
// fired. Remaining unfired candidates wait for later evaluations.
func (w *Watcher) Next(matches []models.Match) (Candidate, bool) {
	for _, c := range Candidates(matches) {
		if w.set.Seen(c.Key) {
			continue
		}
		w.set.Mark(c.Key)
		return c, true
	}
	return Candidate{}, false
}
