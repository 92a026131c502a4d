package models

import (
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusMatchUpcoming  MatchStatus = "upcoming"
	StatusMatchLive      MatchStatus = "live"
	StatusMatchCompleted MatchStatus = "completed"
)

// Valid reports whether s is a known match status.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusMatchUpcoming, StatusMatchLive, StatusMatchCompleted:
		return true
	}
	return false
}

// Match is the top-level scoring aggregate. Team1 bats in the first innings,
// Team2 in the second.
type Match struct {
	gorm.Model
	Title       string      `json:"title"`
	Venue       string      `json:"venue,omitempty"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	TotalOvers  int         `json:"total_overs" gorm:"default:20"`
	Status      MatchStatus `json:"status" gorm:"index;default:'upcoming'"`

	Team1      string        `json:"team1" gorm:"index;not null"`
	Team2      string        `json:"team2" gorm:"index;not null"`
	Team1Score scoring.Score `json:"team1_score" gorm:"embedded;embeddedPrefix:team1_"`
	Team2Score scoring.Score `json:"team2_score" gorm:"embedded;embeddedPrefix:team2_"`
	Team1Squad StringSlice   `json:"team1_squad" gorm:"type:jsonb"`
	Team2Squad StringSlice   `json:"team2_squad" gorm:"type:jsonb"`

	// Innings1 holds Team1 batting and Team2 bowling; Innings2 the reverse.
	Innings1 InningsData `json:"innings1" gorm:"type:jsonb"`
	Innings2 InningsData `json:"innings2" gorm:"type:jsonb"`
}

// InningsAt returns innings 1 or 2, or nil.
func (m *Match) InningsAt(n int) *scoring.Innings {
	switch n {
	case 1:
		return m.Innings1.Innings()
	case 2:
		return m.Innings2.Innings()
	}
	return nil
}

// RefreshScores rederives both score blocks from the ledgers. Blocks of an
// innings without overs keep their stored values.
func (m *Match) RefreshScores() {
	m.Team1Score = scoring.ResolveScore(m.Team1Score, scoring.Innings(m.Innings1))
	m.Team2Score = scoring.ResolveScore(m.Team2Score, scoring.Innings(m.Innings2))
}

// Clone returns a deep copy of m.
func (m Match) Clone() Match {
	c := m
	c.Team1Squad = append(StringSlice(nil), m.Team1Squad...)
	c.Team2Squad = append(StringSlice(nil), m.Team2Squad...)
	c.Innings1 = InningsData(scoring.Innings(m.Innings1).Clone())
	c.Innings2 = InningsData(scoring.Innings(m.Innings2).Clone())
	return c
}
