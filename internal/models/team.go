package models

import (
	"sort"

	"gorm.io/gorm"
)

// TeamRecord is a season standings row. Everything but NRR is rebuilt by the
// tournament recompute.
type TeamRecord struct {
	gorm.Model
	Name   string  `json:"name" gorm:"uniqueIndex;not null"`
	Played int     `json:"played" gorm:"default:0"`
	Won    int     `json:"won" gorm:"default:0"`
	Lost   int     `json:"lost" gorm:"default:0"`
	Tied   int     `json:"tied" gorm:"default:0"`
	Points int     `json:"points" gorm:"default:0"`
	NRR    float64 `json:"nrr" gorm:"column:nrr;default:0"`
}

// ResetStandings zeroes the derived counters, leaving NRR untouched.
func (t *TeamRecord) ResetStandings() {
	t.Played, t.Won, t.Lost, t.Tied, t.Points = 0, 0, 0, 0, 0
}

// CopyStandings takes the derived counters from src, leaving the name and NRR.
func (t *TeamRecord) CopyStandings(src TeamRecord) {
	t.Played, t.Won, t.Lost, t.Tied, t.Points = src.Played, src.Won, src.Lost, src.Tied, src.Points
}

// SortStandings orders teams by points, then won, then NRR, then name.
func SortStandings(teams []TeamRecord) {
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Won != b.Won {
			return a.Won > b.Won
		}
		if a.NRR != b.NRR {
			return a.NRR > b.NRR
		}
		return a.Name < b.Name
	})
}
