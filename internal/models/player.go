package models

import "gorm.io/gorm"

// PlayerRecord holds a player's career totals, rebuilt from completed matches.
type PlayerRecord struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;uniqueIndex:idx_player_name_team"`
	Team string `json:"team" gorm:"not null;uniqueIndex:idx_player_name_team"`
	Role string `json:"role,omitempty"`

	Matches      int `json:"matches" gorm:"default:0"`
	Runs         int `json:"runs" gorm:"default:0"`
	Balls        int `json:"balls" gorm:"default:0"`
	Fours        int `json:"fours" gorm:"default:0"`
	Sixes        int `json:"sixes" gorm:"default:0"`
	Fifties      int `json:"fifties" gorm:"default:0"`
	Hundreds     int `json:"hundreds" gorm:"default:0"`
	HighestScore int `json:"highest_score" gorm:"default:0"`

	Overs        float64 `json:"overs" gorm:"default:0"`
	Maidens      int     `json:"maidens" gorm:"default:0"`
	RunsConceded int     `json:"runs_conceded" gorm:"default:0"`
	Wickets      int     `json:"wickets" gorm:"default:0"`
}

// ResetCareer zeroes every career counter, highest score included.
func (p *PlayerRecord) ResetCareer() {
	p.Matches, p.Runs, p.Balls, p.Fours, p.Sixes = 0, 0, 0, 0, 0
	p.Fifties, p.Hundreds, p.HighestScore = 0, 0, 0
	p.Overs, p.Maidens, p.RunsConceded, p.Wickets = 0, 0, 0, 0
}

// CopyCareer takes the career counters from src, leaving name, team and role.
func (p *PlayerRecord) CopyCareer(src PlayerRecord) {
	p.Matches, p.Runs, p.Balls, p.Fours, p.Sixes = src.Matches, src.Runs, src.Balls, src.Fours, src.Sixes
	p.Fifties, p.Hundreds, p.HighestScore = src.Fifties, src.Hundreds, src.HighestScore
	p.Overs, p.Maidens, p.RunsConceded, p.Wickets = src.Overs, src.Maidens, src.RunsConceded, src.Wickets
}

// PlayerPatch is a partial update of a player's roster fields. Career
// counters belong to the recompute and are not patchable.
type PlayerPatch struct {
	Name *string `json:"name,omitempty"`
	Team *string `json:"team,omitempty"`
	Role *string `json:"role,omitempty"`
}

// Apply copies the set fields onto p.
func (pp PlayerPatch) Apply(p *PlayerRecord) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Team != nil {
		p.Team = *pp.Team
	}
	if pp.Role != nil {
		p.Role = *pp.Role
	}
}
