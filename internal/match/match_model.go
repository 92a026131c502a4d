package match

import (
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
)

// --- DTOs for requests ---

// CreateMatchRequest defines the request payload for creating a match
type CreateMatchRequest struct {
	Title       string             `json:"title" binding:"max=200"`
	Team1       string             `json:"team1" binding:"required,notblank,max=100"`
	Team2       string             `json:"team2" binding:"required,notblank,max=100,nefield=Team1"`
	Venue       string             `json:"venue" binding:"max=200"`
	ScheduledAt time.Time          `json:"scheduled_at"`
	TotalOvers  int                `json:"total_overs" binding:"omitempty,gte=1,lte=50"`
	Status      models.MatchStatus `json:"status" binding:"omitempty,oneof=upcoming live completed"`
	Team1Score  scoring.Score      `json:"team1_score"`
	Team2Score  scoring.Score      `json:"team2_score"`
}

func (r CreateMatchRequest) toModel() *models.Match {
	return &models.Match{
		Title:       r.Title,
		Team1:       r.Team1,
		Team2:       r.Team2,
		Venue:       r.Venue,
		ScheduledAt: r.ScheduledAt,
		TotalOvers:  r.TotalOvers,
		Status:      r.Status,
		Team1Score:  r.Team1Score,
		Team2Score:  r.Team2Score,
	}
}

// UpdateMatchRequest defines the request payload for updating a match
type UpdateMatchRequest struct {
	Title       *string             `json:"title,omitempty" binding:"omitempty,max=200"`
	Team1       *string             `json:"team1,omitempty" binding:"omitempty,max=100"`
	Team2       *string             `json:"team2,omitempty" binding:"omitempty,max=100"`
	Venue       *string             `json:"venue,omitempty" binding:"omitempty,max=200"`
	ScheduledAt *time.Time          `json:"scheduled_at,omitempty"`
	TotalOvers  *int                `json:"total_overs,omitempty" binding:"omitempty,gte=1,lte=50"`
	Status      *models.MatchStatus `json:"status,omitempty" binding:"omitempty,oneof=upcoming live completed"`
	Team1Score  *scoring.Score      `json:"team1_score,omitempty"`
	Team2Score  *scoring.Score      `json:"team2_score,omitempty"`
	Team1Squad  []string            `json:"team1_squad,omitempty"`
	Team2Squad  []string            `json:"team2_squad,omitempty"`
}

func (r UpdateMatchRequest) toPatch() Patch {
	return Patch{
		Title:       r.Title,
		Venue:       r.Venue,
		ScheduledAt: r.ScheduledAt,
		Team1:       r.Team1,
		Team2:       r.Team2,
		TotalOvers:  r.TotalOvers,
		Status:      r.Status,
		Team1Score:  r.Team1Score,
		Team2Score:  r.Team2Score,
		Team1Squad:  r.Team1Squad,
		Team2Squad:  r.Team2Squad,
	}
}

// StartMatchRequest carries the playing squads picked at the toss.
type StartMatchRequest struct {
	Team1Squad []string `json:"team1_squad" binding:"required,min=1,dive,required"`
	Team2Squad []string `json:"team2_squad" binding:"required,min=1,dive,required"`
}

// RecordBallRequest is one raw ball value: runs, "W", or empty to blank the slot.
type RecordBallRequest struct {
	Value string `json:"value" binding:"max=8"`
}

type AssignBatterRequest struct {
	Batter string `json:"batter" binding:"required,notblank,max=100"`
}

// UpdateOverRequest edits the operator-entered over fields.
type UpdateOverRequest struct {
	Extras          *int    `json:"extras,omitempty" binding:"omitempty,gte=0"`
	WicketsDeclared *int    `json:"wickets_declared,omitempty" binding:"omitempty,gte=0,lte=10"`
	Bowler          *string `json:"bowler,omitempty" binding:"omitempty,max=100"`
}

type AddBatterRequest struct {
	Name          string                `json:"name" binding:"required,notblank,max=100"`
	DismissalType scoring.DismissalType `json:"dismissal_type" binding:"omitempty,oneof=not_out bowled lbw caught stumping run_out next_to_bat"`
}

type DismissalRequest struct {
	DismissalType    scoring.DismissalType `json:"dismissal_type" binding:"required,oneof=not_out bowled lbw caught stumping run_out next_to_bat"`
	DismissalBowler  string                `json:"dismissal_bowler" binding:"max=100"`
	DismissalFielder string                `json:"dismissal_fielder" binding:"max=100"`
}

// OverrideBatterRequest replaces selected batter totals.
type OverrideBatterRequest struct {
	Runs  *int `json:"runs,omitempty" binding:"omitempty,gte=0"`
	Balls *int `json:"balls,omitempty" binding:"omitempty,gte=0"`
	Fours *int `json:"fours,omitempty" binding:"omitempty,gte=0"`
	Sixes *int `json:"sixes,omitempty" binding:"omitempty,gte=0"`
}
