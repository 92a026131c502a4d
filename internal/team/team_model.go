// team/model.go
package team

import (
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
)

// CreateTeamRequest adds an empty standings row.
type CreateTeamRequest struct {
	Name string  `json:"name" binding:"required,notblank,max=100"`
	NRR  float64 `json:"nrr"`
}

func (r CreateTeamRequest) toModel() models.TeamRecord {
	return models.TeamRecord{Name: strings.TrimSpace(r.Name), NRR: r.NRR}
}

// TeamRow is one row of a manual standings replace.
type TeamRow struct {
	Name   string  `json:"name" binding:"required,notblank,max=100"`
	Played int     `json:"played" binding:"min=0"`
	Won    int     `json:"won" binding:"min=0"`
	Lost   int     `json:"lost" binding:"min=0"`
	Tied   int     `json:"tied" binding:"min=0"`
	Points int     `json:"points" binding:"min=0"`
	NRR    float64 `json:"nrr"`
}

// ReplaceTeamsRequest overwrites the whole standings table.
type ReplaceTeamsRequest struct {
	Teams []TeamRow `json:"teams" binding:"required,dive"`
}

func (r ReplaceTeamsRequest) toModels() []models.TeamRecord {
	out := make([]models.TeamRecord, 0, len(r.Teams))
	for _, row := range r.Teams {
		out = append(out, models.TeamRecord{
			Name:   strings.TrimSpace(row.Name),
			Played: row.Played,
			Won:    row.Won,
			Lost:   row.Lost,
			Tied:   row.Tied,
			Points: row.Points,
			NRR:    row.NRR,
		})
	}
	return out
}
