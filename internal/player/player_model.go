package player

import (
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"gorm.io/gorm"
)

// CreatePlayerRequest adds a roster entry with zeroed career counters.
type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
	Team string `json:"team" binding:"required,notblank,max=100"`
	Role string `json:"role" binding:"omitempty,oneof=batter bowler allrounder keeper"`
}

func (r CreatePlayerRequest) toModel() models.PlayerRecord {
	return models.PlayerRecord{
		Name: strings.TrimSpace(r.Name),
		Team: strings.TrimSpace(r.Team),
		Role: r.Role,
	}
}

// UpdatePlayerRequest changes roster fields. Career totals are rebuilt from
// completed matches and cannot be set here.
type UpdatePlayerRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank,max=100"`
	Team *string `json:"team" binding:"omitempty,notblank,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=batter bowler allrounder keeper"`
}

func (r UpdatePlayerRequest) toPatch() models.PlayerPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	return models.PlayerPatch{
		Name: trim(r.Name),
		Team: trim(r.Team),
		Role: r.Role,
	}
}

// RosterEntry is one row of a bulk roster upload.
type RosterEntry struct {
	Name string `json:"name" yaml:"name" binding:"required,notblank,max=100"`
	Team string `json:"team" yaml:"team" binding:"required,notblank,max=100"`
	Role string `json:"role,omitempty" yaml:"role,omitempty" binding:"omitempty,oneof=batter bowler allrounder keeper"`
}

// BulkPlayersRequest upserts players keyed by (name, team).
type BulkPlayersRequest struct {
	Players []RosterEntry `json:"players" binding:"required,dive"`
}

// MergeRoster turns roster rows into upsert records. Rows naming an existing
// (name, team) keep that player's career totals and, when the row has no
// role, its role.
func MergeRoster(existing []models.PlayerRecord, entries []RosterEntry) []models.PlayerRecord {
	byKey := make(map[[2]string]models.PlayerRecord, len(existing))
	for _, p := range existing {
		byKey[[2]string{p.Name, p.Team}] = p
	}
	out := make([]models.PlayerRecord, 0, len(entries))
	for _, e := range entries {
		rec := models.PlayerRecord{
			Name: strings.TrimSpace(e.Name),
			Team: strings.TrimSpace(e.Team),
			Role: e.Role,
		}
		if old, ok := byKey[[2]string{rec.Name, rec.Team}]; ok {
			role := rec.Role
			rec = old
			rec.Model = gorm.Model{}
			if role != "" {
				rec.Role = role
			}
		}
		out = append(out, rec)
	}
	return out
}
