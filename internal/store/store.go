// Package store is the record-store contract the scoring service persists through.
package store

import (
	"context"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
)

// Store defines the persistence operations for matches, standings, rosters
// and settings. Getters return (nil, nil) when the row does not exist;
// updates and deletes of absent rows return a scoring.NotFoundError.
type Store interface {
	// Match methods
	ListMatches(ctx context.Context) ([]models.Match, error)
	GetMatch(ctx context.Context, id uint) (*models.Match, error)
	CreateMatch(ctx context.Context, m *models.Match) error
	UpdateMatch(ctx context.Context, m *models.Match) error
	DeleteMatch(ctx context.Context, id uint) error

	// Team methods
	ListTeams(ctx context.Context) ([]models.TeamRecord, error)
	CreateTeam(ctx context.Context, t *models.TeamRecord) error
	BulkUpsertTeams(ctx context.Context, teams []models.TeamRecord) error
	ReplaceTeams(ctx context.Context, teams []models.TeamRecord) error
	DeleteTeam(ctx context.Context, name string) error

	// Player methods
	ListPlayers(ctx context.Context) ([]models.PlayerRecord, error)
	GetPlayer(ctx context.Context, id uint) (*models.PlayerRecord, error)
	CreatePlayer(ctx context.Context, p *models.PlayerRecord) error
	UpdatePlayer(ctx context.Context, p *models.PlayerRecord) error
	BulkUpsertPlayers(ctx context.Context, players []models.PlayerRecord) error
	DeletePlayer(ctx context.Context, id uint) error

	// ReplaceStandings writes the rebuilt team and player rows in one
	// all-or-nothing write.
	ReplaceStandings(ctx context.Context, teams []models.TeamRecord, players []models.PlayerRecord) error

	GetSettings(ctx context.Context) (models.Settings, error)
	PutSettings(ctx context.Context, partial models.Settings) (models.Settings, error)

	// WipeAll clears matches, teams and players and restores default settings.
	WipeAll(ctx context.Context) error
}

// AllModels lists every record type the gorm store migrates.
func AllModels() []interface{} {
	return []interface{}{
		&models.Match{}, &models.TeamRecord{}, &models.PlayerRecord{}, &models.Setting{},
	}
}

// SeedSettings writes every default setting the store does not have yet.
func SeedSettings(ctx context.Context, st Store) error {
	current, err := st.GetSettings(ctx)
	if err != nil {
		return err
	}
	missing := models.Settings{}
	for k, v := range models.DefaultSettings() {
		if _, ok := current[k]; !ok {
			missing[k] = v
		}
	}
	if len(missing) == 0 {
		return nil
	}
	_, err = st.PutSettings(ctx, missing)
	return err
}
