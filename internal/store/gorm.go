package store

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	teamStandingColumns = []string{"played", "won", "lost", "tied", "points", "nrr", "updated_at"}
	playerCareerColumns = []string{
		"role", "matches", "runs", "balls", "fours", "sixes", "fifties", "hundreds",
		"highest_score", "overs", "maidens", "runs_conceded", "wickets", "updated_at",
	}

	// Columns a recompute owns. Name, team, role and NRR are never touched by it.
	teamDerivedColumns   = []string{"played", "won", "lost", "tied", "points", "updated_at"}
	playerDerivedColumns = playerCareerColumns[1:]
)

// GormStore implements Store using GORM
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// WithTransaction runs txFunc against a store bound to one transaction.
func (s *GormStore) WithTransaction(ctx context.Context, txFunc func(*GormStore) error) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txStore := &GormStore{db: tx}
	if err := txFunc(txStore); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Match Methods

func (s *GormStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.WithContext(ctx).Order("scheduled_at ASC, id ASC").Find(&matches).Error
	return matches, err
}

// GetMatch fetches a match by ID
func (s *GormStore) GetMatch(ctx context.Context, id uint) (*models.Match, error) {
	var m models.Match
	err := s.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateMatch(ctx context.Context, m *models.Match) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// UpdateMatch saves every column of m.
func (s *GormStore) UpdateMatch(ctx context.Context, m *models.Match) error {
	res := s.db.WithContext(ctx).Model(&models.Match{}).Where("id = ?", m.ID).
		Select("*").Omit("id", "created_at", "deleted_at").Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scoring.Missing("match", m.ID)
	}
	return nil
}

func (s *GormStore) DeleteMatch(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Match{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scoring.Missing("match", id)
	}
	return nil
}

// Team Methods

// ListTeams returns the standings table, best first.
func (s *GormStore) ListTeams(ctx context.Context) ([]models.TeamRecord, error) {
	var teams []models.TeamRecord
	err := s.db.WithContext(ctx).Order("points DESC, won DESC, nrr DESC, name ASC").Find(&teams).Error
	return teams, err
}

func (s *GormStore) CreateTeam(ctx context.Context, t *models.TeamRecord) error {
	return s.db.WithContext(ctx).Create(t).Error
}

// BulkUpsertTeams inserts teams, updating the standings columns of rows
// whose name already exists.
func (s *GormStore) BulkUpsertTeams(ctx context.Context, teams []models.TeamRecord) error {
	if len(teams) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(teamStandingColumns),
	}).Create(&teams).Error
}

// ReplaceTeams swaps the whole team table for teams.
func (s *GormStore) ReplaceTeams(ctx context.Context, teams []models.TeamRecord) error {
	return s.WithTransaction(ctx, func(tx *GormStore) error {
		if err := tx.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.TeamRecord{}).Error; err != nil {
			return err
		}
		for i := range teams {
			teams[i].ID = 0
		}
		return tx.BulkUpsertTeams(ctx, teams)
	})
}

func (s *GormStore) DeleteTeam(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Unscoped().Where("name = ?", name).Delete(&models.TeamRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scoring.Missing("team", name)
	}
	return nil
}

// Player Methods

func (s *GormStore) ListPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	var players []models.PlayerRecord
	err := s.db.WithContext(ctx).Order("team ASC, name ASC").Find(&players).Error
	return players, err
}

func (s *GormStore) GetPlayer(ctx context.Context, id uint) (*models.PlayerRecord, error) {
	var p models.PlayerRecord
	err := s.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) CreatePlayer(ctx context.Context, p *models.PlayerRecord) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) UpdatePlayer(ctx context.Context, p *models.PlayerRecord) error {
	res := s.db.WithContext(ctx).Model(&models.PlayerRecord{}).Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at", "deleted_at").Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scoring.Missing("player", p.ID)
	}
	return nil
}

// BulkUpsertPlayers inserts players keyed by (name, team), updating career
// columns on conflict.
func (s *GormStore) BulkUpsertPlayers(ctx context.Context, players []models.PlayerRecord) error {
	if len(players) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "team"}},
		DoUpdates: clause.AssignmentColumns(playerCareerColumns),
	}).Create(&players).Error
}

func (s *GormStore) DeletePlayer(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.PlayerRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scoring.Missing("player", id)
	}
	return nil
}

// ReplaceStandings commits rebuilt team and player rows in one transaction.
// Rows read with an ID only get their derived columns updated, and only if
// they still exist, so a row deleted or renamed while the rebuild ran stays
// deleted or renamed. Teams without an ID are upserted by name.
func (s *GormStore) ReplaceStandings(ctx context.Context, teams []models.TeamRecord, players []models.PlayerRecord) error {
	return s.WithTransaction(ctx, func(tx *GormStore) error {
		db := tx.db.WithContext(ctx)
		var added []models.TeamRecord
		for i := range teams {
			t := teams[i]
			if t.ID == 0 {
				added = append(added, t)
				continue
			}
			if err := db.Model(&t).Select(teamDerivedColumns).Updates(&t).Error; err != nil {
				return err
			}
		}
		if len(added) > 0 {
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns(teamDerivedColumns),
			}).Create(&added).Error
			if err != nil {
				return err
			}
		}
		for i := range players {
			p := players[i]
			if p.ID == 0 {
				continue
			}
			if err := db.Model(&p).Select(playerDerivedColumns).Updates(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Settings Methods

func (s *GormStore) GetSettings(ctx context.Context) (models.Settings, error) {
	var rows []models.Setting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(models.Settings, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

func (s *GormStore) PutSettings(ctx context.Context, partial models.Settings) (models.Settings, error) {
	if len(partial) > 0 {
		rows := make([]models.Setting, 0, len(partial))
		for k, v := range partial {
			rows = append(rows, models.Setting{Key: k, Value: v})
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&rows).Error
		if err != nil {
			return nil, err
		}
	}
	return s.GetSettings(ctx)
}

// WipeAll hard-deletes every match, team, player and setting, then seeds the
// default settings.
func (s *GormStore) WipeAll(ctx context.Context) error {
	return s.WithTransaction(ctx, func(tx *GormStore) error {
		db := tx.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		for _, model := range AllModels() {
			if err := db.Delete(model).Error; err != nil {
				return err
			}
		}
		_, err := tx.PutSettings(ctx, models.DefaultSettings())
		return err
	})
}

var _ Store = (*GormStore)(nil)
