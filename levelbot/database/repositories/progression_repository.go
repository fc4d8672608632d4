package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/uptrace/bun"
)

var (
	ErrProgressPlayerNotFound = errors.New("progress player not found")
	ErrLevelNotFound          = errors.New("level not found")
	ErrAwardNotFound          = errors.New("award not found")
)

type ProgressionRepository interface {
	// Players
	GetPlayerByRef(ctx context.Context, ref string) (*models.ProgressPlayer, error)
	GetOrCreatePlayer(ctx context.Context, ref string) (*models.ProgressPlayer, error)

	// Catalog
	CreateLevel(ctx context.Context, level *models.Level) error
	GetLevel(ctx context.Context, id int64) (*models.Level, error)
	ListLevels(ctx context.Context) ([]*models.Level, error)
	CreateAward(ctx context.Context, award *models.Award) error
	GetAward(ctx context.Context, id int64) (*models.Award, error)
	ListAwards(ctx context.Context) ([]*models.Award, error)
	LinkAward(ctx context.Context, levelID, awardID int64) error

	// Completion and grants
	GrantLevelAwards(ctx context.Context, player *models.ProgressPlayer, level *models.Level, completedOn time.Time) ([]*models.Award, error)

	// Export reads
	ListPlayerLevels(ctx context.Context, limit, offset int) ([]*models.PlayerLevel, error)
	ListPlayerAwards(ctx context.Context, playerID, levelID int64) ([]*models.PlayerAward, error)
}

type progressionRepository struct {
	db *bun.DB
}

func NewProgressionRepository(db *bun.DB) ProgressionRepository {
	return &progressionRepository{db: db}
}

func (r *progressionRepository) GetPlayerByRef(ctx context.Context, ref string) (*models.ProgressPlayer, error) {
	player := new(models.ProgressPlayer)
	err := r.db.NewSelect().
		Model(player).
		Where("player_ref = ?", ref).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgressPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (r *progressionRepository) GetOrCreatePlayer(ctx context.Context, ref string) (*models.ProgressPlayer, error) {
	player := &models.ProgressPlayer{PlayerRef: ref}
	_, err := r.db.NewInsert().
		Model(player).
		On("CONFLICT (player_ref) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress player: %w", err)
	}
	// Re-read either way: on conflict the insert returns no row.
	return r.GetPlayerByRef(ctx, ref)
}

func (r *progressionRepository) CreateLevel(ctx context.Context, level *models.Level) error {
	_, err := r.db.NewInsert().Model(level).Exec(ctx)
	return err
}

func (r *progressionRepository) GetLevel(ctx context.Context, id int64) (*models.Level, error) {
	level := new(models.Level)
	err := r.db.NewSelect().
		Model(level).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}
	return level, nil
}

func (r *progressionRepository) ListLevels(ctx context.Context) ([]*models.Level, error) {
	var levels []*models.Level
	err := r.db.NewSelect().
		Model(&levels).
		Order("position ASC", "id ASC").
		Scan(ctx)
	return levels, err
}

func (r *progressionRepository) CreateAward(ctx context.Context, award *models.Award) error {
	_, err := r.db.NewInsert().Model(award).Exec(ctx)
	return err
}

func (r *progressionRepository) GetAward(ctx context.Context, id int64) (*models.Award, error) {
	award := new(models.Award)
	err := r.db.NewSelect().
		Model(award).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAwardNotFound
		}
		return nil, err
	}
	return award, nil
}

func (r *progressionRepository) ListAwards(ctx context.Context) ([]*models.Award, error) {
	var awards []*models.Award
	err := r.db.NewSelect().
		Model(&awards).
		Order("id ASC").
		Scan(ctx)
	return awards, err
}

func (r *progressionRepository) LinkAward(ctx context.Context, levelID, awardID int64) error {
	link := &models.LevelAward{LevelID: levelID, AwardID: awardID}
	_, err := r.db.NewInsert().
		Model(link).
		On("CONFLICT (level_id, award_id) DO NOTHING").
		Exec(ctx)
	return err
}

// GrantLevelAwards marks the level completed for the player and grants every
// configured award, all inside one transaction. Completion is get-or-create
// with an idempotent upgrade (a completed record is never downgraded), and
// grants insert with ON CONFLICT DO NOTHING so re-running the operation
// grants nothing new. The returned slice holds only the newly granted
// awards.
func (r *progressionRepository) GrantLevelAwards(ctx context.Context, player *models.ProgressPlayer, level *models.Level, completedOn time.Time) ([]*models.Award, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	playerLevel := &models.PlayerLevel{
		PlayerID:    player.ID,
		LevelID:     level.ID,
		IsCompleted: true,
		Completed:   completedOn,
	}
	result, err := tx.NewInsert().
		Model(playerLevel).
		On("CONFLICT (player_id, level_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create player level: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// The record predates this call. Upgrade it to completed if it
		// is not already; completed records stay untouched.
		if _, err := tx.NewUpdate().
			Model((*models.PlayerLevel)(nil)).
			Set("is_completed = TRUE").
			Set("completed = ?", completedOn).
			Where("player_id = ? AND level_id = ? AND is_completed = FALSE", player.ID, level.ID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark level completed: %w", err)
		}
	}

	var levelAwards []*models.LevelAward
	err = tx.NewSelect().
		Model(&levelAwards).
		Relation("Award").
		Where("la.level_id = ?", level.ID).
		Order("la.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list level awards: %w", err)
	}

	var granted []*models.Award
	for _, levelAward := range levelAwards {
		grant := &models.PlayerAward{
			PlayerID: player.ID,
			AwardID:  levelAward.AwardID,
			LevelID:  level.ID,
			Received: completedOn,
		}
		res, err := tx.NewInsert().
			Model(grant).
			On("CONFLICT (player_id, award_id, level_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to grant award: %w", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if inserted > 0 {
			granted = append(granted, levelAward.Award)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return granted, nil
}

func (r *progressionRepository) ListPlayerLevels(ctx context.Context, limit, offset int) ([]*models.PlayerLevel, error) {
	var playerLevels []*models.PlayerLevel
	err := r.db.NewSelect().
		Model(&playerLevels).
		Relation("Player").
		Relation("Level").
		Order("pl.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	return playerLevels, err
}

func (r *progressionRepository) ListPlayerAwards(ctx context.Context, playerID, levelID int64) ([]*models.PlayerAward, error) {
	var grants []*models.PlayerAward
	err := r.db.NewSelect().
		Model(&grants).
		Relation("Award").
		Where("pa.player_id = ? AND pa.level_id = ?", playerID, levelID).
		Order("pa.id ASC").
		Scan(ctx)
	return grants, err
}
