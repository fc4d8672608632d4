package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/uptrace/bun"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	GetByDiscordID(ctx context.Context, discordID string) (*models.Player, error)
	UpdateLoginStats(ctx context.Context, player *models.Player) error
	GetTopPlayers(ctx context.Context, limit int) ([]*models.Player, error)
}

type playerRepository struct {
	db *bun.DB
}

func NewPlayerRepository(db *bun.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(player).Exec(ctx)
	return err
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	player := new(models.Player)
	err := r.db.NewSelect().
		Model(player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (r *playerRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Player, error) {
	player := new(models.Player)
	err := r.db.NewSelect().
		Model(player).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// UpdateLoginStats persists the login-tracking fields mutated by the login
// tracker. The tracker owns the semantics; this only writes them.
func (r *playerRepository) UpdateLoginStats(ctx context.Context, player *models.Player) error {
	player.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(player).
		Column("first_login", "last_login", "login_count", "daily_points", "total_points", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func (r *playerRepository) GetTopPlayers(ctx context.Context, limit int) ([]*models.Player, error) {
	var players []*models.Player
	err := r.db.NewSelect().
		Model(&players).
		Order("total_points DESC").
		Limit(limit).
		Scan(ctx)
	return players, err
}
