package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/uptrace/bun"
)

var (
	ErrBoostNotFound     = errors.New("boost not found")
	ErrBoostTypeNotFound = errors.New("boost type not found")
)

// Catalog rows are tiny and immutable, so a small LRU is plenty.
const boostTypeCacheSize = 64

type BoostRepository interface {
	// Catalog
	CreateBoostType(ctx context.Context, bt *models.BoostType) error
	GetBoostType(ctx context.Context, id int64) (*models.BoostType, error)
	GetBoostTypeByKind(ctx context.Context, kind string) (*models.BoostType, error)
	ListBoostTypes(ctx context.Context) ([]*models.BoostType, error)

	// Inventory
	CreateBoost(ctx context.Context, boost *models.Boost) error
	GetBoost(ctx context.Context, id int64) (*models.Boost, error)
	GetPlayerBoosts(ctx context.Context, playerID int64) ([]*models.Boost, error)
	ActivateBoost(ctx context.Context, id int64, usedAt, expiresAt time.Time) (bool, error)
	DeactivateBoost(ctx context.Context, id int64) error

	// History is append-only and written by the legacy importer alone;
	// the live bot only reads it.
	GetPlayerHistory(ctx context.Context, playerID int64, limit int) ([]*models.BoostHistory, error)
}

type boostRepository struct {
	db        *bun.DB
	typeCache *lru.Cache
}

func NewBoostRepository(db *bun.DB) BoostRepository {
	cache, _ := lru.New(boostTypeCacheSize)
	return &boostRepository{db: db, typeCache: cache}
}

func (r *boostRepository) CreateBoostType(ctx context.Context, bt *models.BoostType) error {
	_, err := r.db.NewInsert().Model(bt).Exec(ctx)
	if err == nil {
		r.typeCache.Add(bt.ID, bt)
	}
	return err
}

func (r *boostRepository) GetBoostType(ctx context.Context, id int64) (*models.BoostType, error) {
	if cached, ok := r.typeCache.Get(id); ok {
		return cached.(*models.BoostType), nil
	}

	bt := new(models.BoostType)
	err := r.db.NewSelect().
		Model(bt).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoostTypeNotFound
		}
		return nil, fmt.Errorf("failed to get boost type: %w", err)
	}

	r.typeCache.Add(id, bt)
	return bt, nil
}

func (r *boostRepository) GetBoostTypeByKind(ctx context.Context, kind string) (*models.BoostType, error) {
	bt := new(models.BoostType)
	err := r.db.NewSelect().
		Model(bt).
		Where("kind = ?", kind).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoostTypeNotFound
		}
		return nil, fmt.Errorf("failed to get boost type: %w", err)
	}

	r.typeCache.Add(bt.ID, bt)
	return bt, nil
}

func (r *boostRepository) ListBoostTypes(ctx context.Context) ([]*models.BoostType, error) {
	var types []*models.BoostType
	err := r.db.NewSelect().
		Model(&types).
		Order("kind ASC").
		Scan(ctx)
	return types, err
}

func (r *boostRepository) CreateBoost(ctx context.Context, boost *models.Boost) error {
	boost.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(boost).Exec(ctx)
	return err
}

func (r *boostRepository) GetBoost(ctx context.Context, id int64) (*models.Boost, error) {
	boost := new(models.Boost)
	err := r.db.NewSelect().
		Model(boost).
		Relation("BoostType").
		Where("b.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoostNotFound
		}
		return nil, err
	}
	return boost, nil
}

func (r *boostRepository) GetPlayerBoosts(ctx context.Context, playerID int64) ([]*models.Boost, error) {
	var boosts []*models.Boost
	err := r.db.NewSelect().
		Model(&boosts).
		Relation("BoostType").
		Where("b.player_id = ?", playerID).
		Order("b.created_at DESC").
		Scan(ctx)
	return boosts, err
}

// ActivateBoost performs the activation as one conditional UPDATE so two
// concurrent activations can never both decrement quantity. Returns false
// when the row no longer satisfies the precondition (quantity exhausted or
// already active), which is a decline rather than an error.
func (r *boostRepository) ActivateBoost(ctx context.Context, id int64, usedAt, expiresAt time.Time) (bool, error) {
	result, err := r.db.NewUpdate().
		Model((*models.Boost)(nil)).
		Set("is_active = TRUE").
		Set("used_at = ?", usedAt).
		Set("expires_at = ?", expiresAt).
		Set("quantity = quantity - 1").
		Where("id = ? AND quantity > 0 AND is_active = FALSE", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to activate boost: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *boostRepository) DeactivateBoost(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Boost)(nil)).
		Set("is_active = FALSE").
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *boostRepository) GetPlayerHistory(ctx context.Context, playerID int64, limit int) ([]*models.BoostHistory, error) {
	var history []*models.BoostHistory
	err := r.db.NewSelect().
		Model(&history).
		Relation("BoostType").
		Where("bh.player_id = ?", playerID).
		Order("bh.activated_at DESC").
		Limit(limit).
		Scan(ctx)
	return history, err
}
