// Package boosts runs the boost lifecycle: consumable inventory items that
// players activate for a time-limited multiplier window.
package boosts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
)

// Store is the slice of BoostRepository the manager needs.
type Store interface {
	GetBoostType(ctx context.Context, id int64) (*models.BoostType, error)
	CreateBoost(ctx context.Context, boost *models.Boost) error
	ActivateBoost(ctx context.Context, id int64, usedAt, expiresAt time.Time) (bool, error)
	DeactivateBoost(ctx context.Context, id int64) error
}

type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Activate consumes one use of the boost and opens its expiry window.
// Returns false when the boost has no remaining quantity or is already
// active. That is a decline, not an error. The persisted update is a
// conditional compare-and-set, so a concurrent activation of the same row
// loses cleanly and is reported as declined too.
func (m *Manager) Activate(ctx context.Context, boost *models.Boost) (bool, error) {
	if boost.Quantity <= 0 || boost.IsActive {
		return false, nil
	}

	boostType := boost.BoostType
	if boostType == nil {
		var err error
		boostType, err = m.store.GetBoostType(ctx, boost.BoostTypeID)
		if err != nil {
			return false, fmt.Errorf("failed to resolve boost type: %w", err)
		}
	}

	usedAt := m.now()
	expiresAt := usedAt.Add(time.Duration(boostType.DurationMinutes) * time.Minute)

	ok, err := m.store.ActivateBoost(ctx, boost.ID, usedAt, expiresAt)
	if err != nil {
		return false, err
	}
	if !ok {
		// Lost a race against another activation of the same row.
		return false, nil
	}

	boost.IsActive = true
	boost.UsedAt = usedAt
	boost.ExpiresAt = expiresAt
	boost.Quantity--

	slog.Info("Boost activated",
		slog.String("type", "game"),
		slog.Int64("boost_id", boost.ID),
		slog.String("kind", boostType.Kind),
		slog.Time("expires_at", expiresAt))
	return true, nil
}

// IsExpired reports whether the boost's activation window has passed, and
// enforces it: a stale active flag is forced off and persisted. This check
// is the only expiry mechanism; there is no background sweep. Boosts that
// were never activated have no expiry window and are never expired.
func (m *Manager) IsExpired(ctx context.Context, boost *models.Boost) (bool, error) {
	if boost.ExpiresAt.IsZero() || !m.now().After(boost.ExpiresAt) {
		return false, nil
	}

	if err := m.store.DeactivateBoost(ctx, boost.ID); err != nil {
		return false, err
	}
	boost.IsActive = false
	return true, nil
}

// AwardForLevel grants a fresh unused boost earned by completing a level.
func (m *Manager) AwardForLevel(ctx context.Context, player *models.Player, boostType *models.BoostType, levelNumber, quantity int) (*models.Boost, error) {
	return m.award(ctx, player, boostType, models.BoostSourceLevelCompletion, levelNumber, quantity)
}

// AwardManually grants a fresh unused boost with no level attached.
func (m *Manager) AwardManually(ctx context.Context, player *models.Player, boostType *models.BoostType, quantity int) (*models.Boost, error) {
	return m.award(ctx, player, boostType, models.BoostSourceManual, 0, quantity)
}

func (m *Manager) award(ctx context.Context, player *models.Player, boostType *models.BoostType, source string, levelNumber, quantity int) (*models.Boost, error) {
	if quantity < 1 {
		quantity = 1
	}

	boost := &models.Boost{
		PlayerID:    player.ID,
		BoostTypeID: boostType.ID,
		Quantity:    quantity,
		Source:      source,
		LevelEarned: levelNumber,
		BoostType:   boostType,
	}
	if err := m.store.CreateBoost(ctx, boost); err != nil {
		return nil, fmt.Errorf("failed to create boost: %w", err)
	}

	slog.Info("Boost awarded",
		slog.String("type", "game"),
		slog.String("discord_id", player.DiscordID),
		slog.String("kind", boostType.Kind),
		slog.String("source", source),
		slog.Int("quantity", quantity))
	return boost, nil
}
