// Package logins records player logins and the points they earn.
package logins

import (
	"context"
	"log/slog"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
)

// DailyBonus is credited to both daily and total points on every login.
const DailyBonus = 10

// Store is the slice of PlayerRepository the tracker needs.
type Store interface {
	UpdateLoginStats(ctx context.Context, player *models.Player) error
}

type Tracker struct {
	store Store
	now   func() time.Time
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// RecordLogin stamps the login timestamps, increments the counter and
// credits the daily bonus, then persists. first_login is first-touch only:
// set once, never overwritten. daily_points is cumulative; there is no
// reset cycle.
func (t *Tracker) RecordLogin(ctx context.Context, player *models.Player) error {
	now := t.now()

	if player.FirstLogin.IsZero() {
		player.FirstLogin = now
	}
	player.LastLogin = now
	player.LoginCount++
	player.DailyPoints += DailyBonus
	player.TotalPoints += DailyBonus

	if err := t.store.UpdateLoginStats(ctx, player); err != nil {
		return err
	}

	slog.Debug("Login recorded",
		slog.String("type", "game"),
		slog.String("discord_id", player.DiscordID),
		slog.Int("login_count", player.LoginCount),
		slog.Int64("total_points", player.TotalPoints))
	return nil
}
