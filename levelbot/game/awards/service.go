// Package awards marks level completions and grants the awards configured
// for the completed level.
package awards

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories"
)

// Store is the slice of ProgressionRepository the service needs.
type Store interface {
	GetPlayerByRef(ctx context.Context, ref string) (*models.ProgressPlayer, error)
	GetLevel(ctx context.Context, id int64) (*models.Level, error)
	GrantLevelAwards(ctx context.Context, player *models.ProgressPlayer, level *models.Level, completedOn time.Time) ([]*models.Award, error)
}

// Result is the outcome of a completion attempt. Failures are reported
// here, never raised to the caller: inspect Success and Error.
type Result struct {
	Success bool
	Player  string
	Level   string
	Awards  []string
	Error   string
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// AssignForLevelCompletion marks the level completed for the player and
// grants every award configured for it, atomically: the store either
// commits completion plus all grants, or nothing. Awards already granted
// are skipped, so calling this again for a completed level succeeds with an
// empty award list.
func (s *Service) AssignForLevelCompletion(ctx context.Context, playerRef string, levelID int64) Result {
	player, err := s.store.GetPlayerByRef(ctx, playerRef)
	if err != nil {
		if errors.Is(err, repositories.ErrProgressPlayerNotFound) {
			return Result{Success: false, Error: "player not found"}
		}
		return s.failure(playerRef, err)
	}

	level, err := s.store.GetLevel(ctx, levelID)
	if err != nil {
		if errors.Is(err, repositories.ErrLevelNotFound) {
			return Result{Success: false, Player: player.PlayerRef, Error: "level not found"}
		}
		return s.failure(playerRef, err)
	}

	granted, err := s.store.GrantLevelAwards(ctx, player, level, s.now())
	if err != nil {
		return s.failure(playerRef, err)
	}

	titles := make([]string, 0, len(granted))
	for _, award := range granted {
		titles = append(titles, award.Title)
	}

	slog.Info("Level completion processed",
		slog.String("type", "game"),
		slog.String("player_ref", player.PlayerRef),
		slog.String("level", level.Title),
		slog.Int("awards_granted", len(titles)))

	return Result{
		Success: true,
		Player:  player.PlayerRef,
		Level:   level.Title,
		Awards:  titles,
	}
}

func (s *Service) failure(playerRef string, err error) Result {
	slog.Error("Level completion failed",
		slog.String("type", "game"),
		slog.String("player_ref", playerRef),
		slog.Any("error", err))
	return Result{Success: false, Error: err.Error()}
}
