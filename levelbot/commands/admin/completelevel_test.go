package admin

import (
	"context"
	"testing"

	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/database/repositories/mock"
	"github.com/playforge/levelbot/levelbot/game/boosts"
	"go.uber.org/mock/gomock"
)

func Test_GrantCompletionBoost(t *testing.T) {
	ctrl := gomock.NewController(t)
	players := mock.NewMockPlayerRepository(ctrl)
	boostRepo := mock.NewMockBoostRepository(ctrl)

	player := &models.Player{ID: 7, DiscordID: "123"}
	expType := &models.BoostType{ID: 4, Kind: models.BoostKindExperience, DurationMinutes: 60}

	players.EXPECT().
		GetByDiscordID(gomock.Any(), "123").
		Return(player, nil)
	boostRepo.EXPECT().
		GetBoostTypeByKind(gomock.Any(), models.BoostKindExperience).
		Return(expType, nil)

	var created *models.Boost
	boostRepo.EXPECT().
		CreateBoost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, boost *models.Boost) error {
			created = boost
			return nil
		})

	b := &levelbot.Bot{
		PlayerRepository: players,
		BoostRepository:  boostRepo,
		BoostManager:     boosts.NewManager(boostRepo),
	}

	kind, err := grantCompletionBoost(context.Background(), b, "123", 3)
	if err != nil {
		t.Fatalf("grantCompletionBoost() error = %v", err)
	}
	if kind != models.BoostKindExperience {
		t.Errorf("kind = %q, want %q", kind, models.BoostKindExperience)
	}
	if created == nil {
		t.Fatal("no boost created")
	}
	if created.Source != models.BoostSourceLevelCompletion {
		t.Errorf("source = %q, want %q", created.Source, models.BoostSourceLevelCompletion)
	}
	if created.LevelEarned != 3 {
		t.Errorf("level earned = %d, want 3", created.LevelEarned)
	}
	if created.PlayerID != player.ID {
		t.Errorf("player id = %d, want %d", created.PlayerID, player.ID)
	}
}

func Test_GrantCompletionBoost_UnknownPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	players := mock.NewMockPlayerRepository(ctrl)
	boostRepo := mock.NewMockBoostRepository(ctrl)

	players.EXPECT().
		GetByDiscordID(gomock.Any(), "123").
		Return(nil, repositories.ErrPlayerNotFound)

	b := &levelbot.Bot{
		PlayerRepository: players,
		BoostRepository:  boostRepo,
		BoostManager:     boosts.NewManager(boostRepo),
	}

	if _, err := grantCompletionBoost(context.Background(), b, "123", 3); err == nil {
		t.Fatal("expected error for unknown player")
	}
}
