package logins

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

func Test_Tracker_RecordLogin(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 18, 30, 0, 0, time.UTC)

	repo := mock.NewMockPlayerRepository(gomock.NewController(t))
	repo.EXPECT().
		UpdateLoginStats(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(5)

	clock := day1
	tracker := &Tracker{
		store: repo,
		now:   func() time.Time { return clock },
	}

	player := &models.Player{ID: 1, DiscordID: "123", Username: "tester"}

	if err := tracker.RecordLogin(context.Background(), player); err != nil {
		t.Fatalf("Tracker.RecordLogin() error = %v", err)
	}
	if !player.FirstLogin.Equal(day1) {
		t.Errorf("first login = %v, want %v", player.FirstLogin, day1)
	}

	clock = day2
	for i := 0; i < 4; i++ {
		if err := tracker.RecordLogin(context.Background(), player); err != nil {
			t.Fatalf("Tracker.RecordLogin() error = %v", err)
		}
	}

	if player.LoginCount != 5 {
		t.Errorf("login count = %d, want 5", player.LoginCount)
	}
	if player.DailyPoints != 5*DailyBonus {
		t.Errorf("daily points = %d, want %d", player.DailyPoints, 5*DailyBonus)
	}
	if player.TotalPoints != 5*DailyBonus {
		t.Errorf("total points = %d, want %d", player.TotalPoints, 5*DailyBonus)
	}
	if !player.FirstLogin.Equal(day1) {
		t.Errorf("first login moved to %v, want %v", player.FirstLogin, day1)
	}
	if !player.LastLogin.Equal(day2) {
		t.Errorf("last login = %v, want %v", player.LastLogin, day2)
	}
}

func Test_Tracker_RecordLogin_StoreError(t *testing.T) {
	wantErr := errors.New("connection reset")

	repo := mock.NewMockPlayerRepository(gomock.NewController(t))
	repo.EXPECT().
		UpdateLoginStats(gomock.Any(), gomock.Any()).
		Return(wantErr)

	tracker := NewTracker(repo)
	player := &models.Player{ID: 1, DiscordID: "123"}

	if err := tracker.RecordLogin(context.Background(), player); !errors.Is(err, wantErr) {
		t.Errorf("Tracker.RecordLogin() error = %v, want %v", err, wantErr)
	}
}
