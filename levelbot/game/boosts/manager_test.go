package boosts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

var speedType = &models.BoostType{
	ID:              1,
	Kind:            models.BoostKindSpeed,
	DurationMinutes: 60,
	Multiplier:      2.0,
}

func fixedManager(store Store, now time.Time) *Manager {
	return &Manager{store: store, now: func() time.Time { return now }}
}

func Test_Manager_Activate(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(60 * time.Minute)

	tests := []struct {
		name    string
		boost   *models.Boost
		setup   func(repo *mock.MockBoostRepository)
		want    bool
		wantErr bool
	}{
		{
			name:  "Success",
			boost: &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 2, BoostType: speedType},
			setup: func(repo *mock.MockBoostRepository) {
				repo.EXPECT().
					ActivateBoost(gomock.Any(), int64(10), now, expiry).
					Return(true, nil)
			},
			want: true,
		},
		{
			name:  "Zero quantity declined",
			boost: &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 0, BoostType: speedType},
			setup: func(repo *mock.MockBoostRepository) {},
			want:  false,
		},
		{
			name:  "Already active declined",
			boost: &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 1, IsActive: true, BoostType: speedType},
			setup: func(repo *mock.MockBoostRepository) {},
			want:  false,
		},
		{
			name:  "Lost activation race",
			boost: &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 1, BoostType: speedType},
			setup: func(repo *mock.MockBoostRepository) {
				repo.EXPECT().
					ActivateBoost(gomock.Any(), int64(10), now, expiry).
					Return(false, nil)
			},
			want: false,
		},
		{
			name:  "Resolves boost type when not loaded",
			boost: &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 1},
			setup: func(repo *mock.MockBoostRepository) {
				repo.EXPECT().
					GetBoostType(gomock.Any(), int64(1)).
					Return(speedType, nil)
				repo.EXPECT().
					ActivateBoost(gomock.Any(), int64(10), now, expiry).
					Return(true, nil)
			},
			want: true,
		},
		{
			name:  "Store error",
			boost: &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 1, BoostType: speedType},
			setup: func(repo *mock.MockBoostRepository) {
				repo.EXPECT().
					ActivateBoost(gomock.Any(), int64(10), now, expiry).
					Return(false, errors.New("connection reset"))
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockBoostRepository(gomock.NewController(t))
			tt.setup(repo)

			m := fixedManager(repo, now)
			got, err := m.Activate(context.Background(), tt.boost)
			if (err != nil) != tt.wantErr {
				t.Errorf("Manager.Activate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Manager.Activate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Manager_Activate_MutatesBoost(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	repo := mock.NewMockBoostRepository(gomock.NewController(t))
	repo.EXPECT().
		ActivateBoost(gomock.Any(), int64(10), now, now.Add(time.Hour)).
		Return(true, nil)

	boost := &models.Boost{ID: 10, BoostTypeID: 1, Quantity: 3, BoostType: speedType}
	m := fixedManager(repo, now)

	if _, err := m.Activate(context.Background(), boost); err != nil {
		t.Fatalf("Manager.Activate() error = %v", err)
	}
	if !boost.IsActive {
		t.Error("boost not marked active")
	}
	if boost.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", boost.Quantity)
	}
	if !boost.UsedAt.Equal(now) {
		t.Errorf("used at = %v, want %v", boost.UsedAt, now)
	}
	if !boost.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expires at = %v, want %v", boost.ExpiresAt, now.Add(time.Hour))
	}
}

func Test_Manager_IsExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		boost      *models.Boost
		setup      func(repo *mock.MockBoostRepository)
		want       bool
		wantActive bool
	}{
		{
			name:  "Never activated",
			boost: &models.Boost{ID: 10, Quantity: 1},
			setup: func(repo *mock.MockBoostRepository) {},
			want:  false,
		},
		{
			name: "Window still open",
			boost: &models.Boost{
				ID: 10, IsActive: true,
				UsedAt:    now.Add(-30 * time.Minute),
				ExpiresAt: now.Add(30 * time.Minute),
			},
			setup:      func(repo *mock.MockBoostRepository) {},
			want:       false,
			wantActive: true,
		},
		{
			name: "Window passed forces deactivation",
			boost: &models.Boost{
				ID: 10, IsActive: true,
				UsedAt:    now.Add(-2 * time.Hour),
				ExpiresAt: now.Add(-time.Hour),
			},
			setup: func(repo *mock.MockBoostRepository) {
				repo.EXPECT().
					DeactivateBoost(gomock.Any(), int64(10)).
					Return(nil)
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockBoostRepository(gomock.NewController(t))
			tt.setup(repo)

			m := fixedManager(repo, now)
			got, err := m.IsExpired(context.Background(), tt.boost)
			if err != nil {
				t.Fatalf("Manager.IsExpired() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Manager.IsExpired() = %v, want %v", got, tt.want)
			}
			if tt.boost.IsActive != tt.wantActive {
				t.Errorf("boost active = %v, want %v", tt.boost.IsActive, tt.wantActive)
			}
		})
	}
}

func Test_Manager_Award(t *testing.T) {
	player := &models.Player{ID: 7, DiscordID: "123"}

	tests := []struct {
		name        string
		award       func(m *Manager) (*models.Boost, error)
		wantSource  string
		wantLevel   int
		wantQty     int
	}{
		{
			name: "For level completion",
			award: func(m *Manager) (*models.Boost, error) {
				return m.AwardForLevel(context.Background(), player, speedType, 3, 2)
			},
			wantSource: models.BoostSourceLevelCompletion,
			wantLevel:  3,
			wantQty:    2,
		},
		{
			name: "Manual grant clamps quantity",
			award: func(m *Manager) (*models.Boost, error) {
				return m.AwardManually(context.Background(), player, speedType, 0)
			},
			wantSource: models.BoostSourceManual,
			wantLevel:  0,
			wantQty:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockBoostRepository(gomock.NewController(t))
			repo.EXPECT().
				CreateBoost(gomock.Any(), gomock.Any()).
				Return(nil)

			got, err := tt.award(NewManager(repo))
			if err != nil {
				t.Fatalf("award error = %v", err)
			}
			if got.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", got.Source, tt.wantSource)
			}
			if got.LevelEarned != tt.wantLevel {
				t.Errorf("level earned = %d, want %d", got.LevelEarned, tt.wantLevel)
			}
			if got.Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", got.Quantity, tt.wantQty)
			}
			if got.IsActive || !got.UsedAt.IsZero() {
				t.Error("fresh boost must be unused and inactive")
			}
		})
	}
}
