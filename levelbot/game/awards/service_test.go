package awards

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

func Test_Service_AssignForLevelCompletion(t *testing.T) {
	player := &models.ProgressPlayer{ID: 1, PlayerRef: "123"}
	level := &models.Level{ID: 5, Title: "Swamp Run", Position: 5}
	awardRows := []*models.Award{
		{ID: 1, Title: "Gold Medal"},
		{ID: 2, Title: "Swamp Trophy"},
	}

	tests := []struct {
		name  string
		setup func(repo *mock.MockProgressionRepository)
		want  Result
	}{
		{
			name: "Grants every configured award",
			setup: func(repo *mock.MockProgressionRepository) {
				repo.EXPECT().GetPlayerByRef(gomock.Any(), "123").Return(player, nil)
				repo.EXPECT().GetLevel(gomock.Any(), int64(5)).Return(level, nil)
				repo.EXPECT().
					GrantLevelAwards(gomock.Any(), player, level, gomock.Any()).
					Return(awardRows, nil)
			},
			want: Result{
				Success: true,
				Player:  "123",
				Level:   "Swamp Run",
				Awards:  []string{"Gold Medal", "Swamp Trophy"},
			},
		},
		{
			name: "Repeat completion grants nothing new",
			setup: func(repo *mock.MockProgressionRepository) {
				repo.EXPECT().GetPlayerByRef(gomock.Any(), "123").Return(player, nil)
				repo.EXPECT().GetLevel(gomock.Any(), int64(5)).Return(level, nil)
				repo.EXPECT().
					GrantLevelAwards(gomock.Any(), player, level, gomock.Any()).
					Return(nil, nil)
			},
			want: Result{
				Success: true,
				Player:  "123",
				Level:   "Swamp Run",
				Awards:  []string{},
			},
		},
		{
			name: "Unknown player",
			setup: func(repo *mock.MockProgressionRepository) {
				repo.EXPECT().
					GetPlayerByRef(gomock.Any(), "123").
					Return(nil, repositories.ErrProgressPlayerNotFound)
			},
			want: Result{Success: false, Error: "player not found"},
		},
		{
			name: "Unknown level",
			setup: func(repo *mock.MockProgressionRepository) {
				repo.EXPECT().GetPlayerByRef(gomock.Any(), "123").Return(player, nil)
				repo.EXPECT().
					GetLevel(gomock.Any(), int64(5)).
					Return(nil, repositories.ErrLevelNotFound)
			},
			want: Result{Success: false, Player: "123", Error: "level not found"},
		},
		{
			name: "Grant transaction failure",
			setup: func(repo *mock.MockProgressionRepository) {
				repo.EXPECT().GetPlayerByRef(gomock.Any(), "123").Return(player, nil)
				repo.EXPECT().GetLevel(gomock.Any(), int64(5)).Return(level, nil)
				repo.EXPECT().
					GrantLevelAwards(gomock.Any(), player, level, gomock.Any()).
					Return(nil, errors.New("deadlock detected"))
			},
			want: Result{Success: false, Error: "deadlock detected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockProgressionRepository(gomock.NewController(t))
			tt.setup(repo)

			got := NewService(repo).AssignForLevelCompletion(context.Background(), "123", 5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Service.AssignForLevelCompletion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
