package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

// exportFixture fakes 1500 player-level records so the exporter has to page
// twice. Player 1 holds two award grants on its level; everyone else none.
func exportFixture(t *testing.T) *mock.MockProgressionRepository {
	records := make([]*models.PlayerLevel, 1500)
	for i := range records {
		id := int64(i + 1)
		records[i] = &models.PlayerLevel{
			ID:          id,
			PlayerID:    id,
			LevelID:     1,
			IsCompleted: i%2 == 0,
			Player:      &models.ProgressPlayer{ID: id, PlayerRef: strconv.FormatInt(id, 10)},
			Level:       &models.Level{ID: 1, Title: "Swamp Run"},
		}
	}

	repo := mock.NewMockProgressionRepository(gomock.NewController(t))
	repo.EXPECT().
		ListPlayerLevels(gomock.Any(), PageSize, gomock.Any()).
		DoAndReturn(func(_ context.Context, limit, offset int) ([]*models.PlayerLevel, error) {
			if offset >= len(records) {
				return nil, nil
			}
			end := offset + limit
			if end > len(records) {
				end = len(records)
			}
			return records[offset:end], nil
		}).
		AnyTimes()

	repo.EXPECT().
		ListPlayerAwards(gomock.Any(), gomock.Any(), int64(1)).
		DoAndReturn(func(_ context.Context, playerID, _ int64) ([]*models.PlayerAward, error) {
			if playerID != 1 {
				return nil, nil
			}
			return []*models.PlayerAward{
				{PlayerID: 1, AwardID: 1, LevelID: 1, Award: &models.Award{ID: 1, Title: "Gold Medal"}},
				{PlayerID: 1, AwardID: 2, LevelID: 1, Award: &models.Award{ID: 2, Title: "Swamp Trophy"}},
			}, nil
		}).
		AnyTimes()

	return repo
}

func Test_Exporter_WriteCSV(t *testing.T) {
	e := NewExporter(exportFixture(t), nil)

	var buf bytes.Buffer
	if err := e.WriteCSV(context.Background(), &buf); err != nil {
		t.Fatalf("Exporter.WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	// 1500 records, player 1 contributing two rows instead of one.
	if len(rows) != 1502 {
		t.Fatalf("row count = %d, want 1502", len(rows))
	}
	if !reflect.DeepEqual(rows[0], header) {
		t.Errorf("header = %v, want %v", rows[0], header)
	}
	if want := []string{"1", "Swamp Run", "Да", "Gold Medal"}; !reflect.DeepEqual(rows[1], want) {
		t.Errorf("first grant row = %v, want %v", rows[1], want)
	}
	if want := []string{"1", "Swamp Run", "Да", "Swamp Trophy"}; !reflect.DeepEqual(rows[2], want) {
		t.Errorf("second grant row = %v, want %v", rows[2], want)
	}
	if want := []string{"2", "Swamp Run", "Нет", "Нет награды"}; !reflect.DeepEqual(rows[3], want) {
		t.Errorf("sentinel row = %v, want %v", rows[3], want)
	}
	if want := []string{"1500", "Swamp Run", "Нет", "Нет награды"}; !reflect.DeepEqual(rows[1501], want) {
		t.Errorf("last row = %v, want %v", rows[1501], want)
	}
}

func Test_Exporter_WriteCSV_StoreError(t *testing.T) {
	wantErr := errors.New("connection reset")

	repo := mock.NewMockProgressionRepository(gomock.NewController(t))
	repo.EXPECT().
		ListPlayerLevels(gomock.Any(), PageSize, 0).
		Return(nil, wantErr)

	e := NewExporter(repo, nil)
	if err := e.WriteCSV(context.Background(), io.Discard); !errors.Is(err, wantErr) {
		t.Errorf("Exporter.WriteCSV() error = %v, want %v", err, wantErr)
	}
}

type captureUploader struct {
	key  string
	body []byte
}

func (u *captureUploader) UploadExport(_ context.Context, key string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	u.key = key
	u.body = data
	return fmt.Sprintf("https://exports.example.com/%s", key), nil
}

func Test_Exporter_Upload(t *testing.T) {
	uploader := &captureUploader{}
	e := &Exporter{
		store:    exportFixture(t),
		uploader: uploader,
		now:      func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}

	url, err := e.Upload(context.Background())
	if err != nil {
		t.Fatalf("Exporter.Upload() error = %v", err)
	}

	wantKey := "player_level_data_20240301T120000Z.csv"
	if uploader.key != wantKey {
		t.Errorf("object key = %q, want %q", uploader.key, wantKey)
	}
	if url != "https://exports.example.com/"+wantKey {
		t.Errorf("url = %q", url)
	}

	rows, err := csv.NewReader(bytes.NewReader(uploader.body)).ReadAll()
	if err != nil {
		t.Fatalf("reading uploaded body: %v", err)
	}
	if len(rows) != 1502 {
		t.Errorf("uploaded row count = %d, want 1502", len(rows))
	}
}
