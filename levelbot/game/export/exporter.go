// Package export produces the denormalized player/level/award report.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"golang.org/x/sync/errgroup"
)

// PageSize bounds memory: one page of player-level records at a time.
const PageSize = 1000

// Completion flags and the absent-award sentinel are kept verbatim from
// the legacy system the report consumers already parse.
const (
	completedYes = "Да"
	completedNo  = "Нет"
	noAward      = "Нет награды"
)

var header = []string{"Player ID", "Level Title", "Is Completed", "Received Award"}

// Store is the read-only slice of ProgressionRepository the exporter needs.
type Store interface {
	ListPlayerLevels(ctx context.Context, limit, offset int) ([]*models.PlayerLevel, error)
	ListPlayerAwards(ctx context.Context, playerID, levelID int64) ([]*models.PlayerAward, error)
}

// Uploader receives the finished report. Satisfied by the Spaces service.
type Uploader interface {
	UploadExport(ctx context.Context, key string, body io.Reader) (string, error)
}

type Exporter struct {
	store    Store
	uploader Uploader
	now      func() time.Time
}

func NewExporter(store Store, uploader Uploader) *Exporter {
	return &Exporter{store: store, uploader: uploader, now: time.Now}
}

// WriteCSV streams the report to w: one row per award grant, or one
// sentinel row for a player-level with no grants. Rows reflect state at
// the time each page is read; the export is read-only and makes no
// snapshot guarantee.
func (e *Exporter) WriteCSV(ctx context.Context, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	offset := 0
	for {
		page, err := e.store.ListPlayerLevels(ctx, PageSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list player levels: %w", err)
		}
		if len(page) == 0 {
			break
		}

		for _, playerLevel := range page {
			if err := e.writeRecord(ctx, writer, playerLevel); err != nil {
				return err
			}
		}
		offset += PageSize
	}

	writer.Flush()
	return writer.Error()
}

func (e *Exporter) writeRecord(ctx context.Context, writer *csv.Writer, playerLevel *models.PlayerLevel) error {
	completed := completedNo
	if playerLevel.IsCompleted {
		completed = completedYes
	}

	grants, err := e.store.ListPlayerAwards(ctx, playerLevel.PlayerID, playerLevel.LevelID)
	if err != nil {
		return fmt.Errorf("failed to list player awards: %w", err)
	}

	if len(grants) == 0 {
		return writer.Write([]string{
			playerLevel.Player.PlayerRef,
			playerLevel.Level.Title,
			completed,
			noAward,
		})
	}

	for _, grant := range grants {
		err := writer.Write([]string{
			playerLevel.Player.PlayerRef,
			playerLevel.Level.Title,
			completed,
			grant.Award.Title,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Upload streams the report into object storage without buffering it in
// full: the CSV writer feeds one end of a pipe while the uploader drains
// the other. Returns the stored object's URL.
func (e *Exporter) Upload(ctx context.Context) (string, error) {
	key := fmt.Sprintf("player_level_data_%s.csv", e.now().UTC().Format("20060102T150405Z"))

	pr, pw := io.Pipe()
	var url string

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := e.WriteCSV(ctx, pw)
		pw.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		var err error
		url, err = e.uploader.UploadExport(ctx, key, pr)
		if err != nil {
			pr.CloseWithError(err)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return "", err
	}

	slog.Info("Export uploaded",
		slog.String("type", "game"),
		slog.String("key", key))
	return url, nil
}
