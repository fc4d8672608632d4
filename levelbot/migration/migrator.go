// Package migration imports player and boost data from the legacy
// MongoDB store into PostgreSQL. It is a one-shot tool driven by
// cmd/migrate, not part of the running bot.
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	stats     MigrationStats

	// Resolved during the run.
	playerIDsByRef   map[string]int64
	boostTypesByKind map[string]int64

	// Mongo collection names (overrideable)
	collNames map[string]string
}

func NewMigrator(pgDB *bun.DB, client *mongo.Client, dbName string) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   client.Database(dbName),
		batchSize: 1000,
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		collNames: map[string]string{
			"players":      "players",
			"boosts":       "boosts",
			"boosthistory": "boosthistory",
		},
	}
}

// SetBatchSize overrides the default batch size for inserts (useful for
// poolers/timeouts).
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// SetMongoCollectionName overrides the collection name for a given kind.
func (m *Migrator) SetMongoCollectionName(kind, name string) {
	if kind != "" && name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) getColl(kind string) *mongo.Collection {
	return m.mongoDB.Collection(m.collNames[kind])
}

// MigrateAll runs every migration step in dependency order. Players come
// first so boost rows can resolve their owners; the boost type catalog
// must already be seeded on the Postgres side.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	logProgress("Starting legacy Mongo migration")

	steps := []struct {
		name    string
		migrate func(context.Context) error
	}{
		{"players", m.MigratePlayers},
		{"boosts", m.MigrateBoosts},
		{"boost_history", m.MigrateBoostHistory},
	}

	for _, step := range steps {
		logProgress(fmt.Sprintf("Migrating %s", step.name))
		if err := step.migrate(ctx); err != nil {
			return fmt.Errorf("migration step %s failed: %w", step.name, err)
		}
	}

	m.report()
	return nil
}

// MigratePlayers copies every legacy player document and fills the
// ref-to-id map used by the boost steps.
func (m *Migrator) MigratePlayers(ctx context.Context) error {
	stats := m.tableStats("players")

	cursor, err := m.getColl("players").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to query players: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.Player, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc MongoPlayer
		if err := cursor.Decode(&doc); err != nil {
			stats.Errors++
			continue
		}
		stats.Read++

		player := &models.Player{
			DiscordID:   doc.DiscordID,
			Username:    doc.Username,
			Email:       doc.Email,
			CreatedAt:   doc.CreatedAt,
			LoginCount:  int(doc.LoginCount),
			DailyPoints: int64(doc.DailyPoints),
			TotalPoints: int64(doc.TotalPoints),
			UpdatedAt:   time.Now(),
		}
		if doc.FirstLogin != nil {
			player.FirstLogin = *doc.FirstLogin
		}
		if doc.LastLogin != nil {
			player.LastLogin = *doc.LastLogin
		}

		batch = append(batch, player)
		if len(batch) >= m.batchSize {
			if err := m.insertPlayers(ctx, batch, stats); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := m.insertPlayers(ctx, batch, stats); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("player cursor failed: %w", err)
	}

	return m.loadPlayerIDs(ctx)
}

func (m *Migrator) insertPlayers(ctx context.Context, batch []*models.Player, stats *TableStats) error {
	res, err := m.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT (discord_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert players: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil {
		stats.Inserted += int(rows)
		stats.Skipped += len(batch) - int(rows)
	}
	return nil
}

func (m *Migrator) loadPlayerIDs(ctx context.Context) error {
	var players []*models.Player
	if err := m.pgDB.NewSelect().
		Model(&players).
		Column("id", "discord_id").
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to load player ids: %w", err)
	}

	m.playerIDsByRef = make(map[string]int64, len(players))
	for _, p := range players {
		m.playerIDsByRef[p.DiscordID] = p.ID
	}
	return nil
}

func (m *Migrator) loadBoostTypes(ctx context.Context) error {
	if m.boostTypesByKind != nil {
		return nil
	}

	var types []*models.BoostType
	if err := m.pgDB.NewSelect().Model(&types).Scan(ctx); err != nil {
		return fmt.Errorf("failed to load boost types: %w", err)
	}
	if len(types) == 0 {
		return fmt.Errorf("boost type catalog is empty, seed it before migrating")
	}

	m.boostTypesByKind = make(map[string]int64, len(types))
	for _, bt := range types {
		m.boostTypesByKind[bt.Kind] = bt.ID
	}
	return nil
}

// MigrateBoosts copies boost inventory rows. Documents whose owner or
// kind cannot be resolved are counted as skips, not failures.
func (m *Migrator) MigrateBoosts(ctx context.Context) error {
	if err := m.loadBoostTypes(ctx); err != nil {
		return err
	}
	stats := m.tableStats("boosts")

	cursor, err := m.getColl("boosts").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to query boosts: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.Boost, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc MongoBoost
		if err := cursor.Decode(&doc); err != nil {
			stats.Errors++
			continue
		}
		stats.Read++

		playerID, ok := m.playerIDsByRef[doc.DiscordID]
		if !ok {
			stats.Skipped++
			continue
		}
		typeID, ok := m.boostTypesByKind[doc.Kind]
		if !ok {
			stats.Skipped++
			continue
		}

		source := doc.Source
		if source == "" {
			source = models.BoostSourceManual
		}

		boost := &models.Boost{
			PlayerID:    playerID,
			BoostTypeID: typeID,
			Quantity:    int(doc.Quantity),
			Source:      source,
			LevelEarned: int(doc.LevelEarned),
			CreatedAt:   doc.CreatedAt,
			IsActive:    doc.IsActive,
		}
		if doc.UsedAt != nil {
			boost.UsedAt = *doc.UsedAt
		}
		if doc.ExpiresAt != nil {
			boost.ExpiresAt = *doc.ExpiresAt
		}

		batch = append(batch, boost)
		if len(batch) >= m.batchSize {
			if err := m.insertBatch(ctx, &batch, stats, "boosts"); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := m.insertBatch(ctx, &batch, stats, "boosts"); err != nil {
			return err
		}
	}
	return cursor.Err()
}

// MigrateBoostHistory copies completed activation windows. This importer
// is the only writer of boost_history; the live activation path keeps
// everything on the boost row itself.
func (m *Migrator) MigrateBoostHistory(ctx context.Context) error {
	if err := m.loadBoostTypes(ctx); err != nil {
		return err
	}
	stats := m.tableStats("boost_history")

	cursor, err := m.getColl("boosthistory").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to query boost history: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.BoostHistory, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc MongoBoostHistory
		if err := cursor.Decode(&doc); err != nil {
			stats.Errors++
			continue
		}
		stats.Read++

		playerID, ok := m.playerIDsByRef[doc.DiscordID]
		if !ok {
			stats.Skipped++
			continue
		}
		typeID, ok := m.boostTypesByKind[doc.Kind]
		if !ok {
			stats.Skipped++
			continue
		}

		batch = append(batch, &models.BoostHistory{
			PlayerID:    playerID,
			BoostTypeID: typeID,
			ActivatedAt: doc.ActivatedAt,
			ExpiredAt:   doc.ExpiredAt,
			LevelUsed:   int(doc.LevelUsed),
		})
		if len(batch) >= m.batchSize {
			if err := m.insertBatch(ctx, &batch, stats, "boost_history"); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := m.insertBatch(ctx, &batch, stats, "boost_history"); err != nil {
			return err
		}
	}
	return cursor.Err()
}

func (m *Migrator) insertBatch(ctx context.Context, batch interface{}, stats *TableStats, table string) error {
	res, err := m.pgDB.NewInsert().Model(batch).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert %s batch: %w", table, err)
	}
	if rows, err := res.RowsAffected(); err == nil {
		stats.Inserted += int(rows)
	}
	return nil
}

func (m *Migrator) tableStats(name string) *TableStats {
	if _, ok := m.stats.Tables[name]; !ok {
		m.stats.Tables[name] = &TableStats{}
	}
	return m.stats.Tables[name]
}

func (m *Migrator) report() {
	elapsed := time.Since(m.stats.StartTime)
	for name, stats := range m.stats.Tables {
		slog.Info("Migration table complete",
			slog.String("type", "db"),
			slog.String("table", name),
			slog.Int("read", stats.Read),
			slog.Int("inserted", stats.Inserted),
			slog.Int("skipped", stats.Skipped),
			slog.Int("errors", stats.Errors))
	}
	logProgress(fmt.Sprintf("Migration finished in %s", elapsed.Round(time.Millisecond)))
}

func logProgress(msg string) {
	slog.Info(msg, slog.String("type", "db"))
}
