package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"log/slog"

	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/logger"
	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	SSLMode      string `toml:"ssl_mode"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Cheap reachability probe with retries before opening the pool.
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	var conn net.Conn
	var err error
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(cfg)}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(cfg DBConfig) *bun.DB {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	logger.LogQuery(sql, result.RowsAffected(), time.Since(start), err)
	return result, err
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// InitializeSchema creates all required tables and indexes.
func (db *DB) InitializeSchema(ctx context.Context) error {
	// Parent tables first so foreign key lookups always have a target.
	tables := []interface{}{
		(*models.Player)(nil),
		(*models.BoostType)(nil),
		(*models.Boost)(nil),
		(*models.BoostHistory)(nil),
		(*models.ProgressPlayer)(nil),
		(*models.Level)(nil),
		(*models.Award)(nil),
		(*models.LevelAward)(nil),
		(*models.PlayerLevel)(nil),
		(*models.PlayerAward)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_boosts_player_id ON boosts(player_id);",
		"CREATE INDEX IF NOT EXISTS idx_boosts_player_active ON boosts(player_id, is_active);",
		"CREATE INDEX IF NOT EXISTS idx_boosts_expires_at ON boosts(expires_at) WHERE expires_at IS NOT NULL;",
		"CREATE INDEX IF NOT EXISTS idx_boost_history_player_id ON boost_history(player_id, activated_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_levels_position ON levels(position);",
		"CREATE INDEX IF NOT EXISTS idx_level_awards_level_id ON level_awards(level_id);",
		"CREATE INDEX IF NOT EXISTS idx_player_levels_player_id ON player_levels(player_id);",
		"CREATE INDEX IF NOT EXISTS idx_player_awards_player_level ON player_awards(player_id, level_id);",
		"CREATE INDEX IF NOT EXISTS idx_players_total_points ON players(total_points DESC);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedBoostTypes inserts the boost catalog when it is missing. Existing
// rows are left untouched; the catalog is reference data.
func (db *DB) SeedBoostTypes(ctx context.Context) error {
	defaults := []*models.BoostType{
		{Kind: models.BoostKindSpeed, Description: "Movement speed boost", DurationMinutes: 30, Multiplier: 2.0},
		{Kind: models.BoostKindDamage, Description: "Damage boost", DurationMinutes: 30, Multiplier: 2.0},
		{Kind: models.BoostKindHealth, Description: "Health regeneration boost", DurationMinutes: 60, Multiplier: 1.5},
		{Kind: models.BoostKindExperience, Description: "Experience gain boost", DurationMinutes: 60, Multiplier: 2.0},
		{Kind: models.BoostKindCoins, Description: "Coin gain boost", DurationMinutes: 120, Multiplier: 1.5},
	}

	for _, bt := range defaults {
		_, err := db.bunDB.NewInsert().
			Model(bt).
			On("CONFLICT (kind) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed boost type %s: %w", bt.Kind, err)
		}
	}

	slog.Info("Boost type catalog ready",
		slog.String("type", "db"),
		slog.Int("kinds", len(defaults)))
	return nil
}
