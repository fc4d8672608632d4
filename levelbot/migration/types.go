package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoPlayer is a player document in the legacy MongoDB store.
type MongoPlayer struct {
	ID          primitive.ObjectID `bson:"_id"`
	DiscordID   string             `bson:"discord_id"`
	Username    string             `bson:"username"`
	Email       string             `bson:"email,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	FirstLogin  *time.Time         `bson:"first_login,omitempty"`
	LastLogin   *time.Time         `bson:"last_login,omitempty"`
	LoginCount  int32              `bson:"login_count"`
	DailyPoints float64            `bson:"daily_points"`
	TotalPoints float64            `bson:"total_points"`
}

// MongoBoost is a boost document in the legacy store. The legacy system
// kept the kind inline instead of referencing a catalog row.
type MongoBoost struct {
	ID          primitive.ObjectID `bson:"_id"`
	DiscordID   string             `bson:"discord_id"`
	Kind        string             `bson:"kind"`
	Quantity    int32              `bson:"quantity"`
	Source      string             `bson:"source,omitempty"`
	LevelEarned int32              `bson:"level_earned,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UsedAt      *time.Time         `bson:"used_at,omitempty"`
	ExpiresAt   *time.Time         `bson:"expires_at,omitempty"`
	IsActive    bool               `bson:"is_active"`
}

// MongoBoostHistory is a completed activation window in the legacy store.
type MongoBoostHistory struct {
	ID          primitive.ObjectID `bson:"_id"`
	DiscordID   string             `bson:"discord_id"`
	Kind        string             `bson:"kind"`
	ActivatedAt time.Time          `bson:"activated_at"`
	ExpiredAt   time.Time          `bson:"expired_at"`
	LevelUsed   int32              `bson:"level_used,omitempty"`
}

// TableStats tracks per-table migration progress.
type TableStats struct {
	Read     int
	Inserted int
	Skipped  int
	Errors   int
}

// MigrationStats aggregates progress across the whole run.
type MigrationStats struct {
	Tables    map[string]*TableStats
	StartTime time.Time
}
