package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Boost kinds. Closed set, mirrored by the boost_types catalog rows.
const (
	BoostKindSpeed      = "speed"
	BoostKindDamage     = "damage"
	BoostKindHealth     = "health"
	BoostKindExperience = "experience"
	BoostKindCoins      = "coins"
)

// BoostKinds lists every valid kind, in catalog order.
var BoostKinds = []string{
	BoostKindSpeed,
	BoostKindDamage,
	BoostKindHealth,
	BoostKindExperience,
	BoostKindCoins,
}

// Boost acquisition sources.
const (
	BoostSourceLevelCompletion = "level_completion"
	BoostSourceManual          = "manual"
	BoostSourceDailyReward     = "daily_reward"
	BoostSourcePurchase        = "purchase"
)

// BoostType is immutable catalog data: what a boost of a given kind does.
type BoostType struct {
	bun.BaseModel `bun:"table:boost_types,alias:bt"`

	ID              int64   `bun:"id,pk,autoincrement"`
	Kind            string  `bun:"kind,notnull,unique"`
	Description     string  `bun:"description"`
	DurationMinutes int     `bun:"duration_minutes,notnull,default:60"`
	Multiplier      float64 `bun:"multiplier,notnull,default:1.0"`
}

// Boost is a consumable inventory item owned by one player. A player may
// hold any number of boosts of the same type; each activation runs its own
// expiry window.
//
// Lifecycle: Unused (quantity > 0, inactive) -> Active (is_active, used_at
// and expires_at set, quantity decremented) -> Expired (inactive again, but
// used_at stays set, which is what tells Expired apart from Unused).
type Boost struct {
	bun.BaseModel `bun:"table:boosts,alias:b"`

	ID          int64     `bun:"id,pk,autoincrement"`
	PlayerID    int64     `bun:"player_id,notnull"`
	BoostTypeID int64     `bun:"boost_type_id,notnull"`
	Quantity    int       `bun:"quantity,notnull,default:1"`
	Source      string    `bun:"source,notnull"`
	LevelEarned int       `bun:"level_earned,nullzero"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UsedAt      time.Time `bun:"used_at,nullzero"`
	ExpiresAt   time.Time `bun:"expires_at,nullzero"`
	IsActive    bool      `bun:"is_active,notnull,default:false"`

	BoostType *BoostType `bun:"rel:belongs-to,join:boost_type_id=id"`
}

// BoostHistory is an append-only audit record of a completed activation
// window. Nothing in the activation path writes it today; the legacy
// importer is its only producer.
type BoostHistory struct {
	bun.BaseModel `bun:"table:boost_history,alias:bh"`

	ID          int64     `bun:"id,pk,autoincrement"`
	PlayerID    int64     `bun:"player_id,notnull"`
	BoostTypeID int64     `bun:"boost_type_id,notnull"`
	ActivatedAt time.Time `bun:"activated_at,notnull"`
	ExpiredAt   time.Time `bun:"expired_at,notnull"`
	LevelUsed   int       `bun:"level_used,nullzero"`

	BoostType *BoostType `bun:"rel:belongs-to,join:boost_type_id=id"`
}
