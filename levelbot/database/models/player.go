package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Player is the login/boost side of the game: one row per Discord account.
// FirstLogin and LastLogin stay NULL until the first recorded login.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement"`
	DiscordID   string    `bun:"discord_id,notnull,unique"`
	Username    string    `bun:"username,notnull"`
	Email       string    `bun:"email,unique,nullzero"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	FirstLogin  time.Time `bun:"first_login,nullzero"`
	LastLogin   time.Time `bun:"last_login,nullzero"`
	LoginCount  int       `bun:"login_count,notnull,default:0"`
	DailyPoints int64     `bun:"daily_points,notnull,default:0"`
	TotalPoints int64     `bun:"total_points,notnull,default:0"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}
