package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ProgressPlayer is the progression-side player identity, keyed by an
// external string reference. The bot passes Discord IDs here, but the
// progression subsystem never assumes that.
type ProgressPlayer struct {
	bun.BaseModel `bun:"table:progress_players,alias:pp"`

	ID        int64  `bun:"id,pk,autoincrement"`
	PlayerRef string `bun:"player_ref,notnull,unique"`
}

// Level is ordered catalog data. Position defines the display sequence
// only; completion of earlier levels is not a gate.
type Level struct {
	bun.BaseModel `bun:"table:levels,alias:l"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Title    string `bun:"title,notnull"`
	Position int    `bun:"position,notnull,default:0"`
}

// Award is catalog data.
type Award struct {
	bun.BaseModel `bun:"table:awards,alias:a"`

	ID    int64  `bun:"id,pk,autoincrement"`
	Title string `bun:"title,notnull"`
}

// LevelAward configures which awards a level grants. Unique per
// (level, award) pair.
type LevelAward struct {
	bun.BaseModel `bun:"table:level_awards,alias:la"`

	ID      int64 `bun:"id,pk,autoincrement"`
	LevelID int64 `bun:"level_id,notnull,unique:uq_level_award"`
	AwardID int64 `bun:"award_id,notnull,unique:uq_level_award"`

	Award *Award `bun:"rel:belongs-to,join:award_id=id"`
	Level *Level `bun:"rel:belongs-to,join:level_id=id"`
}

// PlayerLevel records a player's relationship with a level. Created on the
// first completion attempt, updated in place afterwards, never deleted.
type PlayerLevel struct {
	bun.BaseModel `bun:"table:player_levels,alias:pl"`

	ID          int64     `bun:"id,pk,autoincrement"`
	PlayerID    int64     `bun:"player_id,notnull,unique:uq_player_level"`
	LevelID     int64     `bun:"level_id,notnull,unique:uq_player_level"`
	Completed   time.Time `bun:"completed,nullzero"`
	IsCompleted bool      `bun:"is_completed,notnull,default:false"`
	Score       int       `bun:"score,notnull,default:0"`

	Player *ProgressPlayer `bun:"rel:belongs-to,join:player_id=id"`
	Level  *Level          `bun:"rel:belongs-to,join:level_id=id"`
}

// PlayerAward is a grant record: created once with its received date,
// never updated or deleted. Unique per (player, award, level).
type PlayerAward struct {
	bun.BaseModel `bun:"table:player_awards,alias:pa"`

	ID       int64     `bun:"id,pk,autoincrement"`
	PlayerID int64     `bun:"player_id,notnull,unique:uq_player_award_level"`
	AwardID  int64     `bun:"award_id,notnull,unique:uq_player_award_level"`
	LevelID  int64     `bun:"level_id,notnull,unique:uq_player_award_level"`
	Received time.Time `bun:"received,notnull"`

	Award *Award `bun:"rel:belongs-to,join:award_id=id"`
}
