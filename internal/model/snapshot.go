package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Snapshot records one static publication of the stats bundle.
type Snapshot struct {
	bun.BaseModel `bun:"snapshots"`

	SnapshotID  int        `bun:",pk,autoincrement" json:"-"`
	ULID        string     `bun:"ulid,notnull" json:"id"`
	CreatedAt   *time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	FirstDraw   int        `bun:"first_draw" json:"first_draw"`
	LastDraw    int        `bun:"last_draw" json:"last_draw"`
	Fingerprint string     `bun:"fingerprint" json:"fingerprint"`
	Bucket      string     `bun:"bucket" json:"bucket"`
	Prefix      string     `bun:"prefix" json:"prefix"`
	Objects     []string   `bun:"objects,array" json:"objects"`
}
