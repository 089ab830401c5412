package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID          int64     `bun:"id,pk"`
	Title       string    `bun:"title,notnull"`
	Category    string    `bun:"category,notnull"`
	Description string    `bun:"description,notnull"`
	Str         int       `bun:"str,notnull"`
	Spd         int       `bun:"spd,notnull"`
	Def         int       `bun:"def,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}
