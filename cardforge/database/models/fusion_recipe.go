package models

import (
	"time"

	"github.com/uptrace/bun"
)

// FusionRecipe is one row of the recipe table. InputA < InputB is enforced on
// insert so the unique constraint covers the unordered pair.
type FusionRecipe struct {
	bun.BaseModel `bun:"table:fusion_recipes,alias:fr"`

	ID          int64     `bun:"id,pk,autoincrement"`
	InputA      int64     `bun:"input_a,notnull,unique:fusion_recipes_pair_key"`
	InputB      int64     `bun:"input_b,notnull,unique:fusion_recipes_pair_key"`
	ResultID    int64     `bun:"result_id,notnull"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}
