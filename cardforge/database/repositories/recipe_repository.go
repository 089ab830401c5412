package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/forgelabs/cardforge/cardforge/config"
	"github.com/forgelabs/cardforge/cardforge/database/models"
)

type RecipeRepository interface {
	GetAll(ctx context.Context) ([]*models.FusionRecipe, error)
	GetByPair(ctx context.Context, inputA, inputB int64) (*models.FusionRecipe, error)
	BulkCreate(ctx context.Context, recipes []*models.FusionRecipe) (int, error)
	GetRecipeCount(ctx context.Context) (int64, error)
}

type recipeRepository struct {
	db *bun.DB
}

func NewRecipeRepository(db *bun.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetAll(ctx context.Context) ([]*models.FusionRecipe, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var recipes []*models.FusionRecipe
	err := r.db.NewSelect().
		Model(&recipes).
		Order("id ASC").
		Scan(ctx)
	return recipes, err
}

func (r *recipeRepository) GetByPair(ctx context.Context, inputA, inputB int64) (*models.FusionRecipe, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	if inputA > inputB {
		inputA, inputB = inputB, inputA
	}

	recipe := new(models.FusionRecipe)
	err := r.db.NewSelect().
		Model(recipe).
		Where("input_a = ? AND input_b = ?", inputA, inputB).
		Scan(ctx)
	return recipe, err
}

func (r *recipeRepository) BulkCreate(ctx context.Context, recipes []*models.FusionRecipe) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	now := time.Now()
	for _, recipe := range recipes {
		if recipe.InputA > recipe.InputB {
			recipe.InputA, recipe.InputB = recipe.InputB, recipe.InputA
		}
		recipe.CreatedAt = now
		recipe.UpdatedAt = now
	}

	total := 0
	for _, batch := range batches(recipes, config.DefaultBatchSize) {
		res, err := r.db.NewInsert().
			Model(&batch).
			On("CONFLICT (input_a, input_b) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return total, err
		}
		n, _ := res.RowsAffected()
		total += int(n)
	}
	return total, nil
}

func (r *recipeRepository) GetRecipeCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	count, err := r.db.NewSelect().
		Model((*models.FusionRecipe)(nil)).
		Count(ctx)
	return int64(count), err
}
