package database

import (
	"context"
	"fmt"
	"time"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/database/repositories"
	"github.com/forgelabs/cardforge/cardforge/logger"
)

// LoadCatalog builds the immutable catalog from the database rows. The result
// goes through the same validation as the embedded data.
func LoadCatalog(ctx context.Context, cardRepo repositories.CardRepository, recipeRepo repositories.RecipeRepository) (*catalog.Catalog, error) {
	start := time.Now()

	rows, err := cardRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	recipeRows, err := recipeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	cards := make([]*catalog.BaseCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, &catalog.BaseCard{
			ID:          row.ID,
			Title:       row.Title,
			Category:    catalog.Category(row.Category),
			Description: row.Description,
			Stats:       catalog.Stats{Str: row.Str, Spd: row.Spd, Def: row.Def},
		})
	}

	recipes := make([]*catalog.Recipe, 0, len(recipeRows))
	for _, row := range recipeRows {
		recipes = append(recipes, &catalog.Recipe{
			InputA: row.InputA,
			InputB: row.InputB,
			Result: catalog.RecipeResult{
				TemplateID:  row.ResultID,
				Title:       row.Title,
				Description: row.Description,
			},
		})
	}

	cat, err := catalog.New(cards, recipes)
	if err != nil {
		return nil, err
	}

	logger.LogQuery("load catalog", time.Since(start), nil)
	return cat, nil
}
