// Command migrate seeds the embedded card catalog and fusion recipe table
// into Postgres so sessions can use the database as their catalog source.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/forgelabs/cardforge/cardforge"
	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/database"
	"github.com/forgelabs/cardforge/cardforge/database/models"
	"github.com/forgelabs/cardforge/cardforge/database/repositories"
	"github.com/forgelabs/cardforge/cardforge/logger"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(nil)))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := cardforge.LoadConfig(*path)
	if err != nil {
		logger.LogError("Failed to load configuration", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(cfg.Log.SlogLevel(), cfg.Log.Format, cfg.Log.AddSource))

	ctx := context.Background()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		logger.LogError("Failed to initialize schema", err)
		os.Exit(1)
	}

	cat, err := catalog.LoadEmbedded()
	if err != nil {
		logger.LogError("Failed to load embedded catalog", err)
		os.Exit(1)
	}

	cardRepo := repositories.NewCardRepository(db.BunDB())
	recipeRepo := repositories.NewRecipeRepository(db.BunDB())

	cards := make([]*models.Card, 0, cat.Len())
	for _, c := range cat.Cards() {
		cards = append(cards, &models.Card{
			ID:          c.ID,
			Title:       c.Title,
			Category:    string(c.Category),
			Description: c.Description,
			Str:         c.Stats.Str,
			Spd:         c.Stats.Spd,
			Def:         c.Stats.Def,
		})
	}
	inserted, err := cardRepo.BulkCreate(ctx, cards)
	if err != nil {
		logger.LogError("Failed to seed cards", err)
		os.Exit(1)
	}
	logger.LogSystem("Seeded cards", slog.Int("inserted", inserted), slog.Int("total", len(cards)))

	recipes := make([]*models.FusionRecipe, 0, len(cat.Recipes()))
	for _, r := range cat.Recipes() {
		recipes = append(recipes, &models.FusionRecipe{
			InputA:      r.InputA,
			InputB:      r.InputB,
			ResultID:    r.Result.TemplateID,
			Title:       r.Result.Title,
			Description: r.Result.Description,
		})
	}
	inserted, err = recipeRepo.BulkCreate(ctx, recipes)
	if err != nil {
		logger.LogError("Failed to seed recipes", err)
		os.Exit(1)
	}
	logger.LogSystem("Seeded recipes", slog.Int("inserted", inserted), slog.Int("total", len(recipes)))
}
