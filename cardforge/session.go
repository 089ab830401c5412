// Package cardforge wires the catalog, collection, deck and fusion components
// into a single player session. All state lives for the lifetime of the
// session only; nothing is persisted.
package cardforge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/collection"
	"github.com/forgelabs/cardforge/cardforge/database"
	"github.com/forgelabs/cardforge/cardforge/database/repositories"
	"github.com/forgelabs/cardforge/cardforge/deck"
	"github.com/forgelabs/cardforge/cardforge/fusion"
)

// Session is the in-process boundary the presentation layer talks to. It owns
// one player's decks and collection and assumes a single actor issuing one
// action at a time; it is not safe for concurrent use.
type Session struct {
	Cfg        Config
	Catalog    *catalog.Catalog
	Collection *collection.Manager
	Decks      *deck.Manager
	Resolver   *fusion.Resolver

	activeDeckID int
}

// New builds a session from the configured catalog source: Postgres when
// cfg.DB.Enabled, the embedded data files otherwise.
func New(ctx context.Context, cfg Config) (*Session, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.DB.Enabled {
		cat, err = loadCatalogFromDB(ctx, cfg.DB)
	} else {
		cat, err = catalog.LoadEmbedded()
	}
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(cfg, cat), nil
}

// NewWithCatalog builds a session over an already-constructed catalog.
func NewWithCatalog(cfg Config, cat *catalog.Catalog) *Session {
	cfg.Game.applyDefaults()
	return &Session{
		Cfg:          cfg,
		Catalog:      cat,
		Collection:   collection.NewManagerWith(cat, cfg.Game.BaseCardCopies),
		Decks:        deck.NewManagerWith(cfg.Game.DeckCount, cfg.Game.DeckSize, cfg.Game.MaxCopiesPerDeck),
		Resolver:     fusion.NewResolver(cat),
		activeDeckID: 1,
	}
}

func loadCatalogFromDB(ctx context.Context, cfg DBConfig) (*catalog.Catalog, error) {
	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Database,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}
	defer db.Close()

	cardRepo := repositories.NewCardRepository(db.BunDB())
	recipeRepo := repositories.NewRecipeRepository(db.BunDB())
	return database.LoadCatalog(ctx, cardRepo, recipeRepo)
}

// ActiveDeck returns the deck the presentation layer is editing.
func (s *Session) ActiveDeck() *deck.Deck {
	d, _ := s.Decks.Deck(s.activeDeckID)
	return d
}

// SelectDeck switches the active deck.
func (s *Session) SelectDeck(id int) error {
	if _, err := s.Decks.Deck(id); err != nil {
		return err
	}
	s.activeDeckID = id
	return nil
}

// ResolveFusion previews the fusion of two collection cards. Pure; nothing is
// added to the collection until ConfirmFusion.
func (s *Session) ResolveFusion(a, b catalog.Card) (*catalog.FusionCard, error) {
	return s.Resolver.Resolve(a, b)
}

// ConfirmFusion commits a previewed fusion result to the collection and
// returns the stored instance with its minted id.
func (s *Session) ConfirmFusion(fc *catalog.FusionCard) *catalog.FusionCard {
	stored := s.Collection.AddFused(fc)
	slog.Info("Fusion confirmed",
		slog.String("title", stored.Title),
		slog.Int64("instance_id", stored.ID),
		slog.Int64("template_id", stored.TemplateID))
	return stored
}
