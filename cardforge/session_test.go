package cardforge

import (
	"context"
	"errors"
	"testing"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/deck"
	"github.com/forgelabs/cardforge/cardforge/fusion"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNew_EmbeddedCatalog(t *testing.T) {
	s := newTestSession(t)

	if got := s.Catalog.Len(); got != 18 {
		t.Errorf("catalog size = %d, want 18", got)
	}
	if got := len(s.Decks.Decks()); got != 4 {
		t.Errorf("deck count = %d, want 4", got)
	}
	if s.ActiveDeck() == nil || s.ActiveDeck().ID != 1 {
		t.Error("active deck is not deck 1")
	}
}

func TestSession_SelectDeck(t *testing.T) {
	s := newTestSession(t)

	if err := s.SelectDeck(3); err != nil {
		t.Fatalf("SelectDeck(3) error = %v", err)
	}
	if s.ActiveDeck().ID != 3 {
		t.Errorf("active deck = %d, want 3", s.ActiveDeck().ID)
	}

	if err := s.SelectDeck(7); !errors.Is(err, deck.ErrUnknownDeck) {
		t.Errorf("SelectDeck(7) error = %v, want ErrUnknownDeck", err)
	}
	if s.ActiveDeck().ID != 3 {
		t.Error("failed select changed the active deck")
	}
}

// Browse, preview, confirm: the fused card joins the collection and can be
// placed in a deck like any other card.
func TestSession_FusionRoundTrip(t *testing.T) {
	s := newTestSession(t)

	results := s.Collection.Search("fire sky", catalog.CategoryAll)
	if len(results) != 1 {
		t.Fatalf("Search(fire sky) = %d cards, want 1", len(results))
	}
	a := results[0]
	b := s.Collection.FindOne("blizzard")
	if b == nil {
		t.Fatal("FindOne(blizzard) = nil")
	}

	preview, err := s.ResolveFusion(a, b)
	if err != nil {
		t.Fatalf("ResolveFusion error = %v", err)
	}
	if preview.ID != 0 {
		t.Errorf("preview id = %d, want 0 before confirm", preview.ID)
	}
	if got := len(s.Collection.Fused()); got != 0 {
		t.Fatalf("collection grew on preview: %d fused cards", got)
	}

	fused := s.ConfirmFusion(preview)
	if fused.ID == 0 {
		t.Fatal("confirmed fusion has no instance id")
	}
	if got := s.Collection.FusedCount(fused.TemplateID); got != 1 {
		t.Errorf("FusedCount = %d, want 1", got)
	}

	if err := s.Decks.AddCard(s.ActiveDeck(), fused); err != nil {
		t.Fatalf("AddCard(fused) error = %v", err)
	}
	if got := s.Decks.CopiesInDeck(s.ActiveDeck(), fused.ID); got != 1 {
		t.Errorf("CopiesInDeck(fused) = %d, want 1", got)
	}
}

func TestSession_FusionNoRecipe(t *testing.T) {
	s := newTestSession(t)

	a, _ := s.Catalog.Card(1)
	b, _ := s.Catalog.Card(2)
	if _, err := s.ResolveFusion(a, b); !errors.Is(err, fusion.ErrNoRecipe) {
		t.Errorf("ResolveFusion(1, 2) error = %v, want ErrNoRecipe", err)
	}
}

func TestSession_GameConfigOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game.DeckCount = 2
	cfg.Game.DeckSize = 5
	cfg.Game.MaxCopiesPerDeck = 1

	s, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := len(s.Decks.Decks()); got != 2 {
		t.Errorf("deck count = %d, want 2", got)
	}
	d := s.ActiveDeck()
	if len(d.Slots) != 5 {
		t.Errorf("deck size = %d, want 5", len(d.Slots))
	}

	card, _ := s.Catalog.Card(1)
	if err := s.Decks.AddCard(d, card); err != nil {
		t.Fatalf("AddCard error = %v", err)
	}
	if err := s.Decks.AddCard(d, card); !errors.Is(err, deck.ErrMaxCopies) {
		t.Errorf("second AddCard error = %v, want ErrMaxCopies", err)
	}
}
