// Package catalog holds the immutable card catalog and fusion recipe table.
// Both are built once at startup and never mutated afterwards; every other
// package shares them by reference.
package catalog

import (
	"fmt"
)

type Category string

const (
	CategoryFire     Category = "Fire"
	CategoryIce      Category = "Ice"
	CategoryEarth    Category = "Earth"
	CategoryMagic    Category = "Magic"
	CategoryPhysical Category = "Physical"

	// CategoryFusion is only ever carried by produced fusion cards.
	CategoryFusion Category = "Fusion"

	// CategoryAll is a filter value, not a card category.
	CategoryAll Category = "All"
)

// BaseCategories are the categories a catalog card may declare.
var BaseCategories = []Category{
	CategoryFire,
	CategoryIce,
	CategoryEarth,
	CategoryMagic,
	CategoryPhysical,
}

func (c Category) ValidForBaseCard() bool {
	for _, bc := range BaseCategories {
		if c == bc {
			return true
		}
	}
	return false
}

const (
	MinStat = 0
	MaxStat = 99
)

type Stats struct {
	Str int `toml:"str"`
	Spd int `toml:"spd"`
	Def int `toml:"def"`
}

func (s Stats) InRange() bool {
	for _, v := range []int{s.Str, s.Spd, s.Def} {
		if v < MinStat || v > MaxStat {
			return false
		}
	}
	return true
}

// Card is the tagged variant over the two card kinds. A value is always
// either a *BaseCard or a *FusionCard; consumers type-switch when they need
// the concrete shape.
type Card interface {
	CardID() int64
	CardTitle() string
	CardCategory() Category
	CardStats() Stats
}

// BaseCard is a catalog entry. Immutable once the catalog is built.
type BaseCard struct {
	ID          int64
	Title       string
	Category    Category
	Description string
	Stats       Stats
}

func (c *BaseCard) CardID() int64          { return c.ID }
func (c *BaseCard) CardTitle() string      { return c.Title }
func (c *BaseCard) CardCategory() Category { return c.Category }
func (c *BaseCard) CardStats() Stats       { return c.Stats }

// FusionCard is a produced card instance. ID is the unique instance id minted
// by the collection manager on confirmation; it stays 0 on resolver previews.
// TemplateID identifies the recipe result and is shared by every instance
// produced from it. SourceIDs keep the caller's original argument order and
// are display provenance only.
type FusionCard struct {
	ID          int64
	TemplateID  int64
	Title       string
	Category    Category
	Description string
	Stats       Stats
	SourceIDs   [2]int64
}

func (c *FusionCard) CardID() int64          { return c.ID }
func (c *FusionCard) CardTitle() string      { return c.Title }
func (c *FusionCard) CardCategory() Category { return c.Category }
func (c *FusionCard) CardStats() Stats       { return c.Stats }

// RecipeResult is the template a recipe produces. The same template id may be
// reachable from several input pairs; stats always come from the inputs.
type RecipeResult struct {
	TemplateID  int64
	Title       string
	Description string
}

// Recipe maps an unordered pair of base card ids to a result template.
// InputA < InputB always holds after catalog construction.
type Recipe struct {
	InputA int64
	InputB int64
	Result RecipeResult
}

// PairKey is a normalized unordered id pair used for recipe lookup.
type PairKey [2]int64

func NormalizePair(a, b int64) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{a, b}
}

type Catalog struct {
	cards   []*BaseCard
	byID    map[int64]*BaseCard
	recipes []*Recipe
	byPair  map[PairKey]*Recipe
}

// New validates the raw data and builds the catalog. It is the single
// construction path for both the embedded data files and the database loader.
func New(cards []*BaseCard, recipes []*Recipe) (*Catalog, error) {
	c := &Catalog{
		cards:   make([]*BaseCard, 0, len(cards)),
		byID:    make(map[int64]*BaseCard, len(cards)),
		recipes: make([]*Recipe, 0, len(recipes)),
		byPair:  make(map[PairKey]*Recipe, len(recipes)),
	}

	for _, card := range cards {
		if card.ID <= 0 {
			return nil, fmt.Errorf("catalog: card %q has invalid id %d", card.Title, card.ID)
		}
		if _, dup := c.byID[card.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %d", card.ID)
		}
		if card.Title == "" {
			return nil, fmt.Errorf("catalog: card %d has empty title", card.ID)
		}
		if !card.Category.ValidForBaseCard() {
			return nil, fmt.Errorf("catalog: card %d has unknown category %q", card.ID, card.Category)
		}
		if !card.Stats.InRange() {
			return nil, fmt.Errorf("catalog: card %d stats out of range: %+v", card.ID, card.Stats)
		}
		c.byID[card.ID] = card
		c.cards = append(c.cards, card)
	}

	for _, r := range recipes {
		if r.InputA == r.InputB {
			return nil, fmt.Errorf("catalog: recipe %q fuses card %d with itself", r.Result.Title, r.InputA)
		}
		for _, id := range []int64{r.InputA, r.InputB} {
			if _, ok := c.byID[id]; !ok {
				return nil, fmt.Errorf("catalog: recipe %q references unknown card %d", r.Result.Title, id)
			}
		}
		key := NormalizePair(r.InputA, r.InputB)
		if _, dup := c.byPair[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate recipe for pair %v", key)
		}
		normalized := &Recipe{InputA: key[0], InputB: key[1], Result: r.Result}
		c.byPair[key] = normalized
		c.recipes = append(c.recipes, normalized)
	}

	return c, nil
}

// Cards returns the base cards in definition order. The returned slice is a
// copy; the cards themselves are shared and must not be mutated.
func (c *Catalog) Cards() []*BaseCard {
	out := make([]*BaseCard, len(c.cards))
	copy(out, c.cards)
	return out
}

func (c *Catalog) Card(id int64) (*BaseCard, bool) {
	card, ok := c.byID[id]
	return card, ok
}

func (c *Catalog) Len() int { return len(c.cards) }

// RecipeFor looks up the recipe for an unordered id pair.
func (c *Catalog) RecipeFor(a, b int64) (*Recipe, bool) {
	r, ok := c.byPair[NormalizePair(a, b)]
	return r, ok
}

func (c *Catalog) Recipes() []*Recipe {
	out := make([]*Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// HighestID reports the largest id used by any card or result template. The
// collection manager seeds its instance id counter above it.
func (c *Catalog) HighestID() int64 {
	var max int64
	for _, card := range c.cards {
		if card.ID > max {
			max = card.ID
		}
	}
	for _, r := range c.recipes {
		if r.Result.TemplateID > max {
			max = r.Result.TemplateID
		}
	}
	return max
}
