// Package fusion resolves card pairs against the recipe table and derives the
// resulting card's stats. Resolution is pure: no state is touched and the same
// inputs always produce the identical result.
package fusion

import (
	"errors"
	"fmt"
	"math"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/config"
)

// ErrNoRecipe reports that no recipe exists for the given pair. This is an
// expected outcome of browsing fusion candidates, not a fault.
var ErrNoRecipe = errors.New("no fusion recipe for this card pair")

// ErrSameCard is the self-fusion case of ErrNoRecipe: recipe inputs are
// distinct ids, so a card paired with itself can never match.
var ErrSameCard = fmt.Errorf("%w: cannot fuse a card with itself", ErrNoRecipe)

// Stat blend weights. The first operand of the formula is always the
// lower-id card, so resolution is independent of argument order.
const (
	boost = config.FusionBoost

	strWeightA = 0.6
	strWeightB = 0.4
	spdWeightA = 0.5
	spdWeightB = 0.5
	defWeightA = 0.4
	defWeightB = 0.6
)

type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve looks up the recipe for the unordered pair (a, b) and computes the
// fused card. The returned card carries instance id 0; the collection manager
// mints the real id when the fusion is confirmed. SourceIDs keep the caller's
// argument order for provenance display.
//
// Fused cards may be passed as inputs: their instance ids never appear in the
// recipe table, so such pairs resolve to ErrNoRecipe.
func (r *Resolver) Resolve(a, b catalog.Card) (*catalog.FusionCard, error) {
	if a.CardID() == b.CardID() {
		return nil, ErrSameCard
	}

	recipe, ok := r.catalog.RecipeFor(a.CardID(), b.CardID())
	if !ok {
		return nil, ErrNoRecipe
	}

	// Canonical operand order: lower id plays the "A" role of the weighted
	// blend, so Resolve(x, y) and Resolve(y, x) are stat-identical.
	lo, hi := a, b
	if lo.CardID() > hi.CardID() {
		lo, hi = hi, lo
	}

	return &catalog.FusionCard{
		TemplateID:  recipe.Result.TemplateID,
		Title:       recipe.Result.Title,
		Category:    catalog.CategoryFusion,
		Description: recipe.Result.Description,
		Stats:       blendStats(lo.CardStats(), hi.CardStats()),
		SourceIDs:   [2]int64{a.CardID(), b.CardID()},
	}, nil
}

// HasRecipe reports whether the unordered pair has a recipe without computing
// the result. Used by presentation to highlight viable fusion partners.
func (r *Resolver) HasRecipe(a, b int64) bool {
	if a == b {
		return false
	}
	_, ok := r.catalog.RecipeFor(a, b)
	return ok
}

func blendStats(a, b catalog.Stats) catalog.Stats {
	return catalog.Stats{
		Str: blend(a.Str, b.Str, strWeightA, strWeightB),
		Spd: blend(a.Spd, b.Spd, spdWeightA, spdWeightB),
		Def: blend(a.Def, b.Def, defWeightA, defWeightB),
	}
}

func blend(a, b int, wa, wb float64) int {
	v := int(math.Round((float64(a)*wa + float64(b)*wb) * boost))
	if v > catalog.MaxStat {
		return catalog.MaxStat
	}
	return v
}
