// Package collection owns the cards available to the player: the fixed base
// catalog plus every fusion card confirmed during the session. The set only
// grows; fusing never consumes the inputs.
package collection

import (
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/config"
)

type Manager struct {
	catalog    *catalog.Catalog
	baseCopies int

	fused []*catalog.FusionCard

	// nextID mints fused-card instance ids. Strictly monotonic and seeded
	// above every catalog and template id, so ids never collide however
	// quickly fusions are confirmed.
	nextID int64

	searchCache *lru.Cache
	now         func() time.Time
}

// searchResult is one cached Search outcome. Entries older than
// config.CacheExpiration are recomputed on the next hit.
type searchResult struct {
	cards []catalog.Card
	at    time.Time
}

func NewManager(cat *catalog.Catalog) *Manager {
	return NewManagerWith(cat, config.BaseCardCopies)
}

func NewManagerWith(cat *catalog.Catalog, baseCopies int) *Manager {
	cache, _ := lru.New(config.SearchCacheSize)
	return &Manager{
		catalog:     cat,
		baseCopies:  baseCopies,
		nextID:      cat.HighestID() + 1,
		searchCache: cache,
		now:         time.Now,
	}
}

// All returns every collection entry: catalog cards in definition order
// followed by fused cards in creation order.
func (m *Manager) All() []catalog.Card {
	base := m.catalog.Cards()
	out := make([]catalog.Card, 0, len(base)+len(m.fused))
	for _, c := range base {
		out = append(out, c)
	}
	for _, f := range m.fused {
		out = append(out, f)
	}
	return out
}

// Search filters the collection by a case-insensitive title substring and a
// category. CategoryAll matches every category. Order is stable: catalog
// definition order, then fusion creation order.
func (m *Manager) Search(query string, filter catalog.Category) []catalog.Card {
	key := fmt.Sprintf("%s|%s", strings.ToLower(query), filter)
	if cached, ok := m.searchCache.Get(key); ok {
		entry := cached.(searchResult)
		if m.now().Sub(entry.at) < config.CacheExpiration {
			return entry.cards
		}
		m.searchCache.Remove(key)
	}

	q := strings.ToLower(query)
	var out []catalog.Card
	for _, c := range m.All() {
		if q != "" && !strings.Contains(strings.ToLower(c.CardTitle()), q) {
			continue
		}
		if filter != catalog.CategoryAll && c.CardCategory() != filter {
			continue
		}
		out = append(out, c)
	}

	m.searchCache.Add(key, searchResult{cards: out, at: m.now()})
	return out
}

// AddFused appends a confirmed fusion card to the collection, minting its
// unique instance id. The input is copied; the stored instance is returned.
func (m *Manager) AddFused(fc *catalog.FusionCard) *catalog.FusionCard {
	stored := *fc
	stored.ID = m.nextID
	m.nextID++

	m.fused = append(m.fused, &stored)
	m.searchCache.Purge()
	return &stored
}

// CopiesAvailable reports how many copies of a card the player owns: a fixed
// constant for base cards, the per-template instance count for fused cards.
func (m *Manager) CopiesAvailable(c catalog.Card) int {
	switch v := c.(type) {
	case *catalog.FusionCard:
		return m.FusedCount(v.TemplateID)
	default:
		return m.baseCopies
	}
}

// Fused returns the fused cards in creation order.
func (m *Manager) Fused() []*catalog.FusionCard {
	out := make([]*catalog.FusionCard, len(m.fused))
	copy(out, m.fused)
	return out
}

// FusedCount counts the owned instances of a result template.
func (m *Manager) FusedCount(templateID int64) int {
	n := 0
	for _, f := range m.fused {
		if f.TemplateID == templateID {
			n++
		}
	}
	return n
}
