package collection

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/forgelabs/cardforge/cardforge/catalog"
)

// cardSearchItems implements fuzzy.Source over collection entries.
type cardSearchItems struct {
	cards []catalog.Card
	names []string
}

func newSearchItems(cards []catalog.Card) cardSearchItems {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = normalizeTitle(c.CardTitle())
	}
	return cardSearchItems{cards: cards, names: names}
}

func (s cardSearchItems) Len() int            { return len(s.cards) }
func (s cardSearchItems) String(i int) string { return s.names[i] }

// FindOne returns the best fuzzy title match for a free-form query, or nil
// when nothing matches. It lets callers accept sloppy input ("frst nova")
// where Search demands an exact substring.
func (m *Manager) FindOne(query string) catalog.Card {
	query = normalizeTitle(query)
	if query == "" {
		return nil
	}

	items := newSearchItems(m.All())
	matches := fuzzy.FindFrom(query, items)
	if len(matches) == 0 {
		return nil
	}
	return items.cards[matches[0].Index]
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
