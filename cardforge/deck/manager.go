// Package deck owns the player's decks: fixed-length slot sequences with a
// per-card copy limit. Slots hold references into the collection; removing a
// card from a deck never removes it from the collection.
package deck

import (
	"errors"
	"fmt"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/config"
)

var (
	// ErrDeckFull reports that no empty slot remains.
	ErrDeckFull = errors.New("deck is full")

	// ErrMaxCopies reports that the deck already holds the copy limit for
	// that card id.
	ErrMaxCopies = errors.New("max copies of this card already in deck")

	// ErrInvalidIndex reports a slot index outside the deck. The UI should
	// never produce one; the core still refuses it without panicking.
	ErrInvalidIndex = errors.New("slot index out of range")

	// ErrUnknownDeck reports a deck id the manager does not own.
	ErrUnknownDeck = errors.New("unknown deck")
)

// Deck is a named, fixed-capacity ordered sequence of card slots. A nil slot
// is empty. Mutated only through Manager operations.
type Deck struct {
	ID    int
	Name  string
	Slots []catalog.Card
}

// OccupiedCount reports how many slots hold a card.
func (d *Deck) OccupiedCount() int {
	n := 0
	for _, s := range d.Slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Manager owns all decks and enforces capacity and copy limits.
type Manager struct {
	decks     []*Deck
	size      int
	maxCopies int
}

func NewManager() *Manager {
	return NewManagerWith(config.DeckCount, config.DeckSize, config.MaxCopiesPerDeck)
}

func NewManagerWith(count, size, maxCopies int) *Manager {
	m := &Manager{size: size, maxCopies: maxCopies}
	for i := 1; i <= count; i++ {
		m.decks = append(m.decks, &Deck{
			ID:    i,
			Name:  fmt.Sprintf("Deck %d", i),
			Slots: make([]catalog.Card, size),
		})
	}
	return m
}

// Decks returns all decks in id order.
func (m *Manager) Decks() []*Deck {
	out := make([]*Deck, len(m.decks))
	copy(out, m.decks)
	return out
}

// Deck looks up a deck by id.
func (m *Manager) Deck(id int) (*Deck, error) {
	for _, d := range m.decks {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrUnknownDeck
}

// AddCard places the card into the first empty slot. Fails with ErrMaxCopies
// when the deck already holds the copy limit for that card id, and with
// ErrDeckFull when no slot is empty. No other deck is affected.
func (m *Manager) AddCard(d *Deck, c catalog.Card) error {
	if m.CopiesInDeck(d, c.CardID()) >= m.maxCopies {
		return ErrMaxCopies
	}
	idx := firstEmpty(d)
	if idx < 0 {
		return ErrDeckFull
	}
	d.Slots[idx] = c
	return nil
}

// RemoveCard empties the slot at index. Removing an already-empty slot is a
// no-op success.
func (m *Manager) RemoveCard(d *Deck, index int) error {
	if index < 0 || index >= len(d.Slots) {
		return ErrInvalidIndex
	}
	d.Slots[index] = nil
	return nil
}

// Swap exchanges the contents of two slots in the same deck, supporting
// drag reordering. Either slot may be empty.
func (m *Manager) Swap(d *Deck, from, to int) error {
	for _, i := range []int{from, to} {
		if i < 0 || i >= len(d.Slots) {
			return ErrInvalidIndex
		}
	}
	d.Slots[from], d.Slots[to] = d.Slots[to], d.Slots[from]
	return nil
}

// PlaceAt drops a collection card onto a target slot. An empty target is
// occupied directly; an occupied target falls back to the first open slot.
// The copy limit is checked before either placement.
func (m *Manager) PlaceAt(d *Deck, c catalog.Card, to int) error {
	if to < 0 || to >= len(d.Slots) {
		return ErrInvalidIndex
	}
	if m.CopiesInDeck(d, c.CardID()) >= m.maxCopies {
		return ErrMaxCopies
	}
	if d.Slots[to] == nil {
		d.Slots[to] = c
		return nil
	}
	idx := firstEmpty(d)
	if idx < 0 {
		return ErrDeckFull
	}
	d.Slots[idx] = c
	return nil
}

// Rename sets the deck name. The core imposes no uniqueness or length rules.
func (m *Manager) Rename(d *Deck, name string) {
	d.Name = name
}

// CopiesInDeck counts slots holding the given card id.
func (m *Manager) CopiesInDeck(d *Deck, cardID int64) int {
	n := 0
	for _, s := range d.Slots {
		if s != nil && s.CardID() == cardID {
			n++
		}
	}
	return n
}

// IsFull reports whether every slot is occupied.
func (m *Manager) IsFull(d *Deck) bool {
	return d.OccupiedCount() >= m.size
}

func firstEmpty(d *Deck) int {
	for i, s := range d.Slots {
		if s == nil {
			return i
		}
	}
	return -1
}
