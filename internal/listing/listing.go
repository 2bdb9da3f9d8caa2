// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"sync"

	"github.com/pdiddy/pokedex/pkg/types"
)

// Listing is the set of visible cards. A card's render identity is its
// numeric id; rendering an id that is already visible is a no-op.
type Listing struct {
	mu    sync.RWMutex
	cards []types.Detail
	ids   map[int]struct{}
}

// NewListing returns an empty listing.
func NewListing() *Listing {
	return &Listing{ids: make(map[int]struct{})}
}

// Render appends d unless a card with the same id is visible, and reports
// whether it was appended.
func (l *Listing) Render(d types.Detail) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.ids[d.ID]; ok {
		return false
	}
	l.ids[d.ID] = struct{}{}
	l.cards = append(l.cards, d)
	return true
}

// Clear removes every visible card.
func (l *Listing) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cards = nil
	l.ids = make(map[int]struct{})
}

// Cards returns a copy of the visible cards in render order.
func (l *Listing) Cards() []types.Detail {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.Detail, len(l.cards))
	copy(out, l.cards)
	return out
}

// Len returns the number of visible cards.
func (l *Listing) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cards)
}
