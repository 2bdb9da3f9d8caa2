// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/pokedex/pkg/types"
)

func TestListingRenderIsIdempotentPerID(t *testing.T) {
	l := NewListing()
	assert.True(t, l.Render(types.Detail{ID: 25, Name: "pikachu"}))
	assert.False(t, l.Render(types.Detail{ID: 25, Name: "pikachu"}))
	assert.True(t, l.Render(types.Detail{ID: 26, Name: "raichu"}))
	assert.Equal(t, 2, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Render(types.Detail{ID: 25, Name: "pikachu"}), "cleared ids render again")
}

func TestListingCardsIsACopy(t *testing.T) {
	l := NewListing()
	l.Render(types.Detail{ID: 1, Name: "bulbasaur"})

	cards := l.Cards()
	cards[0].Name = "changed"
	assert.Equal(t, "bulbasaur", l.Cards()[0].Name)
}
