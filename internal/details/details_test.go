// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package details

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pokedex/internal/catalog"
	"github.com/pdiddy/pokedex/internal/catalogtest"
	"github.com/pdiddy/pokedex/internal/flavor"
	"github.com/pdiddy/pokedex/pkg/types"
)

func testLoader(t *testing.T, f catalogtest.Fixture) (*Loader, *catalogtest.Server) {
	t.Helper()
	srv := catalogtest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewLoader(catalog.NewClient(types.CatalogConfig{BaseURL: srv.URL}, nil), nil), srv
}

func TestLoadFullPage(t *testing.T) {
	l, _ := testLoader(t, catalogtest.Starters())

	page, err := l.Load(context.Background(), "bulbasaur", "es")
	require.NoError(t, err)

	assert.Equal(t, 1, page.Detail.ID)
	assert.Equal(t, 69, page.Detail.WeightDeci)
	// No es or pt entry: falls back to the first english entry, cleaned.
	assert.Equal(t, "A strange seed was planted on its back at birth.", page.FlavorText)
	assert.Equal(t, []types.EvolutionStage{
		{SpeciesName: "bulbasaur", SpeciesID: 1},
		{SpeciesName: "ivysaur", SpeciesID: 2},
		{SpeciesName: "venusaur", SpeciesID: 3},
	}, page.Evolution)
}

func TestLoadPreferredLanguage(t *testing.T) {
	l, _ := testLoader(t, catalogtest.Starters())

	page, err := l.Load(context.Background(), "bulbasaur", "ja")
	require.NoError(t, err)
	assert.Contains(t, page.FlavorText, "ふしぎな")
}

func TestLoadWithoutChain(t *testing.T) {
	l, srv := testLoader(t, catalogtest.Starters())

	page, err := l.Load(context.Background(), "tauros", "en")
	require.NoError(t, err)
	assert.Equal(t, "Tauros text.", page.FlavorText)
	assert.Empty(t, page.Evolution)
	assert.Zero(t, srv.Hits("/evolution-chain/1/"))
}

func TestLoadRootFailure(t *testing.T) {
	l, srv := testLoader(t, catalogtest.Starters())

	_, err := l.Load(context.Background(), "missingno", "pt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDetailsUnavailable)
	assert.Zero(t, srv.Hits("/pokemon-species/missingno"))
}

func TestLoadSpeciesFailureKeepsBaseData(t *testing.T) {
	f := catalogtest.Starters()
	f.Fail = map[string]bool{"/pokemon-species/eevee": true}
	l, _ := testLoader(t, f)

	page, err := l.Load(context.Background(), "eevee", "en")
	require.NoError(t, err)
	assert.Equal(t, 133, page.Detail.ID)
	assert.Equal(t, flavor.Placeholder, page.FlavorText)
	assert.Empty(t, page.Evolution)
}

func TestLoadChainFailureKeepsFlavor(t *testing.T) {
	f := catalogtest.Starters()
	f.Fail = map[string]bool{"/evolution-chain/67/": true}
	l, _ := testLoader(t, f)

	page, err := l.Load(context.Background(), "eevee", "en")
	require.NoError(t, err)
	assert.Equal(t, "Eevee text.", page.FlavorText)
	assert.Empty(t, page.Evolution)
}
