// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pokedex/internal/catalog"
	"github.com/pdiddy/pokedex/internal/catalogtest"
	"github.com/pdiddy/pokedex/internal/listing"
	"github.com/pdiddy/pokedex/pkg/types"
)

func newTestModel(t *testing.T, n, batchSize int) (Model, *listing.Session) {
	t.Helper()
	srv := catalogtest.NewServer(catalogtest.Numbered(n))
	t.Cleanup(srv.Close)

	client := catalog.NewClient(types.CatalogConfig{BaseURL: srv.URL}, nil)
	s, err := listing.Open(context.Background(), client, types.ListingConfig{BatchSize: batchSize}, nil)
	require.NoError(t, err)
	return New(context.Background(), s), s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestInitLoadsFirstBatch(t *testing.T) {
	m, s := newTestModel(t, 120, 50)
	assert.Contains(t, m.View(), "loading...")

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, 50, s.Cursor())
	view := m.View()
	assert.Contains(t, view, "Mon-001")
	assert.Contains(t, view, "#050")
	assert.Contains(t, view, "loaded 0-50 of 120")
}

func TestLoadMoreStopsWhenDone(t *testing.T) {
	m, s := newTestModel(t, 120, 50)
	m, _ = update(t, m, m.Init()())

	m, cmd := update(t, m, runes("m"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "loading...")

	// A second press while the batch is in flight is ignored.
	_, again := update(t, m, runes("m"))
	assert.Nil(t, again)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 100, s.Cursor())

	m, cmd = update(t, m, runes("m"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.True(t, s.Done())
	assert.Contains(t, m.View(), "all entries loaded")

	_, cmd = update(t, m, runes("m"))
	assert.Nil(t, cmd)
	assert.Equal(t, 120, s.Cursor())
}

func TestSearchInputCapturesKeys(t *testing.T) {
	m, s := newTestModel(t, 10, 5)
	m, _ = update(t, m, m.Init()())

	m, _ = update(t, m, runes("/"))
	require.True(t, m.searching)

	// "m" and "q" are text while the input has focus.
	m, cmd := update(t, m, runes("m"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "m", m.input.Value())
	assert.Equal(t, 5, s.Cursor())

	m, _ = update(t, m, runes("q"))
	assert.Equal(t, "mq", m.input.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searching)

	_, cmd = update(t, m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestSearchCoalescesEditsWhileInFlight(t *testing.T) {
	m, s := newTestModel(t, 30, 10)
	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, runes("/"))

	m, _ = update(t, m, runes("mon-01"))
	assert.True(t, m.searchInFlight)
	assert.Nil(t, m.pending)

	m, _ = update(t, m, runes("1"))
	m, _ = update(t, m, runes("x"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, m.pending)
	assert.Equal(t, "mon-011", *m.pending)

	// The first search lands; only the latest edit runs next.
	first := searchDoneMsg{query: "mon-01", result: s.Search(context.Background(), "mon-01")}
	m, cmd := update(t, m, first)
	require.NotNil(t, cmd)
	assert.True(t, m.searchInFlight)
	assert.Nil(t, m.pending)

	m, cmd = update(t, m, cmd())
	assert.Nil(t, cmd)
	assert.False(t, m.searchInFlight)
	assert.Equal(t, "mon-011", m.lastQuery)

	view := m.View()
	assert.Contains(t, view, "Mon-011")
	assert.NotContains(t, view, "Mon-010")
	assert.Contains(t, view, `1 match(es) for "mon-011"`)
	assert.Equal(t, 10, s.Cursor())
}

func TestSearchDoneSkipsRepeatOfSameQuery(t *testing.T) {
	m, s := newTestModel(t, 10, 5)
	m, _ = update(t, m, m.Init()())

	q := "mon-002"
	m.searchInFlight = true
	m.pending = &q

	m, cmd := update(t, m, searchDoneMsg{query: q, result: s.Search(context.Background(), q)})
	assert.Nil(t, cmd)
	assert.False(t, m.searchInFlight)
}

func TestScrollStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t, 3, 3)
	m, _ = update(t, m, m.Init()())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.offset)

	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.offset)
	assert.NotContains(t, m.View(), "Mon-001")
}

func TestWindowSizeLimitsVisibleRows(t *testing.T) {
	m, _ := newTestModel(t, 20, 20)
	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: chrome + 3})

	view := m.View()
	assert.Contains(t, view, "Mon-003")
	assert.NotContains(t, view, "Mon-004")
}
