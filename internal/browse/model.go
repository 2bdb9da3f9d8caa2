// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browse is the interactive listing view. It drives one listing
// session: batches are loaded on demand and every edit of the search input
// re-filters the index.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/pokedex/internal/listing"
	"github.com/pdiddy/pokedex/internal/render"
)

// chrome is the number of lines used by the header, input, status, and help.
const chrome = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EE1515"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

type batchLoadedMsg struct {
	result listing.BatchResult
}

type searchDoneMsg struct {
	query  string
	result listing.SearchResult
}

// Model is the Bubble Tea model of the listing view.
type Model struct {
	ctx        context.Context
	session    *listing.Session
	input      textinput.Model
	help       help.Model
	listKeys   listKeys
	searchKeys searchKeys

	searching bool
	loading   bool

	// Searches run one at a time; edits made while one is in flight are
	// coalesced into pending and run when it finishes.
	searchInFlight bool
	pending        *string
	lastQuery      string

	status string
	offset int
	width  int
	height int
}

// New returns a Model bound to session. ctx scopes every fetch the view starts.
func New(ctx context.Context, session *listing.Session) Model {
	in := textinput.New()
	in.Placeholder = "Search by name or number..."
	in.Prompt = "/ "
	return Model{
		ctx:        ctx,
		session:    session,
		input:      in,
		help:       help.New(),
		listKeys:   newListKeys(),
		searchKeys: newSearchKeys(),
		loading:    true,
	}
}

// Init loads the first batch.
func (m Model) Init() tea.Cmd {
	return m.loadBatch()
}

func (m Model) loadBatch() tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return batchLoadedMsg{result: s.LoadNextBatch(ctx)}
	}
}

func (m Model) search(query string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return searchDoneMsg{query: query, result: s.Search(ctx, query)}
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case batchLoadedMsg:
		m.loading = false
		r := msg.result
		m.status = fmt.Sprintf("loaded %d-%d of %d", r.Start, r.End, m.session.Total())
		if r.Failed > 0 {
			m.status += fmt.Sprintf(" (%d failed)", r.Failed)
		}
		return m, nil

	case searchDoneMsg:
		m.searchInFlight = false
		m.lastQuery = msg.query
		m.offset = 0
		m.status = fmt.Sprintf("%d match(es) for %q", msg.result.Matched, msg.result.Query)
		if msg.result.Failed > 0 {
			m.status += fmt.Sprintf(" (%d failed)", msg.result.Failed)
		}
		if m.pending != nil {
			q := *m.pending
			m.pending = nil
			if q != msg.query {
				m.searchInFlight = true
				return m, m.search(q)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.listKeys.LoadMore):
		if m.loading || m.session.Done() {
			return m, nil
		}
		m.loading = true
		return m, m.loadBatch()
	case key.Matches(msg, m.listKeys.Search):
		m.searching = true
		return m, m.input.Focus()
	case key.Matches(msg, m.listKeys.Up):
		if m.offset > 0 {
			m.offset--
		}
		return m, nil
	case key.Matches(msg, m.listKeys.Down):
		if m.offset < len(m.session.Cards())-1 {
			m.offset++
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.searchKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.searchKeys.Done):
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	query := m.input.Value()
	if query == before {
		return m, cmd
	}

	if m.searchInFlight {
		m.pending = &query
		return m, cmd
	}
	m.searchInFlight = true
	return m, tea.Batch(cmd, m.search(query))
}

// View renders the header, search input, visible cards, status, and help.
func (m Model) View() string {
	var b strings.Builder

	cards := m.session.Cards()
	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render("Pokedex"),
		numberStyle.Render(fmt.Sprintf("%d visible · %d/%d indexed", len(cards), m.session.Cursor(), m.session.Total())))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	rows := len(cards)
	if m.height > chrome {
		rows = m.height - chrome
	}
	start := min(m.offset, len(cards))
	end := min(start+rows, len(cards))
	if len(cards) == 0 {
		b.WriteString("No entries.\n")
	}
	for _, c := range cards[start:end] {
		fmt.Fprintf(&b, "%s %-14s %s\n", numberStyle.Render(render.Number(c.ID)), render.Title(c.Name), render.TypeBadges(c.Types))
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.help.View(m.searchKeys))
	} else {
		b.WriteString(m.help.View(m.listKeys))
	}
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.loading:
		return "loading..."
	case m.session.Done():
		if m.status == "" {
			return "all entries loaded"
		}
		return m.status + " · all entries loaded"
	default:
		return m.status
	}
}
