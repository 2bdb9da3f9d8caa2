// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import "github.com/charmbracelet/bubbles/key"

// listKeys holds key bindings while the card list has focus.
type listKeys struct {
	LoadMore key.Binding
	Search   key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		LoadMore: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the list bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.LoadMore, k.Search, k.Up, k.Down, k.Quit}
}

// FullHelp returns the list bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LoadMore, k.Search},
		{k.Up, k.Down, k.Quit},
	}
}

// searchKeys holds key bindings while the search input has focus.
type searchKeys struct {
	Done key.Binding
	Quit key.Binding
}

func newSearchKeys() searchKeys {
	return searchKeys{
		Done: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "back to list")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns the search bindings for the help bar.
func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Quit}
}

// FullHelp returns the search bindings grouped for expanded help.
func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Done, k.Quit}}
}
