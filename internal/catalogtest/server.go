// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalogtest provides an in-process fake of the PokeAPI endpoints the
// catalog client uses. Tests describe entities, species, and evolution chains
// in a Fixture and point a client at Server.URL.
package catalogtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// Pokemon describes one entity served by the fake.
type Pokemon struct {
	ID     int
	Name   string
	Weight int
	Height int
	Types  []string
}

// FlavorEntry is one flavor text in a species record.
type FlavorEntry struct {
	Lang string
	Text string
}

// Species describes a species record. ChainID 0 means no evolution chain.
type Species struct {
	Flavor  []FlavorEntry
	ChainID int
}

// Link is one node of an evolution tree.
type Link struct {
	Name string
	ID   int
	Next []Link
}

// Fixture is the data served by a Server.
type Fixture struct {
	Pokemon []Pokemon
	Species map[string]Species
	Chains  map[int]Link

	// Fail lists request paths (e.g. "/pokemon/4/") answered with HTTP 500.
	Fail map[string]bool
}

// Server is a running fake. Hits counts requests per path.
type Server struct {
	*httptest.Server

	fixture Fixture
	mu      sync.Mutex
	hits    map[string]int
}

// NewServer starts a fake serving f. Call Close when done.
func NewServer(f Fixture) *Server {
	s := &Server{fixture: f, hits: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Hits returns how many times path was requested.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// DetailHits returns the total number of entity detail requests.
func (s *Server) DetailHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for p, c := range s.hits {
		if strings.HasPrefix(p, "/pokemon/") {
			n += c
		}
	}
	return n
}

// DetailURL returns the locator the fake advertises for an entity id.
func (s *Server) DetailURL(id int) string {
	return fmt.Sprintf("%s/pokemon/%d/", s.URL, id)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	s.mu.Unlock()

	if s.fixture.Fail[r.URL.Path] {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	segs := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(segs) == 1 && segs[0] == "pokemon":
		s.serveList(w, r)
	case len(segs) == 2 && segs[0] == "pokemon":
		s.servePokemon(w, segs[1])
	case len(segs) == 2 && segs[0] == "pokemon-species":
		s.serveSpecies(w, segs[1])
	case len(segs) == 2 && segs[0] == "evolution-chain":
		s.serveChain(w, segs[1])
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	type result struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := []result{}
	for i, p := range s.fixture.Pokemon {
		if i >= limit {
			break
		}
		results = append(results, result{Name: p.Name, URL: s.DetailURL(p.ID)})
	}
	writeJSON(w, map[string]any{
		"count":   len(s.fixture.Pokemon),
		"next":    nil,
		"results": results,
	})
}

func (s *Server) lookup(key string) (Pokemon, bool) {
	for _, p := range s.fixture.Pokemon {
		if p.Name == key || strconv.Itoa(p.ID) == key {
			return p, true
		}
	}
	return Pokemon{}, false
}

func (s *Server) servePokemon(w http.ResponseWriter, key string) {
	p, ok := s.lookup(key)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	typeList := make([]map[string]any, 0, len(p.Types))
	for i, t := range p.Types {
		typeList = append(typeList, map[string]any{
			"slot": i + 1,
			"type": map[string]string{"name": t, "url": s.URL + "/type/" + t + "/"},
		})
	}
	writeJSON(w, map[string]any{
		"id":     p.ID,
		"name":   p.Name,
		"weight": p.Weight,
		"height": p.Height,
		"types":  typeList,
		"sprites": map[string]any{
			"front_default": fmt.Sprintf("https://sprites.example/%d.png", p.ID),
		},
	})
}

func (s *Server) serveSpecies(w http.ResponseWriter, name string) {
	sp, ok := s.fixture.Species[name]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	entries := make([]map[string]any, 0, len(sp.Flavor))
	for _, f := range sp.Flavor {
		entries = append(entries, map[string]any{
			"flavor_text": f.Text,
			"language":    map[string]string{"name": f.Lang, "url": s.URL + "/language/" + f.Lang + "/"},
		})
	}
	body := map[string]any{
		"flavor_text_entries": entries,
		"evolution_chain":     nil,
	}
	if sp.ChainID != 0 {
		body["evolution_chain"] = map[string]string{
			"url": fmt.Sprintf("%s/evolution-chain/%d/", s.URL, sp.ChainID),
		}
	}
	writeJSON(w, body)
}

func (s *Server) serveChain(w http.ResponseWriter, key string) {
	id, err := strconv.Atoi(key)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	root, ok := s.fixture.Chains[id]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"id": id, "chain": s.link(root)})
}

func (s *Server) link(l Link) map[string]any {
	next := make([]map[string]any, 0, len(l.Next))
	for _, n := range l.Next {
		next = append(next, s.link(n))
	}
	return map[string]any{
		"species": map[string]string{
			"name": l.Name,
			"url":  fmt.Sprintf("%s/pokemon-species/%d/", s.URL, l.ID),
		},
		"evolves_to": next,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
