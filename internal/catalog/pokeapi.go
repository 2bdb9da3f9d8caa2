// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strconv"

	"github.com/pdiddy/pokedex/pkg/types"
)

// PokeAPI JSON structures. Only the fields the catalog reads are declared.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []namedResource `json:"results"`
}

type pokemonResponse struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Weight  int           `json:"weight"`
	Height  int           `json:"height"`
	Types   []pokemonType `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

type pokemonType struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

func (p pokemonResponse) detail() types.Detail {
	d := types.Detail{
		ID:         p.ID,
		Name:       p.Name,
		WeightDeci: p.Weight,
		HeightDeci: p.Height,
		SpriteURL:  p.Sprites.FrontDefault,
		Types:      make([]string, 0, len(p.Types)),
	}
	for _, t := range p.Types {
		d.Types = append(d.Types, t.Type.Name)
	}
	return d
}

type flavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
}

type speciesResponse struct {
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
	EvolutionChain    *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// species keeps the first flavor text listed for each language.
func (s speciesResponse) species() types.Species {
	sp := types.Species{FlavorTexts: make(map[string]string)}
	for _, e := range s.FlavorTextEntries {
		lang := e.Language.Name
		if _, ok := sp.FlavorTexts[lang]; ok {
			continue
		}
		sp.FlavorTexts[lang] = e.FlavorText
	}
	if s.EvolutionChain != nil {
		sp.EvolutionChainURL = s.EvolutionChain.URL
	}
	return sp
}

type evolutionChainResponse struct {
	ID    int       `json:"id"`
	Chain chainLink `json:"chain"`
}

type chainLink struct {
	Species   namedResource `json:"species"`
	EvolvesTo []chainLink   `json:"evolves_to"`
}

func (l chainLink) node() types.EvolutionNode {
	id, _ := strconv.Atoi(types.IDFromURL(l.Species.URL))
	n := types.EvolutionNode{
		SpeciesName: l.Species.Name,
		SpeciesID:   id,
	}
	for _, next := range l.EvolvesTo {
		n.Successors = append(n.Successors, next.node())
	}
	return n
}
