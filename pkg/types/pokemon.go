// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the pokedex catalog:
// index references, entity details, species records, and evolution chains.
package types

import "strings"

// EntityRef is one entry of the catalog index: the entity name and the
// locator of its detail record. References are immutable for the lifetime
// of a session.
type EntityRef struct {
	// Name is the lower-case catalog name (e.g. "bulbasaur").
	Name string `json:"name" yaml:"name"`

	// URL is the detail record locator (e.g. "https://pokeapi.co/api/v2/pokemon/1/").
	URL string `json:"url" yaml:"url"`
}

// ID returns the numeric identifier segment of the reference locator.
func (r EntityRef) ID() string {
	return IDFromURL(r.URL)
}

// Detail is the resolved record of a single entity. A Detail is created on
// the first successful fetch and never modified afterwards.
type Detail struct {
	// ID is the numeric catalog identifier and the render identity of a card.
	ID int `json:"id" yaml:"id"`

	// Name is the lower-case catalog name.
	Name string `json:"name" yaml:"name"`

	// WeightDeci is the weight in hectograms as reported by the API.
	WeightDeci int `json:"weight_deci" yaml:"weight_deci"`

	// HeightDeci is the height in decimetres as reported by the API.
	HeightDeci int `json:"height_deci" yaml:"height_deci"`

	// Types lists the elemental types in slot order.
	Types []string `json:"types" yaml:"types"`

	// SpriteURL is the default front sprite, empty when the API has none.
	SpriteURL string `json:"sprite_url" yaml:"sprite_url"`
}

// Species holds the per-species data needed by the details page.
type Species struct {
	// FlavorTexts maps a language code to the first flavor text listed for
	// that language.
	FlavorTexts map[string]string `json:"flavor_texts" yaml:"flavor_texts"`

	// EvolutionChainURL locates the evolution chain document. Empty when the
	// species has no chain.
	EvolutionChainURL string `json:"evolution_chain_url,omitempty" yaml:"evolution_chain_url,omitempty"`
}

// EvolutionNode is one node of an evolution tree. Successors keep the order
// in which the API lists them.
type EvolutionNode struct {
	SpeciesName string          `json:"species_name" yaml:"species_name"`
	SpeciesID   int             `json:"species_id" yaml:"species_id"`
	Successors  []EvolutionNode `json:"successors,omitempty" yaml:"successors,omitempty"`
}

// EvolutionStage is one element of a linearized evolution chain.
type EvolutionStage struct {
	SpeciesName string `json:"species_name" yaml:"species_name"`
	SpeciesID   int    `json:"species_id" yaml:"species_id"`
}

// IDFromURL returns the last non-empty path segment of a locator, which for
// PokeAPI resources is the numeric identifier. It returns "" when the
// locator has no segments.
func IDFromURL(url string) string {
	parts := strings.Split(url, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
