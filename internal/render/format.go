// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns catalog data into terminal output: card tables,
// JSON and YAML documents, and the markdown details page.
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/pokedex/pkg/types"
)

// ArtworkURLTemplate locates the sprite image for a numeric id.
const ArtworkURLTemplate = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"

// EvolutionSeparator is drawn between consecutive evolution stages.
const EvolutionSeparator = " → "

// Title capitalizes the first letter of a catalog name.
func Title(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Number formats an id as a zero-padded catalog number ("#007").
func Number(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// SpriteURL returns the artwork URL for id.
func SpriteURL(id int) string {
	return fmt.Sprintf(ArtworkURLTemplate, id)
}

// Weight formats a weight in hectograms as kilograms.
func Weight(deci int) string {
	return fmt.Sprintf("%.1f kg", float64(deci)/10)
}

// Height formats a height in decimetres as metres.
func Height(deci int) string {
	return fmt.Sprintf("%.1f m", float64(deci)/10)
}

// TypeList joins capitalized type names.
func TypeList(d types.Detail) string {
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = Title(t)
	}
	return strings.Join(names, ", ")
}

// EvolutionLine renders stages with a separator between consecutive
// entries. A single stage has no separator; no stages render as "".
func EvolutionLine(stages []types.EvolutionStage) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = fmt.Sprintf("%s (%s)", Title(s.SpeciesName), Number(s.SpeciesID))
	}
	return strings.Join(parts, EvolutionSeparator)
}
