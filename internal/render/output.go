// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pokedex/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q: use table, json, or yaml", s)
	}
}

// Cards writes cards to w in the requested format.
func Cards(cards []types.Detail, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		return JSON(cards, w)
	case FormatYAML:
		return YAML(cards, w)
	default:
		Table(cards, w)
		return nil
	}
}

// Table writes cards as a human-readable table.
func Table(cards []types.Detail, w io.Writer) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-16s  %-24s  %s\n", "No.", "Name", "Types", "Sprite")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, c := range cards {
		fmt.Fprintf(w, "%-6s  %-16s  %-24s  %s\n",
			Number(c.ID), truncate(Title(c.Name), 16), truncate(TypeList(c), 24), SpriteURL(c.ID))
	}
	fmt.Fprintf(w, "\n%d entries\n", len(cards))
}

// JSON writes v as indented JSON.
func JSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
