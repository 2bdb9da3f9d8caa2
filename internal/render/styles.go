// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/charmbracelet/lipgloss"

// typeColors maps elemental types to badge background colors.
var typeColors = map[string]lipgloss.Color{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

var defaultTypeColor = lipgloss.Color("#777777")

// TypeBadge returns a colored label for an elemental type.
func TypeBadge(t string) string {
	bg, ok := typeColors[t]
	if !ok {
		bg = defaultTypeColor
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(bg).
		Padding(0, 1).
		Render(Title(t))
}

// TypeBadges renders every type of a detail as badges separated by spaces.
func TypeBadges(names []string) string {
	badges := make([]string, len(names))
	for i, t := range names {
		badges[i] = TypeBadge(t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpaces(badges)...)
}

func joinWithSpaces(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
