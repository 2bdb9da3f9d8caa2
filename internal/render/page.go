// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pdiddy/pokedex/internal/details"
)

// Markdown renders a details page as a markdown document. The evolution
// section is omitted when the chain is empty.
func Markdown(p details.Page) string {
	d := p.Detail
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", Title(d.Name), Number(d.ID))
	if d.SpriteURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", d.Name, d.SpriteURL)
	}
	fmt.Fprintf(&b, "- **Types:** %s\n", TypeList(d))
	fmt.Fprintf(&b, "- **Weight:** %s\n", Weight(d.WeightDeci))
	fmt.Fprintf(&b, "- **Height:** %s\n", Height(d.HeightDeci))
	fmt.Fprintf(&b, "\n## Curiosity\n\n%s\n", p.FlavorText)

	if len(p.Evolution) > 0 {
		fmt.Fprintf(&b, "\n## Evolutions\n\n%s\n", EvolutionLine(p.Evolution))
	}
	return b.String()
}

// Terminal renders markdown for a terminal of the given width using glamour.
func Terminal(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
