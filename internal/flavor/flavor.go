// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flavor selects the flavor text shown on a details page.
package flavor

import "strings"

const (
	// FallbackPrimary is tried when the preferred language has no entry.
	FallbackPrimary = "pt"

	// FallbackSecondary is tried after FallbackPrimary.
	FallbackSecondary = "en"

	// Placeholder is shown when no candidate language has an entry.
	Placeholder = "Sem curiosidades."
)

var controlChars = strings.NewReplacer("\f", " ", "\n", " ")

// Select returns the text for preferred, else FallbackPrimary, else
// FallbackSecondary, else Placeholder. Each form feed and newline in the
// chosen text is replaced with a single space.
func Select(texts map[string]string, preferred string) string {
	for _, lang := range []string{preferred, FallbackPrimary, FallbackSecondary} {
		if text, ok := texts[lang]; ok {
			return Clean(text)
		}
	}
	return Placeholder
}

// Clean replaces form feeds and newlines with spaces.
func Clean(text string) string {
	return controlChars.Replace(text)
}
