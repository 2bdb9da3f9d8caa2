// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preferences

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// LanguageKey is the key the language preference is stored under.
	LanguageKey = "language"

	// DefaultLanguage is used when no preference has been stored.
	DefaultLanguage = "pt"
)

// SupportedLanguages lists the language codes a user may select.
var SupportedLanguages = []string{"pt", "en", "es", "ja"}

// ErrUnsupportedLanguage is returned by SetLanguage for unknown codes.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language returns the stored language preference, or DefaultLanguage when
// none is stored.
func Language(ctx context.Context, store Store) (string, error) {
	v, ok, err := store.Get(ctx, LanguageKey)
	if err != nil {
		return DefaultLanguage, err
	}
	if !ok || v == "" {
		return DefaultLanguage, nil
	}
	return v, nil
}

// SetLanguage validates and stores a language preference.
func SetLanguage(ctx context.Context, store Store, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if !slices.Contains(SupportedLanguages, code) {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedLanguage, code, strings.Join(SupportedLanguages, ", "))
	}
	return store.Set(ctx, LanguageKey, code)
}
