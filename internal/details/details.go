// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package details assembles the details page of a single entity as a
// sequence of stages: detail, species, flavor text, evolution chain. Only
// the detail stage can fail the page; later stages fall back to placeholder
// content.
package details

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/pokedex/internal/evolution"
	"github.com/pdiddy/pokedex/internal/flavor"
	"github.com/pdiddy/pokedex/pkg/types"
)

// ErrDetailsUnavailable is returned when the entity itself cannot be fetched.
var ErrDetailsUnavailable = errors.New("failed to load details")

// Page is everything the details view draws.
type Page struct {
	Detail     types.Detail           `json:"detail" yaml:"detail"`
	FlavorText string                 `json:"flavor_text" yaml:"flavor_text"`
	Evolution  []types.EvolutionStage `json:"evolution" yaml:"evolution"`
}

// Loader builds details pages.
type Loader struct {
	fetcher  evolution.Fetcher
	resolver *evolution.Resolver
	logger   *zap.Logger
}

// NewLoader returns a Loader backed by fetcher.
func NewLoader(fetcher evolution.Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fetcher:  fetcher,
		resolver: evolution.NewResolver(fetcher, logger),
		logger:   logger,
	}
}

// Load builds the page for name with flavor text in lang. The returned error
// wraps ErrDetailsUnavailable when the entity fetch fails.
func (l *Loader) Load(ctx context.Context, name, lang string) (Page, error) {
	d, err := l.fetcher.FetchDetailByName(ctx, name)
	if err != nil {
		l.logger.Error("details fetch failed", zap.String("name", name), zap.Error(err))
		return Page{}, fmt.Errorf("%w: %w", ErrDetailsUnavailable, err)
	}
	page := Page{Detail: d, FlavorText: flavor.Placeholder}

	species, err := l.fetcher.FetchSpecies(ctx, name)
	if err != nil {
		l.logger.Warn("species fetch failed", zap.String("name", name), zap.Error(err))
		return page, nil
	}

	page.FlavorText = flavor.Select(species.FlavorTexts, lang)
	page.Evolution = l.resolver.FromSpecies(ctx, species)
	return page, nil
}
