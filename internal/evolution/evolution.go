// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evolution resolves and linearizes evolution chains.
//
// A chain is a tree, but it is rendered as a single path: starting at the
// root, only the first listed successor of each node is followed. Branches
// such as regional or stylistic variants are dropped.
package evolution

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/pokedex/pkg/types"
)

// Fetcher is the part of the catalog client the resolver needs.
type Fetcher interface {
	FetchDetailByName(ctx context.Context, name string) (types.Detail, error)
	FetchSpecies(ctx context.Context, name string) (types.Species, error)
	FetchEvolutionChain(ctx context.Context, locator string) (types.EvolutionNode, error)
}

// Resolver runs the entity → species → chain pipeline.
type Resolver struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewResolver returns a Resolver. A nil logger is replaced with a no-op logger.
func NewResolver(fetcher Fetcher, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{fetcher: fetcher, logger: logger}
}

// Resolve fetches the entity, its species, and its chain, and returns the
// linearized chain. Only a failure to fetch the entity itself is returned as
// an error; species and chain failures yield an empty sequence.
func (r *Resolver) Resolve(ctx context.Context, name string) ([]types.EvolutionStage, error) {
	if _, err := r.fetcher.FetchDetailByName(ctx, name); err != nil {
		return nil, fmt.Errorf("resolving evolution chain: %w", err)
	}

	species, err := r.fetcher.FetchSpecies(ctx, name)
	if err != nil {
		r.logger.Warn("species fetch failed", zap.String("name", name), zap.Error(err))
		return nil, nil
	}
	return r.FromSpecies(ctx, species), nil
}

// FromSpecies fetches the chain referenced by species and linearizes it. A
// species without a chain, or a failed chain fetch, yields nil.
func (r *Resolver) FromSpecies(ctx context.Context, species types.Species) []types.EvolutionStage {
	if species.EvolutionChainURL == "" {
		return nil
	}
	root, err := r.fetcher.FetchEvolutionChain(ctx, species.EvolutionChainURL)
	if err != nil {
		r.logger.Warn("evolution chain fetch failed",
			zap.String("url", species.EvolutionChainURL),
			zap.Error(err))
		return nil
	}
	return Linearize(root)
}

// Linearize walks the chain from root, following the first successor of each
// node until a node has none.
func Linearize(root types.EvolutionNode) []types.EvolutionStage {
	var stages []types.EvolutionStage
	node := &root
	for {
		stages = append(stages, types.EvolutionStage{
			SpeciesName: node.SpeciesName,
			SpeciesID:   node.SpeciesID,
		})
		if len(node.Successors) == 0 {
			return stages
		}
		node = &node.Successors[0]
	}
}
