// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing implements the catalog listing session: the full entity
// index, a batch cursor, the detail cache, and the visible cards. Batches
// and searches resolve details concurrently; one entity's failure never
// affects its siblings.
package listing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/pokedex/internal/cache"
	"github.com/pdiddy/pokedex/pkg/types"
)

const (
	// DefaultIndexLimit is the size of the single index request.
	DefaultIndexLimit = 1000

	// DefaultBatchSize is the number of entities loaded per batch.
	DefaultBatchSize = 50
)

// Fetcher is the part of the catalog client a session needs.
type Fetcher interface {
	ListIndex(ctx context.Context, limit int) ([]types.EntityRef, error)
	FetchDetail(ctx context.Context, locator string) (types.Detail, error)
}

// BatchResult describes one LoadNextBatch call.
type BatchResult struct {
	// Start and End bound the index slice [Start, End) covered by the batch.
	Start int
	End   int

	// Requested is the number of detail fetches issued.
	Requested int

	// Failed is the number of members whose detail could not be resolved.
	Failed int

	// Rendered lists the details newly added to the listing, in index order.
	Rendered []types.Detail

	// Done reports that the index is exhausted and no further batch exists.
	Done bool
}

// SearchResult describes one Search call.
type SearchResult struct {
	Query     string
	Matched   int
	Requested int
	Failed    int
	Rendered  []types.Detail
}

// Session holds the state of one listing view. It is created by Open and
// discarded when the view goes away; there is no process-wide instance.
type Session struct {
	id            string
	fetcher       Fetcher
	cache         *cache.Details
	listing       *Listing
	index         []types.EntityRef
	batchSize     int
	maxConcurrent int
	logger        *zap.Logger

	mu     sync.Mutex
	cursor int
}

// Open retrieves the full index and returns a session positioned at the
// start of it. An index failure is fatal to the session.
func Open(ctx context.Context, fetcher Fetcher, cfg types.ListingConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := cfg.IndexLimit
	if limit <= 0 {
		limit = DefaultIndexLimit
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	id := uuid.NewString()
	logger = logger.With(zap.String("session", id))

	index, err := fetcher.ListIndex(ctx, limit)
	if err != nil {
		logger.Error("index fetch failed", zap.Error(err))
		return nil, fmt.Errorf("opening listing session: %w", err)
	}
	logger.Debug("session opened", zap.Int("index", len(index)), zap.Int("batch_size", batchSize))

	return &Session{
		id:            id,
		fetcher:       fetcher,
		cache:         cache.New(),
		listing:       NewListing(),
		index:         index,
		batchSize:     batchSize,
		maxConcurrent: cfg.MaxConcurrent,
		logger:        logger,
	}, nil
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string { return s.id }

// Total returns the size of the index.
func (s *Session) Total() int { return len(s.index) }

// Index returns a copy of the entity index.
func (s *Session) Index() []types.EntityRef {
	out := make([]types.EntityRef, len(s.index))
	copy(out, s.index)
	return out
}

// Cursor returns the index position of the next batch.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Done reports whether every batch has been loaded. Once true it stays true.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor >= len(s.index)
}

// Cards returns the visible cards in render order.
func (s *Session) Cards() []types.Detail { return s.listing.Cards() }

// Cache exposes the session's detail cache.
func (s *Session) Cache() *cache.Details { return s.cache }

// LoadNextBatch loads the slice [cursor, min(cursor+batchSize, total)) and
// advances the cursor past it. Members missing from the cache are fetched
// concurrently. Calling it after Done requests nothing.
func (s *Session) LoadNextBatch(ctx context.Context) BatchResult {
	s.mu.Lock()
	start := s.cursor
	end := min(start+s.batchSize, len(s.index))
	if start >= end {
		s.mu.Unlock()
		return BatchResult{Start: start, End: start, Done: true}
	}
	s.cursor = end
	s.mu.Unlock()

	batch := s.index[start:end]
	details, requested, failed := s.resolve(ctx, batch)

	result := BatchResult{
		Start:     start,
		End:       end,
		Requested: requested,
		Failed:    failed,
		Rendered:  s.render(details),
		Done:      end >= len(s.index),
	}
	s.logger.Debug("batch loaded",
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Int("requested", requested),
		zap.Int("failed", failed),
		zap.Bool("done", result.Done))
	return result
}

// Search replaces the visible cards with the index entries matching query.
// The query is trimmed and lower-cased, then matched as a substring of the
// entity name or of its numeric id. An empty query matches everything. The
// batch cursor is not affected.
func (s *Session) Search(ctx context.Context, query string) SearchResult {
	q := Normalize(query)
	var matches []types.EntityRef
	for _, ref := range s.index {
		if Matches(ref, q) {
			matches = append(matches, ref)
		}
	}

	s.listing.Clear()
	details, requested, failed := s.resolve(ctx, matches)

	result := SearchResult{
		Query:     q,
		Matched:   len(matches),
		Requested: requested,
		Failed:    failed,
		Rendered:  s.render(details),
	}
	s.logger.Debug("search resolved",
		zap.String("query", q),
		zap.Int("matched", result.Matched),
		zap.Int("requested", requested),
		zap.Int("failed", failed))
	return result
}

// Normalize trims and lower-cases a search query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether ref matches an already normalized query.
func Matches(ref types.EntityRef, q string) bool {
	return strings.Contains(ref.Name, q) || strings.Contains(ref.ID(), q)
}

// resolve returns one slot per ref, in order; nil slots failed. Cached refs
// are served without a fetch, the rest are fetched concurrently.
func (s *Session) resolve(ctx context.Context, refs []types.EntityRef) ([]*types.Detail, int, int) {
	out := make([]*types.Detail, len(refs))
	var requested, failed int
	var mu sync.Mutex

	var g errgroup.Group
	if s.maxConcurrent > 0 {
		g.SetLimit(s.maxConcurrent)
	}
	for i, ref := range refs {
		if d, ok := s.cache.Get(ref.Name); ok {
			out[i] = &d
			continue
		}
		g.Go(func() error {
			d, fetched, err := s.cache.GetOrFetch(ctx, ref.Name, func(ctx context.Context) (types.Detail, error) {
				return s.fetcher.FetchDetail(ctx, ref.URL)
			})
			mu.Lock()
			defer mu.Unlock()
			if fetched {
				requested++
			}
			if err != nil {
				failed++
				s.logger.Warn("detail fetch failed",
					zap.String("name", ref.Name),
					zap.String("url", ref.URL),
					zap.Error(err))
				return nil
			}
			out[i] = &d
			return nil
		})
	}
	g.Wait()
	return out, requested, failed
}

// render draws resolved details in order, skipping ids already visible.
func (s *Session) render(details []*types.Detail) []types.Detail {
	var rendered []types.Detail
	for _, d := range details {
		if d == nil {
			continue
		}
		if s.listing.Render(*d) {
			rendered = append(rendered, *d)
		}
	}
	return rendered
}
