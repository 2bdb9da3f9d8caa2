// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes entity details by name for the lifetime of a
// listing session. Entries are inserted once and never evicted or replaced.
package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/pokedex/pkg/types"
)

// FetchFunc resolves a detail that is not cached yet.
type FetchFunc func(ctx context.Context) (types.Detail, error)

// Details maps entity names to resolved details. It is safe for concurrent
// use; concurrent misses for one name share a single fetch.
type Details struct {
	mu      sync.RWMutex
	entries map[string]types.Detail
	group   singleflight.Group
}

// New returns an empty cache.
func New() *Details {
	return &Details{entries: make(map[string]types.Detail)}
}

// Get returns the cached detail for name.
func (c *Details) Get(name string) (types.Detail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.entries[name]
	return d, ok
}

// Put inserts d under name unless name is already present, and reports
// whether the insert happened.
func (c *Details) Put(name string, d types.Detail) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[name]; ok {
		return false
	}
	c.entries[name] = d
	return true
}

// Len returns the number of cached details.
func (c *Details) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrFetch returns the cached detail for name, calling fetch on a miss and
// caching its result. fetched reports whether this call ran the fetch;
// callers that joined another caller's in-flight fetch report false. A failed
// fetch caches nothing, so a later call may fetch again.
func (c *Details) GetOrFetch(ctx context.Context, name string, fetch FetchFunc) (d types.Detail, fetched bool, err error) {
	if d, ok := c.Get(name); ok {
		return d, false, nil
	}

	ran := false
	v, err, _ := c.group.Do(name, func() (interface{}, error) {
		// Another flight may have finished between Get and Do.
		if d, ok := c.Get(name); ok {
			return d, nil
		}
		ran = true
		d, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.Put(name, d)
		return d, nil
	})
	if err != nil {
		return types.Detail{}, ran, err
	}
	return v.(types.Detail), ran, nil
}
