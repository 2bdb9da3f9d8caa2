// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog is the remote catalog client for the PokeAPI REST service.
// It retrieves the entity index, entity details, species records, and
// evolution chains. Every call is a read-only GET; failures are returned as
// errors and never retried unless rate-limit retries are configured.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/pokedex/internal/httputil"
	"github.com/pdiddy/pokedex/pkg/types"
)

// DefaultBaseURL is the public PokeAPI root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pokedex/0.1"
)

// Client talks to a PokeAPI-compatible service. It is safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	retries   int
	limiter   *rate.Limiter
	breaker   *Breaker
	logger    *zap.Logger
}

// NewClient builds a Client from cfg. A nil logger is replaced with a no-op
// logger.
func NewClient(cfg types.CatalogConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := int(cfg.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   base,
		userAgent: ua,
		retries:   cfg.RateLimitRetries,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
	}
	if cfg.BreakerMaxFailures > 0 {
		c.breaker = NewBreaker(BreakerConfig{
			MaxFailures: cfg.BreakerMaxFailures,
			Timeout:     cfg.BreakerTimeout,
		}, logger)
	}
	return c
}

// BaseURL returns the API root the client is bound to.
func (c *Client) BaseURL() string { return c.baseURL }

// ListIndex retrieves the full entity index with a single unpaginated call
// of the given size.
func (c *Client) ListIndex(ctx context.Context, limit int) ([]types.EntityRef, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("index limit must be positive, got %d", limit)
	}
	params := url.Values{
		"limit":  {fmt.Sprintf("%d", limit)},
		"offset": {"0"},
	}
	var resp listResponse
	if err := c.get(ctx, c.baseURL+"/pokemon?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetching index: %w", err)
	}

	refs := make([]types.EntityRef, 0, len(resp.Results))
	for _, r := range resp.Results {
		refs = append(refs, types.EntityRef{Name: r.Name, URL: r.URL})
	}
	c.logger.Debug("index fetched", zap.Int("entries", len(refs)))
	return refs, nil
}

// FetchDetail resolves an entity detail from its index locator.
func (c *Client) FetchDetail(ctx context.Context, locator string) (types.Detail, error) {
	var resp pokemonResponse
	if err := c.get(ctx, locator, &resp); err != nil {
		return types.Detail{}, fmt.Errorf("fetching detail: %w", err)
	}
	return resp.detail(), nil
}

// FetchDetailByName resolves an entity detail by catalog name.
func (c *Client) FetchDetailByName(ctx context.Context, name string) (types.Detail, error) {
	d, err := c.FetchDetail(ctx, c.resourceURL("pokemon", name))
	if err != nil {
		return types.Detail{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// FetchSpecies retrieves the species record for name.
func (c *Client) FetchSpecies(ctx context.Context, name string) (types.Species, error) {
	var resp speciesResponse
	if err := c.get(ctx, c.resourceURL("pokemon-species", name), &resp); err != nil {
		return types.Species{}, fmt.Errorf("fetching species %s: %w", name, err)
	}
	return resp.species(), nil
}

// FetchEvolutionChain retrieves the evolution tree at locator.
func (c *Client) FetchEvolutionChain(ctx context.Context, locator string) (types.EvolutionNode, error) {
	var resp evolutionChainResponse
	if err := c.get(ctx, locator, &resp); err != nil {
		return types.EvolutionNode{}, fmt.Errorf("fetching evolution chain: %w", err)
	}
	return resp.Chain.node(), nil
}

func (c *Client) resourceURL(resource, name string) string {
	return c.baseURL + "/" + resource + "/" + url.PathEscape(strings.ToLower(strings.TrimSpace(name)))
}

// get waits for the rate limiter, then performs the request through the
// circuit breaker when one is configured.
func (c *Client) get(ctx context.Context, locator string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	do := func() error {
		return httputil.GetJSON(ctx, c.http, locator, c.userAgent, c.retries, out)
	}
	if c.breaker == nil {
		return do()
	}
	return c.breaker.Execute(ctx, do)
}
