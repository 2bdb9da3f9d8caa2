package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pokedex/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CatalogConfig holds settings for the remote catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root (default "https://pokeapi.co/api/v2").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// RequestsPerSecond caps the outgoing request rate. Zero disables the limiter.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`

	// RateLimitRetries is the number of backoff retries on HTTP 429.
	// Zero (the default) performs a single attempt.
	RateLimitRetries int `json:"rate_limit_retries" yaml:"rate_limit_retries" mapstructure:"rate_limit_retries"`

	// BreakerMaxFailures is the number of consecutive failures that opens the
	// circuit breaker. Zero disables the breaker.
	BreakerMaxFailures uint32 `json:"breaker_max_failures" yaml:"breaker_max_failures" mapstructure:"breaker_max_failures"`

	// BreakerTimeout is how long the breaker stays open before probing again.
	BreakerTimeout time.Duration `json:"breaker_timeout" yaml:"breaker_timeout" mapstructure:"breaker_timeout"`
}

// ListingConfig holds settings for the listing session.
type ListingConfig struct {
	// IndexLimit is the size of the single unpaginated index request (default 1000).
	IndexLimit int `json:"index_limit" yaml:"index_limit" mapstructure:"index_limit"`

	// BatchSize is the number of entities loaded per batch (default 50).
	BatchSize int `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`

	// MaxConcurrent bounds in-flight detail fetches per batch or search.
	// Zero or negative means unbounded.
	MaxConcurrent int `json:"max_concurrent" yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// PreferencesConfig holds settings for the persisted language preference.
type PreferencesConfig struct {
	// DBPath is the SQLite file holding user preferences.
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`
}

// Config groups all component configurations.
type Config struct {
	Catalog     CatalogConfig     `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Listing     ListingConfig     `json:"listing" yaml:"listing" mapstructure:"listing"`
	Preferences PreferencesConfig `json:"preferences" yaml:"preferences" mapstructure:"preferences"`
}
