// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/pokedex/internal/catalog"
	"github.com/pdiddy/pokedex/internal/listing"
	"github.com/pdiddy/pokedex/internal/preferences"
	"github.com/pdiddy/pokedex/pkg/types"
)

// envKeyReplacer maps nested keys to env names (catalog.base_url → POKEDEX_CATALOG_BASE_URL).
var envKeyReplacer = strings.NewReplacer(".", "_")

func setDefaults() {
	viper.SetDefault("catalog.base_url", catalog.DefaultBaseURL)
	viper.SetDefault("catalog.timeout", 30*time.Second)
	viper.SetDefault("catalog.user_agent", "pokedex/"+version)
	viper.SetDefault("catalog.requests_per_second", 0)
	viper.SetDefault("catalog.rate_limit_retries", 0)
	viper.SetDefault("catalog.breaker_max_failures", 0)
	viper.SetDefault("catalog.breaker_timeout", catalog.DefaultBreakerTimeout)

	viper.SetDefault("listing.index_limit", listing.DefaultIndexLimit)
	viper.SetDefault("listing.batch_size", listing.DefaultBatchSize)
	viper.SetDefault("listing.max_concurrent", 0)

	viper.SetDefault("preferences.db_path", defaultDBPath())
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pokedex-preferences.db"
	}
	return filepath.Join(home, ".config", "pokedex", "preferences.db")
}

// loadConfig decodes the merged flag, env, file, and default settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Listing.BatchSize <= 0 {
		return types.Config{}, fmt.Errorf("listing.batch_size must be positive, got %d", cfg.Listing.BatchSize)
	}
	if cfg.Listing.IndexLimit <= 0 {
		return types.Config{}, fmt.Errorf("listing.index_limit must be positive, got %d", cfg.Listing.IndexLimit)
	}
	return cfg, nil
}

func newClient(cfg types.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog, logger)
}

func openPreferences(cfg types.Config) (*preferences.SQLiteStore, error) {
	store, err := preferences.OpenSQLite(cfg.Preferences.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}
	return store, nil
}
