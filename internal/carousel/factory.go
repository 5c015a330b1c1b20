// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package carousel

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Store types
const (
	StoreTypeMemory = "memory"
	StoreTypeBadger = "badger"
)

// Config selects and configures the carousel store.
type Config struct {
	// Type is memory or badger.
	// Default: memory
	Type string `koanf:"type"`

	// Path is the BadgerDB directory. Empty opens an in-memory database.
	Path string `koanf:"path"`

	// Breaker configures the circuit breaker wrapping the store.
	Breaker BreakerConfig `koanf:"breaker"`
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{
		Type:    StoreTypeMemory,
		Breaker: DefaultBreakerConfig(),
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Type {
	case StoreTypeMemory, StoreTypeBadger:
	default:
		return fmt.Errorf("store type must be %q or %q, got %q", StoreTypeMemory, StoreTypeBadger, c.Type)
	}
	if c.Breaker.Enabled && c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("store breaker failure_threshold must be positive when enabled")
	}
	return nil
}

// NewStore builds the configured store seeded with routes.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(cfg Config, routes []RouteNode, logger zerolog.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logger.With().Str("component", "carousel-store").Logger()

	var store Store
	switch cfg.Type {
	case StoreTypeBadger:
		bs, err := OpenBadgerStore(cfg.Path, routes)
		if err != nil {
			return nil, err
		}
		store = bs
		logger.Info().Str("path", cfg.Path).Bool("in_memory", cfg.Path == "").Msg("badger carousel store opened")
	default:
		store = NewMemoryStore(routes)
		logger.Info().Msg("memory carousel store initialized")
	}

	if cfg.Breaker.Enabled {
		store = NewBreakerStore(store, cfg.Breaker, logger)
	}
	return store, nil
}
