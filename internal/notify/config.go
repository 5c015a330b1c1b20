// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package notify

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/eventbus"
)

// Config selects and tunes the notification sinks.
type Config struct {
	// Log writes each notification to the application log.
	// Default: true
	Log bool `koanf:"log"`

	// Bus publishes each notification as an interaction_logged event.
	// Default: true
	Bus bool `koanf:"bus"`

	// RatePerSecond limits bus notifications. Zero disables the limit.
	// Default: 20
	RatePerSecond float64 `koanf:"rate_per_second"`

	// Burst is the limiter burst size.
	// Default: 40
	Burst int `koanf:"burst"`

	// QueueSize bounds the async delivery queue. Zero delivers synchronously.
	// Default: 256
	QueueSize int `koanf:"queue_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Log: true, Bus: true, RatePerSecond: 20, Burst: 40, QueueSize: 256}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.RatePerSecond < 0 {
		return fmt.Errorf("notify rate_per_second must be non-negative, got %v", c.RatePerSecond)
	}
	if c.Burst < 0 {
		return fmt.Errorf("notify burst must be non-negative, got %d", c.Burst)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("notify queue_size must be non-negative, got %d", c.QueueSize)
	}
	return nil
}

// Build assembles the configured sinks. bus may be nil, in which case the
// bus sink is skipped. The returned Async is nil when QueueSize is zero and
// must otherwise be run by the supervisor.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Build(cfg *Config, bus eventbus.Publisher, logger zerolog.Logger) (Sink, *Async) {
	var sinks []Sink
	if cfg.Log {
		sinks = append(sinks, NewLogSink(logger))
	}
	if cfg.Bus && bus != nil {
		sinks = append(sinks, NewThrottledSink(NewBusSink(bus), cfg.RatePerSecond, cfg.Burst))
	}
	if len(sinks) == 0 {
		return Discard, nil
	}
	sink := Multi(sinks...)
	if cfg.QueueSize == 0 {
		return sink, nil
	}
	async := NewAsync(sink, cfg.QueueSize, logger)
	return async, async
}
