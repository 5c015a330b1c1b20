// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package eventbus

import (
	"fmt"
	"time"
)

// Backend names.
const (
	BackendChannel = "channel"
	BackendNATS    = "nats"
)

// Config holds event bus configuration.
type Config struct {
	// Enabled turns event publishing on.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// Backend is channel or nats.
	// Default: channel
	Backend string `koanf:"backend"`

	// BufferSize is the gochannel output buffer per subscriber.
	// Default: 256
	BufferSize int64 `koanf:"buffer_size"`

	NATS    NATSConfig    `koanf:"nats"`
	Breaker BreakerConfig `koanf:"breaker"`
	Router  RouterConfig  `koanf:"router"`
}

// NATSConfig configures the NATS backend.
type NATSConfig struct {
	// URL of an external server. Ignored when Embedded is true.
	// Default: nats://127.0.0.1:4222
	URL string `koanf:"url"`

	// Embedded starts an in-process nats-server.
	// Default: true
	Embedded bool `koanf:"embedded"`

	// Host and Port of the embedded server. Port -1 picks a random port.
	// Default: 127.0.0.1, -1
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// MaxReconnects for clients; -1 means unlimited.
	// Default: -1
	MaxReconnects int `koanf:"max_reconnects"`

	// ReconnectWait between client reconnect attempts.
	// Default: 2s
	ReconnectWait time.Duration `koanf:"reconnect_wait"`

	// QueueGroup load-balances subscribers across instances.
	// Default: "" (every instance receives every event)
	QueueGroup string `koanf:"queue_group"`
}

// BreakerConfig configures the publish circuit breaker.
type BreakerConfig struct {
	// Default: 3
	MaxRequests uint32 `koanf:"max_requests"`
	// Default: 30s
	Interval time.Duration `koanf:"interval"`
	// Default: 10s
	Timeout time.Duration `koanf:"timeout"`
	// Default: 5
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// RouterConfig configures the consuming Watermill router.
type RouterConfig struct {
	// Default: 10s
	CloseTimeout time.Duration `koanf:"close_timeout"`
	// Default: 3
	RetryMaxRetries int `koanf:"retry_max_retries"`
	// Default: 100ms
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Backend:    BackendChannel,
		BufferSize: 256,
		NATS: NATSConfig{
			URL:           "nats://127.0.0.1:4222",
			Embedded:      true,
			Host:          "127.0.0.1",
			Port:          -1,
			MaxReconnects: -1,
			ReconnectWait: 2 * time.Second,
		},
		Breaker: BreakerConfig{
			MaxRequests:      3,
			Interval:         30 * time.Second,
			Timeout:          10 * time.Second,
			FailureThreshold: 5,
		},
		Router: RouterConfig{
			CloseTimeout:         10 * time.Second,
			RetryMaxRetries:      3,
			RetryInitialInterval: 100 * time.Millisecond,
		},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendChannel, BackendNATS:
	default:
		return fmt.Errorf("eventbus backend must be %q or %q, got %q", BackendChannel, BackendNATS, c.Backend)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("eventbus buffer_size must be non-negative, got %d", c.BufferSize)
	}
	if c.Backend == BackendNATS && !c.NATS.Embedded && c.NATS.URL == "" {
		return fmt.Errorf("eventbus nats url is required for an external server")
	}
	if c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("eventbus breaker failure_threshold must be positive")
	}
	if c.Router.RetryMaxRetries < 0 {
		return fmt.Errorf("eventbus router retry_max_retries must be non-negative")
	}
	return nil
}
