// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/curator/internal/authz"
	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/eventbus"
	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/notify"
	"github.com/tomtom215/curator/internal/preview"
	"github.com/tomtom215/curator/internal/recommend"
	"github.com/tomtom215/curator/internal/supervisor"
)

// Config is the complete service configuration.
type Config struct {
	Server     ServerConfig          `koanf:"server"`
	Logging    logging.Config        `koanf:"logging"`
	Recommend  recommend.Config      `koanf:"recommend"`
	Catalog    CatalogConfig         `koanf:"catalog"`
	Store      carousel.Config       `koanf:"store"`
	Profiles   preview.ProfileConfig `koanf:"profiles"`
	Notify     notify.Config         `koanf:"notify"`
	EventBus   eventbus.Config       `koanf:"eventbus"`
	Authz      authz.Config          `koanf:"authz"`
	Session    SessionConfig         `koanf:"session"`
	Supervisor supervisor.TreeConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Default: 0.0.0.0
	Host string `koanf:"host"`

	// Default: 8080
	Port int `koanf:"port"`

	// Default: 15s
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// Default: 30s
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// Default: 120s
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed origins.
	// Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs is the request budget per window for write endpoints.
	// Default: 120
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// Default: 1m
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// Default: false
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the content catalog.
type CatalogConfig struct {
	// Path to a JSON or YAML catalog. Empty uses the built-in sample.
	Path string `koanf:"path"`
}

// SessionConfig bounds the preview session registry.
type SessionConfig struct {
	// MaxSessions caps concurrent sessions; the least recently used is
	// evicted beyond it.
	// Default: 1000
	MaxSessions int `koanf:"max_sessions"`

	// TTL expires sessions idle this long.
	// Default: 30m
	TTL time.Duration `koanf:"ttl"`

	// CleanupInterval is how often expired sessions are swept.
	// Default: 1m
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// defaultConfig returns every section's defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging:   logging.DefaultConfig(),
		Recommend: *recommend.DefaultConfig(),
		Store:     carousel.DefaultConfig(),
		Profiles:  preview.DefaultProfileConfig(),
		Notify:    notify.DefaultConfig(),
		EventBus:  eventbus.DefaultConfig(),
		Authz:     authz.DefaultConfig(),
		Session: SessionConfig{
			MaxSessions:     1000,
			TTL:             30 * time.Minute,
			CleanupInterval: time.Minute,
		},
		Supervisor: supervisor.DefaultTreeConfig(),
	}
}

// Validate checks every section and joins the failures.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Server.validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Session.validate(); err != nil {
		errs = append(errs, err)
	}
	for _, v := range []interface{ Validate() error }{
		&c.Logging, &c.Recommend, &c.Store, &c.Profiles, &c.Notify, &c.EventBus, &c.Authz,
	} {
		if err := v.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Store.Type == carousel.StoreTypeBadger && c.Profiles.Type == preview.ProfileStoreBadger &&
		c.Store.Path != "" && c.Store.Path == c.Profiles.Path {
		errs = append(errs, fmt.Errorf("profiles path must differ from store path %q", c.Store.Path))
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("server port must be between 0 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("server read_timeout and write_timeout must be positive")
	}
	if !s.RateLimitDisabled && (s.RateLimitReqs <= 0 || s.RateLimitWindow <= 0) {
		return fmt.Errorf("server rate limit requires positive rate_limit_reqs and rate_limit_window")
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if s.MaxSessions <= 0 {
		return fmt.Errorf("session max_sessions must be positive, got %d", s.MaxSessions)
	}
	if s.TTL <= 0 || s.CleanupInterval <= 0 {
		return fmt.Errorf("session ttl and cleanup_interval must be positive")
	}
	return nil
}
