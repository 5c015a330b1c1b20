// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package authz

import (
	"fmt"
	"time"
)

// Modules and permissions used in policies.
const (
	ModulePreview  = "preview"
	ModuleCarousel = "carousel"

	PermRead   = "read"
	PermCreate = "create"
	PermUpdate = "update"
	PermDelete = "delete"
)

// DefaultRoleHeader carries the caller's role when TrustRoleHeader is set.
const DefaultRoleHeader = "X-Curator-Role"

// Config holds authorization settings.
type Config struct {
	// Enabled turns enforcement on. When false every request is allowed.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// DefaultRole applies to requests without credentials.
	// Default: viewer
	DefaultRole string `koanf:"default_role"`

	// JWTSecret verifies HS256 bearer tokens. Without it bearer tokens are
	// rejected and every caller gets DefaultRole.
	JWTSecret string `koanf:"jwt_secret"`

	// JWTIssuer and JWTAudience are checked when set.
	JWTIssuer   string `koanf:"jwt_issuer"`
	JWTAudience string `koanf:"jwt_audience"`

	// ClockSkew tolerated on token time claims.
	// Default: 30s
	ClockSkew time.Duration `koanf:"clock_skew"`

	// TrustRoleHeader takes the role from RoleHeader when no bearer token is
	// sent. Development only: any client can claim any role.
	// Default: false
	TrustRoleHeader bool `koanf:"trust_role_header"`

	// RoleHeader names the development role header.
	// Default: X-Curator-Role
	RoleHeader string `koanf:"role_header"`

	// ModelPath overrides the embedded Casbin model.
	ModelPath string `koanf:"model_path"`

	// PolicyPath overrides the embedded policy.
	PolicyPath string `koanf:"policy_path"`

	// ReloadInterval reloads PolicyPath periodically. Zero disables reload.
	// Default: 0
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// CacheTTL bounds how long a decision is cached. Zero disables caching.
	// Default: 5m
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		DefaultRole: "viewer",
		ClockSkew:   30 * time.Second,
		RoleHeader:  DefaultRoleHeader,
		CacheTTL:    5 * time.Minute,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.RoleHeader == "" {
		return fmt.Errorf("authz role_header is required")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < MinSecretLength {
		return fmt.Errorf("authz jwt_secret must be at least %d characters", MinSecretLength)
	}
	if c.ReloadInterval < 0 || c.CacheTTL < 0 || c.ClockSkew < 0 {
		return fmt.Errorf("authz durations must be non-negative")
	}
	if c.ReloadInterval > 0 && c.PolicyPath == "" {
		return fmt.Errorf("authz reload_interval requires policy_path")
	}
	return nil
}
