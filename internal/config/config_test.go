// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/preview"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Recommend.LogCapacity != 100 {
		t.Errorf("LogCapacity = %d, want 100", cfg.Recommend.LogCapacity)
	}
	if cfg.Store.Type != carousel.StoreTypeMemory {
		t.Errorf("Store.Type = %q", cfg.Store.Type)
	}
}

func TestLoadFile_DefaultsOnly(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session.TTL = %v", cfg.Session.TTL)
	}
	if got := cfg.Recommend.Increments.Play[">85%"]; got != 0.5 {
		t.Errorf("play >85%% increment = %v, want 0.5", got)
	}
	if cfg.Recommend.Generation.Eligible("cast") {
		t.Error("cast should be ineligible by default")
	}
}

func TestLoadFile_YAMLOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
logging:
  level: debug
store:
  type: badger
recommend:
  generation:
    pool_limit: 12
session:
  ttl: 5m
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Logging.Level != "debug" {
		t.Errorf("server/logging not overridden: %+v %+v", cfg.Server, cfg.Logging)
	}
	if cfg.Store.Type != carousel.StoreTypeBadger {
		t.Errorf("Store.Type = %q", cfg.Store.Type)
	}
	if cfg.Recommend.Generation.PoolLimit != 12 || cfg.Recommend.Generation.MinPoolSize != 2 {
		t.Errorf("generation = %+v", cfg.Recommend.Generation)
	}
	if cfg.Session.TTL != 5*time.Minute || cfg.Session.MaxSessions != 1000 {
		t.Errorf("session = %+v", cfg.Session)
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9090\n")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.Server.Port)
	}
	if !slices.Equal(cfg.Server.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Session.TTL != 90*time.Second {
		t.Errorf("Session.TTL = %v", cfg.Session.TTL)
	}
}

func TestLoadFile_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, "store:\n  type: postgres\nsession:\n  max_sessions: 0\n")
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() accepted invalid configuration")
	}
	for _, want := range []string{"store type", "max_sessions"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() with missing file succeeded")
	}
}

func TestFindConfigFile_EnvPath(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 1\n")
	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":          "server.port",
		"LOG_LEVEL":          "logging.level",
		"STORE_TYPE":         "store.type",
		"NATS_URL":           "eventbus.nats.url",
		"CASBIN_POLICY_PATH": "authz.policy_path",
		"JWT_SECRET":         "authz.jwt_secret",
		"PROFILE_STORE_TYPE": "profiles.type",
		"PATH":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("port 70000 accepted")
	}

	cfg = defaultConfig()
	cfg.Server.RateLimitReqs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero rate limit accepted")
	}
	cfg.Server.RateLimitDisabled = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limit rejected: %v", err)
	}
}

func TestConfig_ValidateSharedBadgerPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Store.Type = carousel.StoreTypeBadger
	cfg.Store.Path = "/data/curator"
	cfg.Profiles.Type = preview.ProfileStoreBadger
	cfg.Profiles.Path = "/data/curator"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "profiles path") {
		t.Errorf("Validate() error = %v, want profiles path conflict", err)
	}

	cfg.Profiles.Path = "/data/profiles"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFile_AuthzTokenSettings(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTHZ_TRUST_ROLE_HEADER", "true")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Authz.JWTSecret != "0123456789abcdef0123456789abcdef" {
		t.Errorf("JWTSecret not loaded from env")
	}
	if !cfg.Authz.TrustRoleHeader {
		t.Error("TrustRoleHeader = false, want true")
	}

	t.Setenv("JWT_SECRET", "short")
	if _, err := LoadFile(""); err == nil {
		t.Error("LoadFile() accepted a short jwt_secret")
	}
}
