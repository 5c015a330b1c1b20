// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/curator/config.yaml",
	"/etc/curator/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load reads configuration from defaults, the config file, and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit file path. An empty path skips the
// file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it exists, else the first
// default path that exists, else "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as strings.
var sliceConfigPaths = []string{
	"server.cors_origins",
	"recommend.candidate.platforms",
	"recommend.promotion.packages",
	"recommend.promotion.age",
	"recommend.promotion.device_types",
	"recommend.promotion.included_regions",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variables (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	// Logging
	"log_level":     "logging.level",
	"log_format":    "logging.format",
	"log_caller":    "logging.caller",
	"log_timestamp": "logging.timestamp",

	// Recommendation
	"recommend_log_capacity":        "recommend.log_capacity",
	"recommend_pool_limit":          "recommend.generation.pool_limit",
	"recommend_min_pool_size":       "recommend.generation.min_pool_size",
	"recommend_watched_seeds":       "recommend.generation.watched_seeds",
	"recommend_interest_top_n":      "recommend.generation.interest_top_n",
	"recommend_min_interest_weight": "recommend.generation.min_interest_weight",
	"recommend_debounce":            "recommend.recompute.debounce",
	"recommend_platforms":           "recommend.candidate.platforms",
	"promotion_region":              "recommend.promotion.region",
	"promotion_included_regions":    "recommend.promotion.included_regions",
	"promotion_device_types":        "recommend.promotion.device_types",
	"promotion_packages":            "recommend.promotion.packages",

	// Catalog
	"catalog_path": "catalog.path",

	// Carousel store
	"store_type":                      "store.type",
	"store_path":                      "store.path",
	"store_breaker_enabled":           "store.breaker.enabled",
	"store_breaker_failure_threshold": "store.breaker.failure_threshold",
	"store_breaker_timeout":           "store.breaker.timeout",
	"profile_store_type":              "profiles.type",
	"profile_store_path":              "profiles.path",

	// Notifications
	"notify_log":             "notify.log",
	"notify_bus":             "notify.bus",
	"notify_rate_per_second": "notify.rate_per_second",
	"notify_burst":           "notify.burst",
	"notify_queue_size":      "notify.queue_size",

	// Event bus
	"eventbus_enabled":     "eventbus.enabled",
	"eventbus_backend":     "eventbus.backend",
	"eventbus_buffer_size": "eventbus.buffer_size",
	"nats_url":             "eventbus.nats.url",
	"nats_embedded":        "eventbus.nats.embedded",
	"nats_host":            "eventbus.nats.host",
	"nats_port":            "eventbus.nats.port",
	"nats_queue_group":     "eventbus.nats.queue_group",

	// Authorization
	"authz_enabled":           "authz.enabled",
	"authz_default_role":      "authz.default_role",
	"authz_role_header":       "authz.role_header",
	"authz_trust_role_header": "authz.trust_role_header",
	"jwt_secret":              "authz.jwt_secret",
	"jwt_issuer":              "authz.jwt_issuer",
	"jwt_audience":            "authz.jwt_audience",
	"jwt_clock_skew":          "authz.clock_skew",
	"casbin_model_path":       "authz.model_path",
	"casbin_policy_path":      "authz.policy_path",
	"casbin_reload_interval":  "authz.reload_interval",
	"authz_cache_ttl":         "authz.cache_ttl",

	// Sessions
	"session_max":              "session.max_sessions",
	"session_ttl":              "session.ttl",
	"session_cleanup_interval": "session.cleanup_interval",

	// Supervisor
	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever path changes. The caller must
// synchronize access to any configuration it reloads.
func WatchConfigFile(path string, callback func()) error {
	return file.Provider(path).Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
