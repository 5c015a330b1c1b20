// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package authz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/tomtom215/curator/internal/cache"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

const decisionCacheSize = 1024

// Enforcer wraps a Casbin SyncedEnforcer with a decision cache.
type Enforcer struct {
	cfg      Config
	enforcer *casbin.SyncedEnforcer
	cache    *cache.LRU[bool]
}

// NewEnforcer loads the model and policy and returns an enforcer.
func NewEnforcer(cfg *Config) (*Enforcer, error) {
	if cfg == nil {
		d := DefaultConfig()
		cfg = &d
	}

	var m model.Model
	var err error
	if cfg.ModelPath != "" {
		m, err = model.NewModelFromFile(cfg.ModelPath)
	} else {
		m, err = model.NewModelFromString(embeddedModel)
	}
	if err != nil {
		return nil, fmt.Errorf("load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if cfg.PolicyPath != "" {
		if _, statErr := os.Stat(cfg.PolicyPath); statErr != nil {
			return nil, fmt.Errorf("policy file: %w", statErr)
		}
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	if cfg.PolicyPath != "" && cfg.ReloadInterval > 0 {
		enforcer.StartAutoLoadPolicy(cfg.ReloadInterval)
	}

	e := &Enforcer{cfg: *cfg, enforcer: enforcer}
	if cfg.CacheTTL > 0 {
		e.cache = cache.NewLRU[bool](decisionCacheSize, cfg.CacheTTL)
	}
	return e, nil
}

// loadPolicy adds CSV policy lines. Comments and blank lines are skipped.
func loadPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) == 4:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("malformed policy line %q", line)
		}
	}
	return nil
}

// Enforce reports whether role holds perm on module.
func (e *Enforcer) Enforce(role, module, perm string) (bool, error) {
	key := role + "|" + module + "|" + perm
	if e.cache != nil {
		if allowed, ok := e.cache.Get(key); ok {
			return allowed, nil
		}
	}

	allowed, err := e.enforcer.Enforce(role, module, perm)
	if err != nil {
		return false, fmt.Errorf("enforce %s on %s/%s: %w", role, module, perm, err)
	}
	if e.cache != nil {
		e.cache.Add(key, allowed)
	}
	return allowed, nil
}

// Grant adds a policy at runtime.
func (e *Enforcer) Grant(role, module, perm string) (bool, error) {
	added, err := e.enforcer.AddPolicy(role, module, perm)
	if err != nil {
		return false, fmt.Errorf("grant %s on %s/%s: %w", role, module, perm, err)
	}
	e.flush()
	return added, nil
}

// Revoke removes a policy at runtime.
func (e *Enforcer) Revoke(role, module, perm string) (bool, error) {
	removed, err := e.enforcer.RemovePolicy(role, module, perm)
	if err != nil {
		return false, fmt.Errorf("revoke %s on %s/%s: %w", role, module, perm, err)
	}
	e.flush()
	return removed, nil
}

// Roles returns every role named in a policy.
func (e *Enforcer) Roles() ([]string, error) {
	return e.enforcer.GetAllSubjects()
}

// DefaultRole returns the role applied to anonymous requests.
func (e *Enforcer) DefaultRole() string {
	return e.cfg.DefaultRole
}

func (e *Enforcer) flush() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// Close stops policy auto-reload.
func (e *Enforcer) Close() {
	e.enforcer.StopAutoLoadPolicy()
}
