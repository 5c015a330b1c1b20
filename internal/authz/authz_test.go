// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package authz

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/tomtom215/curator/internal/logging"
)

func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

func setupEnforcer(t *testing.T, cfg *Config) *Enforcer {
	t.Helper()
	e, err := NewEnforcer(cfg)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func assertEnforce(t *testing.T, e *Enforcer, role, module, perm string, want bool) {
	t.Helper()
	got, err := e.Enforce(role, module, perm)
	if err != nil {
		t.Fatalf("Enforce(%s, %s, %s) error = %v", role, module, perm, err)
	}
	if got != want {
		t.Errorf("Enforce(%s, %s, %s) = %v, want %v", role, module, perm, got, want)
	}
}

func TestEnforcer_EmbeddedPolicy(t *testing.T) {
	t.Parallel()

	e := setupEnforcer(t, nil)

	tests := []struct {
		role, module, perm string
		want               bool
	}{
		{"admin", ModuleCarousel, PermDelete, true},
		{"admin", ModulePreview, PermUpdate, true},
		{"content_manager", ModulePreview, PermUpdate, true},
		{"content_manager", ModulePreview, PermDelete, false},
		{"content_manager", ModuleCarousel, PermCreate, true},
		{"editor", ModuleCarousel, PermCreate, true},
		{"content_creator", ModuleCarousel, PermCreate, true},
		{"content_creator", ModulePreview, PermRead, false},
		{"viewer", ModulePreview, PermRead, true},
		{"viewer", ModuleCarousel, PermRead, true},
		{"viewer", ModuleCarousel, PermCreate, false},
		{"stranger", ModulePreview, PermRead, false},
	}
	for _, tt := range tests {
		assertEnforce(t, e, tt.role, tt.module, tt.perm, tt.want)
	}
}

func TestEnforcer_GrantRevokeFlushesCache(t *testing.T) {
	t.Parallel()

	e := setupEnforcer(t, nil)
	assertEnforce(t, e, "viewer", ModuleCarousel, PermCreate, false)

	if added, err := e.Grant("viewer", ModuleCarousel, PermCreate); err != nil || !added {
		t.Fatalf("Grant() = %v, %v", added, err)
	}
	assertEnforce(t, e, "viewer", ModuleCarousel, PermCreate, true)

	if removed, err := e.Revoke("viewer", ModuleCarousel, PermCreate); err != nil || !removed {
		t.Fatalf("Revoke() = %v, %v", removed, err)
	}
	assertEnforce(t, e, "viewer", ModuleCarousel, PermCreate, false)
}

func TestEnforcer_Roles(t *testing.T) {
	t.Parallel()

	roles, err := setupEnforcer(t, nil).Roles()
	if err != nil {
		t.Fatalf("Roles() error = %v", err)
	}
	for _, want := range []string{"admin", "content_manager", "content_creator", "viewer"} {
		if !slices.Contains(roles, want) {
			t.Errorf("Roles() = %v, missing %s", roles, want)
		}
	}
}

func TestEnforcer_PolicyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "policy.csv")
	if err := os.WriteFile(path, []byte("p, auditor, carousel, read\n"), 0o600); err != nil {
		t.Fatalf("write policy: %v", err)
	}
	cfg := DefaultConfig()
	cfg.PolicyPath = path
	cfg.CacheTTL = 0
	e := setupEnforcer(t, &cfg)

	assertEnforce(t, e, "auditor", ModuleCarousel, PermRead, true)
	assertEnforce(t, e, "admin", ModuleCarousel, PermRead, false)
}

func TestNewEnforcer_MissingPolicyFile(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.PolicyPath = filepath.Join(t.TempDir(), "missing.csv")
	if _, err := NewEnforcer(&cfg); err == nil {
		t.Error("NewEnforcer() with missing policy file succeeded")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default Validate() error = %v", err)
	}
	cfg.ReloadInterval = 1
	if err := cfg.Validate(); err == nil {
		t.Error("reload without policy path accepted")
	}
	cfg = DefaultConfig()
	cfg.RoleHeader = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty role header accepted")
	}
}

func serve(t *testing.T, mw *Middleware, module, perm, role string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var seenRole string
	h := mw.Require(module, perm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if role != "" {
		req.Header.Set(DefaultRoleHeader, role)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seenRole
}

func TestMiddleware_Require(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TrustRoleHeader = true
	mw := NewMiddleware(setupEnforcer(t, &cfg), &cfg)

	rec, role := serve(t, mw, ModuleCarousel, PermCreate, "Content_Manager")
	if rec.Code != http.StatusNoContent || role != "content_manager" {
		t.Errorf("manager: status=%d role=%q", rec.Code, role)
	}

	rec, _ = serve(t, mw, ModuleCarousel, PermCreate, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("default viewer status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "AUTHORIZATION_ERROR") {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec, role = serve(t, mw, ModulePreview, PermRead, "")
	if rec.Code != http.StatusNoContent || role != "viewer" {
		t.Errorf("viewer read: status=%d role=%q", rec.Code, role)
	}
}

func TestMiddleware_IgnoresRoleHeaderByDefault(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	mw := NewMiddleware(setupEnforcer(t, &cfg), &cfg)

	rec, _ := serve(t, mw, ModuleCarousel, PermCreate, "admin")
	if rec.Code != http.StatusForbidden {
		t.Errorf("self-declared admin status = %d, want 403", rec.Code)
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Enabled = false
	mw := NewMiddleware(nil, &cfg)

	rec, role := serve(t, mw, ModuleCarousel, PermDelete, "")
	if rec.Code != http.StatusNoContent || role != "viewer" {
		t.Errorf("status=%d role=%q", rec.Code, role)
	}
}
