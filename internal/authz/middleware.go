// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package authz

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/metrics"
	"github.com/tomtom215/curator/internal/models"
)

type roleKey struct{}

// RoleFromContext returns the role resolved by the middleware.
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(roleKey{}).(string); ok {
		return v
	}
	return ""
}

// Middleware resolves the caller's role and enforces module permissions.
type Middleware struct {
	enforcer *Enforcer
	verifier *TokenVerifier
	cfg      Config
}

// NewMiddleware creates the middleware. A nil enforcer or a disabled
// config allows every request. Bearer tokens are verified only when the
// config carries a valid JWT secret.
func NewMiddleware(enforcer *Enforcer, cfg *Config) *Middleware {
	m := &Middleware{enforcer: enforcer, cfg: *cfg}
	if cfg.JWTSecret != "" {
		if v, err := NewTokenVerifier(cfg); err == nil {
			m.verifier = v
		} else {
			logging.Error().Err(err).Msg("JWT verification disabled, bearer tokens will be rejected")
		}
	}
	return m
}

// Role resolves the caller's role. A bearer token must verify and supplies
// its role claim. Without a token the role header is honored only when
// TrustRoleHeader is set; otherwise the default role applies.
func (m *Middleware) Role(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := bearerToken(header)
		if !ok {
			return "", ErrInvalidToken
		}
		if m.verifier == nil {
			return "", fmt.Errorf("%w: token verification is not configured", ErrInvalidToken)
		}
		claims, err := m.verifier.Verify(token)
		if err != nil {
			return "", err
		}
		if claims.Role == "" {
			return m.cfg.DefaultRole, nil
		}
		return claims.Role, nil
	}
	if m.cfg.TrustRoleHeader {
		if role := strings.TrimSpace(r.Header.Get(m.cfg.RoleHeader)); role != "" {
			return strings.ToLower(role), nil
		}
	}
	return m.cfg.DefaultRole, nil
}

// Require returns chi-compatible middleware allowing only roles holding
// perm on module.
func (m *Middleware) Require(module, perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := m.Role(r)
			if !m.cfg.Enabled || m.enforcer == nil {
				if err != nil {
					role = m.cfg.DefaultRole
				}
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), roleKey{}, role)))
				return
			}
			if err != nil {
				logging.Ctx(r.Context()).Debug().Err(err).Msg("Authentication failed")
				w.Header().Set("WWW-Authenticate", `Bearer realm="curator"`)
				writeError(w, http.StatusUnauthorized, models.ErrCodeUnauthorized, "invalid or expired bearer token")
				return
			}
			ctx := context.WithValue(r.Context(), roleKey{}, role)

			allowed, err := m.enforcer.Enforce(role, module, perm)
			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Str("role", role).Msg("Authorization error")
				writeError(w, http.StatusInternalServerError, models.ErrCodeInternal, "authorization failed")
				return
			}
			metrics.RecordAuthzDecision(role, module, perm, allowed)
			if !allowed {
				logging.Ctx(ctx).Debug().
					Str("role", role).
					Str("module", module).
					Str("permission", perm).
					Msg("Authorization denied")
				writeError(w, http.StatusForbidden, models.ErrCodeForbidden,
					"role "+role+" lacks "+perm+" permission on "+module)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.NewError(code, message, nil))
}
