// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"time"

	ws "github.com/tomtom215/curator/internal/websocket"

	"github.com/tomtom215/curator/internal/preview"
)

// HealthChecker reports the state of a dependency for /health.
type HealthChecker interface {
	BreakerState() string
	Backend() string
}

// Handler serves the HTTP endpoints.
type Handler struct {
	preview     *preview.Service
	wsHub       *ws.Hub
	events      HealthChecker
	corsOrigins []string
	version     string
	startTime   time.Time
}

// HandlerOptions configures a Handler. Hub and Events are optional.
type HandlerOptions struct {
	Preview     *preview.Service
	Hub         *ws.Hub
	Events      HealthChecker
	CORSOrigins []string
	Version     string
}

// NewHandler creates a handler.
func NewHandler(opts HandlerOptions) *Handler {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		preview:     opts.Preview,
		wsHub:       opts.Hub,
		events:      opts.Events,
		corsOrigins: opts.CORSOrigins,
		version:     version,
		startTime:   time.Now(),
	}
}
