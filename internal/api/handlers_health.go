// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	Sessions         int     `json:"sessions"`
	WebSocketClients int     `json:"websocketClients"`
	EventBackend     string  `json:"eventBackend,omitempty"`
	EventBreaker     string  `json:"eventBreaker,omitempty"`
	StoreReachable   bool    `json:"storeReachable"`
	Uptime           float64 `json:"uptime"`
}

// Health handles GET /health. The service is degraded when the carousel
// store cannot be read or the event breaker is open.
//
// @Summary Health check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	_, storeErr := h.preview.Routes(r.Context())

	health := HealthStatus{
		Status:         "healthy",
		Version:        h.version,
		Sessions:       h.preview.SessionCount(),
		StoreReachable: storeErr == nil,
		Uptime:         time.Since(h.startTime).Seconds(),
	}
	if h.wsHub != nil {
		health.WebSocketClients = h.wsHub.GetClientCount()
	}
	if h.events != nil {
		health.EventBackend = h.events.Backend()
		health.EventBreaker = h.events.BreakerState()
	}
	if storeErr != nil || health.EventBreaker == gobreaker.StateOpen.String() {
		health.Status = "degraded"
	}
	respondSuccess(w, r, http.StatusOK, health, start)
}

// HealthLive handles GET /health/live.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}
