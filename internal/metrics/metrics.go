// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeDropped  = "dropped"
)

var (
	// Simulation Metrics
	ActionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_actions_recorded_total",
			Help: "Total number of simulated viewer actions recorded",
		},
		[]string{"action"},
	)

	InterestIncrement = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_interest_increment_total",
			Help: "Sum of interest weight added to profiles, per action",
		},
		[]string{"action"},
	)

	CandidatesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_candidates_generated_total",
			Help: "Total number of candidate carousels emitted, per strategy",
		},
		[]string{"strategy"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "curator_generation_duration_seconds",
			Help:    "Duration of one candidate generation pass",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecomputeSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "curator_recompute_superseded_total",
			Help: "Total number of background generation results discarded as stale",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "curator_active_sessions",
			Help: "Number of preview sessions held in the registry",
		},
	)

	// Promotion and Store Metrics
	Promotions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_promotions_total",
			Help: "Total number of candidate promotions, per outcome",
		},
		[]string{"outcome"},
	)

	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_store_operations_total",
			Help: "Total number of carousel store operations",
		},
		[]string{"operation", "outcome"},
	)

	StoreBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "curator_store_breaker_state",
			Help: "Carousel store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Delivery Metrics
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_notifications_total",
			Help: "Total number of interaction notifications, per sink and outcome",
		},
		[]string{"sink", "outcome"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_events_published_total",
			Help: "Total number of events published to the event bus",
		},
		[]string{"topic", "outcome"},
	)

	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "curator_websocket_clients",
			Help: "Number of connected websocket clients",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "curator_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Authorization Metrics
	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_authz_decisions_total",
			Help: "Authorization decisions by role, module, permission, and decision",
		},
		[]string{"role", "module", "permission", "decision"},
	)
)

// RecordAction records one simulated action and the weight it contributed
// across all tags.
func RecordAction(action string, addedWeight float64) {
	ActionsRecorded.WithLabelValues(action).Inc()
	if addedWeight > 0 {
		InterestIncrement.WithLabelValues(action).Add(addedWeight)
	}
}

// RecordGeneration records a generation pass.
func RecordGeneration(duration time.Duration, perStrategy map[string]int) {
	GenerationDuration.Observe(duration.Seconds())
	for strategy, n := range perStrategy {
		if n > 0 {
			CandidatesGenerated.WithLabelValues(strategy).Add(float64(n))
		}
	}
}

// RecordSuperseded counts a discarded background result.
func RecordSuperseded() {
	RecomputeSuperseded.Inc()
}

// SetActiveSessions updates the session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// RecordPromotion records a promotion attempt.
func RecordPromotion(outcome string) {
	Promotions.WithLabelValues(outcome).Inc()
}

// RecordStoreOperation records a store call.
func RecordStoreOperation(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	StoreOperations.WithLabelValues(operation, outcome).Inc()
}

// SetStoreBreakerState records the breaker state as its numeric value.
func SetStoreBreakerState(state int) {
	StoreBreakerState.Set(float64(state))
}

// RecordNotification records a sink delivery.
func RecordNotification(sink, outcome string) {
	Notifications.WithLabelValues(sink, outcome).Inc()
}

// RecordEventPublish records a bus publish.
func RecordEventPublish(topic string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	EventsPublished.WithLabelValues(topic, outcome).Inc()
}

// SetWebSocketClients updates the websocket client gauge.
func SetWebSocketClients(n int) {
	WebSocketClients.Set(float64(n))
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthzDecision records an authorization decision.
func RecordAuthzDecision(role, module, permission string, allowed bool) {
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	AuthzDecisions.WithLabelValues(role, module, permission, decision).Inc()
}
