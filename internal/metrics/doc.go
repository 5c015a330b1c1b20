// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package metrics provides Prometheus instrumentation for the preview service.

Collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8090/metrics

# Available Metrics

Simulation:
  - curator_actions_recorded_total{action}
  - curator_interest_increment_total{action}
  - curator_candidates_generated_total{strategy}
  - curator_generation_duration_seconds
  - curator_recompute_superseded_total
  - curator_active_sessions

Promotion and store:
  - curator_promotions_total{outcome}
  - curator_store_operations_total{operation,outcome}
  - curator_store_breaker_state

Delivery:
  - curator_notifications_total{sink,outcome}
  - curator_events_published_total{topic,outcome}
  - curator_websocket_clients

HTTP:
  - curator_api_requests_total{method,route,status}
  - curator_api_request_duration_seconds{method,route}
*/
package metrics
