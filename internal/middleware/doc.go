// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package middleware provides chi-compatible HTTP middleware shared by the API
router.

  - RequestID: assigns X-Request-ID and seeds the logging context with
    request and correlation ids
  - Metrics: records request counts and latency per chi route pattern
  - SessionContext: copies the {sessionID} URL parameter into the logging
    context

Typical stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
*/
package middleware
