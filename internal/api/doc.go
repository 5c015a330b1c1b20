// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package api exposes the preview service over HTTP with the chi router.

Endpoints:

	GET    /health                                       health summary
	GET    /health/live                                  liveness check
	GET    /metrics                                      Prometheus metrics
	GET    /swagger/*                                    OpenAPI document and UI
	GET    /ws                                           realtime events (?sessionId=)

	POST   /api/v1/sessions                              load a preview session
	GET    /api/v1/sessions/{sessionID}                  session summary
	DELETE /api/v1/sessions/{sessionID}                  end a session
	POST   /api/v1/sessions/{sessionID}/reload           reset with a new profile
	PUT    /api/v1/sessions/{sessionID}/page             select a page
	POST   /api/v1/sessions/{sessionID}/actions          record an interaction
	GET    /api/v1/sessions/{sessionID}/log              action log, newest first
	GET    /api/v1/sessions/{sessionID}/profile          top interests
	GET    /api/v1/sessions/{sessionID}/candidates       candidate carousels
	POST   /api/v1/sessions/{sessionID}/candidates/{candidateID}/promote

	GET    /api/v1/profiles                              saved preview profiles
	GET    /api/v1/profiles/{userID}                     one saved profile
	PUT    /api/v1/profiles/{userID}                     save a profile
	DELETE /api/v1/profiles/{userID}                     delete a profile

	GET    /api/v1/catalog                               content search
	GET    /api/v1/routes                                route tree
	GET    /api/v1/routes/{routeID}/carousels            carousels on a route

Every response uses the models.APIResponse envelope. Write endpoints are
rate limited per client IP with httprate. Reads require preview:read,
session changes require preview:update, and promotion requires
carousel:create; the role comes from the bearer token's role claim.
*/
package api
