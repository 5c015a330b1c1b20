// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package main is the entry point for the Curator server.

Curator lets merchandisers preview personalized rails for a synthetic
viewer. A preview session accumulates interactions against the content
catalog, derives an interest profile, generates candidate carousels from
it and promotes a chosen candidate as a draft carousel on a page route.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("curator")
	├── DataSupervisor ("data-layer")
	│   └── Session sweeper (expires idle preview sessions)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket Hub (real-time candidate updates)
	│   ├── Event router (bus to WebSocket forwarding)
	│   └── Async notifier (interaction notifications)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Catalog: JSON or YAML file, or the built-in sample
 4. Carousel store: in-memory or BadgerDB, behind a circuit breaker
 5. Event bus: Watermill over Go channels, or NATS with -tags nats
 6. Preview service: session registry and recommendation engine
 7. Authorization: Casbin RBAC keyed on the role claim of a bearer JWT
 8. HTTP Server: chi router with the REST and WebSocket endpoints and
    Swagger UI at /swagger/

# Configuration

Common environment variables:

	HTTP_PORT=8080              Listen port
	CATALOG_PATH=catalog.yaml   Catalog file (empty uses the sample)
	STORE_TYPE=badger           memory or badger
	STORE_PATH=/data/carousels  BadgerDB directory
	EVENTBUS_BACKEND=nats       channel or nats
	JWT_SECRET=...              HS256 secret for bearer tokens (32+ chars)
	AUTHZ_TRUST_ROLE_HEADER=true  Read X-Curator-Role instead (development)
	AUTHZ_ENABLED=false         Disable role checks for development
	PROFILE_STORE_TYPE=badger   Saved preview profiles: memory or badger
	SESSION_TTL=30m             Idle session expiry

# Build Tags

	go build ./cmd/server               # Go channel event bus
	go build -tags nats ./cmd/server    # NATS event bus with embedded server

# Signal Handling

SIGINT and SIGTERM cancel the root context. The supervisor stops the API
layer first, the HTTP server drains in-flight requests, and the store,
bus and authorization enforcer are closed after the tree returns.
*/
package main
