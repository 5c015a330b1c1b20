// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

// Package eventbus carries preview events between Curator components using
// Watermill.
//
// Producers (the preview service and the notification sink) publish Events;
// a Watermill Router consumes them and forwards each payload to the
// WebSocket hub, so browser clients see interactions, recomputed candidates
// and promotions as they happen.
//
//	preview.Service ──► Bus.Publish ──► [gochannel | NATS] ──► Router ──► websocket.Hub
//
// # Backends
//
//   - channel (default): in-process Watermill gochannel pub/sub. No
//     external dependencies and no persistence.
//   - nats: Watermill NATS publisher/subscriber over core NATS, optionally
//     backed by an embedded nats-server. Requires building with -tags=nats.
//
// Publishing goes through a gobreaker circuit breaker so a dead broker
// fails fast instead of stalling request handlers.
//
// # Topics
//
// Every Event type maps to the topic "curator.<type>":
//
//	curator.interaction_logged
//	curator.candidates_updated
//	curator.carousel_promoted
package eventbus
