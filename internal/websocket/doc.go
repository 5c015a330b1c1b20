// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package websocket pushes preview session updates to connected operator
consoles.

A Hub owns the client set and fans messages out; each Client runs a read
goroutine (answers application pings) and a write goroutine (writes
messages and keepalive pings). The hub is a suture service.

Messages arrive from the event bus router through BroadcastRaw, which
relays the bus envelope type and payload:

  - interaction_logged: a like, download, or share was recorded
  - candidates_updated: a fresh candidate set was generated
  - carousel_promoted: a candidate became a draft carousel

Clients connected with a session id only receive that session's messages
and unscoped ones. Slow clients whose send buffer fills are disconnected
rather than allowed to stall the hub.
*/
package websocket
