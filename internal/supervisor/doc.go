// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package supervisor runs the long-lived services under a suture v4 tree.

The tree has three layers so a crash in one cannot take down the others:

	curator (root)
	├── data-layer       session sweeper
	├── messaging-layer  websocket hub, event router, async notifier
	└── api-layer        HTTP server

Each layer restarts its own children with the configured failure
threshold, decay, and backoff. Supervisor events are logged through
sutureslog and a slog handler backed by zerolog.
*/
package supervisor
