// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package preview hosts recommendation preview sessions.

A session pairs a preview profile with a selected page and accumulates
simulated interactions. The Service keeps sessions in a bounded LRU
registry with an idle TTL, forwards acknowledged interactions to the
notification sink, schedules debounced candidate recomputation, and
promotes candidates into the carousel store.

Events published on the bus:

  - candidates_updated after each background recomputation
  - carousel_promoted after a successful promotion

Interaction notifications reach the bus through notify.BusSink.
*/
package preview
