// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package carousel owns persisted production carousels and the route tree they
are attached to.

The Store interface is the boundary the recommendation core talks to when a
candidate is promoted. A store is responsible for:

  - assigning the carousel id and modified date
  - inserting the new carousel at position 1 and renumbering the route so
    positions stay contiguous and 1-based
  - incrementing the route's carousel count and its parent's count
  - incrementing the store-wide total entry counter

Three implementations are provided:

  - MemoryStore: process-local maps guarded by a mutex
  - BadgerStore: BadgerDB with JSON values, one transaction per creation
  - BreakerStore: a gobreaker decorator that fails fast while the wrapped
    store is unhealthy

NewStore selects between them from Config.
*/
package carousel
