// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

// Package services adapts blocking components to suture.Service so the
// supervisor tree can restart them: the HTTP server and the periodic
// session sweeper.
package services
