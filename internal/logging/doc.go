// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

// Package logging provides the process-wide zerolog logger for Curator.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("Server starting")
//	logging.Err(err).Msg("Promotion failed")
//
//	// Request-scoped fields
//	logging.Ctx(ctx).Info().Str("session_id", id).Msg("Action recorded")
//
// Components receive a zerolog.Logger and derive their own child:
//
//	logger := base.With().Str("component", "preview").Logger()
//
// # Adapters
//
// Two bridges route third-party logging into zerolog:
//
//   - SlogHandler implements slog.Handler, used for the sutureslog
//     supervisor event hook.
//   - WatermillAdapter implements watermill.LoggerAdapter, used by the
//     event bus publisher, subscriber and router.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
