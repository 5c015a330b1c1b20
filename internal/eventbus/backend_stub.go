// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

//go:build !nats

package eventbus

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

// newBackend returns the channel backend. The NATS backend requires
// building with -tags=nats.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBackend(cfg *Config, wmLogger watermill.LoggerAdapter, _ zerolog.Logger) (*backend, error) {
	if cfg.Backend == BackendNATS {
		return nil, fmt.Errorf("eventbus backend %q not available: build with -tags=nats", BackendNATS)
	}
	return newChannelBackend(cfg, wmLogger), nil
}
