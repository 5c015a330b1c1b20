// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper drops expired state and reports how many entries went.
type Sweeper interface {
	SweepExpired() int
}

// SweeperService calls a Sweeper on a fixed interval.
type SweeperService struct {
	sweeper  Sweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSweeperService creates a sweeper service. A non-positive interval
// becomes one minute.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSweeperService(name string, sweeper Sweeper, interval time.Duration, logger zerolog.Logger) *SweeperService {
	if interval <= 0 {
		interval = time.Minute
	}
	if name == "" {
		name = "sweeper"
	}
	return &SweeperService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", name).Logger(),
		name:     name,
	}
}

// Serve implements suture.Service.
func (s *SweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("sweeper running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.sweeper.SweepExpired(); n > 0 {
				s.logger.Info().Int("removed", n).Msg("swept expired entries")
			}
		}
	}
}

func (s *SweeperService) String() string {
	return s.name
}
