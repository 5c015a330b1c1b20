// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"time"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/eventbus"
	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/recommend"
)

// publishTimeout bounds event publication from background recomputation.
const publishTimeout = 5 * time.Second

type candidatesPayload struct {
	Version     uint64                        `json:"version"`
	GeneratedAt time.Time                     `json:"generatedAt"`
	Candidates  []recommend.CandidateCarousel `json:"candidates"`
}

type promotedPayload struct {
	CandidateID string             `json:"candidateId"`
	Strategy    recommend.Strategy `json:"strategy"`
	Carousel    *carousel.Carousel `json:"carousel"`
}

// candidatesUpdated returns the recomputer callback for sessionID.
func (s *Service) candidatesUpdated(sessionID string) func(*recommend.Result) {
	return func(res *recommend.Result) {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		ctx = logging.ContextWithSessionID(ctx, sessionID)
		s.publish(ctx, eventbus.TypeCandidatesUpdated, sessionID, candidatesPayload{
			Version:     res.Version,
			GeneratedAt: res.GeneratedAt,
			Candidates:  res.Candidates,
		})
	}
}

// publish is best effort; failures are logged.
func (s *Service) publish(ctx context.Context, eventType, sessionID string, data interface{}) {
	if s.events == nil {
		return
	}
	ev, err := eventbus.NewEvent(eventType, sessionID, data)
	if err == nil {
		err = s.events.Publish(ctx, ev)
	}
	if err != nil {
		s.logger.Warn().Err(err).
			Str("event_type", eventType).
			Str("session_id", sessionID).
			Msg("Event publish failed")
	}
}
