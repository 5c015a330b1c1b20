// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package notify

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/curator/internal/eventbus"
	"github.com/tomtom215/curator/internal/metrics"
)

// ErrThrottled is returned when a notification exceeds the rate limit.
var ErrThrottled = errors.New("notification throttled")

// LogSink writes notifications to a structured logger.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a log sink.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger.With().Str("component", "notify").Logger()}
}

// OnInteractionLogged logs n at info level.
func (s *LogSink) OnInteractionLogged(_ context.Context, n Interaction) error {
	s.logger.Info().
		Str("session_id", n.SessionID).
		Str("content_id", n.ContentID).
		Str("action", n.Action).
		Str("detail", n.Detail).
		Msg(n.Message)
	metrics.RecordNotification("log", metrics.OutcomeSuccess)
	return nil
}

// BusSink publishes notifications as interaction_logged events.
type BusSink struct {
	bus eventbus.Publisher
}

// NewBusSink creates a bus sink.
func NewBusSink(bus eventbus.Publisher) *BusSink {
	return &BusSink{bus: bus}
}

// OnInteractionLogged publishes n.
func (s *BusSink) OnInteractionLogged(ctx context.Context, n Interaction) error {
	ev, err := eventbus.NewEvent(eventbus.TypeInteractionLogged, n.SessionID, n)
	if err == nil {
		err = s.bus.Publish(ctx, ev)
	}
	if err != nil {
		metrics.RecordNotification("bus", metrics.OutcomeError)
		return err
	}
	metrics.RecordNotification("bus", metrics.OutcomeSuccess)
	return nil
}

// ThrottledSink rate limits an inner sink. Excess notifications are
// dropped, not delayed.
type ThrottledSink struct {
	next    Sink
	limiter *rate.Limiter
}

// NewThrottledSink allows perSecond notifications with the given burst.
// A non-positive rate disables throttling.
func NewThrottledSink(next Sink, perSecond float64, burst int) *ThrottledSink {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &ThrottledSink{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// OnInteractionLogged forwards n when a token is available.
func (s *ThrottledSink) OnInteractionLogged(ctx context.Context, n Interaction) error {
	if !s.limiter.Allow() {
		metrics.RecordNotification("throttle", metrics.OutcomeDropped)
		return ErrThrottled
	}
	return s.next.OnInteractionLogged(ctx, n)
}
