// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package notify

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/metrics"
)

// ErrQueueFull is returned when the async queue cannot accept more work.
var ErrQueueFull = errors.New("notification queue full")

// Async queues notifications for a background worker. It implements
// suture.Service; Enqueue never blocks.
type Async struct {
	next   Sink
	queue  chan Interaction
	logger zerolog.Logger
}

// NewAsync creates an async sink with the given queue size.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAsync(next Sink, size int, logger zerolog.Logger) *Async {
	if size < 1 {
		size = 1
	}
	return &Async{
		next:   next,
		queue:  make(chan Interaction, size),
		logger: logger.With().Str("component", "notify-async").Logger(),
	}
}

// OnInteractionLogged enqueues n. The context is not carried to the worker.
func (a *Async) OnInteractionLogged(_ context.Context, n Interaction) error {
	select {
	case a.queue <- n:
		return nil
	default:
		metrics.RecordNotification("async", metrics.OutcomeDropped)
		a.logger.Warn().Str("session_id", n.SessionID).Msg("Notification queue full, dropping")
		return ErrQueueFull
	}
}

// Pending returns the number of queued notifications.
func (a *Async) Pending() int {
	return len(a.queue)
}

// Serve delivers queued notifications until ctx is canceled. Anything
// still queued is drained before returning.
func (a *Async) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			a.drain()
			return ctx.Err()
		case n := <-a.queue:
			a.deliver(context.Background(), n)
		}
	}
}

func (a *Async) drain() {
	for {
		select {
		case n := <-a.queue:
			a.deliver(context.Background(), n)
		default:
			return
		}
	}
}

func (a *Async) deliver(ctx context.Context, n Interaction) {
	if err := a.next.OnInteractionLogged(ctx, n); err != nil {
		a.logger.Warn().Err(err).Str("session_id", n.SessionID).Msg("Notification delivery failed")
	}
}

// String implements fmt.Stringer for suture logging.
func (a *Async) String() string {
	return "notify-async"
}
