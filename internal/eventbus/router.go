// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package eventbus

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Broadcaster receives raw event JSON, typically the WebSocket hub.
type Broadcaster interface {
	BroadcastRaw(data []byte)
}

// Router consumes bus topics and forwards every event to a Broadcaster.
// It implements suture.Service.
type Router struct {
	bus         *Bus
	cfg         RouterConfig
	broadcaster Broadcaster

	running   atomic.Bool
	forwarded atomic.Int64
}

// NewRouter creates a router forwarding all event types to broadcaster.
func NewRouter(bus *Bus, cfg RouterConfig, broadcaster Broadcaster) (*Router, error) {
	if broadcaster == nil {
		return nil, fmt.Errorf("broadcaster required")
	}
	return &Router{bus: bus, cfg: cfg, broadcaster: broadcaster}, nil
}

// build creates a fresh Watermill router. A router cannot be restarted
// once closed, so each Serve call builds its own.
func (r *Router) build() (*message.Router, error) {
	wm, err := message.NewRouter(message.RouterConfig{CloseTimeout: r.cfg.CloseTimeout}, r.bus.WatermillLogger())
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	wm.AddMiddleware(middleware.Recoverer)
	if r.cfg.RetryMaxRetries > 0 {
		retry := middleware.Retry{
			MaxRetries:      r.cfg.RetryMaxRetries,
			InitialInterval: r.cfg.RetryInitialInterval,
			Logger:          r.bus.WatermillLogger(),
		}
		wm.AddMiddleware(retry.Middleware)
	}

	for _, t := range Types {
		wm.AddConsumerHandler("forward-"+t, Topic(t), r.bus.Subscriber(), r.forward)
	}
	return wm, nil
}

// forward passes the payload on unchanged. Undecodable messages are
// dropped rather than retried.
func (r *Router) forward(msg *message.Message) error {
	if _, err := UnmarshalEvent(msg.Payload); err != nil {
		r.bus.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed event")
		return nil
	}
	r.broadcaster.BroadcastRaw(msg.Payload)
	r.forwarded.Add(1)
	return nil
}

// Serve runs the router until ctx is canceled.
func (r *Router) Serve(ctx context.Context) error {
	wm, err := r.build()
	if err != nil {
		return err
	}
	go func() {
		select {
		case <-wm.Running():
			r.running.Store(true)
		case <-ctx.Done():
		}
	}()
	defer r.running.Store(false)

	if err := wm.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("event router: %w", err)
	}
	return ctx.Err()
}

// Running reports whether the router has subscribed to every topic.
func (r *Router) Running() bool {
	return r.running.Load()
}

// Forwarded returns the number of events forwarded so far.
func (r *Router) Forwarded() int64 {
	return r.forwarded.Load()
}

// String implements fmt.Stringer for suture logging.
func (r *Router) String() string {
	return "eventbus-router"
}
