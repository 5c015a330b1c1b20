// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/metrics"
)

// ErrBusClosed is returned when publishing on a closed bus.
var ErrBusClosed = errors.New("event bus is closed")

// Publisher is what event producers depend on.
type Publisher interface {
	Publish(ctx context.Context, ev *Event) error
}

// Bus publishes events through a Watermill backend.
type Bus struct {
	backend  *backend
	breaker  *gobreaker.CircuitBreaker[any]
	logger   zerolog.Logger
	wmLogger watermill.LoggerAdapter
	name     string

	mu     sync.RWMutex
	closed bool
}

// New creates a bus for the configured backend.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg *Config, logger zerolog.Logger) (*Bus, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logger.With().Str("component", "eventbus").Str("backend", cfg.Backend).Logger()
	wmLogger := logging.NewWatermillAdapter(logger)

	b, err := newBackend(cfg, wmLogger, logger)
	if err != nil {
		return nil, err
	}
	return &Bus{
		backend:  b,
		breaker:  newBreaker(cfg.Breaker, logger),
		logger:   logger,
		wmLogger: wmLogger,
		name:     cfg.Backend,
	}, nil
}

// Publish sends ev on its topic.
func (b *Bus) Publish(ctx context.Context, ev *Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	payload, err := ev.Marshal()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := message.NewMessage(ev.ID, payload)
	msg.Metadata.Set("type", ev.Type)
	if ev.SessionID != "" {
		msg.Metadata.Set("session_id", ev.SessionID)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}
	msg.SetContext(ctx)

	topic := ev.Topic()
	_, err = b.breaker.Execute(func() (any, error) {
		return nil, b.backend.publisher.Publish(topic, msg)
	})
	metrics.RecordEventPublish(topic, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscriber returns the backend subscriber, used by the Router.
func (b *Bus) Subscriber() message.Subscriber {
	return b.backend.subscriber
}

// WatermillLogger returns the adapter used by the bus.
func (b *Bus) WatermillLogger() watermill.LoggerAdapter {
	return b.wmLogger
}

// BreakerState returns the publish circuit breaker state.
func (b *Bus) BreakerState() string {
	return b.breaker.State().String()
}

// Backend returns the backend name.
func (b *Bus) Backend() string {
	return b.name
}

// Close shuts the backend down. Further publishes fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.backend.close()
}
