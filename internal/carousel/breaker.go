// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package carousel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/curator/internal/metrics"
)

// BreakerConfig configures the store circuit breaker.
type BreakerConfig struct {
	// Enabled wraps the store in a circuit breaker.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of trial calls allowed while half-open.
	// Default: 3
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	// Default: 30s
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open.
	// Default: 10s
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures that opens the
	// breaker.
	// Default: 5
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerStore fails fast with ErrStoreUnavailable while the wrapped store
// keeps failing. Rejected requests (unknown route, invalid draft) do not
// count as failures.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps next.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerStore(next Store, cfg BreakerConfig, logger zerolog.Logger) *BreakerStore {
	settings := gobreaker.Settings{
		Name:        "carousel-store",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsDomainError(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("carousel store circuit breaker state changed")
			metrics.SetStoreBreakerState(int(to))
		},
	}

	return &BreakerStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[any](settings),
	}
}

// State returns the breaker state name.
func (b *BreakerStore) State() string {
	return b.cb.State().String()
}

func (b *BreakerStore) execute(op string, fn func() (any, error)) (any, error) {
	v, err := b.cb.Execute(fn)
	metrics.RecordStoreOperation(op, err)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return v, err
}

// Routes implements Store.
func (b *BreakerStore) Routes(ctx context.Context) ([]RouteNode, error) {
	v, err := b.execute("routes", func() (any, error) { return b.next.Routes(ctx) })
	if err != nil {
		return nil, err
	}
	return v.([]RouteNode), nil
}

// Route implements Store.
func (b *BreakerStore) Route(ctx context.Context, id string) (*RouteNode, error) {
	v, err := b.execute("route", func() (any, error) { return b.next.Route(ctx, id) })
	if err != nil {
		return nil, err
	}
	return v.(*RouteNode), nil
}

// Carousels implements Store.
func (b *BreakerStore) Carousels(ctx context.Context, routeID string) ([]Carousel, error) {
	v, err := b.execute("carousels", func() (any, error) { return b.next.Carousels(ctx, routeID) })
	if err != nil {
		return nil, err
	}
	return v.([]Carousel), nil
}

// CreateCarousel implements Store.
func (b *BreakerStore) CreateCarousel(ctx context.Context, draft *Draft, routeID string) (*Carousel, error) {
	v, err := b.execute("create_carousel", func() (any, error) { return b.next.CreateCarousel(ctx, draft, routeID) })
	if err != nil {
		return nil, err
	}
	return v.(*Carousel), nil
}

// TotalEntries implements Store.
func (b *BreakerStore) TotalEntries(ctx context.Context) (int, error) {
	v, err := b.execute("total_entries", func() (any, error) { return b.next.TotalEntries(ctx) })
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Close implements Store.
func (b *BreakerStore) Close() error {
	return b.next.Close()
}
