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

	"github.com/google/uuid"

	"github.com/tomtom215/curator/internal/validation"
)

var (
	// ErrRouteNotFound is returned when the target route does not exist.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidDraft is returned when a creation request fails validation.
	ErrInvalidDraft = errors.New("invalid carousel draft")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("carousel store is closed")

	// ErrStoreUnavailable is returned while the circuit breaker is open.
	ErrStoreUnavailable = errors.New("carousel store unavailable")
)

// Store persists carousels and the route tree.
type Store interface {
	// Routes returns every route node in seed order.
	Routes(ctx context.Context) ([]RouteNode, error)

	// Route returns a single route node.
	Route(ctx context.Context, id string) (*RouteNode, error)

	// Carousels returns the route's carousels ordered by position.
	Carousels(ctx context.Context, routeID string) ([]Carousel, error)

	// CreateCarousel persists draft at position 1 of the route.
	CreateCarousel(ctx context.Context, draft *Draft, routeID string) (*Carousel, error)

	// TotalEntries returns the number of carousels created through the store.
	TotalEntries(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// IsDomainError reports whether err describes a rejected request rather
// than a store failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrRouteNotFound) || errors.Is(err, ErrInvalidDraft)
}

// validateDraft checks draft constraints and wraps failures in
// ErrInvalidDraft.
func validateDraft(draft *Draft) error {
	if draft == nil {
		return fmt.Errorf("%w: draft is nil", ErrInvalidDraft)
	}
	if err := validation.ValidateStruct(draft); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDraft, err.Error())
	}
	return nil
}

// materialize turns a validated draft into a carousel with store-assigned
// fields. Position is assigned by prependAndRenumber.
func materialize(draft *Draft, routeID string, now time.Time) Carousel {
	c := Carousel{
		ID:                 uuid.NewString(),
		RouteID:            routeID,
		EditorialName:      draft.EditorialName,
		Type:               draft.Type,
		Items:              draft.Items,
		ContentIDs:         append([]string(nil), draft.ContentIDs...),
		Platforms:          append([]string(nil), draft.Platforms...),
		RecommendationType: draft.RecommendationType,
		AvodSvod:           draft.AvodSvod,
		Status:             draft.Status,
		Pinned:             draft.Pinned,
		Modified:           now.UTC().Format(DateLayout),
		Variants:           make([]Variant, len(draft.Variants)),
	}
	copy(c.Variants, draft.Variants)
	for i := range c.Variants {
		if c.Variants[i].ID == "" {
			c.Variants[i].ID = "variant-" + uuid.NewString()
		}
	}
	if draft.ABTestConfig != nil {
		ab := *draft.ABTestConfig
		c.ABTestConfig = &ab
	}
	return c
}

// prependAndRenumber places c first and renumbers positions from 1.
func prependAndRenumber(existing []Carousel, c Carousel) []Carousel {
	out := make([]Carousel, 0, len(existing)+1)
	out = append(out, c)
	out = append(out, existing...)
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}
