// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/metrics"
)

// CarouselCreator is the part of the carousel store promotion needs.
type CarouselCreator interface {
	CreateCarousel(ctx context.Context, draft *carousel.Draft, routeID string) (*carousel.Carousel, error)
}

// Promoter turns candidates into persisted draft carousels.
type Promoter struct {
	store    CarouselCreator
	defaults PromotionConfig
	logger   zerolog.Logger
}

// NewPromoter creates a promoter writing to store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewPromoter(store CarouselCreator, cfg *Config, logger zerolog.Logger) *Promoter {
	return &Promoter{
		store:    store,
		defaults: cfg.Clone().Promotion,
		logger:   logger.With().Str("component", "promoter").Logger(),
	}
}

// Draft builds the creation request for c: status Draft, not pinned, and
// exactly one variant with broad targeting. Carousel-level labels come from
// the promotion defaults; the candidate's own labels describe the preview
// rail only.
func (p *Promoter) Draft(c *CandidateCarousel) *carousel.Draft {
	d := p.defaults
	avodSvod := c.AvodSvod
	if avodSvod == "" {
		avodSvod = d.AvodSvod
	}
	variant := carousel.Variant{
		Weight:           d.VariantWeight,
		EditorialName:    c.Title,
		CarouselCompType: d.ComponentType,
		Packages:         slices.Clone(d.Packages),
		Age:              slices.Clone(d.Age),
		DeviceType:       slices.Clone(d.DeviceTypes),
		RegionConfig: carousel.RegionConfig{
			SelectedRegion: d.Region,
			Included:       slices.Clone(d.IncludedRegions),
			Excluded:       []string{},
		},
		RecommendationType: d.RecommendationType,
		VodAvailable:       true,
		AllowPrevious:      true,
		RemovePrevious:     false,
		EpisodeOrder:       true,
		IncludeExclude:     "",
		AvodSvod:           avodSvod,
	}
	return &carousel.Draft{
		EditorialName:      c.Title,
		Type:               d.ComponentType,
		Items:              c.ItemCount(),
		ContentIDs:         c.ContentIDs(),
		Platforms:          slices.Clone(d.DeviceTypes),
		RecommendationType: d.RecommendationType,
		AvodSvod:           avodSvod,
		Status:             carousel.StatusDraft,
		Pinned:             false,
		Variants:           []carousel.Variant{variant},
	}
}

// Promote persists c on routeID. An empty route is rejected before the
// store is contacted. Promotion is not idempotent: every call creates a
// new carousel.
func (p *Promoter) Promote(ctx context.Context, c *CandidateCarousel, routeID string) (*carousel.Carousel, error) {
	if routeID == "" {
		metrics.RecordPromotion(metrics.OutcomeRejected)
		return nil, ErrNoTargetRoute
	}
	if c == nil || c.ItemCount() == 0 {
		metrics.RecordPromotion(metrics.OutcomeRejected)
		return nil, ErrEmptyCandidate
	}

	created, err := p.store.CreateCarousel(ctx, p.Draft(c), routeID)
	if err != nil {
		outcome := metrics.OutcomeError
		if carousel.IsDomainError(err) {
			outcome = metrics.OutcomeRejected
		}
		metrics.RecordPromotion(outcome)
		return nil, fmt.Errorf("promote candidate %s: %w", c.ID, err)
	}

	metrics.RecordPromotion(metrics.OutcomeSuccess)
	p.logger.Info().
		Str("candidate_id", c.ID).
		Str("carousel_id", created.ID).
		Str("route_id", routeID).
		Int("items", created.Items).
		Msg("Candidate promoted to draft carousel")
	return created, nil
}
