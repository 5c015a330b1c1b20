// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/catalog"
)

func fourItemCandidate() *CandidateCarousel {
	return &CandidateCarousel{
		ID:       "rec-liked-a",
		Title:    "Because you liked A",
		Type:     CandidateType,
		Position: 1,
		Strategy: StrategyLiked,
		Items: []catalog.ContentItem{
			item("b", "B", genre("Action")),
			item("c", "C", genre("Action")),
			item("d", "D", genre("Action")),
			item("e", "E", genre("Action")),
		},
		Platforms:          []string{"all"},
		RecommendationType: "Personalized",
		AvodSvod:           "SVOD",
	}
}

type countingCreator struct {
	calls int
}

func (c *countingCreator) CreateCarousel(_ context.Context, _ *carousel.Draft, _ string) (*carousel.Carousel, error) {
	c.calls++
	return &carousel.Carousel{ID: "x"}, nil
}

func TestPromote_CreatesDraftWithOneVariant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := carousel.NewMemoryStore(carousel.DefaultRoutes())
	before, err := store.Route(ctx, "ww-home")
	if err != nil {
		t.Fatalf("route: %v", err)
	}

	p := NewPromoter(store, DefaultConfig(), zerolog.Nop())
	created, err := p.Promote(ctx, fourItemCandidate(), "ww-home")
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}

	if created.Status != carousel.StatusDraft {
		t.Errorf("status = %s, want Draft", created.Status)
	}
	if created.Pinned {
		t.Error("promoted carousel must not be pinned")
	}
	if len(created.Variants) != 1 {
		t.Fatalf("variants = %d, want 1", len(created.Variants))
	}
	if created.Items != 4 {
		t.Errorf("items = %d, want 4", created.Items)
	}
	if created.EditorialName != "Because you liked A" || created.Position != 1 {
		t.Errorf("carousel = %q at %d", created.EditorialName, created.Position)
	}

	if created.RecommendationType != "Editorials (Manual)" {
		t.Errorf("carousel recommendationType = %q, want Editorials (Manual)", created.RecommendationType)
	}
	wantPlatforms := []string{"web", "mobile_android", "mobile_ios", "android_tv"}
	if !slices.Equal(created.Platforms, wantPlatforms) {
		t.Errorf("carousel platforms = %v, want %v", created.Platforms, wantPlatforms)
	}

	v := created.Variants[0]
	if v.RecommendationType != "Editorials (Manual)" || v.Weight != 100 || v.CarouselCompType != "Normal Carousel Component" {
		t.Errorf("variant defaults = %+v", v)
	}
	if v.RegionConfig.SelectedRegion != "GCC" || len(v.RegionConfig.Included) != 6 {
		t.Errorf("region = %+v", v.RegionConfig)
	}
	if v.IncludeExclude != "" {
		t.Errorf("variant includeExclude = %q, want empty", v.IncludeExclude)
	}
	if v.AvodSvod != "SVOD" || !v.VodAvailable || !v.AllowPrevious || !v.EpisodeOrder || v.RemovePrevious {
		t.Errorf("variant flags = %+v", v)
	}

	after, err := store.Route(ctx, "ww-home")
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if after.Count != before.Count+1 {
		t.Errorf("route count = %d, want %d", after.Count, before.Count+1)
	}
}

func TestPromote_NoTargetRouteIsNoOp(t *testing.T) {
	t.Parallel()

	creator := &countingCreator{}
	p := NewPromoter(creator, DefaultConfig(), zerolog.Nop())
	if _, err := p.Promote(context.Background(), fourItemCandidate(), ""); !errors.Is(err, ErrNoTargetRoute) {
		t.Errorf("err = %v, want ErrNoTargetRoute", err)
	}
	if creator.calls != 0 {
		t.Errorf("store called %d times", creator.calls)
	}

	if _, err := p.Promote(context.Background(), &CandidateCarousel{ID: "empty"}, "ww-home"); !errors.Is(err, ErrEmptyCandidate) {
		t.Errorf("err = %v, want ErrEmptyCandidate", err)
	}
}

// Promotion is intentionally not idempotent: repeating it creates another
// carousel.
func TestPromote_NotIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := carousel.NewMemoryStore(carousel.DefaultRoutes())
	p := NewPromoter(store, DefaultConfig(), zerolog.Nop())
	cand := fourItemCandidate()

	first, err := p.Promote(ctx, cand, "ww-home")
	if err != nil {
		t.Fatalf("first promote: %v", err)
	}
	second, err := p.Promote(ctx, cand, "ww-home")
	if err != nil {
		t.Fatalf("second promote: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both %s", first.ID)
	}

	list, err := store.Carousels(ctx, "ww-home")
	if err != nil {
		t.Fatalf("carousels: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].Position != 2 {
		t.Errorf("route carousels = %+v", list)
	}
}

func TestPromote_UnknownRoute(t *testing.T) {
	t.Parallel()

	store := carousel.NewMemoryStore(carousel.DefaultRoutes())
	p := NewPromoter(store, DefaultConfig(), zerolog.Nop())
	if _, err := p.Promote(context.Background(), fourItemCandidate(), "nowhere"); !errors.Is(err, carousel.ErrRouteNotFound) {
		t.Errorf("err = %v, want ErrRouteNotFound", err)
	}
}

func TestPromoter_DraftCarriesCandidate(t *testing.T) {
	t.Parallel()

	p := NewPromoter(&countingCreator{}, DefaultConfig(), zerolog.Nop())
	cand := fourItemCandidate()
	cand.AvodSvod = ""
	d := p.Draft(cand)

	if d.AvodSvod != "SVOD" {
		t.Errorf("avodSvod fallback = %q", d.AvodSvod)
	}
	if len(d.ContentIDs) != 4 || d.ContentIDs[0] != "b" {
		t.Errorf("content ids = %v", d.ContentIDs)
	}
	if d.Variants[0].EditorialName != cand.Title {
		t.Errorf("variant name = %q", d.Variants[0].EditorialName)
	}
}
