// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package carousel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// storeFactories lists every Store implementation run through the shared
// behavior tests.
func storeFactories(t *testing.T) map[string]func() Store {
	t.Helper()
	return map[string]func() Store{
		"memory": func() Store { return NewMemoryStore(DefaultRoutes()) },
		"badger": func() Store {
			s, err := OpenBadgerStore("", DefaultRoutes())
			if err != nil {
				t.Fatalf("OpenBadgerStore: %v", err)
			}
			return s
		},
	}
}

func testDraft(name string, items int) *Draft {
	return &Draft{
		EditorialName: name,
		Type:          "Normal Carousel Component",
		Items:         items,
		Status:        StatusDraft,
		Variants: []Variant{{
			Weight:           100,
			EditorialName:    name,
			CarouselCompType: "Normal Carousel Component",
		}},
	}
}

func TestStore_CreateCarouselPrependsAndRenumbers(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			defer s.Close()
			ctx := context.Background()

			first, err := s.CreateCarousel(ctx, testDraft("First", 4), "ww-home")
			if err != nil {
				t.Fatalf("CreateCarousel(First): %v", err)
			}
			second, err := s.CreateCarousel(ctx, testDraft("Second", 3), "ww-home")
			if err != nil {
				t.Fatalf("CreateCarousel(Second): %v", err)
			}

			if first.ID == "" || first.ID == second.ID {
				t.Errorf("ids not unique: %q, %q", first.ID, second.ID)
			}
			if second.Position != 1 {
				t.Errorf("new carousel position = %d, want 1", second.Position)
			}
			if _, err := time.Parse(DateLayout, second.Modified); err != nil {
				t.Errorf("modified %q is not YYYY-MM-DD: %v", second.Modified, err)
			}
			if second.Variants[0].ID == "" {
				t.Error("variant id should be assigned")
			}

			list, err := s.Carousels(ctx, "ww-home")
			if err != nil {
				t.Fatalf("Carousels: %v", err)
			}
			if len(list) != 2 {
				t.Fatalf("len(Carousels) = %d, want 2", len(list))
			}
			for i, c := range list {
				if c.Position != i+1 {
					t.Errorf("list[%d].Position = %d, want %d", i, c.Position, i+1)
				}
			}
			if list[0].EditorialName != "Second" || list[1].EditorialName != "First" {
				t.Errorf("order = [%s %s], want [Second First]", list[0].EditorialName, list[1].EditorialName)
			}
		})
	}
}

func TestStore_CreateCarouselUpdatesCounts(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			defer s.Close()
			ctx := context.Background()

			before, _ := s.Route(ctx, "ww-home")
			parentBefore, _ := s.Route(ctx, "ww")

			if _, err := s.CreateCarousel(ctx, testDraft("Counted", 4), "ww-home"); err != nil {
				t.Fatalf("CreateCarousel: %v", err)
			}

			after, _ := s.Route(ctx, "ww-home")
			parentAfter, _ := s.Route(ctx, "ww")
			if after.Count != before.Count+1 {
				t.Errorf("route count = %d, want %d", after.Count, before.Count+1)
			}
			if parentAfter.Count != parentBefore.Count+1 {
				t.Errorf("parent count = %d, want %d", parentAfter.Count, parentBefore.Count+1)
			}

			total, err := s.TotalEntries(ctx)
			if err != nil || total != 1 {
				t.Errorf("TotalEntries() = %d, %v; want 1", total, err)
			}

			other, _ := s.Route(ctx, "ksa")
			if other.Count != 3 {
				t.Errorf("unrelated route count changed to %d", other.Count)
			}
		})
	}
}

func TestStore_Rejections(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			defer s.Close()
			ctx := context.Background()

			if _, err := s.CreateCarousel(ctx, testDraft("X", 2), "nope"); !errors.Is(err, ErrRouteNotFound) {
				t.Errorf("unknown route error = %v, want ErrRouteNotFound", err)
			}

			tooMany := testDraft("Too many", 2)
			for len(tooMany.Variants) <= MaxVariants {
				tooMany.Variants = append(tooMany.Variants, tooMany.Variants[0])
			}
			if _, err := s.CreateCarousel(ctx, tooMany, "ww-home"); !errors.Is(err, ErrInvalidDraft) {
				t.Errorf("5 variants error = %v, want ErrInvalidDraft", err)
			}

			none := testDraft("None", 2)
			none.Variants = nil
			if _, err := s.CreateCarousel(ctx, none, "ww-home"); !errors.Is(err, ErrInvalidDraft) {
				t.Errorf("0 variants error = %v, want ErrInvalidDraft", err)
			}

			badStatus := testDraft("Status", 2)
			badStatus.Status = "Published"
			if _, err := s.CreateCarousel(ctx, badStatus, "ww-home"); !errors.Is(err, ErrInvalidDraft) {
				t.Errorf("bad status error = %v, want ErrInvalidDraft", err)
			}

			if total, _ := s.TotalEntries(ctx); total != 0 {
				t.Errorf("rejected requests changed total to %d", total)
			}
			if _, err := s.Carousels(ctx, "nope"); !errors.Is(err, ErrRouteNotFound) {
				t.Errorf("Carousels(nope) error = %v", err)
			}
		})
	}
}

func TestStore_RoutesPreserveSeedOrder(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			defer s.Close()

			routes, err := s.Routes(context.Background())
			if err != nil {
				t.Fatalf("Routes: %v", err)
			}
			seed := DefaultRoutes()
			if len(routes) != len(seed) {
				t.Fatalf("len(Routes) = %d, want %d", len(routes), len(seed))
			}
			for i := range seed {
				if routes[i].ID != seed[i].ID {
					t.Errorf("routes[%d] = %q, want %q", i, routes[i].ID, seed[i].ID)
				}
			}
		})
	}
}

func TestStore_ConcurrentCreatesKeepPositionsContiguous(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			defer s.Close()
			ctx := context.Background()

			const n = 20
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _ = s.CreateCarousel(ctx, testDraft("Concurrent", 2), "gcc")
				}()
			}
			wg.Wait()

			list, err := s.Carousels(ctx, "gcc")
			if err != nil {
				t.Fatalf("Carousels: %v", err)
			}
			route, _ := s.Route(ctx, "gcc")
			if route.Count-3 != len(list) {
				t.Errorf("route count delta %d does not match %d carousels", route.Count-3, len(list))
			}
			for i, c := range list {
				if c.Position != i+1 {
					t.Fatalf("list[%d].Position = %d, want %d", i, c.Position, i+1)
				}
			}
		})
	}
}

func TestStore_ClosedStore(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			if err := s.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			if _, err := s.Routes(context.Background()); !errors.Is(err, ErrStoreClosed) {
				t.Errorf("Routes after Close = %v, want ErrStoreClosed", err)
			}
		})
	}
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenBadgerStore(dir, DefaultRoutes())
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	if _, err := s.CreateCarousel(ctx, testDraft("Durable", 2), "uae"); err != nil {
		t.Fatalf("CreateCarousel: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenBadgerStore(dir, DefaultRoutes())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	list, _ := reopened.Carousels(ctx, "uae")
	if len(list) != 1 || list[0].EditorialName != "Durable" {
		t.Errorf("reopened carousels = %+v", list)
	}
	route, _ := reopened.Route(ctx, "uae")
	if route.Count != 4 {
		t.Errorf("reseeding overwrote counts: got %d, want 4", route.Count)
	}
}
