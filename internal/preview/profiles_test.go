// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/recommend"
)

// profileStores lists every ProfileStore implementation run through the
// shared behavior tests.
func profileStores(t *testing.T) map[string]func() ProfileStore {
	t.Helper()
	return map[string]func() ProfileStore{
		"memory": func() ProfileStore { return NewMemoryProfileStore() },
		"badger": func() ProfileStore {
			s, err := OpenBadgerProfileStore("")
			if err != nil {
				t.Fatalf("OpenBadgerProfileStore: %v", err)
			}
			return s
		},
	}
}

func savedProfile(userID, label string) *SavedProfile {
	return &SavedProfile{
		PreviewProfile: recommend.PreviewProfile{UserID: userID, Username: userID + ".user", Country: "KSA"},
		Label:          label,
	}
}

func TestProfileStore_CRUD(t *testing.T) {
	t.Parallel()

	for name, newStore := range profileStores(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := newStore()
			defer s.Close()
			ctx := context.Background()

			if _, err := s.Get(ctx, "u-1"); !errors.Is(err, ErrProfileNotFound) {
				t.Fatalf("Get(missing) err = %v, want ErrProfileNotFound", err)
			}
			if err := s.Save(ctx, &SavedProfile{}); !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Save(no user) err = %v, want ErrInvalidProfile", err)
			}

			for _, p := range []*SavedProfile{savedProfile("u-2", "GCC"), savedProfile("u-1", "KSA")} {
				if err := s.Save(ctx, p); err != nil {
					t.Fatalf("Save(%s): %v", p.UserID, err)
				}
			}
			if err := s.Save(ctx, savedProfile("u-1", "KSA premium")); err != nil {
				t.Fatalf("Save(replace): %v", err)
			}

			got, err := s.Get(ctx, "u-1")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Label != "KSA premium" || got.Username != "u-1.user" {
				t.Errorf("Get = %+v", got)
			}

			list, err := s.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(list) != 2 || list[0].UserID != "u-1" || list[1].UserID != "u-2" {
				t.Errorf("List = %+v, want u-1 then u-2", list)
			}

			if err := s.Delete(ctx, "u-1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := s.Delete(ctx, "u-1"); !errors.Is(err, ErrProfileNotFound) {
				t.Errorf("Delete(again) err = %v, want ErrProfileNotFound", err)
			}

			if err := s.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			if _, err := s.List(ctx); !errors.Is(err, ErrProfileStoreClosed) {
				t.Errorf("List after Close err = %v, want ErrProfileStoreClosed", err)
			}
		})
	}
}

func TestNewProfileStore(t *testing.T) {
	t.Parallel()

	if _, err := NewProfileStore(ProfileConfig{Type: "redis"}, zerolog.Nop()); err == nil {
		t.Error("expected error for unknown type")
	}
	s, err := NewProfileStore(ProfileConfig{Type: ProfileStoreBadger}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProfileStore(badger) error = %v", err)
	}
	defer s.Close()
	if _, ok := s.(*BadgerProfileStore); !ok {
		t.Errorf("store type = %T, want *BadgerProfileStore", s)
	}
}

func TestService_SaveProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t, SessionOptions{})
	ctx := context.Background()

	p := savedProfile("u-1", "KSA")
	p.DefaultPageID = "nowhere"
	if _, err := f.svc.SaveProfile(ctx, p); !errors.Is(err, carousel.ErrRouteNotFound) {
		t.Errorf("unknown default page err = %v, want ErrRouteNotFound", err)
	}

	p.DefaultPageID = "ww-home"
	saved, err := f.svc.SaveProfile(ctx, p)
	if err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}

	list, err := f.svc.SavedProfiles(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("SavedProfiles() = %v, %v", list, err)
	}
	if err := f.svc.DeleteProfile(ctx, "u-1"); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if _, err := f.svc.SavedProfile(ctx, "u-1"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("SavedProfile after delete err = %v, want ErrProfileNotFound", err)
	}
}

func TestService_LoadSaved(t *testing.T) {
	t.Parallel()
	f := newFixture(t, SessionOptions{})
	ctx := context.Background()

	if _, err := f.svc.LoadSaved(ctx, "u-9", ""); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("LoadSaved(unknown) err = %v, want ErrProfileNotFound", err)
	}

	p := savedProfile("u-1", "KSA")
	p.DefaultPageID = "ww-home"
	if _, err := f.svc.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	view, err := f.svc.LoadSaved(ctx, "u-1", "")
	if err != nil {
		t.Fatalf("LoadSaved() error = %v", err)
	}
	if view.PageID != "ww-home" {
		t.Errorf("PageID = %q, want default ww-home", view.PageID)
	}
	if view.Profile.UserID != "u-1" || view.Profile.Country != "KSA" {
		t.Errorf("Profile = %+v", view.Profile)
	}

	view, err = f.svc.LoadSaved(ctx, "u-1", "ww-movie")
	if err != nil {
		t.Fatalf("LoadSaved(page) error = %v", err)
	}
	if view.PageID != "ww-movie" {
		t.Errorf("PageID = %q, want ww-movie", view.PageID)
	}
}
