// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"time"

	"github.com/tomtom215/curator/internal/recommend"
)

// SaveProfile stores p under its UserID and returns the stored copy. A
// DefaultPageID must name an existing route.
func (s *Service) SaveProfile(ctx context.Context, p *SavedProfile) (*SavedProfile, error) {
	if err := checkSavedProfile(p); err != nil {
		return nil, err
	}
	if err := s.checkRoute(ctx, p.DefaultPageID); err != nil {
		return nil, err
	}
	saved := *p
	saved.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Save(ctx, &saved); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", saved.UserID).Msg("Preview profile saved")
	return &saved, nil
}

// SavedProfile returns the profile saved for userID.
func (s *Service) SavedProfile(ctx context.Context, userID string) (*SavedProfile, error) {
	return s.profiles.Get(ctx, userID)
}

// SavedProfiles returns every saved profile ordered by UserID.
func (s *Service) SavedProfiles(ctx context.Context) ([]SavedProfile, error) {
	return s.profiles.List(ctx)
}

// DeleteProfile removes the profile saved for userID. Live sessions loaded
// from it are unaffected.
func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	return s.profiles.Delete(ctx, userID)
}

// ResolveProfile returns the saved profile for userID and the page to load.
// pageID wins over the profile's DefaultPageID.
func (s *Service) ResolveProfile(ctx context.Context, userID, pageID string) (*recommend.PreviewProfile, string, error) {
	saved, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if pageID == "" {
		pageID = saved.DefaultPageID
	}
	profile := saved.PreviewProfile
	return &profile, pageID, nil
}

// LoadSaved starts a session for the profile saved under userID.
func (s *Service) LoadSaved(ctx context.Context, userID, pageID string) (*SessionView, error) {
	profile, pageID, err := s.ResolveProfile(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, profile, pageID)
}
