// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"fmt"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/eventbus"
	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/notify"
	"github.com/tomtom215/curator/internal/recommend"
)

// ProfileLimit caps the interest entries returned by Profile.
const ProfileLimit = 20

// RecordAction logs an interaction with contentID and updates the
// session's interests. Play, like and download are acknowledged through
// the notification sink; sink failures are logged and never returned.
func (s *Service) RecordAction(ctx context.Context, sessionID, contentID string, kind recommend.ActionKind, detail string) (*recommend.ActionLogEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, kind)
	}
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	item, ok := s.catalog.ByID(contentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrContentNotFound, contentID)
	}
	if kind != recommend.ActionPlay {
		detail = ""
	}

	st := e.session.RecordAction(item, kind, detail)
	logged := st.Log.Entries()[0]

	if kind.Acknowledged() {
		s.acknowledge(ctx, sessionID, st, &logged)
	}
	e.recomputer.Schedule()
	return &logged, nil
}

func (s *Service) acknowledge(ctx context.Context, sessionID string, st *recommend.State, logged *recommend.ActionLogEntry) {
	n := notify.Interaction{
		SessionID:    sessionID,
		ContentID:    logged.ContentID,
		ContentTitle: logged.ContentTitle,
		Action:       string(logged.Action),
		Detail:       logged.DisplayDetail(),
		Message:      notify.Message(logged.ContentTitle),
		Timestamp:    logged.Timestamp,
	}
	if st.Profile != nil {
		n.UserID = st.Profile.UserID
	}
	if err := s.sink.OnInteractionLogged(ctx, n); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("content_id", n.ContentID).
			Str("action", n.Action).
			Msg("Interaction notification failed")
	}
}

// Log returns the session's action log, newest first.
func (s *Service) Log(sessionID string) ([]recommend.ActionLogEntry, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return e.session.Snapshot().Log.Entries(), nil
}

// Profile returns the strongest positive interests of the session.
func (s *Service) Profile(sessionID string) ([]recommend.ProfileEntry, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	positive := func(pe recommend.ProfileEntry) bool { return pe.Weight > 0 }
	return e.session.Snapshot().Interests.Top(ProfileLimit, positive), nil
}

// Candidates returns the candidates for the session's current state. A
// fresh background result is reused; otherwise generation runs inline.
func (s *Service) Candidates(ctx context.Context, sessionID string) (*recommend.Result, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return e.recomputer.Current(ctx)
}

// Promote persists one of the session's current candidates as a draft
// carousel on routeID. An empty routeID targets the session's page.
func (s *Service) Promote(ctx context.Context, sessionID, candidateID, routeID string) (*carousel.Carousel, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	res, err := e.recomputer.Current(ctx)
	if err != nil {
		return nil, err
	}
	var cand *recommend.CandidateCarousel
	for i := range res.Candidates {
		if res.Candidates[i].ID == candidateID {
			cand = &res.Candidates[i]
			break
		}
	}
	if cand == nil {
		return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, candidateID)
	}
	if routeID == "" {
		routeID = e.session.Snapshot().PageID
	}

	created, err := s.promoter.Promote(ctx, cand, routeID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, eventbus.TypeCarouselPromoted, sessionID, promotedPayload{
		CandidateID: cand.ID,
		Strategy:    cand.Strategy,
		Carousel:    created,
	})
	return created, nil
}
