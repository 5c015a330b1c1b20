// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/cache"
	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/eventbus"
	"github.com/tomtom215/curator/internal/metrics"
	"github.com/tomtom215/curator/internal/notify"
	"github.com/tomtom215/curator/internal/recommend"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrCandidateNotFound is returned when a candidate id is not part of
	// the session's current candidates.
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrInvalidAction is returned for unknown action kinds.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidProfile is returned when a preview profile has no identity.
	ErrInvalidProfile = errors.New("invalid preview profile")
)

// Options configures a Service.
type Options struct {
	Config   *recommend.Config
	Catalog  *catalog.Catalog
	Store    carousel.Store
	Sink     notify.Sink
	Events   eventbus.Publisher
	Profiles ProfileStore
	Sessions SessionOptions
}

// SessionOptions bounds the session registry.
type SessionOptions struct {
	MaxSessions int
	TTL         time.Duration
}

type entry struct {
	session    *recommend.Session
	recomputer *recommend.Recomputer
}

// Service is the application layer around recommendation sessions.
type Service struct {
	cfg      *recommend.Config
	catalog  *catalog.Catalog
	store    carousel.Store
	sink     notify.Sink
	events   eventbus.Publisher
	profiles ProfileStore
	acc      *recommend.Accumulator
	gen      *recommend.Generator
	promoter *recommend.Promoter
	sessions *cache.LRU[*entry]
	logger   zerolog.Logger
}

// New creates a preview service. Catalog and Store are required; a nil
// Config uses recommend.DefaultConfig, a nil Sink discards notifications
// and a nil Profiles keeps saved profiles in memory.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(opts Options, logger zerolog.Logger) (*Service, error) {
	if opts.Catalog == nil {
		return nil, errors.New("preview: catalog is required")
	}
	if opts.Store == nil {
		return nil, errors.New("preview: carousel store is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	sink := opts.Sink
	if sink == nil {
		sink = notify.Discard
	}
	profiles := opts.Profiles
	if profiles == nil {
		profiles = NewMemoryProfileStore()
	}

	s := &Service{
		cfg:      cfg,
		catalog:  opts.Catalog,
		store:    opts.Store,
		sink:     sink,
		events:   opts.Events,
		profiles: profiles,
		acc:      recommend.NewAccumulator(cfg),
		gen:      recommend.NewGenerator(cfg),
		promoter: recommend.NewPromoter(opts.Store, cfg, logger),
		sessions: cache.NewLRU[*entry](opts.Sessions.MaxSessions, opts.Sessions.TTL),
		logger:   logger.With().Str("component", "preview").Logger(),
	}
	s.sessions.OnEvict(s.onEvict)
	return s, nil
}

func (s *Service) onEvict(id string, e *entry, reason cache.EvictReason) {
	e.recomputer.Close()
	metrics.SetActiveSessions(s.sessions.Len())
	s.logger.Debug().Str("session_id", id).Str("reason", string(reason)).Msg("Session ended")
}

// Load starts a session for profile on pageID. An empty page is allowed;
// such a session yields no candidates until a page is selected.
func (s *Service) Load(ctx context.Context, profile *recommend.PreviewProfile, pageID string) (*SessionView, error) {
	if err := s.checkLoad(ctx, profile, pageID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	sess := recommend.NewSession(id, s.acc, profile, pageID)
	e := &entry{session: sess}
	e.recomputer = recommend.NewRecomputer(sess, s.gen, s.catalog, s.cfg.Recompute.Debounce, s.candidatesUpdated(id), s.logger)

	s.sessions.Add(id, e)
	metrics.SetActiveSessions(s.sessions.Len())

	s.logger.Info().
		Str("session_id", id).
		Str("user_id", profile.UserID).
		Str("page_id", pageID).
		Msg("Preview session loaded")
	return newSessionView(sess), nil
}

// Reload starts a new lifecycle for an existing session: the log and
// interests are discarded.
func (s *Service) Reload(ctx context.Context, sessionID string, profile *recommend.PreviewProfile, pageID string) (*SessionView, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkLoad(ctx, profile, pageID); err != nil {
		return nil, err
	}
	e.session.Reload(profile, pageID)
	return newSessionView(e.session), nil
}

// SelectPage changes the session's page and keeps its interactions.
func (s *Service) SelectPage(ctx context.Context, sessionID, pageID string) (*SessionView, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRoute(ctx, pageID); err != nil {
		return nil, err
	}
	e.session.SelectPage(pageID)
	e.recomputer.Schedule()
	return newSessionView(e.session), nil
}

// Session returns a summary of the session.
func (s *Service) Session(sessionID string) (*SessionView, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return newSessionView(e.session), nil
}

// End removes a session. It reports whether the session existed.
func (s *Service) End(sessionID string) bool {
	return s.sessions.Remove(sessionID)
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	return s.sessions.Len()
}

// SweepExpired ends idle sessions and returns how many were removed.
func (s *Service) SweepExpired() int {
	return s.sessions.CleanupExpired()
}

// Close ends every session.
func (s *Service) Close() {
	for _, e := range s.sessions.Clear() {
		e.recomputer.Close()
	}
	metrics.SetActiveSessions(0)
}

func (s *Service) lookup(sessionID string) (*entry, error) {
	e, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return e, nil
}

func (s *Service) checkLoad(ctx context.Context, profile *recommend.PreviewProfile, pageID string) error {
	if profile == nil || (profile.UserID == "" && profile.Username == "") {
		return ErrInvalidProfile
	}
	return s.checkRoute(ctx, pageID)
}

func (s *Service) checkRoute(ctx context.Context, pageID string) error {
	if pageID == "" {
		return nil
	}
	if _, err := s.store.Route(ctx, pageID); err != nil {
		return fmt.Errorf("select page %s: %w", pageID, err)
	}
	return nil
}
