// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package carousel

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu        sync.RWMutex
	order     []string
	routes    map[string]*RouteNode
	carousels map[string][]Carousel
	total     int
	closed    bool
	now       func() time.Time
}

// NewMemoryStore creates a store seeded with routes.
func NewMemoryStore(routes []RouteNode) *MemoryStore {
	s := &MemoryStore{
		order:     make([]string, 0, len(routes)),
		routes:    make(map[string]*RouteNode, len(routes)),
		carousels: make(map[string][]Carousel),
		now:       time.Now,
	}
	for i := range routes {
		r := routes[i]
		s.order = append(s.order, r.ID)
		s.routes[r.ID] = &r
	}
	return s
}

// Routes implements Store.
func (s *MemoryStore) Routes(_ context.Context) ([]RouteNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	out := make([]RouteNode, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.routes[id])
	}
	return out, nil
}

// Route implements Store.
func (s *MemoryStore) Route(_ context.Context, id string) (*RouteNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	r, ok := s.routes[id]
	if !ok {
		return nil, ErrRouteNotFound
	}
	cp := *r
	return &cp, nil
}

// Carousels implements Store.
func (s *MemoryStore) Carousels(_ context.Context, routeID string) ([]Carousel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	if _, ok := s.routes[routeID]; !ok {
		return nil, ErrRouteNotFound
	}

	list := s.carousels[routeID]
	out := make([]Carousel, len(list))
	copy(out, list)
	return out, nil
}

// CreateCarousel implements Store.
func (s *MemoryStore) CreateCarousel(_ context.Context, draft *Draft, routeID string) (*Carousel, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	route, ok := s.routes[routeID]
	if !ok {
		return nil, ErrRouteNotFound
	}

	c := materialize(draft, routeID, s.now())
	s.carousels[routeID] = prependAndRenumber(s.carousels[routeID], c)

	route.Count++
	if parent, ok := s.routes[route.ParentID]; ok && route.ParentID != "" {
		parent.Count++
	}
	s.total++

	created := s.carousels[routeID][0]
	return &created, nil
}

// TotalEntries implements Store.
func (s *MemoryStore) TotalEntries(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return s.total, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
