// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"time"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/recommend"
)

// SessionView summarizes a session for API responses.
type SessionView struct {
	ID        string                    `json:"id"`
	Profile   *recommend.PreviewProfile `json:"profile"`
	PageID    string                    `json:"pageId,omitempty"`
	Version   uint64                    `json:"version"`
	Actions   int                       `json:"actions"`
	CreatedAt time.Time                 `json:"createdAt"`
}

func newSessionView(sess *recommend.Session) *SessionView {
	st := sess.Snapshot()
	return &SessionView{
		ID:        sess.ID(),
		Profile:   st.Profile,
		PageID:    st.PageID,
		Version:   st.Version,
		Actions:   st.Log.Len(),
		CreatedAt: sess.CreatedAt(),
	}
}

// SearchCatalog runs a content search over the catalog.
func (s *Service) SearchCatalog(q catalog.Query) []catalog.ContentItem {
	return s.catalog.Search(q)
}

// Facets returns the filter options for catalog search.
func (s *Service) Facets() []catalog.Facet {
	return s.catalog.Facets()
}

// Routes returns the route tree of the carousel store.
func (s *Service) Routes(ctx context.Context) ([]carousel.RouteNode, error) {
	return s.store.Routes(ctx)
}

// Carousels returns the carousels on routeID ordered by position.
func (s *Service) Carousels(ctx context.Context, routeID string) ([]carousel.Carousel, error) {
	return s.store.Carousels(ctx, routeID)
}
