// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/validation"
)

// catalogPage is the response of the catalog search.
type catalogPage struct {
	Items  []catalog.ContentItem `json:"items"`
	Total  int                   `json:"total"`
	Facets []catalog.Facet       `json:"facets"`
}

// SearchCatalog handles GET /api/v1/catalog. q is free text; every other
// query key is a metadata filter, repeatable for alternatives:
//
//	/api/v1/catalog?q=storm&genre=Action&genre=Thriller
//
// @Summary Search the content catalog
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Free text"
// @Param genre query []string false "Metadata filter, one of any dimension" collectionFormat(multi)
// @Success 200 {object} models.APIResponse{data=catalogPage}
// @Failure 400 {object} models.APIResponse "Invalid query"
// @Router /api/v1/catalog [get]
func (h *Handler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()
	req := CatalogSearchRequest{Text: query.Get("q"), Filters: map[string][]string{}}
	for key, values := range query {
		if key == "q" {
			continue
		}
		req.Filters[key] = values
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondValidation(w, r, err)
		return
	}

	items := h.preview.SearchCatalog(catalog.Query{Text: req.Text, Filters: req.Filters})
	respondSuccess(w, r, http.StatusOK, catalogPage{
		Items:  items,
		Total:  len(items),
		Facets: h.preview.Facets(),
	}, start)
}

// Routes handles GET /api/v1/routes.
//
// @Summary Get the route tree
// @Tags Carousels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]carousel.RouteNode}
// @Failure 503 {object} models.APIResponse "Carousel store unavailable"
// @Router /api/v1/routes [get]
func (h *Handler) Routes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	routes, err := h.preview.Routes(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, routes, start)
}

// RouteCarousels handles GET /api/v1/routes/{routeID}/carousels.
//
// @Summary Get carousels on a route
// @Tags Carousels
// @Produce json
// @Security BearerAuth
// @Param routeID path string true "Route ID"
// @Success 200 {object} models.APIResponse{data=[]carousel.Carousel}
// @Failure 404 {object} models.APIResponse "Route not found"
// @Router /api/v1/routes/{routeID}/carousels [get]
func (h *Handler) RouteCarousels(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	carousels, err := h.preview.Carousels(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, carousels, start)
}
