// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/curator/internal/authz"
	"github.com/tomtom215/curator/internal/middleware"
	"github.com/tomtom215/curator/internal/models"
)

// Router wires handlers, middleware and authorization into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	authz         *authz.Middleware
}

// NewRouter creates a router. A nil authz middleware allows every request.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, authzMW *authz.Middleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMW, authz: authzMW}
}

func (router *Router) require(module, perm string) func(http.Handler) http.Handler {
	if router.authz == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return router.authz.Require(module, perm)
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeBadRequest, "Method not allowed", nil)
	})

	r.Get("/health", h.Health)
	r.Get("/health/live", h.HealthLive)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
	r.With(router.require(authz.ModulePreview, authz.PermRead)).Get("/ws", h.WebSocket)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Route("/sessions", func(r chi.Router) {
			r.With(router.require(authz.ModulePreview, authz.PermUpdate), router.chiMiddleware.RateLimit()).
				Post("/", h.LoadSession)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Use(middleware.SessionContext)

				r.Group(func(r chi.Router) {
					r.Use(router.require(authz.ModulePreview, authz.PermRead))
					r.Get("/", h.GetSession)
					r.Get("/log", h.ActionLog)
					r.Get("/profile", h.InterestProfile)
					r.Get("/candidates", h.Candidates)
				})

				r.Group(func(r chi.Router) {
					r.Use(router.require(authz.ModulePreview, authz.PermUpdate))
					r.Use(router.chiMiddleware.RateLimit())
					r.Post("/reload", h.ReloadSession)
					r.Put("/page", h.SelectPage)
					r.Post("/actions", h.RecordAction)
				})

				r.With(router.require(authz.ModulePreview, authz.PermUpdate)).
					Delete("/", h.EndSession)

				r.With(router.require(authz.ModuleCarousel, authz.PermCreate), router.chiMiddleware.RateLimit()).
					Post("/candidates/{candidateID}/promote", h.PromoteCandidate)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.With(router.require(authz.ModulePreview, authz.PermRead)).Get("/", h.ListProfiles)
			r.With(router.require(authz.ModulePreview, authz.PermRead)).Get("/{userID}", h.GetProfile)
			r.With(router.require(authz.ModulePreview, authz.PermUpdate), router.chiMiddleware.RateLimit()).
				Put("/{userID}", h.SaveProfile)
			r.With(router.require(authz.ModulePreview, authz.PermUpdate)).Delete("/{userID}", h.DeleteProfile)
		})

		r.With(router.require(authz.ModulePreview, authz.PermRead)).Get("/catalog", h.SearchCatalog)

		r.Route("/routes", func(r chi.Router) {
			r.Use(router.require(authz.ModuleCarousel, authz.PermRead))
			r.Get("/", h.Routes)
			r.Get("/{routeID}/carousels", h.RouteCarousels)
		})
	})

	return r
}
