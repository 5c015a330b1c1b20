// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/curator/internal/api"
	"github.com/tomtom215/curator/internal/authz"
	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/config"
	"github.com/tomtom215/curator/internal/eventbus"
	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/notify"
	"github.com/tomtom215/curator/internal/preview"
	"github.com/tomtom215/curator/internal/supervisor"
	"github.com/tomtom215/curator/internal/supervisor/services"
	ws "github.com/tomtom215/curator/internal/websocket"

	_ "github.com/tomtom215/curator/docs" // Import generated swagger docs
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// @title Curator API
// @version 1.0
// @description Preview personalized rails for a synthetic viewer, inspect the
// @description interest profile behind them and promote a candidate as a draft
// @description carousel.
// @description
// @description Every response uses the envelope {status, data, metadata, error}.
// @description Write endpoints are rate limited per client IP.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/curator/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description HS256 JWT as "Bearer <token>". The role claim selects the Casbin role.
//
// @tag.name Core
// @tag.description Health, metrics and realtime events
// @tag.name Sessions
// @tag.description Preview sessions, interactions and candidates
// @tag.name Profiles
// @tag.description Saved preview profiles
// @tag.name Catalog
// @tag.description Content search
// @tag.name Carousels
// @tag.description Route tree, carousels and promotion
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging)
	logger := logging.Logger()
	logging.Info().Str("version", version).Msg("Starting Curator")

	cat, err := loadCatalog(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	store, err := carousel.NewStore(cfg.Store, carousel.DefaultRoutes(), logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open carousel store")
	}
	logging.Info().Str("type", cfg.Store.Type).Msg("Carousel store ready")

	wsHub := ws.NewHub()

	bus, eventRouter := initEventBus(cfg, wsHub)

	// Keep the interfaces nil when the bus is disabled.
	var publisher eventbus.Publisher
	var health api.HealthChecker
	if bus != nil {
		publisher = bus
		health = bus
	}

	sink, notifier := notify.Build(&cfg.Notify, publisher, logger)

	profiles, err := preview.NewProfileStore(cfg.Profiles, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open profile store")
	}

	previewSvc, err := preview.New(preview.Options{
		Config:   &cfg.Recommend,
		Catalog:  cat,
		Store:    store,
		Sink:     sink,
		Events:   publisher,
		Profiles: profiles,
		Sessions: preview.SessionOptions{
			MaxSessions: cfg.Session.MaxSessions,
			TTL:         cfg.Session.TTL,
		},
	}, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create preview service")
	}

	enforcer, err := authz.NewEnforcer(&cfg.Authz)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create authorization enforcer")
	}
	authzMW := authz.NewMiddleware(enforcer, &cfg.Authz)
	switch {
	case !cfg.Authz.Enabled:
		logging.Warn().Msg("Authorization disabled (AUTHZ_ENABLED=false), all requests are allowed")
	case cfg.Authz.TrustRoleHeader:
		logging.Warn().Str("header", cfg.Authz.RoleHeader).Msg("Role header trusted (AUTHZ_TRUST_ROLE_HEADER=true), development use only")
	case cfg.Authz.JWTSecret == "":
		logging.Warn().Str("role", cfg.Authz.DefaultRole).Msg("No JWT_SECRET set, bearer tokens are rejected and callers get the default role")
	}

	handler := api.NewHandler(api.HandlerOptions{
		Preview:     previewSvc,
		Hub:         wsHub,
		Events:      health,
		CORSOrigins: cfg.Server.CORSOrigins,
		Version:     version,
	})
	chiMW := api.NewChiMiddlewareFromServer(
		cfg.Server.CORSOrigins,
		cfg.Authz.RoleHeader,
		cfg.Server.RateLimitReqs,
		cfg.Server.RateLimitWindow,
		cfg.Server.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW, authzMW)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg.Supervisor)

	// Data layer
	tree.AddDataService(services.NewSweeperService("session-sweeper", previewSvc, cfg.Session.CleanupInterval, logger))

	// Messaging layer
	tree.AddMessagingService(wsHub)
	if eventRouter != nil {
		tree.AddMessagingService(eventRouter)
	}
	if notifier != nil {
		tree.AddMessagingService(notifier)
	}

	// API layer
	httpSvc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger)
	httpSvc.OnDrain(func(context.Context) {
		wsHub.BroadcastJSON(ws.MessageTypeServerDraining, map[string]int{
			"activeSessions": previewSvc.SessionCount(),
		})
	})
	tree.AddAPIService(httpSvc)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	shutdown(previewSvc, store, profiles, bus, enforcer)
	logging.Info().Msg("Application stopped gracefully")
}

// loadCatalog reads the configured catalog file, or the sample when no
// path is set.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		cat := catalog.Sample()
		logging.Warn().Int("items", len(cat.Items())).Msg("No CATALOG_PATH set, using the sample catalog")
		return cat, nil
	}
	cat, err := catalog.Load(cfg.Catalog.Path, logging.Logger())
	if err != nil {
		return nil, err
	}
	logging.Info().Str("path", cfg.Catalog.Path).Int("items", len(cat.Items())).Msg("Catalog loaded")
	return cat, nil
}

// initEventBus creates the bus and the router forwarding bus events to
// WebSocket clients. Both are nil when the bus is disabled; failures are
// non-fatal and leave the app running without events.
func initEventBus(cfg *config.Config, hub *ws.Hub) (*eventbus.Bus, *eventbus.Router) {
	if !cfg.EventBus.Enabled {
		logging.Info().Msg("Event bus disabled (EVENTBUS_ENABLED=false)")
		return nil, nil
	}

	bus, err := eventbus.New(&cfg.EventBus, logging.Logger())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create event bus, continuing without events")
		return nil, nil
	}

	router, err := eventbus.NewRouter(bus, cfg.EventBus.Router, hub)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create event router, WebSocket updates disabled")
		return bus, nil
	}

	logging.Info().Str("backend", bus.Backend()).Msg("Event bus ready")
	return bus, router
}

// shutdown releases resources the supervisor does not own.
func shutdown(previewSvc *preview.Service, store carousel.Store, profiles preview.ProfileStore, bus *eventbus.Bus, enforcer *authz.Enforcer) {
	previewSvc.Close()
	if bus != nil {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
	if err := store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing carousel store")
	}
	if err := profiles.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing profile store")
	}
	enforcer.Close()
}
