// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// defaultShutdownTimeout applies when the configured timeout is not positive.
const defaultShutdownTimeout = 10 * time.Second

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// DrainHook runs once per stop, before the server stops accepting
// requests. ctx carries the shutdown deadline.
type DrainHook func(ctx context.Context)

// HTTPServerService runs the API server under the supervisor. Drain hooks
// let preview clients learn about a stop while their connections are still
// open.
type HTTPServerService struct {
	server  HTTPServer
	timeout time.Duration
	logger  zerolog.Logger

	mu    sync.Mutex
	hooks []DrainHook

	listening atomic.Bool
	starts    atomic.Int64
}

// NewHTTPServerService wraps server. A non-positive timeout becomes 10s.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &HTTPServerService{
		server:  server,
		timeout: shutdownTimeout,
		logger:  logger.With().Str("component", "http-server").Logger(),
	}
}

// OnDrain registers hook to run before each shutdown.
func (h *HTTPServerService) OnDrain(hook DrainHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Listening reports whether ListenAndServe is currently running.
func (h *HTTPServerService) Listening() bool {
	return h.listening.Load()
}

// Starts returns how many times the server has been started, including
// supervisor restarts.
func (h *HTTPServerService) Starts() int64 {
	return h.starts.Load()
}

// Serve implements suture.Service. A server closed by Shutdown is not a
// failure; any other listen error is returned so the supervisor restarts
// the service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	n := h.starts.Add(1)
	done := make(chan error, 1)
	h.listening.Store(true)
	go func() {
		err := h.server.ListenAndServe()
		h.listening.Store(false)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	h.logger.Info().Int64("start", n).Msg("HTTP server listening")

	select {
	case err := <-done:
		if err != nil {
			h.logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return h.stop(ctx, done)
	}
}

// stop drains and shuts the server down. ctx is already canceled, so the
// shutdown gets its own deadline.
func (h *HTTPServerService) stop(ctx context.Context, done <-chan error) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	hooks := append([]DrainHook(nil), h.hooks...)
	h.mu.Unlock()
	for _, hook := range hooks {
		hook(shutdownCtx)
	}

	start := time.Now()
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-done
	h.logger.Info().Dur("drain", time.Since(start)).Msg("HTTP server stopped")
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
