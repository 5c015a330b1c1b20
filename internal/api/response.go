// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/curator/internal/carousel"
	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/models"
	"github.com/tomtom215/curator/internal/preview"
	"github.com/tomtom215/curator/internal/recommend"
	"github.com/tomtom215/curator/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue escapes control characters so request data cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes response with status.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess writes a success envelope carrying request metadata.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time) {
	resp := models.NewSuccess(data)
	resp.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	resp.Metadata.QueryTimeMS = time.Since(start).Milliseconds()
	respondJSON(w, status, resp)
}

// respondError writes an error envelope. err, when non-nil, is logged.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}
	resp := models.NewError(code, message, nil)
	resp.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	respondJSON(w, status, resp)
}

// respondValidation writes a VALIDATION_ERROR with field details.
func respondValidation(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	var details map[string]interface{}
	if errors.As(err, &verr) {
		details = verr.Details()
	}
	resp := models.NewError(models.ErrCodeValidation, err.Error(), details)
	resp.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusBadRequest, resp)
}

// respondServiceError maps domain errors to HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, preview.ErrSessionNotFound),
		errors.Is(err, preview.ErrCandidateNotFound),
		errors.Is(err, preview.ErrProfileNotFound),
		errors.Is(err, catalog.ErrContentNotFound),
		errors.Is(err, carousel.ErrRouteNotFound):
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, err.Error(), nil)
	case errors.Is(err, preview.ErrInvalidAction),
		errors.Is(err, preview.ErrInvalidProfile),
		errors.Is(err, recommend.ErrNoTargetRoute),
		errors.Is(err, recommend.ErrEmptyCandidate),
		errors.Is(err, carousel.ErrInvalidDraft):
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, carousel.ErrStoreUnavailable),
		errors.Is(err, carousel.ErrStoreClosed),
		errors.Is(err, preview.ErrProfileStoreClosed),
		errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUnavailable, "Service temporarily unavailable", err)
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error", err)
	}
}

// decodeAndValidate reads a JSON body into v and validates it. It writes
// the error response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeBadRequest, "Invalid request body", err)
		return false
	}
	if err := validation.ValidateStruct(v); err != nil {
		respondValidation(w, r, err)
		return false
	}
	return true
}
