// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/curator/internal/logging"
	"github.com/tomtom215/curator/internal/models"
	"github.com/tomtom215/curator/internal/preview"
	"github.com/tomtom215/curator/internal/recommend"
	"github.com/tomtom215/curator/internal/validation"
)

// LoadSession handles POST /api/v1/sessions.
//
// @Summary Load a preview session
// @Description Starts a session for an inline profile, or for the saved profile named by userId. An empty pageId falls back to the saved profile's default page.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LoadSessionRequest true "Profile or saved userId, and page"
// @Success 201 {object} models.APIResponse{data=preview.SessionView} "Session created"
// @Failure 400 {object} models.APIResponse "Invalid profile or request body"
// @Failure 404 {object} models.APIResponse "Page or saved profile not found"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Router /api/v1/sessions [post]
func (h *Handler) LoadSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req LoadSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	var view *preview.SessionView
	var err error
	if req.Profile != nil {
		view, err = h.preview.Load(r.Context(), req.Profile.toProfile(), req.PageID)
	} else {
		view, err = h.preview.LoadSaved(r.Context(), req.UserID, req.PageID)
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+view.ID)
	respondSuccess(w, r, http.StatusCreated, view, start)
}

// GetSession handles GET /api/v1/sessions/{sessionID}.
//
// @Summary Get a preview session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=preview.SessionView}
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /api/v1/sessions/{sessionID} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	view, err := h.preview.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, view, start)
}

// EndSession handles DELETE /api/v1/sessions/{sessionID}.
//
// @Summary End a preview session
// @Tags Sessions
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 204 "Session ended"
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /api/v1/sessions/{sessionID} [delete]
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	if !h.preview.End(chi.URLParam(r, "sessionID")) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "session not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReloadSession handles POST /api/v1/sessions/{sessionID}/reload.
//
// @Summary Reload a preview session
// @Description Discards the action log and interests and starts over with the given profile.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param request body LoadSessionRequest true "Profile or saved userId, and page"
// @Success 200 {object} models.APIResponse{data=preview.SessionView}
// @Failure 400 {object} models.APIResponse "Invalid profile or request body"
// @Failure 404 {object} models.APIResponse "Session, page or saved profile not found"
// @Router /api/v1/sessions/{sessionID}/reload [post]
func (h *Handler) ReloadSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req LoadSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	profile, pageID, err := h.sessionProfile(r, &req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	view, err := h.preview.Reload(r.Context(), chi.URLParam(r, "sessionID"), profile, pageID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, view, start)
}

// sessionProfile returns the inline profile of req, or the saved profile
// named by req.UserID.
func (h *Handler) sessionProfile(r *http.Request, req *LoadSessionRequest) (*recommend.PreviewProfile, string, error) {
	if req.Profile != nil {
		return req.Profile.toProfile(), req.PageID, nil
	}
	return h.preview.ResolveProfile(r.Context(), req.UserID, req.PageID)
}

// SelectPage handles PUT /api/v1/sessions/{sessionID}/page.
//
// @Summary Select the session page
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param request body SelectPageRequest true "Page"
// @Success 200 {object} models.APIResponse{data=preview.SessionView}
// @Failure 404 {object} models.APIResponse "Session or page not found"
// @Router /api/v1/sessions/{sessionID}/page [put]
func (h *Handler) SelectPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SelectPageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	view, err := h.preview.SelectPage(r.Context(), chi.URLParam(r, "sessionID"), req.PageID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, view, start)
}

// RecordAction handles POST /api/v1/sessions/{sessionID}/actions.
//
// @Summary Record an interaction
// @Description Appends a play, like, share or download to the session log and updates its interest profile.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param request body RecordActionRequest true "Interaction"
// @Success 201 {object} models.APIResponse{data=recommend.ActionLogEntry}
// @Failure 400 {object} models.APIResponse "Invalid action"
// @Failure 404 {object} models.APIResponse "Session or content not found"
// @Router /api/v1/sessions/{sessionID}/actions [post]
func (h *Handler) RecordAction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req RecordActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sessionID := chi.URLParam(r, "sessionID")
	entry, err := h.preview.RecordAction(r.Context(), sessionID, req.ContentID, recommend.ActionKind(req.Action), req.Detail)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Debug().
		Str("content_id", entry.ContentID).
		Str("action", string(entry.Action)).
		Msg("Action recorded")
	respondSuccess(w, r, http.StatusCreated, entry, start)
}

// ActionLog handles GET /api/v1/sessions/{sessionID}/log.
//
// @Summary Get the action log
// @Description Returns the session's interactions, newest first.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=[]recommend.ActionLogEntry}
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /api/v1/sessions/{sessionID}/log [get]
func (h *Handler) ActionLog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := h.preview.Log(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, entries, start)
}

// InterestProfile handles GET /api/v1/sessions/{sessionID}/profile.
//
// @Summary Get the interest profile
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=[]recommend.ProfileEntry}
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /api/v1/sessions/{sessionID}/profile [get]
func (h *Handler) InterestProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := h.preview.Profile(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, entries, start)
}

// Candidates handles GET /api/v1/sessions/{sessionID}/candidates.
//
// @Summary Get candidate carousels
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=recommend.Result}
// @Failure 404 {object} models.APIResponse "Session not found"
// @Router /api/v1/sessions/{sessionID}/candidates [get]
func (h *Handler) Candidates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	res, err := h.preview.Candidates(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, res, start)
}

// PromoteCandidate handles
// POST /api/v1/sessions/{sessionID}/candidates/{candidateID}/promote. The
// body is optional.
//
// @Summary Promote a candidate
// @Description Creates a draft carousel from the candidate at position 1 of the target route.
// @Tags Carousels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param candidateID path string true "Candidate ID"
// @Param request body PromoteRequest false "Target route"
// @Success 201 {object} models.APIResponse{data=carousel.Carousel}
// @Failure 400 {object} models.APIResponse "No target route or empty candidate"
// @Failure 404 {object} models.APIResponse "Session, candidate or route not found"
// @Failure 503 {object} models.APIResponse "Carousel store unavailable"
// @Router /api/v1/sessions/{sessionID}/candidates/{candidateID}/promote [post]
func (h *Handler) PromoteCandidate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req PromoteRequest
	if r.ContentLength != 0 {
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			respondError(w, r, http.StatusBadRequest, models.ErrCodeBadRequest, "Invalid request body", err)
			return
		}
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondValidation(w, r, err)
		return
	}
	created, err := h.preview.Promote(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "candidateID"), req.RouteID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusCreated, created, start)
}
