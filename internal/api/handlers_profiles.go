// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ListProfiles handles GET /api/v1/profiles.
//
// @Summary List saved preview profiles
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]preview.SavedProfile}
// @Router /api/v1/profiles [get]
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	list, err := h.preview.SavedProfiles(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, list, start)
}

// GetProfile handles GET /api/v1/profiles/{userID}.
//
// @Summary Get a saved preview profile
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 200 {object} models.APIResponse{data=preview.SavedProfile}
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /api/v1/profiles/{userID} [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	p, err := h.preview.SavedProfile(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, p, start)
}

// SaveProfile handles PUT /api/v1/profiles/{userID}.
//
// @Summary Create or replace a saved preview profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param request body SaveProfileRequest true "Profile attributes"
// @Success 200 {object} models.APIResponse{data=preview.SavedProfile}
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 404 {object} models.APIResponse "Default page not found"
// @Router /api/v1/profiles/{userID} [put]
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SaveProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	saved, err := h.preview.SaveProfile(r.Context(), req.toSaved(chi.URLParam(r, "userID")))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, saved, start)
}

// DeleteProfile handles DELETE /api/v1/profiles/{userID}.
//
// @Summary Delete a saved preview profile
// @Tags Profiles
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 204 "Profile deleted"
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /api/v1/profiles/{userID} [delete]
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.preview.DeleteProfile(r.Context(), chi.URLParam(r, "userID")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
