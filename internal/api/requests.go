// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package api

import (
	"github.com/tomtom215/curator/internal/preview"
	"github.com/tomtom215/curator/internal/recommend"
)

// ProfileRequest identifies the preview profile of a session.
type ProfileRequest struct {
	UserID      string `json:"userId" validate:"required_without=Username,max=128"`
	Username    string `json:"username" validate:"max=128"`
	Country     string `json:"country" validate:"max=64"`
	Timezone    string `json:"timezone" validate:"max=64"`
	UserType    string `json:"userType" validate:"max=64"`
	PackageType string `json:"packageType" validate:"max=64"`
}

func (p *ProfileRequest) toProfile() *recommend.PreviewProfile {
	return &recommend.PreviewProfile{
		UserID:      p.UserID,
		Username:    p.Username,
		Country:     p.Country,
		Timezone:    p.Timezone,
		UserType:    p.UserType,
		PackageType: p.PackageType,
	}
}

// LoadSessionRequest is the body of POST /api/v1/sessions and
// POST /api/v1/sessions/{sessionID}/reload. Without a profile, UserID
// selects a saved profile and an empty PageID falls back to its default
// page.
type LoadSessionRequest struct {
	Profile *ProfileRequest `json:"profile,omitempty" validate:"required_without=UserID"`
	UserID  string          `json:"userId,omitempty" validate:"max=128"`
	PageID  string          `json:"pageId" validate:"max=128"`
}

// SaveProfileRequest is the body of PUT /api/v1/profiles/{userID}.
type SaveProfileRequest struct {
	Username      string `json:"username" validate:"max=128"`
	Country       string `json:"country" validate:"max=64"`
	Timezone      string `json:"timezone" validate:"max=64"`
	UserType      string `json:"userType" validate:"max=64"`
	PackageType   string `json:"packageType" validate:"max=64"`
	Label         string `json:"label" validate:"max=128"`
	DefaultPageID string `json:"defaultPageId" validate:"max=128"`
}

func (p *SaveProfileRequest) toSaved(userID string) *preview.SavedProfile {
	return &preview.SavedProfile{
		PreviewProfile: recommend.PreviewProfile{
			UserID:      userID,
			Username:    p.Username,
			Country:     p.Country,
			Timezone:    p.Timezone,
			UserType:    p.UserType,
			PackageType: p.PackageType,
		},
		Label:         p.Label,
		DefaultPageID: p.DefaultPageID,
	}
}

// SelectPageRequest is the body of PUT /api/v1/sessions/{sessionID}/page.
type SelectPageRequest struct {
	PageID string `json:"pageId" validate:"required,max=128"`
}

// RecordActionRequest is the body of POST /api/v1/sessions/{sessionID}/actions.
// Detail is the completion bucket of a play; a play without one is logged
// with no interest increment.
type RecordActionRequest struct {
	ContentID string `json:"contentId" validate:"required,max=128"`
	Action    string `json:"action" validate:"required,action"`
	Detail    string `json:"detail" validate:"omitempty,completion"`
}

// PromoteRequest is the optional body of the promote endpoint. An empty
// RouteID targets the session's page.
type PromoteRequest struct {
	RouteID string `json:"routeId" validate:"max=128"`
}

// CatalogSearchRequest binds the catalog query string.
type CatalogSearchRequest struct {
	Text    string              `json:"q" validate:"max=200"`
	Filters map[string][]string `json:"filters" validate:"max=8"`
}
