// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"errors"
	"time"

	"github.com/tomtom215/curator/internal/catalog"
)

var (
	// ErrNoTargetRoute is returned when a promotion has no target route.
	ErrNoTargetRoute = errors.New("no target route selected")

	// ErrEmptyCandidate is returned when promoting a candidate without items.
	ErrEmptyCandidate = errors.New("candidate has no items")
)

// ActionKind is a simulated viewer interaction.
type ActionKind string

const (
	ActionPlay     ActionKind = "play"
	ActionLike     ActionKind = "like"
	ActionShare    ActionKind = "share"
	ActionDownload ActionKind = "download"
)

// Valid reports whether k is a known action.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionPlay, ActionLike, ActionShare, ActionDownload:
		return true
	}
	return false
}

// Acknowledged reports whether the action produces a user-visible
// notification. Shares are logged silently.
func (k ActionKind) Acknowledged() bool {
	return k == ActionPlay || k == ActionLike || k == ActionDownload
}

// Completion buckets for play actions.
const (
	Completion25 = "25%"
	Completion50 = "50%"
	Completion75 = "75%"
	Completion85 = ">85%"
)

// ActionLogEntry is one recorded interaction.
type ActionLogEntry struct {
	Timestamp    time.Time  `json:"timestamp"`
	Action       ActionKind `json:"action"`
	ContentID    string     `json:"contentId,omitempty"`
	ContentTitle string     `json:"contentTitle"`
	// Detail is the completion bucket for play actions.
	Detail string `json:"detail,omitempty"`
}

// DisplayDetail renders the detail for the activity log view.
func (e *ActionLogEntry) DisplayDetail() string {
	if e.Detail == "" {
		return ""
	}
	if e.Action == ActionPlay {
		return "Completion: " + e.Detail
	}
	return e.Detail
}

// PreviewProfile is the simulated viewer a session is loaded for.
type PreviewProfile struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Country     string `json:"country,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	UserType    string `json:"userType,omitempty"`
	PackageType string `json:"packageType,omitempty"`
}

// Strategy identifies the heuristic that produced a candidate.
type Strategy string

const (
	StrategyLiked    Strategy = "liked"
	StrategyWatched  Strategy = "watched"
	StrategyActor    Strategy = "actor"
	StrategyInterest Strategy = "interest"
)

// Strategies lists every strategy in priority order.
var Strategies = []Strategy{StrategyLiked, StrategyWatched, StrategyActor, StrategyInterest}

// CandidateType is the display type of generated candidates.
const CandidateType = "Recommended"

// CandidateCarousel is an ephemeral, computed grouping of content items.
type CandidateCarousel struct {
	ID                 string                `json:"id"`
	Title              string                `json:"editorialName"`
	Type               string                `json:"type"`
	Position           int                   `json:"position"`
	Strategy           Strategy              `json:"strategy"`
	Items              []catalog.ContentItem `json:"content"`
	Platforms          []string              `json:"platforms"`
	RecommendationType string                `json:"recommendationType"`
	AvodSvod           string                `json:"avodSvod"`
}

// ItemCount returns the number of items in the candidate.
func (c *CandidateCarousel) ItemCount() int {
	return len(c.Items)
}

// ContentIDs returns the ids of the candidate's items in order.
func (c *CandidateCarousel) ContentIDs() []string {
	ids := make([]string, len(c.Items))
	for i := range c.Items {
		ids[i] = c.Items[i].ID
	}
	return ids
}
