// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package carousel

// Status is the lifecycle state of a persisted carousel.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusDraft    Status = "Draft"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDraft:
		return true
	}
	return false
}

// MaxVariants is the upper bound on variants per carousel.
const MaxVariants = 4

// DateLayout is the format of Carousel.Modified.
const DateLayout = "2006-01-02"

// RegionConfig selects the regions a variant is shown in.
type RegionConfig struct {
	SelectedRegion string   `json:"selectedRegion"`
	Included       []string `json:"included"`
	Excluded       []string `json:"excluded"`
}

// Variant is one targeting configuration of a carousel, used for A/B
// comparison.
type Variant struct {
	ID                 string       `json:"id"`
	Weight             int          `json:"weight" validate:"gte=0,lte=100"`
	EditorialName      string       `json:"editorialName" validate:"required"`
	CarouselCompType   string       `json:"carouselCompType" validate:"required"`
	Packages           []string     `json:"packages"`
	Age                []string     `json:"age"`
	DeviceType         []string     `json:"deviceType"`
	RegionConfig       RegionConfig `json:"regionConfig"`
	RecommendationType string       `json:"recommendationType"`
	VodAvailable       bool         `json:"vodAvailable"`
	AllowPrevious      bool         `json:"allowPrevious"`
	RemovePrevious     bool         `json:"removePrevious"`
	EpisodeOrder       bool         `json:"episodeOrder"`
	IncludeExclude     string       `json:"includeExclude"`
	AvodSvod           string       `json:"avodSvod"`
}

// ABTestConfig controls variant experimentation.
type ABTestConfig struct {
	Enabled      bool `json:"enabled"`
	DurationDays int  `json:"durationDays" validate:"gte=0"`
}

// Carousel is a persisted production carousel.
type Carousel struct {
	ID                 string        `json:"id"`
	RouteID            string        `json:"routeId"`
	EditorialName      string        `json:"editorialName"`
	Type               string        `json:"type"`
	Position           int           `json:"position"`
	Items              int           `json:"items"`
	ContentIDs         []string      `json:"contentIds,omitempty"`
	Platforms          []string      `json:"platforms"`
	RecommendationType string        `json:"recommendationType"`
	AvodSvod           string        `json:"avodSvod"`
	Status             Status        `json:"status"`
	Pinned             bool          `json:"pinned"`
	Modified           string        `json:"modified"`
	Variants           []Variant     `json:"variants"`
	ABTestConfig       *ABTestConfig `json:"abTestConfig,omitempty"`
}

// Draft is a carousel creation request. Identity, position and modified
// date are assigned by the store.
type Draft struct {
	EditorialName      string        `json:"editorialName" validate:"required,max=200"`
	Type               string        `json:"type" validate:"required"`
	Items              int           `json:"items" validate:"gte=0"`
	ContentIDs         []string      `json:"contentIds,omitempty"`
	Platforms          []string      `json:"platforms"`
	RecommendationType string        `json:"recommendationType"`
	AvodSvod           string        `json:"avodSvod"`
	Status             Status        `json:"status" validate:"required,oneof=Active Inactive Draft"`
	Pinned             bool          `json:"pinned"`
	Variants           []Variant     `json:"variants" validate:"required,min=1,max=4,dive"`
	ABTestConfig       *ABTestConfig `json:"abTestConfig,omitempty"`
}

// NodeType distinguishes route folders from pages.
type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodePage   NodeType = "page"
)

// RouteNode is a node of the navigation tree carousels are attached to.
type RouteNode struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Name     string   `json:"name"`
	Status   string   `json:"status,omitempty"`
	Count    int      `json:"count"`
	ParentID string   `json:"parentId,omitempty"`
	Children []string `json:"children,omitempty"`
}

// DefaultRoutes returns the seed route tree.
func DefaultRoutes() []RouteNode {
	return []RouteNode{
		{ID: "ww", Type: NodeFolder, Name: "WW", Count: 2, Children: []string{"ww-home", "ww-movie"}},
		{ID: "ww-home", Type: NodePage, Name: "Home", Status: "active", ParentID: "ww"},
		{ID: "ww-movie", Type: NodePage, Name: "Movie", Status: "inactive", ParentID: "ww"},
		{ID: "ksa", Type: NodeFolder, Name: "KSA", Count: 3},
		{ID: "gcc", Type: NodeFolder, Name: "GCC", Count: 3},
		{ID: "uae", Type: NodeFolder, Name: "UAE", Count: 3},
	}
}
