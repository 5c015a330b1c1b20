// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package catalog

import "slices"

// ContentType is the broad kind of a catalog entry.
type ContentType string

const (
	TypeMovie   ContentType = "Movie"
	TypeSeries  ContentType = "Series"
	TypeEpisode ContentType = "Episode"
)

// Well-known metadata dimensions.
const (
	DimensionGenre    = "genre"
	DimensionCast     = "cast"
	DimensionMood     = "mood"
	DimensionTheme    = "theme"
	DimensionAudience = "audience"
)

// ContentItem is a single entry in the content catalog.
type ContentItem struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	Duration    string              `json:"duration,omitempty"`
	Type        ContentType         `json:"type"`
	ContentType string              `json:"contentType,omitempty"`
	Metadata    map[string][]string `json:"metadata"`
}

// Tags returns the values of one metadata dimension. The returned slice must
// not be modified.
func (c *ContentItem) Tags(dimension string) []string {
	return c.Metadata[dimension]
}

// HasTag reports whether the dimension lists value.
func (c *ContentItem) HasTag(dimension, value string) bool {
	return slices.Contains(c.Metadata[dimension], value)
}

// PrimaryGenre returns the first genre value, or "" when the item has none.
func (c *ContentItem) PrimaryGenre() string {
	genres := c.Metadata[DimensionGenre]
	if len(genres) == 0 {
		return ""
	}
	return genres[0]
}
