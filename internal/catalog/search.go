// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package catalog

import (
	"slices"
	"sort"
	"strings"
)

// FilterContentType is the filter key matched against ContentItem.ContentType
// instead of a metadata dimension.
const FilterContentType = "contentType"

// facetKeys lists the filterable dimensions in display order.
var facetKeys = []string{FilterContentType, DimensionGenre, DimensionTheme, DimensionMood, DimensionCast, DimensionAudience}

// Facet is one filterable dimension with its sorted distinct options.
type Facet struct {
	ID      string   `json:"id"`
	Options []string `json:"options"`
}

// Query selects catalog items. Within a filter key any selected value may
// match; across keys all must match. Text matches the title or any metadata
// value, case-insensitively.
type Query struct {
	Text    string              `json:"q,omitempty"`
	Filters map[string][]string `json:"filters,omitempty"`
}

// Search returns matching items in catalog order. An empty query returns
// every item.
func (c *Catalog) Search(q Query) []ContentItem {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" && !hasActiveFilters(q.Filters) {
		return c.items
	}

	out := make([]ContentItem, 0)
	for i := range c.items {
		item := &c.items[i]
		if !passesFilters(item, q.Filters) {
			continue
		}
		if text != "" && !matchesText(item, text) {
			continue
		}
		out = append(out, *item)
	}
	return out
}

// Facets returns the available filter options derived from the catalog.
// Dimensions without any values are omitted.
func (c *Catalog) Facets() []Facet {
	facets := make([]Facet, 0, len(facetKeys))
	for _, key := range facetKeys {
		seen := make(map[string]struct{})
		for i := range c.items {
			item := &c.items[i]
			if key == FilterContentType {
				if item.ContentType != "" {
					seen[item.ContentType] = struct{}{}
				}
				continue
			}
			for _, v := range item.Metadata[key] {
				seen[v] = struct{}{}
			}
		}
		if len(seen) == 0 {
			continue
		}
		options := make([]string, 0, len(seen))
		for v := range seen {
			options = append(options, v)
		}
		sort.Strings(options)
		facets = append(facets, Facet{ID: key, Options: options})
	}
	return facets
}

func hasActiveFilters(filters map[string][]string) bool {
	for _, v := range filters {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

func passesFilters(item *ContentItem, filters map[string][]string) bool {
	for key, selected := range filters {
		if len(selected) == 0 {
			continue
		}
		if key == FilterContentType {
			if !slices.Contains(selected, item.ContentType) {
				return false
			}
			continue
		}
		values, ok := item.Metadata[key]
		if !ok {
			return false
		}
		if !slices.ContainsFunc(selected, func(s string) bool { return slices.Contains(values, s) }) {
			return false
		}
	}
	return true
}

func matchesText(item *ContentItem, text string) bool {
	if strings.Contains(strings.ToLower(item.Title), text) {
		return true
	}
	for _, values := range item.Metadata {
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), text) {
				return true
			}
		}
	}
	return false
}
