// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package catalog

import "errors"

// ErrContentNotFound is returned when a lookup matches no catalog item.
var ErrContentNotFound = errors.New("content not found")

// Catalog is an ordered, immutable collection of content items.
type Catalog struct {
	items   []ContentItem
	byID    map[string]int
	byTitle map[string]int
}

// New builds a catalog from items, preserving their order. Items without an
// id or title are skipped, and a repeated id keeps its first occurrence.
// The second return value is the number of skipped items.
func New(items []ContentItem) (*Catalog, int) {
	c := &Catalog{
		items:   make([]ContentItem, 0, len(items)),
		byID:    make(map[string]int, len(items)),
		byTitle: make(map[string]int, len(items)),
	}

	skipped := 0
	for i := range items {
		item := items[i]
		if item.ID == "" || item.Title == "" {
			skipped++
			continue
		}
		if _, dup := c.byID[item.ID]; dup {
			skipped++
			continue
		}
		if item.Metadata == nil {
			item.Metadata = map[string][]string{}
		}

		idx := len(c.items)
		c.items = append(c.items, item)
		c.byID[item.ID] = idx
		// Title lookup resolves to the first item carrying the title.
		if _, seen := c.byTitle[item.Title]; !seen {
			c.byTitle[item.Title] = idx
		}
	}

	return c, skipped
}

// Items returns the catalog items in catalog order. The slice is shared and
// must not be modified.
func (c *Catalog) Items() []ContentItem {
	return c.items
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ByID returns the item with the given id.
func (c *Catalog) ByID(id string) (*ContentItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.items[idx], true
}

// ByTitle returns the first item whose title equals title.
func (c *Catalog) ByTitle(title string) (*ContentItem, bool) {
	idx, ok := c.byTitle[title]
	if !ok {
		return nil, false
	}
	return &c.items[idx], true
}

// Resolve looks an item up by id, falling back to title when the id is
// empty or unknown.
func (c *Catalog) Resolve(id, title string) (*ContentItem, bool) {
	if id != "" {
		if item, ok := c.ByID(id); ok {
			return item, true
		}
	}
	if title != "" {
		return c.ByTitle(title)
	}
	return nil, false
}
