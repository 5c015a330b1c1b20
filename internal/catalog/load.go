// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/rs/zerolog"
)

//go:embed sample_catalog.yaml
var sampleCatalog []byte

// Format identifies a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the document format from the file extension.
// Unknown extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a catalog file. An empty path loads the embedded sample catalog.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(path string, logger zerolog.Logger) (*Catalog, error) {
	if path == "" {
		return Parse(sampleCatalog, FormatYAML, logger)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data, FormatFromPath(path), logger)
}

// Sample returns the embedded development catalog.
func Sample() *Catalog {
	c, err := Parse(sampleCatalog, FormatYAML, zerolog.Nop())
	if err != nil {
		panic(fmt.Sprintf("embedded sample catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes a catalog document. Only an undecodable document is an
// error; malformed items and metadata values are dropped and logged.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Parse(data []byte, format Format, logger zerolog.Logger) (*Catalog, error) {
	var doc interface{}
	switch format {
	case FormatYAML:
		m, err := yaml.Parser().Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
		doc = m
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	}

	raw, err := rawItems(doc)
	if err != nil {
		return nil, err
	}

	items := make([]ContentItem, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		obj, ok := r.(map[string]interface{})
		if !ok {
			dropped++
			continue
		}
		item, n := decodeItem(obj)
		dropped += n
		items = append(items, item)
	}

	c, skipped := New(items)
	if skipped > 0 || dropped > 0 {
		logger.Warn().
			Int("skipped_items", skipped).
			Int("dropped_values", dropped).
			Msg("catalog contained malformed entries")
	}
	logger.Debug().Int("items", c.Len()).Msg("catalog loaded")
	return c, nil
}

func rawItems(doc interface{}) ([]interface{}, error) {
	switch v := doc.(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		list, ok := v["items"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("catalog document has no items list")
		}
		return list, nil
	default:
		return nil, fmt.Errorf("catalog document must be a list or an object with items, got %T", doc)
	}
}

// decodeItem converts a generic object into a ContentItem. The second return
// value counts metadata entries that were dropped as malformed.
func decodeItem(obj map[string]interface{}) (ContentItem, int) {
	item := ContentItem{
		ID:          scalarString(obj["id"]),
		Title:       scalarString(obj["title"]),
		ImageURL:    scalarString(obj["imageUrl"]),
		Duration:    scalarString(obj["duration"]),
		Type:        ContentType(scalarString(obj["type"])),
		ContentType: scalarString(obj["contentType"]),
		Metadata:    map[string][]string{},
	}

	meta, ok := obj["metadata"].(map[string]interface{})
	if !ok {
		if obj["metadata"] != nil {
			return item, 1
		}
		return item, 0
	}

	dropped := 0
	for dim, v := range meta {
		list, ok := v.([]interface{})
		if !ok {
			dropped++
			continue
		}
		values := make([]string, 0, len(list))
		for _, e := range list {
			s, ok := e.(string)
			if !ok || s == "" {
				dropped++
				continue
			}
			values = append(values, s)
		}
		item.Metadata[dim] = values
	}
	return item, dropped
}

// scalarString renders ids and titles that may arrive as numbers.
func scalarString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64, int, int64, uint64:
		return fmt.Sprint(s)
	default:
		return ""
	}
}
