// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/logging"
)

func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func item(id, title string, metadata map[string][]string) catalog.ContentItem {
	return catalog.ContentItem{ID: id, Title: title, Type: catalog.TypeMovie, Metadata: metadata}
}

func genre(values ...string) map[string][]string {
	return map[string][]string{catalog.DimensionGenre: values}
}

func newCatalog(t *testing.T, items ...catalog.ContentItem) *catalog.Catalog {
	t.Helper()
	cat, skipped := catalog.New(items)
	if skipped != 0 {
		t.Fatalf("fixture catalog skipped %d items", skipped)
	}
	return cat
}

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func testProfile() *PreviewProfile {
	return &PreviewProfile{UserID: "u-1", Username: "preview.user", Country: "KSA"}
}

// testSession returns a loaded session on page ww-home.
func testSession(t *testing.T) *Session {
	t.Helper()
	acc := NewAccumulator(DefaultConfig()).WithClock(fixedClock())
	return NewSession("s-1", acc, testProfile(), "ww-home")
}

// record applies an action on the catalog item with the given id.
func record(t *testing.T, s *Session, cat *catalog.Catalog, id string, kind ActionKind, detail string) *State {
	t.Helper()
	it, ok := cat.ByID(id)
	if !ok {
		t.Fatalf("fixture item %q not found", id)
	}
	return s.RecordAction(it, kind, detail)
}

func candidateTitles(cands []CandidateCarousel) []string {
	out := make([]string, len(cands))
	for i := range cands {
		out[i] = cands[i].Title
	}
	return out
}

func itemTitles(items []catalog.ContentItem) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Title
	}
	return out
}
