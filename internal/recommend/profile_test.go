// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"testing"

	goJSON "github.com/goccy/go-json"

	"github.com/tomtom215/curator/internal/catalog"
)

func TestIncrementTable_Defaults(t *testing.T) {
	t.Parallel()

	inc := DefaultConfig().Increments
	tests := []struct {
		kind   ActionKind
		detail string
		want   float64
	}{
		{ActionLike, "", 0.3},
		{ActionDownload, "", 0.3},
		{ActionShare, "", 0},
		{ActionPlay, Completion85, 0.5},
		{ActionPlay, Completion75, 0.4},
		{ActionPlay, Completion50, 0.25},
		{ActionPlay, Completion25, 0.1},
		{ActionPlay, "", 0},
		{ActionPlay, "10%", 0},
		{ActionKind("rewind"), "", 0},
	}
	for _, tt := range tests {
		if got := inc.Increment(tt.kind, tt.detail); !approxEqual(got, tt.want) {
			t.Errorf("Increment(%s, %q) = %v, want %v", tt.kind, tt.detail, got, tt.want)
		}
	}
}

func TestRecordAction_CompletionWeighting(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, item("x", "X", map[string][]string{"mood": {"Uplifting"}}))
	s := testSession(t)
	record(t, s, cat, "x", ActionPlay, Completion75)
	st := record(t, s, cat, "x", ActionPlay, Completion50)

	got := st.Interests.Weight(InterestKey{Dimension: "mood", Value: "Uplifting"})
	if got != 0.65 {
		t.Errorf("mood:Uplifting = %v, want 0.65", got)
	}
}

func TestRecordAction_ZeroIncrementCreatesEntries(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, item("a", "A", genre("Drama")))
	s := testSession(t)
	st := record(t, s, cat, "a", ActionShare, "")

	key := InterestKey{Dimension: catalog.DimensionGenre, Value: "Drama"}
	if !st.Interests.Has(key) {
		t.Fatal("expected share to create the genre:Drama entry")
	}
	if w := st.Interests.Weight(key); w != 0 {
		t.Errorf("weight = %v, want 0", w)
	}
	if st.Log.Len() != 1 {
		t.Errorf("log length = %d, want 1", st.Log.Len())
	}
}

func TestInterestProfile_Monotonic(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", map[string][]string{"genre": {"Action", "Drama"}, "cast": {"Lead"}}),
		item("b", "B", map[string][]string{"genre": {"Drama"}, "mood": {"Dark"}}),
	)
	s := testSession(t)
	steps := []struct {
		id     string
		kind   ActionKind
		detail string
	}{
		{"a", ActionPlay, Completion25},
		{"b", ActionShare, ""},
		{"a", ActionLike, ""},
		{"b", ActionPlay, "bogus"},
		{"b", ActionDownload, ""},
		{"a", ActionPlay, Completion85},
	}

	prev := s.Snapshot().Interests.Map()
	for i, step := range steps {
		next := record(t, s, cat, step.id, step.kind, step.detail).Interests.Map()
		for k, w := range prev {
			if next[k] < w {
				t.Fatalf("step %d: weight of %s decreased from %v to %v", i, k, w, next[k])
			}
		}
		prev = next
	}
}

func TestInterestProfile_OrderIndependent(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", map[string][]string{"genre": {"Action"}, "cast": {"Lead"}}),
		item("b", "B", map[string][]string{"genre": {"Action", "Comedy"}}),
		item("c", "C", map[string][]string{"mood": {"Tense"}, "cast": {"Lead"}}),
	)
	type triple struct {
		id     string
		kind   ActionKind
		detail string
	}
	history := []triple{
		{"a", ActionLike, ""},
		{"b", ActionPlay, Completion50},
		{"c", ActionDownload, ""},
		{"a", ActionPlay, Completion85},
		{"b", ActionShare, ""},
	}
	permutations := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
	}

	var want map[string]float64
	for _, perm := range permutations {
		s := testSession(t)
		var st *State
		for _, idx := range perm {
			h := history[idx]
			st = record(t, s, cat, h.id, h.kind, h.detail)
		}
		got := st.Interests.Map()
		if want == nil {
			want = got
			continue
		}
		if len(got) != len(want) {
			t.Fatalf("permutation %v: %d keys, want %d", perm, len(got), len(want))
		}
		for k, w := range want {
			if got[k] != w {
				t.Errorf("permutation %v: %s = %v, want %v", perm, k, got[k], w)
			}
		}
	}
}

func TestInterestProfile_CompletionOrderExact(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("z", "Z", genre("Zeta")),
		item("a", "A", genre("Alpha")),
	)
	s := testSession(t)
	for _, step := range []struct{ id, detail string }{
		{"z", Completion25}, {"z", Completion25}, {"z", Completion50},
		{"a", Completion50}, {"a", Completion25}, {"a", Completion25},
	} {
		record(t, s, cat, step.id, ActionPlay, step.detail)
	}
	st := s.Snapshot()

	zeta := st.Interests.Weight(InterestKey{Dimension: catalog.DimensionGenre, Value: "Zeta"})
	alpha := st.Interests.Weight(InterestKey{Dimension: catalog.DimensionGenre, Value: "Alpha"})
	if zeta != 0.45 || alpha != 0.45 {
		t.Fatalf("weights Zeta=%v Alpha=%v, want both exactly 0.45", zeta, alpha)
	}

	top := st.Interests.Top(1, nil)
	if len(top) != 1 || top[0].Key.String() != "genre:Alpha" {
		t.Errorf("Top(1) = %+v, want genre:Alpha on the key tie-break", top)
	}
}

func TestInterestProfile_TopOrdering(t *testing.T) {
	t.Parallel()

	p := NewInterestProfile().
		Apply(&catalog.ContentItem{Metadata: map[string][]string{"genre": {"Drama"}, "mood": {"Dark"}}}, 0.5).
		Apply(&catalog.ContentItem{Metadata: map[string][]string{"genre": {"Action"}}}, 0.5).
		Apply(&catalog.ContentItem{Metadata: map[string][]string{"genre": {"Drama"}, "theme": {"Family"}}}, 0.1)

	top := p.Top(0, nil)
	want := []string{"genre:Drama", "genre:Action", "mood:Dark", "theme:Family"}
	if len(top) != len(want) {
		t.Fatalf("top = %+v, want %v", top, want)
	}
	for i, k := range want {
		if top[i].Key.String() != k {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Key, k)
		}
	}

	limited := p.Top(2, func(e ProfileEntry) bool { return e.Key.Dimension != "genre" })
	if len(limited) != 2 || limited[0].Key.String() != "mood:Dark" {
		t.Errorf("filtered top = %+v", limited)
	}
}

func TestInterestProfile_MarshalJSON(t *testing.T) {
	t.Parallel()

	p := NewInterestProfile().Apply(&catalog.ContentItem{Metadata: genre("Action")}, 0.3)
	data, err := goJSON.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]float64
	if err := goJSON.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !approxEqual(decoded["genre:Action"], 0.3) {
		t.Errorf("decoded = %v, want genre:Action 0.3", decoded)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative like", func(c *Config) { c.Increments.Like = -0.1 }},
		{"negative play bucket", func(c *Config) { c.Increments.Play[Completion25] = -1 }},
		{"zero capacity", func(c *Config) { c.LogCapacity = 0 }},
		{"pool below minimum", func(c *Config) { c.Generation.PoolLimit = 1 }},
		{"zero min pool", func(c *Config) { c.Generation.MinPoolSize = 0 }},
		{"negative seeds", func(c *Config) { c.Generation.WatchedSeeds = -1 }},
		{"missing component", func(c *Config) { c.Promotion.ComponentType = "" }},
		{"variant weight", func(c *Config) { c.Promotion.VariantWeight = 101 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_CloneIsDeep(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cp := cfg.Clone()
	cp.Increments.Play[Completion85] = 9
	cp.Generation.DimensionEligibility["mood"] = false
	cp.Promotion.Packages[0] = "free"

	if cfg.Increments.Play[Completion85] != 0.5 {
		t.Error("clone shares play increments")
	}
	if _, ok := cfg.Generation.DimensionEligibility["mood"]; ok {
		t.Error("clone shares eligibility map")
	}
	if cfg.Promotion.Packages[0] != "vip" {
		t.Error("clone shares packages")
	}
}
