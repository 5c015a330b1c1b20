// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"cmp"
	"math"
	"slices"

	goJSON "github.com/goccy/go-json"

	"github.com/tomtom215/curator/internal/catalog"
)

// InterestKey identifies one metadata tag.
type InterestKey struct {
	Dimension string
	Value     string
}

// String returns the "dimension:value" form used at serialization
// boundaries.
func (k InterestKey) String() string {
	return k.Dimension + ":" + k.Value
}

func compareKeys(a, b InterestKey) int {
	if c := cmp.Compare(a.Dimension, b.Dimension); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// ProfileEntry is one weighted tag of an interest profile.
type ProfileEntry struct {
	Key    InterestKey `json:"-"`
	Weight float64     `json:"weight"`
}

// MarshalJSON renders the entry with its composite key.
func (e ProfileEntry) MarshalJSON() ([]byte, error) {
	return goJSON.Marshal(struct {
		Key       string  `json:"key"`
		Dimension string  `json:"dimension"`
		Value     string  `json:"value"`
		Weight    float64 `json:"weight"`
	}{e.Key.String(), e.Key.Dimension, e.Key.Value, e.Weight})
}

// weightScale is the number of stored units per weight point. Weights are
// summed as integers so the result does not depend on action order.
const weightScale = 1_000_000

func toUnits(w float64) int64 {
	return int64(math.Round(w * weightScale))
}

func fromUnits(u int64) float64 {
	return float64(u) / weightScale
}

// InterestProfile maps tags to accumulated, non-negative weights. It is
// immutable; Apply returns a new profile. The zero value is empty.
type InterestProfile struct {
	weights map[InterestKey]int64
}

// NewInterestProfile returns an empty profile.
func NewInterestProfile() *InterestProfile {
	return &InterestProfile{weights: map[InterestKey]int64{}}
}

// Apply returns a new profile where every (dimension, value) pair of item
// gained increment. Entries are created even for a zero increment.
// Negative increments are treated as zero so weights never decrease.
func (p *InterestProfile) Apply(item *catalog.ContentItem, increment float64) *InterestProfile {
	units := toUnits(increment)
	if units < 0 {
		units = 0
	}
	next := make(map[InterestKey]int64, p.Len()+8)
	if p != nil {
		for k, w := range p.weights {
			next[k] = w
		}
	}
	if item != nil {
		for dim, values := range item.Metadata {
			for _, v := range values {
				k := InterestKey{Dimension: dim, Value: v}
				next[k] += units
			}
		}
	}
	return &InterestProfile{weights: next}
}

// Weight returns the weight of key, or zero when absent.
func (p *InterestProfile) Weight(key InterestKey) float64 {
	if p == nil {
		return 0
	}
	return fromUnits(p.weights[key])
}

// Has reports whether key has an entry.
func (p *InterestProfile) Has(key InterestKey) bool {
	if p == nil {
		return false
	}
	_, ok := p.weights[key]
	return ok
}

// Len returns the number of entries.
func (p *InterestProfile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.weights)
}

// Top returns at most n entries accepted by keep, sorted by weight
// descending and then by key ascending. n <= 0 means no limit.
func (p *InterestProfile) Top(n int, keep func(ProfileEntry) bool) []ProfileEntry {
	type ranked struct {
		entry ProfileEntry
		units int64
	}
	all := make([]ranked, 0, p.Len())
	if p != nil {
		for k, u := range p.weights {
			e := ProfileEntry{Key: k, Weight: fromUnits(u)}
			if keep == nil || keep(e) {
				all = append(all, ranked{entry: e, units: u})
			}
		}
	}
	slices.SortFunc(all, func(a, b ranked) int {
		if c := cmp.Compare(b.units, a.units); c != 0 {
			return c
		}
		return compareKeys(a.entry.Key, b.entry.Key)
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	out := make([]ProfileEntry, len(all))
	for i := range all {
		out[i] = all[i].entry
	}
	return out
}

// Map returns the profile keyed by "dimension:value".
func (p *InterestProfile) Map() map[string]float64 {
	out := make(map[string]float64, p.Len())
	if p != nil {
		for k, u := range p.weights {
			out[k.String()] = fromUnits(u)
		}
	}
	return out
}

// MarshalJSON encodes the profile as a "dimension:value" to weight object.
func (p *InterestProfile) MarshalJSON() ([]byte, error) {
	return goJSON.Marshal(p.Map())
}
