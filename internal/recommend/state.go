// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"time"

	"github.com/tomtom215/curator/internal/catalog"
)

// State is an immutable snapshot of a session: the loaded preview profile,
// the selected page, and the (log, interests) pair built from the actions
// recorded so far. Version increases by one with every transition.
type State struct {
	Profile   *PreviewProfile
	PageID    string
	Log       *ActionLog
	Interests *InterestProfile
	Version   uint64
}

// Ready reports whether the state has a profile and a page loaded.
func (s *State) Ready() bool {
	return s != nil && s.Profile != nil && s.PageID != ""
}

// Accumulator turns recorded actions into new states.
type Accumulator struct {
	increments IncrementTable
	capacity   int
	now        func() time.Time
}

// NewAccumulator creates an accumulator from cfg.
func NewAccumulator(cfg *Config) *Accumulator {
	return &Accumulator{
		increments: cfg.Increments,
		capacity:   cfg.LogCapacity,
		now:        time.Now,
	}
}

// WithClock replaces the timestamp source. Intended for tests.
func (a *Accumulator) WithClock(now func() time.Time) *Accumulator {
	cp := *a
	cp.now = now
	return &cp
}

// Empty returns the initial state of a freshly loaded session.
func (a *Accumulator) Empty(profile *PreviewProfile, pageID string, version uint64) *State {
	return &State{
		Profile:   profile,
		PageID:    pageID,
		Log:       NewActionLog(a.capacity),
		Interests: NewInterestProfile(),
		Version:   version,
	}
}

// Record returns the state after item received an action, together with
// the increment applied to each of its tags. prev is not modified.
func (a *Accumulator) Record(prev *State, item *catalog.ContentItem, kind ActionKind, detail string) (*State, float64) {
	increment := a.increments.Increment(kind, detail)
	entry := ActionLogEntry{
		Timestamp:    a.now().UTC(),
		Action:       kind,
		ContentID:    item.ID,
		ContentTitle: item.Title,
		Detail:       detail,
	}
	next := &State{
		Profile:   prev.Profile,
		PageID:    prev.PageID,
		Log:       prev.Log.Prepend(entry),
		Interests: prev.Interests.Apply(item, increment),
		Version:   prev.Version + 1,
	}
	return next, increment
}
