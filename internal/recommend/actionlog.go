// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import goJSON "github.com/goccy/go-json"

// ActionLog is a bounded, newest-first record of interactions. It is
// immutable: Prepend returns a new log and never touches existing entries.
// The zero value is an empty log with the default capacity.
type ActionLog struct {
	entries  []ActionLogEntry
	capacity int
}

// DefaultLogCapacity is the capacity used when none is configured.
const DefaultLogCapacity = 100

// NewActionLog returns an empty log holding at most capacity entries.
func NewActionLog(capacity int) *ActionLog {
	if capacity < 1 {
		capacity = DefaultLogCapacity
	}
	return &ActionLog{capacity: capacity}
}

// Capacity returns the maximum number of entries kept.
func (l *ActionLog) Capacity() int {
	if l == nil || l.capacity < 1 {
		return DefaultLogCapacity
	}
	return l.capacity
}

// Prepend returns a new log with entry first, followed by the newest
// Capacity()-1 entries of l.
func (l *ActionLog) Prepend(entry ActionLogEntry) *ActionLog {
	capacity := l.Capacity()
	keep := l.Len()
	if keep > capacity-1 {
		keep = capacity - 1
	}
	entries := make([]ActionLogEntry, 0, keep+1)
	entries = append(entries, entry)
	if keep > 0 {
		entries = append(entries, l.entries[:keep]...)
	}
	return &ActionLog{entries: entries, capacity: capacity}
}

// Len returns the number of entries.
func (l *ActionLog) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns a copy of the entries, newest first.
func (l *ActionLog) Entries() []ActionLogEntry {
	if l.Len() == 0 {
		return []ActionLogEntry{}
	}
	out := make([]ActionLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// InteractedTitles returns every distinct title appearing in the log.
func (l *ActionLog) InteractedTitles() map[string]struct{} {
	set := make(map[string]struct{}, l.Len())
	for i := 0; i < l.Len(); i++ {
		set[l.entries[i].ContentTitle] = struct{}{}
	}
	return set
}

// LogSeed identifies a content item referenced by the log.
type LogSeed struct {
	ContentID string
	Title     string
}

// DistinctTitles returns the distinct titles with the given action in
// first-seen order. Because the log is newest-first this is also
// most-recent-first. The content id of the newest matching entry is kept.
func (l *ActionLog) DistinctTitles(kind ActionKind) []LogSeed {
	var seeds []LogSeed
	seen := make(map[string]struct{})
	for i := 0; i < l.Len(); i++ {
		e := &l.entries[i]
		if e.Action != kind {
			continue
		}
		if _, ok := seen[e.ContentTitle]; ok {
			continue
		}
		seen[e.ContentTitle] = struct{}{}
		seeds = append(seeds, LogSeed{ContentID: e.ContentID, Title: e.ContentTitle})
	}
	return seeds
}

// HighInterestTitles returns the titles that were liked or played to
// near completion.
func (l *ActionLog) HighInterestTitles() map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i < l.Len(); i++ {
		e := &l.entries[i]
		if e.Action == ActionLike || (e.Action == ActionPlay && e.Detail == Completion85) {
			set[e.ContentTitle] = struct{}{}
		}
	}
	return set
}

// MarshalJSON encodes the log as its entry list.
func (l *ActionLog) MarshalJSON() ([]byte, error) {
	return goJSON.Marshal(l.Entries())
}
