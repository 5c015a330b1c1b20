// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/curator/internal/catalog"
	"github.com/tomtom215/curator/internal/metrics"
)

// Session holds the simulation state of one preview profile on one page.
// All transitions are published atomically so concurrent readers observe
// either the previous or the next (log, interests) pair.
type Session struct {
	id        string
	acc       *Accumulator
	state     atomic.Pointer[State]
	createdAt time.Time
}

// NewSession creates a session with an empty log and profile.
func NewSession(id string, acc *Accumulator, profile *PreviewProfile, pageID string) *Session {
	s := &Session{id: id, acc: acc, createdAt: time.Now()}
	s.state.Store(acc.Empty(profile, pageID, 1))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Snapshot returns the current state. The returned value is immutable.
func (s *Session) Snapshot() *State {
	return s.state.Load()
}

// Reload starts a new lifecycle: the profile and page are replaced and the
// log and interests are discarded.
func (s *Session) Reload(profile *PreviewProfile, pageID string) *State {
	return s.update(func(prev *State) *State {
		return s.acc.Empty(profile, pageID, prev.Version+1)
	})
}

// SelectPage changes the selected page and keeps the log and interests.
func (s *Session) SelectPage(pageID string) *State {
	return s.update(func(prev *State) *State {
		next := *prev
		next.PageID = pageID
		next.Version = prev.Version + 1
		return &next
	})
}

// RecordAction applies an action on item and returns the new state.
func (s *Session) RecordAction(item *catalog.ContentItem, kind ActionKind, detail string) *State {
	var increment float64
	next := s.update(func(prev *State) *State {
		var st *State
		st, increment = s.acc.Record(prev, item, kind, detail)
		return st
	})
	metrics.RecordAction(string(kind), increment)
	return next
}

func (s *Session) update(fn func(prev *State) *State) *State {
	for {
		prev := s.state.Load()
		next := fn(prev)
		if s.state.CompareAndSwap(prev, next) {
			return next
		}
	}
}
