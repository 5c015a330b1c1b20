// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/metrics"
)

// Result is a generation output tied to the state version it was built
// from.
type Result struct {
	Version     uint64              `json:"version"`
	Candidates  []CandidateCarousel `json:"candidates"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// Recomputer runs debounced background generation for one session.
//
// Every Schedule call cancels the in-flight run and restarts the debounce
// timer. A result is published only when it was built from the session's
// current version and is newer than the published one, so a stale run can
// never overwrite fresher output.
type Recomputer struct {
	session  *Session
	gen      *Generator
	cat      Catalog
	debounce time.Duration
	onResult func(*Result)
	logger   zerolog.Logger

	latest atomic.Pointer[Result]

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup

	baseCtx  context.Context
	baseStop context.CancelFunc
}

// NewRecomputer creates a recomputer for session. onResult, when non-nil,
// is called after each published result.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRecomputer(session *Session, gen *Generator, cat Catalog, debounce time.Duration, onResult func(*Result), logger zerolog.Logger) *Recomputer {
	ctx, stop := context.WithCancel(context.Background())
	return &Recomputer{
		session:  session,
		gen:      gen,
		cat:      cat,
		debounce: debounce,
		onResult: onResult,
		logger:   logger.With().Str("component", "recompute").Str("session_id", session.ID()).Logger(),
		baseCtx:  ctx,
		baseStop: stop,
	}
}

// Schedule requests a recomputation after the debounce delay. Any pending
// or running generation is superseded.
func (r *Recomputer) Schedule() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.timer != nil && r.timer.Stop() {
		r.wg.Done()
		metrics.RecordSuperseded()
	}
	r.wg.Add(1)
	r.timer = time.AfterFunc(r.debounce, r.run)
}

func (r *Recomputer) run() {
	defer r.wg.Done()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(r.baseCtx)
	r.cancel = cancel
	r.mu.Unlock()
	defer cancel()

	st := r.session.Snapshot()
	candidates, err := r.generate(ctx, st)
	if err != nil {
		metrics.RecordSuperseded()
		r.logger.Debug().Uint64("version", st.Version).Msg("Recomputation canceled")
		return
	}
	r.publish(&Result{Version: st.Version, Candidates: candidates, GeneratedAt: time.Now().UTC()})
}

// publish stores res when it is current. It reports whether res was kept.
func (r *Recomputer) publish(res *Result) bool {
	for {
		cur := r.latest.Load()
		if (cur != nil && cur.Version >= res.Version) || r.session.Snapshot().Version != res.Version {
			metrics.RecordSuperseded()
			return false
		}
		if r.latest.CompareAndSwap(cur, res) {
			break
		}
	}
	r.logger.Debug().
		Uint64("version", res.Version).
		Int("candidates", len(res.Candidates)).
		Msg("Candidates recomputed")
	if r.onResult != nil {
		r.onResult(res)
	}
	return true
}

// generate runs the generator and records how long it took and what each
// strategy produced. Canceled runs are not recorded.
func (r *Recomputer) generate(ctx context.Context, st *State) ([]CandidateCarousel, error) {
	start := time.Now()
	candidates, err := r.gen.GenerateContext(ctx, r.cat, st)
	if err != nil {
		return nil, err
	}
	perStrategy := make(map[string]int, len(Strategies))
	for _, s := range Strategies {
		perStrategy[string(s)] = 0
	}
	for i := range candidates {
		perStrategy[string(candidates[i].Strategy)]++
	}
	metrics.RecordGeneration(time.Since(start), perStrategy)
	return candidates, nil
}

// Latest returns the newest published result, or nil.
func (r *Recomputer) Latest() *Result {
	return r.latest.Load()
}

// Current returns candidates for the session's current state, generating
// synchronously when the published result is outdated.
func (r *Recomputer) Current(ctx context.Context) (*Result, error) {
	st := r.session.Snapshot()
	if res := r.latest.Load(); res != nil && res.Version == st.Version {
		return res, nil
	}
	candidates, err := r.generate(ctx, st)
	if err != nil {
		return nil, err
	}
	res := &Result{Version: st.Version, Candidates: candidates, GeneratedAt: time.Now().UTC()}
	r.publish(res)
	return res, nil
}

// Close stops pending work and waits for a running generation to finish.
func (r *Recomputer) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	if r.timer != nil && r.timer.Stop() {
		r.wg.Done()
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
	r.baseStop()
	r.wg.Wait()
}
