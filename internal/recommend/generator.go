// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"context"
	"slices"
	"strings"

	"github.com/tomtom215/curator/internal/catalog"
)

// Catalog is the read-only content source consumed by the generator.
type Catalog interface {
	// Items returns the catalog in its original order.
	Items() []catalog.ContentItem
	// Resolve finds an item by id, falling back to title.
	Resolve(id, title string) (*catalog.ContentItem, bool)
}

// Generator builds candidate carousels from a session state.
type Generator struct {
	gen  GenerationConfig
	cand CandidateConfig
}

// NewGenerator creates a generator from cfg.
func NewGenerator(cfg *Config) *Generator {
	c := cfg.Clone()
	return &Generator{gen: c.Generation, cand: c.Candidate}
}

// Generate returns the candidates for st. It is deterministic and never
// fails; an unready state or an empty log yields no candidates.
func (g *Generator) Generate(cat Catalog, st *State) []CandidateCarousel {
	out, _ := g.GenerateContext(context.Background(), cat, st)
	return out
}

// GenerateContext is Generate with cancellation checked between seeds. Like
// Generate it has no side effects; callers record metrics.
func (g *Generator) GenerateContext(ctx context.Context, cat Catalog, st *State) ([]CandidateCarousel, error) {
	if !st.Ready() || st.Log.Len() == 0 {
		return []CandidateCarousel{}, nil
	}
	p := &pass{
		ctx:        ctx,
		g:          g,
		cat:        cat,
		items:      cat.Items(),
		state:      st,
		interacted: st.Log.InteractedTitles(),
		claimed:    make(map[string]struct{}),
		out:        []CandidateCarousel{},
	}

	steps := []func() error{p.liked, p.watched, p.actors, p.interests}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return p.out, nil
}

// pass is the shared state of one generation run.
type pass struct {
	ctx        context.Context
	g          *Generator
	cat        Catalog
	items      []catalog.ContentItem
	state      *State
	interacted map[string]struct{}
	claimed    map[string]struct{}
	out        []CandidateCarousel
}

// pool collects catalog items accepted by match in catalog order, up to
// the configured limit.
func (p *pass) pool(match func(item *catalog.ContentItem) bool) []catalog.ContentItem {
	var pool []catalog.ContentItem
	for i := range p.items {
		if len(pool) >= p.g.gen.PoolLimit {
			break
		}
		if match(&p.items[i]) {
			pool = append(pool, p.items[i])
		}
	}
	return pool
}

func (p *pass) notInteracted(item *catalog.ContentItem) bool {
	_, seen := p.interacted[item.Title]
	return !seen
}

// offer accepts a candidate when its title is unclaimed and its pool is
// large enough. Later strategies never replace an earlier title.
func (p *pass) offer(strategy Strategy, id, title string, pool []catalog.ContentItem) {
	if _, taken := p.claimed[title]; taken {
		return
	}
	if len(pool) < p.g.gen.MinPoolSize {
		return
	}
	p.claimed[title] = struct{}{}
	p.out = append(p.out, CandidateCarousel{
		ID:                 id,
		Title:              title,
		Type:               CandidateType,
		Position:           len(p.out) + 1,
		Strategy:           strategy,
		Items:              pool,
		Platforms:          slices.Clone(p.g.cand.Platforms),
		RecommendationType: p.g.cand.RecommendationType,
		AvodSvod:           p.g.cand.AvodSvod,
	})
}

// compact removes all whitespace, for use in candidate ids.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
