// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import "github.com/tomtom215/curator/internal/catalog"

// liked seeds one candidate per distinct liked title, newest first.
func (p *pass) liked() error {
	seeds := p.state.Log.DistinctTitles(ActionLike)
	return p.seeded(seeds, StrategyLiked, "Because you liked ")
}

// watched seeds candidates from the most recent distinct played titles.
func (p *pass) watched() error {
	seeds := p.state.Log.DistinctTitles(ActionPlay)
	if n := p.g.gen.WatchedSeeds; len(seeds) > n {
		seeds = seeds[:n]
	}
	return p.seeded(seeds, StrategyWatched, "Because you watched ")
}

// seeded builds a primary-genre pool around each seed item. Seeds that
// cannot be resolved or carry no genre are skipped.
func (p *pass) seeded(seeds []LogSeed, strategy Strategy, titlePrefix string) error {
	for _, seed := range seeds {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		src, ok := p.cat.Resolve(seed.ContentID, seed.Title)
		if !ok {
			continue
		}
		genre := src.PrimaryGenre()
		if genre == "" {
			continue
		}
		pool := p.pool(func(item *catalog.ContentItem) bool {
			return item.ID != src.ID &&
				p.notInteracted(item) &&
				item.HasTag(catalog.DimensionGenre, genre)
		})
		p.offer(strategy, "rec-"+string(strategy)+"-"+src.ID, titlePrefix+src.Title, pool)
	}
	return nil
}
