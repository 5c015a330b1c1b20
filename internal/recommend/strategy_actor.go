// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import "github.com/tomtom215/curator/internal/catalog"

// actors builds one candidate per cast member of the high-interest items.
// Pools exclude high-interest items only; other watched titles may appear.
func (p *pass) actors() error {
	high := p.state.Log.HighInterestTitles()
	if len(high) == 0 {
		return nil
	}

	var actors []string
	seen := make(map[string]struct{})
	for i := range p.items {
		if _, ok := high[p.items[i].Title]; !ok {
			continue
		}
		for _, actor := range p.items[i].Tags(catalog.DimensionCast) {
			if _, dup := seen[actor]; dup {
				continue
			}
			seen[actor] = struct{}{}
			actors = append(actors, actor)
		}
	}

	for _, actor := range actors {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		pool := p.pool(func(item *catalog.ContentItem) bool {
			if _, ok := high[item.Title]; ok {
				return false
			}
			return item.HasTag(catalog.DimensionCast, actor)
		})
		p.offer(StrategyActor, "rec-actor-"+compact(actor), "Because you like "+actor, pool)
	}
	return nil
}
