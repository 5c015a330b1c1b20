// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import "github.com/tomtom215/curator/internal/catalog"

// interests builds candidates from the strongest eligible profile tags.
// Ineligible dimensions are removed before the top-N cut.
func (p *pass) interests() error {
	gen := &p.g.gen
	if gen.InterestTopN == 0 {
		return nil
	}
	top := p.state.Interests.Top(gen.InterestTopN, func(e ProfileEntry) bool {
		return e.Weight >= gen.MinInterestWeight && gen.Eligible(e.Key.Dimension)
	})

	for _, entry := range top {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		key := entry.Key
		pool := p.pool(func(item *catalog.ContentItem) bool {
			return p.notInteracted(item) && item.HasTag(key.Dimension, key.Value)
		})
		id := "rec-interest-" + key.Dimension + "-" + compact(key.Value)
		p.offer(StrategyInterest, id, "More in "+key.Value, pool)
	}
	return nil
}
