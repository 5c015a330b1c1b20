// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package recommend implements the preview tool's recommendation simulation.

A simulated viewer's interactions (play, like, share, download) are recorded
into a bounded Action Log and folded into a weighted Interest Profile. From
the log, the profile and the content catalog, the Generator synthesizes
candidate carousels with four prioritized strategies. A candidate can then be
promoted into a persisted Draft carousel through the Promoter.

# Data Flow

	action -> ActionLog -> InterestProfile -> Generate -> []CandidateCarousel
	                                                         |
	                                          Promote -> carousel.Store

# Scoring

Each action adds a fixed increment to every (dimension, value) tag of the
content item:

	like, download       0.3
	share                0
	play >85%            0.5
	play 75%             0.4
	play 50%             0.25
	play 25%             0.1
	play, other detail   0

Weights never decay and are never normalized, so every weight is
non-decreasing for the lifetime of a session and the final profile is
independent of the order in which actions were recorded.

# Strategies

Generate runs, in priority order:

 1. Liked: "Because you liked {title}", seeded by each distinct liked title.
 2. Watched: "Because you watched {title}", seeded by the three most recent
    distinct played titles.
 3. Actor: "Because you like {actor}", one per cast member of high-interest
    titles (liked, or played past 85%).
 4. Interest: "More in {value}", for the top weighted eligible tags.

A title already emitted by an earlier strategy is never emitted again, and a
candidate needs at least two items.

# Concurrency

State values are immutable. A Session publishes each new State through an
atomic pointer, so a reader always sees a log and profile that belong
together. Recomputer runs debounced background generation and drops any
result whose input version has been superseded.
*/
package recommend
