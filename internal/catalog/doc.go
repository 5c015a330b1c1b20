// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package catalog provides the read-only content catalog used by the preview
tool and the recommendation simulation.

A Catalog is an ordered collection of ContentItem values. Each item carries
multi-valued metadata tags keyed by dimension name (genre, cast, mood,
theme, audience, ...). The first genre value is the item's primary genre.

# Loading

Catalogs are loaded from JSON or YAML documents. Both formats accept either a
top-level list of items or an object with an "items" list:

	items:
	  - id: "m-001"
	    title: "Desert Run"
	    type: Movie
	    contentType: Action
	    metadata:
	      genre: [Action, Thriller]
	      cast: [Layla Haddad]

Metadata values that are not lists of strings are dropped during decoding, so
every consumer can treat Metadata as well formed.

# Thread Safety

A Catalog is immutable after construction and safe for concurrent use.
*/
package catalog
