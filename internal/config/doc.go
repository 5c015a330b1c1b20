// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package config loads the service configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Defaults from each component's DefaultConfig
 2. An optional YAML file (CONFIG_PATH, else config.yaml or
    /etc/curator/config.yaml)
 3. Environment variables listed in the env mapping table

Only mapped environment variables are read, so unrelated variables never
leak into the configuration. List-valued variables such as CORS_ORIGINS
are comma separated.

# Sections

  - server: HTTP listener, CORS, and rate limits
  - logging: zerolog level and format
  - recommend: increment table, generation parameters, promotion defaults
  - catalog: content catalog file (empty uses the built-in sample)
  - store: carousel store backend (memory or badger) and circuit breaker
  - notify: interaction notification sinks
  - eventbus: Watermill backend (channel or NATS)
  - authz: Casbin role enforcement
  - session: preview session registry bounds
  - supervisor: suture restart policy

Example file:

	server:
	  port: 8080
	logging:
	  level: debug
	store:
	  type: badger
	  path: /data/carousels
	recommend:
	  generation:
	    pool_limit: 12
*/
package config
