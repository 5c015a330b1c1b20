// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/tomtom215/curator/internal/catalog"
)

// Config contains all configuration for the recommendation simulation.
type Config struct {
	// Increments is the per-action weight table.
	Increments IncrementTable `koanf:"increments"`

	// LogCapacity is the maximum number of action log entries kept.
	// Default: 100.
	LogCapacity int `koanf:"log_capacity"`

	// Generation contains candidate generation parameters.
	Generation GenerationConfig `koanf:"generation"`

	// Candidate contains display labels attached to generated candidates.
	Candidate CandidateConfig `koanf:"candidate"`

	// Promotion contains the defaults of promoted carousels.
	Promotion PromotionConfig `koanf:"promotion"`

	// Recompute configures background generation.
	Recompute RecomputeConfig `koanf:"recompute"`
}

// IncrementTable maps actions to the weight added to every tag of the
// content item. Unknown actions and play details contribute zero.
type IncrementTable struct {
	// Default: 0.3.
	Like float64 `koanf:"like"`

	// Default: 0.3.
	Download float64 `koanf:"download"`

	// Default: 0.
	Share float64 `koanf:"share"`

	// Play maps completion buckets to increments.
	// Default: >85% 0.5, 75% 0.4, 50% 0.25, 25% 0.1.
	Play map[string]float64 `koanf:"play"`
}

// Increment returns the weight for an action and detail.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (t IncrementTable) Increment(kind ActionKind, detail string) float64 {
	switch kind {
	case ActionLike:
		return t.Like
	case ActionDownload:
		return t.Download
	case ActionShare:
		return t.Share
	case ActionPlay:
		return t.Play[detail]
	default:
		return 0
	}
}

// GenerationConfig contains candidate generation parameters.
type GenerationConfig struct {
	// PoolLimit caps the number of items per candidate.
	// Default: 10.
	PoolLimit int `koanf:"pool_limit"`

	// MinPoolSize is the smallest pool that becomes a candidate.
	// Default: 2.
	MinPoolSize int `koanf:"min_pool_size"`

	// WatchedSeeds is the number of recent distinct played titles that
	// seed the watched strategy.
	// Default: 3.
	WatchedSeeds int `koanf:"watched_seeds"`

	// InterestTopN is the number of profile tags the interest strategy
	// considers.
	// Default: 5.
	InterestTopN int `koanf:"interest_top_n"`

	// MinInterestWeight is the smallest weight the interest strategy
	// considers.
	// Default: 0.1.
	MinInterestWeight float64 `koanf:"min_interest_weight"`

	// DimensionEligibility overrides interest strategy eligibility per
	// metadata dimension. Dimensions not listed use DefaultEligible.
	// Default: cast=false (the actor strategy covers cast).
	DimensionEligibility map[string]bool `koanf:"dimension_eligibility"`

	// DefaultEligible is the eligibility of unlisted dimensions.
	// Default: true.
	DefaultEligible bool `koanf:"default_eligible"`
}

// Eligible reports whether the interest strategy may use dimension.
func (g *GenerationConfig) Eligible(dimension string) bool {
	if v, ok := g.DimensionEligibility[dimension]; ok {
		return v
	}
	return g.DefaultEligible
}

// CandidateConfig holds labels shown on generated candidates.
type CandidateConfig struct {
	// Default: [all].
	Platforms []string `koanf:"platforms"`

	// Default: Personalized.
	RecommendationType string `koanf:"recommendation_type"`

	// Default: SVOD.
	AvodSvod string `koanf:"avod_svod"`
}

// PromotionConfig holds the defaults of the single variant a promoted
// carousel is created with.
type PromotionConfig struct {
	// Default: Normal Carousel Component.
	ComponentType string `koanf:"component_type"`

	// Default: 100.
	VariantWeight int `koanf:"variant_weight"`

	// Default: [vip].
	Packages []string `koanf:"packages"`

	// Default: [all].
	Age []string `koanf:"age"`

	// Default: [web mobile_android mobile_ios android_tv].
	DeviceTypes []string `koanf:"device_types"`

	// Default: GCC.
	Region string `koanf:"region"`

	// Default: [KSA UAE QATAR BAHRAIN OMAN KUWAIT].
	IncludedRegions []string `koanf:"included_regions"`

	// Default: Editorials (Manual).
	RecommendationType string `koanf:"recommendation_type"`

	// AvodSvod is used when the candidate carries no monetization label.
	// Default: SVOD.
	AvodSvod string `koanf:"avod_svod"`
}

// RecomputeConfig configures debounced background generation.
type RecomputeConfig struct {
	// Debounce delays generation after the last recorded action.
	// Default: 150ms.
	Debounce time.Duration `koanf:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Increments: IncrementTable{
			Like:     0.3,
			Download: 0.3,
			Share:    0,
			Play: map[string]float64{
				Completion85: 0.5,
				Completion75: 0.4,
				Completion50: 0.25,
				Completion25: 0.1,
			},
		},
		LogCapacity: 100,
		Generation: GenerationConfig{
			PoolLimit:            10,
			MinPoolSize:          2,
			WatchedSeeds:         3,
			InterestTopN:         5,
			MinInterestWeight:    0.1,
			DimensionEligibility: map[string]bool{catalog.DimensionCast: false},
			DefaultEligible:      true,
		},
		Candidate: CandidateConfig{
			Platforms:          []string{"all"},
			RecommendationType: "Personalized",
			AvodSvod:           "SVOD",
		},
		Promotion: PromotionConfig{
			ComponentType:      "Normal Carousel Component",
			VariantWeight:      100,
			Packages:           []string{"vip"},
			Age:                []string{"all"},
			DeviceTypes:        []string{"web", "mobile_android", "mobile_ios", "android_tv"},
			Region:             "GCC",
			IncludedRegions:    []string{"KSA", "UAE", "QATAR", "BAHRAIN", "OMAN", "KUWAIT"},
			RecommendationType: "Editorials (Manual)",
			AvodSvod:           "SVOD",
		},
		Recompute: RecomputeConfig{
			Debounce: 150 * time.Millisecond,
		},
	}
}

// Validate checks the configuration. Negative increments are rejected
// because profile weights must never decrease.
func (c *Config) Validate() error {
	inc := c.Increments
	if inc.Like < 0 || inc.Download < 0 || inc.Share < 0 {
		return fmt.Errorf("increments must be non-negative, got like=%v download=%v share=%v",
			inc.Like, inc.Download, inc.Share)
	}
	for bucket, v := range inc.Play {
		if v < 0 {
			return fmt.Errorf("play increment for %q must be non-negative, got %v", bucket, v)
		}
	}
	if c.LogCapacity < 1 {
		return fmt.Errorf("log_capacity must be at least 1, got %d", c.LogCapacity)
	}

	g := c.Generation
	if g.MinPoolSize < 1 {
		return fmt.Errorf("min_pool_size must be at least 1, got %d", g.MinPoolSize)
	}
	if g.PoolLimit < g.MinPoolSize {
		return fmt.Errorf("pool_limit must be >= min_pool_size (%d), got %d", g.MinPoolSize, g.PoolLimit)
	}
	if g.WatchedSeeds < 0 {
		return fmt.Errorf("watched_seeds must be non-negative, got %d", g.WatchedSeeds)
	}
	if g.InterestTopN < 0 {
		return fmt.Errorf("interest_top_n must be non-negative, got %d", g.InterestTopN)
	}
	if g.MinInterestWeight < 0 {
		return fmt.Errorf("min_interest_weight must be non-negative, got %v", g.MinInterestWeight)
	}

	if c.Promotion.ComponentType == "" {
		return fmt.Errorf("promotion component_type is required")
	}
	if c.Promotion.VariantWeight < 0 || c.Promotion.VariantWeight > 100 {
		return fmt.Errorf("promotion variant_weight must be between 0 and 100, got %d", c.Promotion.VariantWeight)
	}
	if c.Recompute.Debounce < 0 {
		return fmt.Errorf("recompute debounce must be non-negative, got %v", c.Recompute.Debounce)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Increments.Play = maps.Clone(c.Increments.Play)
	cp.Generation.DimensionEligibility = maps.Clone(c.Generation.DimensionEligibility)
	cp.Candidate.Platforms = slices.Clone(c.Candidate.Platforms)
	cp.Promotion.Packages = slices.Clone(c.Promotion.Packages)
	cp.Promotion.Age = slices.Clone(c.Promotion.Age)
	cp.Promotion.DeviceTypes = slices.Clone(c.Promotion.DeviceTypes)
	cp.Promotion.IncludedRegions = slices.Clone(c.Promotion.IncludedRegions)
	return &cp
}
