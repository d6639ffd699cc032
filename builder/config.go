// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn         = DefaultIDFn       ("0","1","2",...)
//   • rng          = nil               (pure/deterministic unless seeded)
//   • weightFn     = DefaultWeightFn   (constant DefaultEdgeWeight)
//   • maxPotential = DefaultMaxPotential
//
// AI-Hints:
//   • Set WithSeed for reproducible Random* fixtures.
//   • RandomFeasible draws potentials from [0, maxPotential]; a larger range
//     produces more (and more negative) edges.

package builder

import "math/rand"

// DefaultMaxPotential bounds the vertex potentials used by RandomFeasible.
const DefaultMaxPotential int64 = 10

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn         IDFn
	rng          *rand.Rand
	weightFn     WeightFn
	maxPotential int64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         DefaultIDFn,
		weightFn:     DefaultWeightFn,
		maxPotential: DefaultMaxPotential,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
