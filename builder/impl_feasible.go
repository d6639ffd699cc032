// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_feasible.go — RandomFeasible(n, p): random digraphs with negative
// edges but without negative cycles.
//
// Model:
//   - Draw a potential π(i) ∈ [0, maxPotential] per vertex.
//   - Sample edges like RandomSparse; each edge gets
//     w(i,j) = base + π(i) − π(j), base = cfg.weightFn(rng) ≥ 0.
//   - Around any cycle the potentials telescope away, so the cycle weight is
//     the sum of non-negative bases.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1, rng required (potentials are random unless
//     maxPotential == 0 and p ∈ {0,1}).
//   - A negative base draw fails with ErrInvalidWeightRange.
//   - Self-loops (with core.WithLoops) get weight base ≥ 0.

package builder

import "fmt"

const (
	methodRandomFeasible      = "RandomFeasible"
	minRandomFeasibleVertices = 1
)

// RandomFeasible returns a Constructor that samples a digraph whose edge
// weights may be negative while every cycle weight stays non-negative.
func RandomFeasible(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateRandom(methodRandomFeasible, n, minRandomFeasibleVertices, p, cfg); err != nil {
			return err
		}
		if cfg.rng == nil && cfg.maxPotential > 0 {
			return fmt.Errorf("%s: potentials need rng: %w", methodRandomFeasible, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		pot := make([]int64, n)
		if cfg.maxPotential > 0 {
			for i := range pot {
				pot[i] = cfg.rng.Int63n(cfg.maxPotential + 1)
			}
		}

		return sampleEdges(ids, p, g.Looped(), cfg, func(i, j int) error {
			base := cfg.weightFn(cfg.rng)
			if base < 0 {
				return fmt.Errorf("%s: base weight %d < 0: %w", methodRandomFeasible, base, ErrInvalidWeightRange)
			}
			return addEdge(g, methodRandomFeasible, ids[i], ids[j], base+pot[i]-pot[j])
		})
	}
}
