// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like digraph: each ordered pair (i,j) is included
//     independently with probability p. Self-loops only if g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RNG required for 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed ⇒ fixed graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateRandom(methodRandomSparse, n, minRandomSparseVertices, p, cfg); err != nil {
			return err
		}

		ids := addVertices(g, cfg, n)
		return sampleEdges(ids, p, g.Looped(), cfg, func(i, j int) error {
			return addEdge(g, methodRandomSparse, ids[i], ids[j], cfg.weightFn(cfg.rng))
		})
	}
}

// validateRandom applies the shared size → probability → rng check order.
func validateRandom(method string, n, minN int, p float64, cfg builderConfig) error {
	if n < minN {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sampleEdges runs one Bernoulli trial per admissible ordered pair and calls
// emit for every success. Without an RNG only p ∈ {0,1} reaches here.
func sampleEdges(ids []string, p float64, loops bool, cfg builderConfig, emit func(i, j int) error) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !loops {
				continue
			}
			take := p == probMax
			if cfg.rng != nil && p > probMin && p < probMax {
				take = cfg.rng.Float64() < p
			}
			if !take {
				continue
			}
			if err := emit(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
