// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_negative_cycle.go — NegativeCycle(n): a directed ring whose weights
// sum to exactly −1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges i → i+1 for i < n-1 take cfg.weightFn draws; the closing edge
//     n-1 → 0 takes −(Σ draws) − 1.

package builder

import "fmt"

const (
	methodNegativeCycle   = "NegativeCycle"
	minNegativeCycleNodes = 2
)

// NegativeCycle returns a Constructor that builds a ring of total weight −1.
func NegativeCycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minNegativeCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodNegativeCycle, n, minNegativeCycleNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, cfg, n)
		var sum int64
		for i := 0; i < n-1; i++ {
			w := cfg.weightFn(cfg.rng)
			sum += w
			if err := addEdge(g, methodNegativeCycle, ids[i], ids[i+1], w); err != nil {
				return err
			}
		}

		return addEdge(g, methodNegativeCycle, ids[n-1], ids[0], -sum-1)
	}
}
