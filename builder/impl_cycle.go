// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices). A directed 2-cycle is two opposite
//     edges, which the simple directed graph allows.
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
