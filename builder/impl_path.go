// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits directed edges i → i+1 for i = 0..n-2, weights from cfg.weightFn.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path 0 → 1 → … → n-1.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, ids[i-1], ids[i], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
