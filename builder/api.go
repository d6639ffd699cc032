// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//
// AI-Hints:
//   - Compose constructors to assemble fixtures, e.g. RandomFeasible then an
//     extra NegativeCycle on disjoint IDs via ScopedIDs(ExcelColumnIDFn, ...).
//   - Pass core.WithLoops() in gopts only if a constructor should emit self-loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Graph is the concrete graph type every constructor emits.
type Graph = core.Graph[string, int64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a new graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[string, int64](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addVertices(g *Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// addEdge wraps core rejections with the method context.
func addEdge(g *Graph, method, u, v string, w int64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
