// SPDX-License-Identifier: MIT

package johnson

import (
	"cmp"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/weight"
)

// AllPairs returns the shortest path for every reachable ordered pair of g.
//
// gen produces the synthetic source vertex; it is called exactly once.
// g itself is never modified.
//
// Errors (no partial results are returned):
//   - ErrNilGraph, ErrNilOps, ErrNilGenerator for missing collaborators.
//   - ErrVertexCollision if gen() is already a vertex of g.
//   - ErrNegativeCycle if g contains a negative-weight cycle.
func AllPairs[V cmp.Ordered, W any](g *core.Graph[V, W], ops weight.Ops[W], gen func() V, opts ...Option) (Results[V, W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if ops == nil {
		return nil, ErrNilOps
	}
	if gen == nil {
		return nil, ErrNilGenerator
	}

	start := time.Now()
	work := g.Clone()
	h, err := potentials(work, ops, gen, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("johnson potentials computed",
		"vertices", work.VertexCount(), "edges", work.EdgeCount(), "elapsed", time.Since(start))

	reweight(work, ops, h)

	vertices := work.Vertices()
	rows := make([]Results[V, W], len(vertices))

	var eg errgroup.Group
	eg.SetLimit(cfg.Parallelism)
	for i, s := range vertices {
		i, s := i, s
		eg.Go(func() error {
			row, err := fromSource(work, ops, h, s, vertices, cfg)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, row := range rows {
		total += len(row)
	}
	out := make(Results[V, W], 0, total)
	for _, row := range rows {
		out = append(out, row...)
	}
	cfg.Logger.Debug("johnson all-pairs finished",
		"sources", len(vertices), "pairs", len(out),
		"parallelism", cfg.Parallelism, "elapsed", time.Since(start))

	return out, nil
}

// potentials adds the synthetic vertex to work, runs Bellman-Ford from it
// and removes it again. The returned map holds h(v) = δ(q, v) ≤ Zero for
// every original vertex.
func potentials[V cmp.Ordered, W any](work *core.Graph[V, W], ops weight.Ops[W], gen func() V, cfg Options) (map[V]W, error) {
	q := gen()
	if work.HasVertex(q) {
		return nil, fmt.Errorf("%w: %v", ErrVertexCollision, q)
	}

	vertices := work.Vertices()
	work.AddVertex(q)
	for _, v := range vertices {
		if err := work.AddEdge(q, v, ops.Zero()); err != nil {
			return nil, fmt.Errorf("johnson: link synthetic vertex: %w", err)
		}
	}

	tree, err := bellmanford.Run(core.View[V, W](work), ops, q, bellmanford.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	if err = work.RemoveVertex(q); err != nil {
		return nil, fmt.Errorf("johnson: drop synthetic vertex: %w", err)
	}

	h := make(map[V]W, len(vertices))
	for _, v := range vertices {
		h[v] = tree.Dist[v]
	}

	return h, nil
}

// reweight applies w'(u,v) = w(u,v) + h(u) − h(v) to every edge.
// The triangle inequality on h makes every w' non-negative.
func reweight[V cmp.Ordered, W any](work *core.Graph[V, W], ops weight.Ops[W], h map[V]W) {
	work.UpdateWeights(func(e core.Edge[V, W]) W {
		return ops.Subtract(ops.Sum(e.Weight, h[e.From]), h[e.To])
	})
}

// fromSource runs Dijkstra from s on the reweighted graph and translates
// every reached target back to original distances, in target order.
func fromSource[V cmp.Ordered, W any](work *core.Graph[V, W], ops weight.Ops[W], h map[V]W, s V, targets []V, cfg Options) (Results[V, W], error) {
	tree, err := dijkstra.Dijkstra(core.View[V, W](work), ops, s, dijkstra.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("johnson: source %v: %w", s, err)
	}

	row := make(Results[V, W], 0, len(targets))
	for _, t := range targets {
		if !tree.Reached(t) {
			continue
		}
		row = append(row, Result[V, W]{
			Source:   s,
			Target:   t,
			Distance: ops.Sum(ops.Subtract(tree.Dist[t], h[s]), h[t]),
			Path:     tree.PathTo(t),
		})
	}

	return row, nil
}
