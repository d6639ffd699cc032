// Package bellmanford implements the Bellman-Ford shortest-path algorithm on
// directed weighted graphs that may contain negative edge weights.
package bellmanford

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/weight"
)

// Run computes shortest distances from source to every vertex of g.
//
// Returns a tree whose Dist holds every vertex (Infinity if unreached) and
// whose Prev records shortest-path predecessors.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. ops must be non-nil (ErrNilOps).
//  3. g must contain source (ErrVertexNotFound).
//
// Fails with ErrNegativeCycle, wrapped with the first edge that still
// relaxes, when a negative cycle is reachable from source.
func Run[V cmp.Ordered, W any](g core.View[V, W], ops weight.Ops[W], source V, opts ...Option) (*core.Tree[V, W], error) {
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
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	r := &runner[V, W]{
		ops:   ops,
		edges: g.Edges(),
		tree:  core.NewTree[V, W](source, g.VertexCount()),
	}
	r.init(g.Vertices())

	passes, converged := r.relaxPasses(len(r.tree.Dist) - 1)
	cfg.Logger.Debug("bellman-ford relaxation finished",
		"source", source, "vertices", len(r.tree.Dist), "edges", len(r.edges),
		"passes", passes, "converged", converged)

	if !converged {
		if err := r.detectNegativeCycle(); err != nil {
			return nil, err
		}
	}

	return r.tree, nil
}

// ShortestPath returns the shortest path source→dest.
// When dest is unreachable the returned Path has Distance == ops.Infinity()
// and nil Vertices; that is not an error.
func ShortestPath[V cmp.Ordered, W any](g core.View[V, W], ops weight.Ops[W], source, dest V, opts ...Option) (core.Path[V, W], error) {
	tree, err := Run(g, ops, source, opts...)
	if err != nil {
		return core.Path[V, W]{}, err
	}
	if !g.HasVertex(dest) {
		return core.Path[V, W]{}, fmt.Errorf("%w: target %v", ErrVertexNotFound, dest)
	}

	return tree.Path(dest), nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner[V cmp.Ordered, W any] struct {
	ops   weight.Ops[W]
	edges []core.Edge[V, W]
	tree  *core.Tree[V, W]
}

// init sets dist[v] = Infinity for all v and dist[source] = Zero.
func (r *runner[V, W]) init(vertices []V) {
	inf := r.ops.Infinity()
	for _, v := range vertices {
		r.tree.Dist[v] = inf
	}
	r.tree.Dist[r.tree.Source] = r.ops.Zero()
}

// relaxPasses runs at most limit passes over every edge. It reports how many
// passes ran and whether a pass finished without changing anything; only
// then is the detection pass redundant.
func (r *runner[V, W]) relaxPasses(limit int) (int, bool) {
	for pass := 1; pass <= limit; pass++ {
		if !r.relaxAll() {
			return pass, true
		}
	}

	return limit, false
}

// relaxAll performs one pass; returns true if any distance improved.
func (r *runner[V, W]) relaxAll() bool {
	changed := false
	for _, e := range r.edges {
		du := r.tree.Dist[e.From]
		if weight.IsInfinite(r.ops, du) {
			continue
		}
		cand := r.ops.Sum(du, e.Weight)
		if weight.Less(r.ops, cand, r.tree.Dist[e.To]) {
			r.tree.Dist[e.To] = cand
			r.tree.Prev[e.To] = e.From
			changed = true
		}
	}

	return changed
}

// detectNegativeCycle is the extra V-th pass: any edge that still relaxes
// lies on, or is reachable from, a negative cycle.
func (r *runner[V, W]) detectNegativeCycle() error {
	for _, e := range r.edges {
		du := r.tree.Dist[e.From]
		if weight.IsInfinite(r.ops, du) {
			continue
		}
		if weight.Less(r.ops, r.ops.Sum(du, e.Weight), r.tree.Dist[e.To]) {
			return fmt.Errorf("%w: edge %v→%v still relaxes", ErrNegativeCycle, e.From, e.To)
		}
	}

	return nil
}
