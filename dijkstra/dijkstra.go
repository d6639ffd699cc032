// SPDX-License-Identifier: MIT

package dijkstra

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/shortpath/binheap"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/weight"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// The returned tree holds an entry in Dist for every vertex of g; vertices
// that were not reached (or were cut off by MaxDistance) keep Infinity and
// have no Prev entry. With WithTarget the search stops once the target is
// settled; distances of vertices not yet settled at that point are upper
// bounds, not final values.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. ops must be non-nil (ErrNilOps).
//  3. g must contain source (ErrVertexNotFound).
//  4. Option values must have type V or W as appropriate (ErrOptionType).
//  5. Target, when set, must exist (ErrVertexNotFound).
//  6. MaxDistance ≥ Zero (ErrBadMaxDistance), InfEdgeThreshold > Zero (ErrBadInfThreshold).
//  7. With WithNegativeWeightCheck, no edge may be negative (ErrNegativeWeight).
func Dijkstra[V cmp.Ordered, W any](g core.View[V, W], ops weight.Ops[W], source V, opts ...Option) (*core.Tree[V, W], error) {
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

	r, err := newRunner(g, ops, source, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CheckNegative {
		if err = checkNonNegative(g, ops); err != nil {
			return nil, err
		}
	}

	if err = r.run(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("dijkstra finished",
		"source", source, "settled", len(r.settled), "vertices", len(r.tree.Dist),
		"inserts", r.inserts, "decreases", r.decreases, "early_stop", r.stopped)

	return r.tree, nil
}

// ShortestPath returns the shortest path source→dest, stopping the search
// as soon as dest is settled. An unreachable dest is reported through
// Path.Found()==false and Distance == ops.Infinity(), not as an error.
func ShortestPath[V cmp.Ordered, W any](g core.View[V, W], ops weight.Ops[W], source, dest V, opts ...Option) (core.Path[V, W], error) {
	opts = append(opts[:len(opts):len(opts)], WithTarget(dest))
	tree, err := Dijkstra(g, ops, source, opts...)
	if err != nil {
		return core.Path[V, W]{}, err
	}

	return tree.Path(dest), nil
}

// item is a heap entry: a vertex with its tentative distance.
type item[V cmp.Ordered, W any] struct {
	id   V
	dist W
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered, W any] struct {
	g    core.View[V, W]
	ops  weight.Ops[W]
	tree *core.Tree[V, W]

	pq      *binheap.Heap[item[V, W]]
	handles map[V]binheap.Handle
	settled map[V]struct{}

	target    V
	hasTarget bool
	maxDist   W
	hasMax    bool
	wall      W
	hasWall   bool

	inserts   int
	decreases int
	stopped   bool
}

// newRunner resolves the untyped option values and prepares the state.
func newRunner[V cmp.Ordered, W any](g core.View[V, W], ops weight.Ops[W], source V, cfg Options) (*runner[V, W], error) {
	r := &runner[V, W]{
		g:       g,
		ops:     ops,
		tree:    core.NewTree[V, W](source, g.VertexCount()),
		handles: make(map[V]binheap.Handle),
		settled: make(map[V]struct{}),
	}

	if cfg.Target != nil {
		v, ok := cfg.Target.(V)
		if !ok {
			return nil, fmt.Errorf("%w: target is %T", ErrOptionType, cfg.Target)
		}
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: target %v", ErrVertexNotFound, v)
		}
		r.target, r.hasTarget = v, true
	}
	if cfg.MaxDistance != nil {
		w, ok := cfg.MaxDistance.(W)
		if !ok {
			return nil, fmt.Errorf("%w: max distance is %T", ErrOptionType, cfg.MaxDistance)
		}
		if ops.Compare(w, ops.Zero()) < 0 {
			return nil, ErrBadMaxDistance
		}
		r.maxDist, r.hasMax = w, true
	}
	if cfg.InfEdgeThreshold != nil {
		w, ok := cfg.InfEdgeThreshold.(W)
		if !ok {
			return nil, fmt.Errorf("%w: edge threshold is %T", ErrOptionType, cfg.InfEdgeThreshold)
		}
		if ops.Compare(w, ops.Zero()) <= 0 {
			return nil, ErrBadInfThreshold
		}
		r.wall, r.hasWall = w, true
	}

	// Ties on distance break by vertex id so extraction order is reproducible.
	r.pq = binheap.New(func(a, b item[V, W]) bool {
		if c := ops.Compare(a.dist, b.dist); c != 0 {
			return c < 0
		}
		return cmp.Less(a.id, b.id)
	})

	return r, nil
}

// checkNonNegative scans every edge once and fails on the first negative weight.
func checkNonNegative[V cmp.Ordered, W any](g core.View[V, W], ops weight.Ops[W]) error {
	zero := ops.Zero()
	for _, e := range g.Edges() {
		if ops.Compare(e.Weight, zero) < 0 {
			return fmt.Errorf("%w: edge %v→%v", ErrNegativeWeight, e.From, e.To)
		}
	}

	return nil
}

// run is the main loop: extract the closest unsettled vertex, settle it,
// relax its outgoing edges.
func (r *runner[V, W]) run() error {
	inf := r.ops.Infinity()
	for _, v := range r.g.Vertices() {
		r.tree.Dist[v] = inf
	}
	src := r.tree.Source
	r.tree.Dist[src] = r.ops.Zero()
	r.handles[src] = r.pq.Insert(item[V, W]{id: src, dist: r.ops.Zero()})
	r.inserts++

	for r.pq.Len() > 0 {
		cur, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		delete(r.handles, cur.id)
		r.settled[cur.id] = struct{}{}

		if r.hasTarget && cur.id == r.target {
			r.stopped = r.pq.Len() > 0
			return nil
		}
		if err = r.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

// relax inspects every edge leaving u. A first discovery inserts the
// neighbor; an improvement lowers its existing entry in place.
func (r *runner[V, W]) relax(u item[V, W]) error {
	edges, err := r.g.OutEdges(u.id)
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}

	for _, e := range edges {
		if _, done := r.settled[e.To]; done {
			continue
		}
		if r.hasWall && r.ops.Compare(e.Weight, r.wall) >= 0 {
			continue
		}
		cand := r.ops.Sum(u.dist, e.Weight)
		if r.hasMax && r.ops.Compare(cand, r.maxDist) > 0 {
			continue
		}
		if !weight.Less(r.ops, cand, r.tree.Dist[e.To]) {
			continue
		}

		r.tree.Dist[e.To] = cand
		r.tree.Prev[e.To] = u.id
		next := item[V, W]{id: e.To, dist: cand}
		if hd, queued := r.handles[e.To]; queued {
			if err = r.pq.DecrementKey(hd, next); err != nil {
				return fmt.Errorf("dijkstra: %w", err)
			}
			r.decreases++
			continue
		}
		r.handles[e.To] = r.pq.Insert(next)
		r.inserts++
	}

	return nil
}
