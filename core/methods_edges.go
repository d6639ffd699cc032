// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetWeight/RemoveEdge/HasEdge/Weight,
//       OutEdges/Edges/EdgeCount and the in-place UpdateWeights rewrite.
// Determinism:
//   - OutEdges() returns edges sorted by To asc.
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - If Looped()==false and from==to, AddEdge returns ErrLoopNotAllowed.
//   - A second AddEdge for the same (from, to) returns ErrMultiEdgeNotAllowed;
//     use SetWeight to change an existing edge.

package core

import (
	"cmp"
	"slices"
)

// AddEdge creates the directed edge from → to with weight w.
//
// Steps:
//  1. Reject self-loops unless WithLoops() was given.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject an existing (from, to) pair.
//  4. Store the weight in adjacency[from][to].
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(from, to V, w W) error {
	if from == to && !g.Looped() {
		return ErrLoopNotAllowed
	}

	g.AddVertex(from)
	g.AddVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[from][to] = w
	g.edgeCount++

	return nil
}

// SetWeight replaces the weight of the existing edge from → to.
// Returns ErrEdgeNotFound if there is no such edge.
// Complexity: O(1).
func (g *Graph[V, W]) SetWeight(from, to V, w W) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; !exists {
		return ErrEdgeNotFound
	}
	g.adjacency[from][to] = w

	return nil
}

// RemoveEdge deletes the edge from → to.
// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
// Complexity: O(1).
func (g *Graph[V, W]) RemoveEdge(from, to V) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from → to exists.
// Complexity: O(1).
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from → to and whether the edge exists.
func (g *Graph[V, W]) Weight(from, to V) (W, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}

// OutEdges returns the edges leaving v, sorted by To ascending.
//
// Errors:
//   - ErrVertexNotFound if v is not in the graph.
//
// Complexity: O(d·log d) where d is the out-degree of v.
func (g *Graph[V, W]) OutEdges(v V) ([]Edge[V, W], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge[V, W], 0, len(bucket))
	var (
		to V
		w  W
	)
	for to, w = range bucket {
		out = append(out, Edge[V, W]{From: v, To: to, Weight: w})
	}
	slices.SortFunc(out, func(a, b Edge[V, W]) int { return cmp.Compare(a.To, b.To) })

	return out, nil
}

// Edges returns all edges sorted by (From, To) ascending.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge[V, W], 0, g.edgeCount)
	var (
		from, to V
		bucket   map[V]W
		w        W
	)
	for from, bucket = range g.adjacency {
		for to, w = range bucket {
			out = append(out, Edge[V, W]{From: from, To: to, Weight: w})
		}
	}
	slices.SortFunc(out, compareEdges[V, W])

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph[V, W]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// UpdateWeights rewrites every edge weight in place: w ← fn(edge).
//
// Contract:
//   - fn is pure; it must not call back into the graph (muEdgeAdj is held).
//   - Topology is untouched; only weights change.
//
// Complexity: O(E).
func (g *Graph[V, W]) UpdateWeights(fn func(e Edge[V, W]) W) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var (
		from, to V
		bucket   map[V]W
		w        W
	)
	for from, bucket = range g.adjacency {
		for to, w = range bucket {
			bucket[to] = fn(Edge[V, W]{From: from, To: to, Weight: w})
		}
	}
}

// compareEdges orders edges by From, then To.
func compareEdges[V cmp.Ordered, W any](a, b Edge[V, W]) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}
