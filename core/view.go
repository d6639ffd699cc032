// File: view.go
// Role: Read-only graph surface consumed by shortest-path algorithms.
// Determinism:
//   - Implementations must enumerate vertices and edges in ascending order so
//     that tie-breaking in the algorithms is reproducible.
// Concurrency:
//   - Algorithms only read through View; *Graph serves reads under RLock.

package core

import "cmp"

// View is the read-only surface shortest-path algorithms need.
// *Graph implements it; callers may supply their own graph types.
type View[V cmp.Ordered, W any] interface {
	// HasVertex reports whether v is part of the graph.
	HasVertex(v V) bool
	// Vertices returns every vertex in ascending order.
	Vertices() []V
	// OutEdges returns the edges leaving v, ascending by To.
	OutEdges(v V) ([]Edge[V, W], error)
	// Edges returns every edge, ascending by (From, To).
	Edges() []Edge[V, W]
	// VertexCount returns |V|.
	VertexCount() int
}

// compile-time check: *Graph satisfies View.
var _ View[string, int64] = (*Graph[string, int64])(nil)
