// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices sorted ascending by cmp.Compare.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
//
// AI-Hints (file):
//   - Vertices() is a stable enumeration surface; rely on it for reproducible outputs.

package core

import "slices"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence; if missing, register it.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap an empty out-edge bucket
//     so edge methods can rely on every vertex owning one.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph[V, W]) AddVertex(v V) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[v]; exists {
		return
	}
	g.vertices[v] = struct{}{}

	g.muEdgeAdj.Lock()
	g.adjacency[v] = make(map[V]W)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph[V, W]) HasVertex(v V) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[v]

	return ok
}

// RemoveVertex deletes a vertex together with every edge entering or leaving it.
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 2: Verify vertex presence (ErrVertexNotFound).
//   - Stage 3: Drop the vertex's own bucket (out-edges), then sweep every other
//     bucket once for edges pointing at it (in-edges).
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(V) for the in-edge sweep, Space O(1) extra.
func (g *Graph[V, W]) RemoveVertex(v V) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[v]; !exists {
		return ErrVertexNotFound
	}

	g.edgeCount -= len(g.adjacency[v])
	delete(g.adjacency, v)

	var (
		bucket map[V]W
		ok     bool
	)
	for _, bucket = range g.adjacency {
		if _, ok = bucket[v]; ok {
			delete(bucket, v)
			g.edgeCount--
		}
	}
	delete(g.vertices, v)

	return nil
}

// Vertices returns all vertices in ascending order.
//
// Determinism:
//   - Deterministic output order (ascending).
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph[V, W]) Vertices() []V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]V, 0, len(g.vertices))
	var id V
	for id = range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
//
// AI-Hints:
//   - Prefer VertexCount() over len(Vertices()) to avoid O(V log V) sorting costs.
func (g *Graph[V, W]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
