// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Clone is a deep copy of the vertex/edge mapping: mutating the clone
//     (AddVertex, SetWeight, RemoveVertex, ...) never affects the source.
//   - Clear() preserves flags but resets catalogs.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Complexity: O(V) to copy vertices and initialize adjacency buckets.
func (g *Graph[V, W]) CloneEmpty() *Graph[V, W] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	opts := make([]GraphOption, 0, 1)
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph[V, W](opts...)

	var v V
	for v = range g.vertices {
		clone.vertices[v] = struct{}{}
		clone.adjacency[v] = make(map[V]W)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
//
// Complexity: O(V + E)
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		from, to V
		bucket   map[V]W
		w        W
	)
	for from, bucket = range g.adjacency {
		dst := clone.adjacency[from]
		for to, w = range bucket {
			dst[to] = w
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
// Concurrency: acquires both write locks.
func (g *Graph[V, W]) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[V]struct{})
	g.adjacency = make(map[V]map[V]W)
	g.edgeCount = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
