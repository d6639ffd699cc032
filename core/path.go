// File: path.go
// Role: Shortest-path result types shared by the single-source algorithms.
// Determinism:
//   - PathTo walks predecessor links only; output depends solely on Prev.
// AI-HINT (file):
//   - "No path" is data, not an error: Reached(v)==false, Dist[v] is the
//     caller's Infinity sentinel and PathTo(v) returns nil.

package core

import (
	"cmp"
	"slices"
)

// Path is one source→target answer: total distance and the vertex sequence
// including both endpoints. Vertices is nil when Target is unreachable.
type Path[V cmp.Ordered, W any] struct {
	Source   V
	Target   V
	Distance W
	Vertices []V
}

// Found reports whether the path exists.
func (p Path[V, W]) Found() bool { return p.Vertices != nil }

// Tree is a single-source shortest-path tree.
//
// Dist holds an entry for every vertex of the searched graph; unreached
// vertices keep the Infinity sentinel. Prev[v] is v's predecessor on its
// shortest path and is absent for the source and for unreached vertices.
type Tree[V cmp.Ordered, W any] struct {
	Source V
	Dist   map[V]W
	Prev   map[V]V
}

// NewTree allocates an empty tree rooted at source sized for n vertices.
func NewTree[V cmp.Ordered, W any](source V, n int) *Tree[V, W] {
	return &Tree[V, W]{
		Source: source,
		Dist:   make(map[V]W, n),
		Prev:   make(map[V]V, n),
	}
}

// Reached reports whether v was reached from the source.
func (t *Tree[V, W]) Reached(v V) bool {
	if v == t.Source {
		return true
	}
	_, ok := t.Prev[v]

	return ok
}

// PathTo returns the vertex sequence source→…→v, or nil if v was not reached.
// Complexity: O(len(path)).
func (t *Tree[V, W]) PathTo(v V) []V {
	if !t.Reached(v) {
		return nil
	}

	out := []V{v}
	// A well-formed tree has no predecessor cycles; len(Dist) bounds the walk.
	for cur := v; cur != t.Source && len(out) <= len(t.Dist); {
		cur = t.Prev[cur]
		out = append(out, cur)
	}
	slices.Reverse(out)

	return out
}

// Path assembles the Path answer for target.
func (t *Tree[V, W]) Path(target V) Path[V, W] {
	return Path[V, W]{
		Source:   t.Source,
		Target:   target,
		Distance: t.Dist[target],
		Vertices: t.PathTo(target),
	}
}
