// Package core provides the generic, thread-safe, in-memory directed weighted
// graph consumed by the shortest-path algorithms.
//
// The Graph G = (V, E) is parameterised by a vertex identifier type V
// (totally ordered, so enumeration is deterministic) and an edge weight type
// W (opaque to core; arithmetic lives in package weight):
//
//   - Directed edges only; at most one edge per ordered pair (from, to)
//   - Self-loops rejected unless WithLoops() is given
//   - Constant-time edge lookup via nested maps: adjacency[from][to] = weight
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), OutEdges(), Edges() are sorted.
//   - Clone support: CloneEmpty (vertices+flags), Clone (deep copy).
//   - Algorithms depend only on the read-only View interface, so any
//     graph that can enumerate vertices and out-edges can be searched.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                       // O(1), idempotent
//	HasVertex(v V) bool                  // O(1)
//	RemoveVertex(v V) error              // O(V) incident-edge sweep
//
//	// Edge lifecycle
//	AddEdge(from, to V, w W) error       // O(1), auto-creates endpoints
//	SetWeight(from, to V, w W) error     // O(1)
//	RemoveEdge(from, to V) error         // O(1)
//	HasEdge(from, to V) bool             // O(1)
//	Weight(from, to V) (W, bool)         // O(1)
//
//	// Query
//	OutEdges(v V) ([]Edge[V, W], error)  // O(d·log d), sorted by To
//	Vertices() []V                       // O(V·log V)
//	Edges() []Edge[V, W]                 // O(E·log E), sorted by (From, To)
//	VertexCount(), EdgeCount() int       // O(1)
//
//	// Cloning
//	CloneEmpty() *Graph[V, W]            // O(V)
//	Clone() *Graph[V, W]                 // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
package core
