// SPDX-License-Identifier: MIT
//
// Package core defines the central generic Graph and Edge types.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - edge for an ordered pair that already has one.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, weighted connection From → To.
// Edges are values; mutating a returned Edge never affects the Graph.
type Edge[V cmp.Ordered, W any] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the edge cost, interpreted by a weight.Ops[W].
	Weight W
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	allowLoops bool
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = true }
}

// Graph is the core in-memory directed weighted graph.
//
// muVert protects the vertex set; muEdgeAdj protects adjacency and the edge
// counter. Lock order is muVert -> muEdgeAdj.
type Graph[V cmp.Ordered, W any] struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	allowLoops bool // allow self-loops

	vertices map[V]struct{}
	// adjacency[from][to] = weight; every vertex owns a (possibly empty) bucket.
	adjacency map[V]map[V]W
	edgeCount int
}

// NewGraph creates an empty directed Graph. Loops are rejected by default.
// Complexity: O(1)
func NewGraph[V cmp.Ordered, W any](opts ...GraphOption) *Graph[V, W] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V, W]{
		allowLoops: o.allowLoops,
		vertices:   make(map[V]struct{}),
		adjacency:  make(map[V]map[V]W),
	}
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph[V, W]) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
