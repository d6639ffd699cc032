// Package bellmanford defines core types and configuration options for the
// Bellman-Ford single-source shortest-path algorithm.
//
// Bellman-Ford tolerates negative edge weights and detects negative-weight
// cycles reachable from the source.
//
// Complexity:
//
//	– Time:  O(V · E) worst case: V−1 relaxation passes over every edge plus
//	         one detection pass. A pass that changes nothing ends the loop
//	         early.
//	– Space: O(V) for the distance and predecessor maps.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNilOps          if the provided weight.Ops is nil.
//	– ErrVertexNotFound  if the source (or requested target) is not in the graph.
//	– ErrNegativeCycle   if a negative-weight cycle is reachable from the source.
//
// "No path" is not an error: the target keeps the Infinity sentinel.
package bellmanford

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNilOps indicates that a nil weight.Ops was passed.
	ErrNilOps = errors.New("bellmanford: weight ops are nil")

	// ErrVertexNotFound indicates that the source or target vertex is not in the graph.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source, so shortest paths are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
)

// Options configures the behavior of Bellman-Ford.
type Options struct {
	Logger *log.Logger // debug sink for pass statistics
}

// Option represents a functional option for configuring Bellman-Ford.
type Option func(*Options)

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("bellmanford: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}
