// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– WithTarget(v):              early exit once v is settled.
//	– WithMaxDistance(w):         optional cap on settled distances.
//	– WithInfEdgeThreshold(w):    edges with weight >= this threshold are impassable.
//	– WithNegativeWeightCheck():  upfront scan for negative weights.
//	– WithLogger(l):              debug sink (charmbracelet/log).
//
// Option values for vertices and weights are carried untyped and checked
// against V and W when Dijkstra starts; a mismatch is ErrOptionType.
package dijkstra

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilOps indicates that a nil weight.Ops was passed to Dijkstra.
	ErrNilOps = errors.New("dijkstra: weight ops are nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance orders before Zero.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold is Zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrOptionType indicates an option value whose dynamic type is not the
	// graph's vertex or weight type.
	ErrOptionType = errors.New("dijkstra: option value has wrong type")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Target           – vertex whose settlement ends the search (nil: run to exhaustion).
// MaxDistance      – vertices farther than this are not settled (nil: no cap).
// InfEdgeThreshold – edges with weight ≥ this are skipped (nil: none).
// CheckNegative    – scan all edges for negative weights before starting.
// Logger           – debug sink; discards by default.
type Options struct {
	Target           any
	MaxDistance      any
	InfEdgeThreshold any
	CheckNegative    bool
	Logger           *log.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the search as soon as v's distance is final.
// v must have the graph's vertex type.
func WithTarget(v any) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not explored and keep
// Infinity. max must have the graph's weight type and be ≥ Zero.
func WithMaxDistance(max any) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable. threshold must have the graph's weight
// type and be > Zero.
func WithInfEdgeThreshold(threshold any) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithNegativeWeightCheck enables an O(E) pre-scan that fails fast with
// ErrNegativeWeight instead of leaving negative weights undefined.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no target, no distance cap, no impassable threshold, no negative-weight
// scan, and a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}
