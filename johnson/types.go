// SPDX-License-Identifier: MIT

package johnson

import (
	"cmp"
	"errors"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/shortpath/bellmanford"
)

// Sentinel errors returned by AllPairs.
var (
	// ErrNilGraph indicates that a nil graph was passed to AllPairs.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrNilOps indicates that nil weight ops were passed to AllPairs.
	ErrNilOps = errors.New("johnson: weight ops are nil")

	// ErrNilGenerator indicates that no synthetic-vertex generator was given.
	ErrNilGenerator = errors.New("johnson: synthetic vertex generator is nil")

	// ErrVertexCollision indicates that the generated synthetic vertex is
	// already part of the graph.
	ErrVertexCollision = errors.New("johnson: synthetic vertex already in graph")

	// ErrNegativeCycle is bellmanford.ErrNegativeCycle; both names match
	// with errors.Is.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle
)

// Result is the shortest path for one reachable ordered pair.
// Path includes both endpoints.
type Result[V cmp.Ordered, W any] struct {
	Source   V
	Target   V
	Distance W
	Path     []V
}

// Results is the AllPairs output, ordered by (Source, Target).
type Results[V cmp.Ordered, W any] []Result[V, W]

// Lookup returns the result for s→t; ok is false when t is unreachable from s
// or either vertex is unknown. O(log n).
func (rs Results[V, W]) Lookup(s, t V) (Result[V, W], bool) {
	i := sort.Search(len(rs), func(i int) bool {
		if c := cmp.Compare(rs[i].Source, s); c != 0 {
			return c > 0
		}
		return cmp.Compare(rs[i].Target, t) >= 0
	})
	if i < len(rs) && rs[i].Source == s && rs[i].Target == t {
		return rs[i], true
	}

	return Result[V, W]{}, false
}

// Distances flattens the results into a source → target → distance map.
func (rs Results[V, W]) Distances() map[V]map[V]W {
	out := make(map[V]map[V]W)
	for _, r := range rs {
		row, ok := out[r.Source]
		if !ok {
			row = make(map[V]W)
			out[r.Source] = row
		}
		row[r.Target] = r.Distance
	}

	return out
}

// Options configures AllPairs.
//
// Parallelism – maximum concurrent Dijkstra runs (1 = sequential).
// Logger      – phase-level debug sink; discards by default.
type Options struct {
	Parallelism int
	Logger      *log.Logger
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// WithParallelism bounds the number of concurrent per-source Dijkstra runs.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("johnson: WithParallelism(n) requires n >= 1")
	}

	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("johnson: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns sequential execution with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Parallelism: 1,
		Logger:      log.New(io.Discard),
	}
}

// UUIDVertex returns a generator of fresh string vertices "<prefix><uuid>"
// for use as the synthetic source. Random v4 UUIDs make a collision with a
// caller's vertex practically impossible; AllPairs still checks.
func UUIDVertex(prefix string) func() string {
	return func() string {
		return prefix + uuid.NewString()
	}
}
