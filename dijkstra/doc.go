// Package dijkstra provides Dijkstra's shortest-path algorithm on directed
// weighted graphs with non-negative edge weights, driven by a binomial heap
// with true decrease-key.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - Vertices enter the binheap lazily on first discovery; an improved
//     tentative distance lowers the existing entry through its handle
//     instead of pushing a duplicate.
//   - Generic over vertex type V and weight type W; arithmetic comes from a
//     weight.Ops[W].
//
// When to use:
//
//   - Static graphs with non-negative weights.
//   - As the inner loop of Johnson's all-pairs algorithm, on reweighted graphs.
//
// Key features:
//
//   - WithTarget:             stop as soon as the target's distance is final.
//   - WithMaxDistance:        do not settle vertices farther than a cap.
//   - WithInfEdgeThreshold:   treat edges with weight ≥ threshold as impassable.
//   - WithNegativeWeightCheck: O(E) pre-scan that fails with ErrNegativeWeight.
//
// Precondition:
//
//   - Weights must be non-negative. This is the caller's obligation and is
//     not re-validated unless WithNegativeWeightCheck is given; a negative
//     weight otherwise yields unspecified (but non-panicking) results.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is inserted and extracted at most once.
//   - Each successful relaxation costs one DecrementKey, O(log V).
//   - Space: O(V): distance and predecessor maps plus at most V heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilOps:   missing collaborators.
//   - ErrVertexNotFound:        source or target not in the graph.
//   - ErrNegativeWeight:        only with WithNegativeWeightCheck.
//   - ErrBadMaxDistance:        MaxDistance below Zero.
//   - ErrBadInfThreshold:       InfEdgeThreshold at or below Zero.
//   - ErrOptionType:            an option value whose type does not match V or W.
//
// Thread safety:
//
//   - Dijkstra reads the graph through core.View and owns its heap, so
//     concurrent runs over the same unmodified graph are safe.
package dijkstra
