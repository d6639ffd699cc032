// Package johnson computes all-pairs shortest paths on sparse directed graphs
// that may carry negative edge weights but no negative cycles.
//
// Pipeline:
//
//  1. Clone the input graph (the caller's graph is never mutated).
//  2. Add a synthetic vertex q with Zero-weight edges to every vertex.
//  3. Bellman-Ford once from q yields the potential h(v) = δ(q, v).
//  4. Reweight every edge: w'(u,v) = w(u,v) + h(u) − h(v) ≥ 0.
//  5. Remove q and run Dijkstra from every source on the reweighted clone.
//  6. Recover true distances: δ(s,t) = δ'(s,t) − h(s) + h(t).
//
// The synthetic vertex comes from a caller-supplied generator; UUIDVertex
// provides one for string-keyed graphs. A generator that returns an existing
// vertex fails with ErrVertexCollision before any work is done.
//
// Output:
//
//   - One Result per reachable ordered pair, unreachable pairs omitted.
//   - Sorted by source, then target. Every vertex reaches itself with
//     distance Zero along path [s].
//
// Complexity:
//
//   - Time:  O(V·E) for Bellman-Ford plus V·O((V + E) log V) for Dijkstra.
//   - Space: O(V + E) for the clone plus O(V²) for the results.
//
// Concurrency:
//
//   - WithParallelism(n) fans the per-source Dijkstra runs out over at most
//     n goroutines. Each run reads the shared reweighted clone and owns its
//     heap; the result order is identical to the sequential one.
package johnson
