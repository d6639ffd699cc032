// Package shortpath is an in-memory shortest-path engine for directed
// weighted graphs, built around a mergeable binomial heap with decrease-key.
//
// What is inside?
//
//	A generic library (vertex type V cmp.Ordered, weight type W any) that
//	brings together:
//		• weight/      – Ops[W]: Zero, Infinity, saturating Sum, Subtract, Compare
//		• core/        – Graph[V, W], a thread-safe directed graph, plus the
//		                 read-only View the algorithms consume
//		• binheap/     – binomial-forest priority queue with generation-checked handles
//		• bellmanford/ – single-source paths with negative edges, cycle detection
//		• dijkstra/    – single-source paths over binheap with true decrease-key
//		• johnson/     – all-pairs paths: potentials, reweighting, per-source Dijkstra
//		• builder/     – deterministic generators: feasible random digraphs,
//		                 negative cycles, fixed topologies
//
// Quick example:
//
//	    A ──(−2)──▶ B ──(−1)──▶ C ──(2)──▶ D
//	    └────────────────(10)─────────────▶┘
//
//	g := core.NewGraph[string, int64]()
//	_ = g.AddEdge("A", "B", -2) // …
//	res, err := johnson.AllPairs(g, weight.Int64(), johnson.UUIDVertex("q-"))
//	r, _ := res.Lookup("A", "D") // r.Distance == -1, r.Path == [A B C D]
//
// The shortpath command (cmd/shortpath) runs the engine on generated graphs.
package shortpath
