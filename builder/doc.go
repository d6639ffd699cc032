// Package builder provides deterministic "functional-options"-style graph
// generators for exercising shortest-path algorithms: fixtures for tests,
// examples and the shortpath CLI.
//
// All generators produce directed *core.Graph[string, int64] values and are
// composed through one orchestrator:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomFeasible(50, 0.1))
//
// The package offers the following key components:
//
//   - Constructors:
//     – Path(n), Cycle(n), Complete(n):  fixed directed topologies.
//     – RandomSparse(n, p):              Erdős–Rényi digraph with weights from WeightFn.
//     – RandomFeasible(n, p):            digraph with negative edges but no negative
//     cycle, built from random vertex potentials.
//     – NegativeCycle(n):                directed ring whose weights sum to −1.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolNumberIDFn(prefix),
//     ExcelColumnIDFn; ScopedIDs(fn, c) gives one constructor its own scheme.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
package builder
