// Package builder provides deterministic, functional-options style generators
// of road networks (core.Graph) for tests, benchmarks and the `lvroute generate`
// command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): create a graph, resolve options, apply constructors in order.
//     – Constructor:      a func(*core.Graph, builderConfig) error topology step.
//   - Topologies:
//     – Path(n), Cycle(n), Grid(rows, cols), Complete(n), RandomSparse(n, p), Isolated(ids...).
//   - Node-ID schemes (IDFn):
//     – DecimalIDFn ("0","1",…), SymbolIDFn ("A".."Z","AA",…), PrefixIDFn(prefix).
//   - Edge-weight distributions (WeightFn):
//     – ConstantWeightFn, UniformWeightFn, IntRangeWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, same seed and same constructor order ⇒ identical graphs.
//   - Idempotent nodes: constructors sharing node IDs reuse the existing node.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinels wrapped with the constructor name.
package builder
