// Package builder provides deterministic graph generators for the
// shortest-path engine: classic topologies and seeded random graphs, emitted
// into a graph.Builder[int64] and compacted into an immutable graph.Static.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, weight function and direction policy.
//   - Constructors (Constructor implementations):
//     – Path(n), Cycle(n), Star(n), Grid(rows, cols), Complete(n).
//     – RandomSparse(n, p): Erdős–Rényi-like sampling, requires an RNG.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant weight DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform integer in [min,max].
//
// Composition:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.Grid(4, 4),
//	    builder.Path(10),
//	)
//
// BuildGraph applies constructors in order; each one appends its own nodes
// after those of the previous constructor, so the result is a disjoint union
// with node ids assigned in emission order.
//
// Direction: by default every topology edge {u,v} is emitted as the two arcs
// u→v and v→u with one shared weight. WithDirected() emits only u→v (for
// Grid: right and down).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) wrapped
//     with method context for invalid build parameters.
//   - Deterministic output for a fixed seed and option set.
package builder
