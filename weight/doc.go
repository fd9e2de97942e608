// Package weight defines the algebra tentative distances must support in a
// shortest-path search: a total order, an addition with a zero identity, and
// an infinity sentinel strictly greater than any finite reachable sum.
//
// The search loop never uses Go operators on weights directly; it goes through
// an Algebra. This keeps integer, floating-point and custom cost types
// (fixed-point, lexicographic tuples, ...) interchangeable without touching the
// loop.
//
// Ready-made algebras:
//
//	weight.Int64()   – int64, infinity = math.MaxInt64
//	weight.Int()     – int,   infinity = math.MaxInt
//	weight.Uint32()  – uint32, infinity = math.MaxUint32
//	weight.Uint64()  – uint64, infinity = math.MaxUint64
//	weight.Float64() – float64, infinity = +Inf
//
// All of them saturate: Add never wraps around past Infinity.
//
// Weights are assumed non-negative. This is a precondition, not something the
// algebra enforces.
package weight
