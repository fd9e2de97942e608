package weight

import "math"

// Algebra is the minimal capability a weight type needs for Dijkstra.
//
// Implementations must satisfy:
//   - Less is a strict total order.
//   - Add is associative and Add(Zero(), w) == w.
//   - Less(w, Infinity()) for every finite w reachable by adding
//     non-negative weights, and Add(w, Infinity()) is not Less than Infinity().
type Algebra[W any] interface {
	// Zero returns the additive identity (distance of the source).
	Zero() W
	// Infinity returns the "untouched" sentinel.
	Infinity() W
	// Add returns a + b.
	Add(a, b W) W
	// Less reports whether a < b.
	Less(a, b W) bool
}

// Number is satisfied by every built-in integer and floating-point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Ordered is the Algebra of a built-in numeric type with a caller-chosen
// infinity sentinel. Addition saturates at Inf.
type Ordered[W Number] struct {
	Inf W
}

// NewOrdered returns an Ordered algebra whose infinity is inf.
func NewOrdered[W Number](inf W) Ordered[W] {
	return Ordered[W]{Inf: inf}
}

// Zero returns 0.
func (Ordered[W]) Zero() W { return 0 }

// Infinity returns the configured sentinel.
func (o Ordered[W]) Infinity() W { return o.Inf }

// Add returns a + b, clamped to Inf. A sum smaller than a (wrap-around on
// integer overflow) is treated as overflow, which is sound because b is
// non-negative.
func (o Ordered[W]) Add(a, b W) W {
	s := a + b
	if s < a || s >= o.Inf {
		return o.Inf
	}

	return s
}

// Less reports whether a < b.
func (Ordered[W]) Less(a, b W) bool { return a < b }

// Int64 returns the saturating int64 algebra.
func Int64() Ordered[int64] { return Ordered[int64]{Inf: math.MaxInt64} }

// Int returns the saturating int algebra.
func Int() Ordered[int] { return Ordered[int]{Inf: math.MaxInt} }

// Uint32 returns the saturating uint32 algebra.
func Uint32() Ordered[uint32] { return Ordered[uint32]{Inf: math.MaxUint32} }

// Uint64 returns the saturating uint64 algebra.
func Uint64() Ordered[uint64] { return Ordered[uint64]{Inf: math.MaxUint64} }

// Float64 returns the float64 algebra with +Inf as infinity.
func Float64() Ordered[float64] { return Ordered[float64]{Inf: math.Inf(1)} }

// IsInf reports whether w equals alg's infinity, i.e. neither side is Less.
func IsInf[W any](alg Algebra[W], w W) bool {
	inf := alg.Infinity()

	return !alg.Less(w, inf) && !alg.Less(inf, w)
}

// Equal reports whether neither a < b nor b < a under alg.
func Equal[W any](alg Algebra[W], a, b W) bool {
	return !alg.Less(a, b) && !alg.Less(b, a)
}
