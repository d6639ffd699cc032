// SPDX-License-Identifier: MIT

package weight

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Ops is the generic numeric contract threaded through every algorithm.
// Implementations must form an ordered additive group on finite values and
// treat Infinity as absorbing for Sum.
type Ops[W any] interface {
	// Zero returns the additive identity.
	Zero() W
	// Infinity returns the "unreached" sentinel.
	Infinity() W
	// Sum returns a + b; Infinity if either operand is Infinity.
	Sum(a, b W) W
	// Subtract returns a − b; Infinity if a is Infinity.
	Subtract(a, b W) W
	// Compare returns −1 if a < b, 0 if a == b, +1 if a > b.
	Compare(a, b W) int
}

// Number is the set of built-in types Numeric can serve.
type Number interface {
	constraints.Integer | constraints.Float
}

// numeric implements Ops for built-in numbers with a caller-chosen sentinel.
// floor is the lowest value of W; results below it clamp to it.
type numeric[W Number] struct {
	inf   W
	floor W
}

// Numeric returns Ops for W using inf as the Infinity sentinel.
// Finite sums that would reach or pass inf saturate to inf; sums that would
// wrap below the smallest W clamp to that smallest value.
func Numeric[W Number](inf W) Ops[W] {
	return numeric[W]{inf: inf, floor: lowest[W]()}
}

// Int64 returns Ops for int64 weights with math.MaxInt64 as Infinity.
func Int64() Ops[int64] { return numeric[int64]{inf: math.MaxInt64, floor: math.MinInt64} }

// Int returns Ops for int weights with math.MaxInt as Infinity.
func Int() Ops[int] { return numeric[int]{inf: math.MaxInt, floor: math.MinInt} }

// Float64 returns Ops for float64 weights with +Inf as Infinity.
func Float64() Ops[float64] { return numeric[float64]{inf: math.Inf(1), floor: math.Inf(-1)} }

// lowest returns the smallest value of W: 0 for unsigned integers, the
// minimum for signed integers and -Inf for floats.
func lowest[W Number]() W {
	var zero, one W = 0, 1
	m := zero - one
	if m > zero {
		return zero
	}
	// Doubling stops once it wraps (integers) or sticks at -Inf (floats).
	for {
		next := m + m
		if next >= m {
			return m
		}
		m = next
	}
}

func (n numeric[W]) Zero() W     { return 0 }
func (n numeric[W]) Infinity() W { return n.inf }

func (n numeric[W]) Sum(a, b W) W {
	if a == n.inf || b == n.inf {
		return n.inf
	}
	// a+b would pass the sentinel: saturate instead of wrapping.
	if b > 0 && a > n.inf-b {
		return n.inf
	}
	if a > 0 && b > n.inf-a {
		return n.inf
	}
	if b < 0 && a < n.floor-b {
		return n.floor
	}

	return a + b
}

func (n numeric[W]) Subtract(a, b W) W {
	if a == n.inf {
		return n.inf
	}
	if b < 0 && a > n.inf+b {
		return n.inf
	}
	if b > 0 && a < n.floor+b {
		return n.floor
	}

	return a - b
}

func (n numeric[W]) Compare(a, b W) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b under ops.
func Less[W any](ops Ops[W], a, b W) bool {
	return ops.Compare(a, b) < 0
}

// IsInfinite reports whether w equals the Infinity sentinel of ops.
func IsInfinite[W any](ops Ops[W], w W) bool {
	return ops.Compare(w, ops.Infinity()) == 0
}
