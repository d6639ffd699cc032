// SPDX-License-Identifier: MIT

// Package weight defines the arithmetic capability that shortest-path
// algorithms need from an edge-weight type.
//
// The algorithms in shortpath never apply operators to weights directly.
// Instead every call receives an Ops[W] that supplies:
//
//	Zero()          additive identity (source distance, synthetic edges)
//	Infinity()      sentinel greater than any finite sum ("unreached")
//	Sum(a, b)       a + b, saturating at Infinity and clamping at the type's floor
//	Subtract(a, b)  a − b, Infinity stays Infinity
//	Compare(a, b)   total order: −1, 0, +1
//
// Numeric builds an Ops for any integer or floating-point type. Int64, Int
// and Float64 are the ready-made instances most callers want.
//
// Example:
//
//	ops := weight.Int64()
//	d := ops.Sum(ops.Infinity(), -5) // still Infinity
package weight
