// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeightRange indicates that the weight generator produced a value
// a constructor cannot use, e.g. a negative base weight for RandomFeasible.
var ErrInvalidWeightRange = errors.New("builder: weight out of range")

// ErrConstructFailed indicates a nil constructor or a core graph rejection.
var ErrConstructFailed = errors.New("builder: construction failed")
