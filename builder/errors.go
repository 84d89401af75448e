// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach their name and parameters with %w.
//   • Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, depth)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor or a negative arc count.
var ErrConstructFailed = errors.New("builder: construction failed")
