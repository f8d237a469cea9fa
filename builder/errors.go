// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context
// ("Cycle: n=2 < min=3: builder: parameter too small"); callers branch with
// errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil sink or constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
