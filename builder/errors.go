// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.
//   - Constructors MUST NOT panic; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or option
// requires an RNG (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a segment could not be inserted, or that
// a nil constructor or network was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option combination that is only detectable
// once all options are resolved (e.g. jitter too large for the spacing).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownIDScheme indicates a segment ID scheme name IDScheme does not know.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")
