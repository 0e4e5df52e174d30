// SPDX-License-Identifier: MIT

// Package verify: functional configuration for the matrix Builder.
// This file defines:
//   - Option (functional options over unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package verify

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxQubits bounds n for every build; 2¹⁰×2¹⁰ complex128 is 16 MiB.
	DefaultMaxQubits = 10

	// DefaultEpsilon is the unitarity tolerance ‖M†M − I‖max.
	DefaultEpsilon = 1e-10

	// DefaultUnitarityCheck validates every freshly built matrix.
	DefaultUnitarityCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxQubitsInvalid = "verify: WithMaxQubits: n must be in [1, 30]"
	panicEpsilonInvalid   = "verify: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil        = "verify: WithLogger: logger must be non-nil"
)

// maxQubitsCeiling keeps 1<<(2n) within int on 64-bit targets with room to spare.
const maxQubitsCeiling = 30

// Option mutates builder options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	maxQubits      int          // DefaultMaxQubits
	eps            float64      // DefaultEpsilon
	checkUnitarity bool         // DefaultUnitarityCheck
	logger         *slog.Logger // discard handler by default
}

// WithMaxQubits sets the largest n the Builder accepts.
//
// Errors:
//   - Panics when n < 1 or n > 30.
//
// Complexity: O(1).
func WithMaxQubits(n int) Option {
	if n < 1 || n > maxQubitsCeiling {
		panic(panicMaxQubitsInvalid)
	}

	return func(o *options) { o.maxQubits = n }
}

// WithEpsilon sets the unitarity tolerance used after each build.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - 1e-10 holds comfortably up to ten wires; 0 demands exact arithmetic
//     and only suits permutation matrices.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithUnitarityCheck toggles the post-build unitarity validation.
func WithUnitarityCheck(on bool) Option {
	return func(o *options) { o.checkUnitarity = on }
}

// WithLogger routes build diagnostics (cache misses and timings at Debug,
// tolerance failures at Warn) to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		maxQubits:      DefaultMaxQubits,
		eps:            DefaultEpsilon,
		checkUnitarity: DefaultUnitarityCheck,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
