// SPDX-License-Identifier: MIT

package qwt

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/resource"
)

// Transform is an operator bound to a declared wire count, the way a host
// declares an operation before handing it wires.
type Transform struct {
	Op Operator
	N  int
}

// NewTransform validates the operator and its minimum size.
// Errors: circuit.ErrDomain.
func NewTransform(op Operator, n int) (Transform, error) {
	if !op.valid() {
		return Transform{}, fmt.Errorf("NewTransform(%s): %w", op, circuit.ErrDomain)
	}
	if n < op.MinWires() {
		return Transform{}, fmt.Errorf("NewTransform(%s, %d): need at least %d wires: %w", op, n, op.MinWires(), circuit.ErrDomain)
	}

	return Transform{Op: op, N: n}, nil
}

// Decompose returns the circuit on wires.
// Errors: circuit.ErrDimensionMismatch when len(wires) != N.
func (t Transform) Decompose(wires circuit.Wires) (circuit.Decomposition, error) {
	if len(wires) != t.N {
		return nil, fmt.Errorf("Transform(%s, %d).Decompose: got %d wires: %w", t.Op, t.N, len(wires), circuit.ErrDimensionMismatch)
	}

	return Decompose(t.Op, wires)
}

// Inverse returns the adjoint circuit on wires.
func (t Transform) Inverse(wires circuit.Wires) (circuit.Decomposition, error) {
	dec, err := t.Decompose(wires)
	if err != nil {
		return nil, err
	}

	return dec.Adjoint(), nil
}

// Estimate returns the resource report for N wires.
func (t Transform) Estimate() (resource.Report, error) { return Estimate(t.Op, t.N) }
