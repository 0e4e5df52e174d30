// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qwt/matrix"
)

// adjointSuffix marks the conjugate transpose of a named kernel or block.
const adjointSuffix = "†"

// Kernel is a named fixed unitary acting on one (2×2) or two (4×4) wires.
// The matrix is owned by the kernel; never mutate it after construction.
type Kernel struct {
	Name   string
	Matrix *matrix.Dense
}

// NewKernel validates the shape of m and returns a Kernel.
// Errors: ErrDimensionMismatch unless m is 2×2 or 4×4.
func NewKernel(name string, m *matrix.Dense) (Kernel, error) {
	if m == nil {
		return Kernel{}, fmt.Errorf("NewKernel(%q): %w", name, matrix.ErrNilMatrix)
	}
	if m.Rows() != m.Cols() || (m.Rows() != 2 && m.Rows() != 4) {
		return Kernel{}, fmt.Errorf("NewKernel(%q): %dx%d: %w", name, m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return Kernel{Name: name, Matrix: m}, nil
}

// Arity returns the number of wires the kernel acts on (1 or 2).
func (k Kernel) Arity() int {
	if k.Matrix == nil {
		return 0
	}
	if k.Matrix.Rows() == 4 {
		return 2
	}

	return 1
}

// Adjoint returns the conjugate-transposed kernel. An exactly Hermitian
// kernel (Hadamard, the C0/C1 reflections) is returned unchanged.
func (k Kernel) Adjoint() Kernel {
	if k.Matrix == nil {
		return k
	}
	if herm, err := matrix.IsHermitian(k.Matrix, 0); err == nil && herm {
		return k
	}
	adj, err := matrix.ConjugateTranspose(k.Matrix)
	if err != nil {
		return k
	}

	return Kernel{Name: AdjointName(k.Name), Matrix: adj}
}

// AdjointName toggles the adjoint marker on a kernel or block name:
// "UD4" becomes "UD4†" and "UD4†" becomes "UD4".
func AdjointName(name string) string {
	if base, ok := strings.CutSuffix(name, adjointSuffix); ok {
		return base
	}

	return name + adjointSuffix
}
