// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/unitarity checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - Shape checks are O(1) and allocate nothing.
//  - ValidateUnitary is O(n³) because it forms M†M once.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquareNonNil", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []complex128, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateTolerance rejects NaN/Inf and normalizes negative tolerances to |tol|.
func validateTolerance(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	return tol, nil
}

// UnitarityDefect returns max |(M†M − I)[i,j]| over all entries, the
// quantity ValidateUnitary compares against eps.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func UnitarityDefect(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, validatorErrorf("UnitarityDefect", err)
	}
	adj, err := ConjugateTranspose(m)
	if err != nil {
		return 0, validatorErrorf("UnitarityDefect", err)
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return 0, validatorErrorf("UnitarityDefect", err)
	}
	n := prod.r
	var worst, d float64
	var want complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if d = cmplx.Abs(prod.data[i*n+j] - want); d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// ValidateUnitary checks ‖M†M − I‖max ≤ eps.
//
// Inputs: square Matrix m, tolerance eps (negative values are abs-ed).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad
// eps, ErrNotUnitary (with the observed defect) on violation.
// Complexity: O(n³).
func ValidateUnitary(m Matrix, eps float64) error {
	eps, err := validateTolerance(opUnitary, eps)
	if err != nil {
		return err
	}
	defect, err := UnitarityDefect(m)
	if err != nil {
		return validatorErrorf(opUnitary, err)
	}
	if defect > eps {
		return validatorErrorf(opUnitary, fmt.Errorf("defect %.3g > eps %.3g: %w", defect, eps, ErrNotUnitary))
	}

	return nil
}

// IsHermitian reports whether m = m† within tol.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf for a bad tol.
// Complexity: O(n²) on the upper triangle including the diagonal.
func IsHermitian(m Matrix, tol float64) (bool, error) {
	tol, err := validateTolerance(opHermitian, tol)
	if err != nil {
		return false, err
	}
	if err = ValidateSquareNonNil(m); err != nil {
		return false, validatorErrorf(opHermitian, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return false, validatorErrorf(opHermitian, err)
	}
	n := dm.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(dm.data[i*n+j]-cmplx.Conj(dm.data[j*n+i])) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
