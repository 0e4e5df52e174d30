// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, conjugate transpose, scaling, Kronecker product, vertical
// stacking, matrix-vector product and determinant. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - Non-Dense operands are materialized once via asDense, then the flat
//     fast-path runs.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opAdjoint   = "ConjugateTranspose"
	opScale     = "Scale"
	opKron      = "Kron"
	opVStack    = "VStack"
	opMatVec    = "MatVec"
	opDet       = "Det"
	opUnitary   = "ValidateUnitary"
	opAllClose  = "AllClose"
	opHermitian = "IsHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Cols() != b.Rows().
//
// Determinism: fixed i→k→j loop order.
// Complexity: O(r·k·c) time, O(r·c) space.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, _ := NewDense(aRows, bCols)
	var (
		i, k, j                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero; permutation and kernel matrices are sparse
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// ConjugateTranspose returns m† (transpose with every entry conjugated).
// Complexity: O(r·c).
func ConjugateTranspose(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	rows, cols := dm.r, dm.c
	res, _ := NewDense(cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = cmplx.Conj(dm.data[baseSrc+j])
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Complexity: O(r·c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Kron returns the Kronecker product a⊗b of shape (ra·rb)×(ca·cb).
//
// Layout: (a⊗b)[ia·rb+ib, ja·cb+jb] = a[ia,ja]·b[ib,jb].
// Complexity: O(ra·ca·rb·cb).
func Kron(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := da.r*db.r, da.c*db.c
	res, _ := NewDense(rows, cols)
	var ia, ja, ib, jb int
	var av complex128
	for ia = 0; ia < da.r; ia++ {
		for ja = 0; ja < da.c; ja++ {
			av = da.data[ia*da.c+ja]
			if av == 0 {
				continue
			}
			for ib = 0; ib < db.r; ib++ {
				for jb = 0; jb < db.c; jb++ {
					res.data[(ia*db.r+ib)*cols+ja*db.c+jb] = av * db.data[ib*db.c+jb]
				}
			}
		}
	}

	return res, nil
}

// VStack stacks top over bottom. Both must have the same column count.
// Complexity: O((rt+rb)·c).
func VStack(top, bottom Matrix) (*Dense, error) {
	dt, err := asDense(top)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	db, err := asDense(bottom)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if dt.c != db.c {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}
	res, _ := NewDense(dt.r+db.r, dt.c)
	copy(res.data, dt.data)
	copy(res.data[len(dt.data):], db.data)

	return res, nil
}

// MatVec returns m·x as a new slice.
// Errors: ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r·c).
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, dm.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]complex128, dm.r)
	var i, j int
	var sum complex128
	for i = 0; i < dm.r; i++ {
		sum = 0
		for j = 0; j < dm.c; j++ {
			sum += dm.data[i*dm.c+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Det returns the determinant of a square matrix using Gaussian elimination
// with partial pivoting (largest modulus in the column). A singular matrix
// yields 0 without error.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) space for the working copy.
func Det(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := dm.r
	w := dm.clone()
	det := complex(1, 0)
	var col, row, pivot, j int
	var factor complex128
	for col = 0; col < n; col++ {
		// Select pivot row.
		pivot = col
		for row = col + 1; row < n; row++ {
			if cmplx.Abs(w.data[row*n+col]) > cmplx.Abs(w.data[pivot*n+col]) {
				pivot = row
			}
		}
		if w.data[pivot*n+col] == 0 {
			return 0, nil
		}
		if pivot != col {
			for j = 0; j < n; j++ {
				w.data[col*n+j], w.data[pivot*n+j] = w.data[pivot*n+j], w.data[col*n+j]
			}
			det = -det
		}
		det *= w.data[col*n+col]
		// Eliminate below the pivot.
		for row = col + 1; row < n; row++ {
			factor = w.data[row*n+col] / w.data[col*n+col]
			if factor == 0 {
				continue
			}
			for j = col; j < n; j++ {
				w.data[row*n+j] -= factor * w.data[col*n+j]
			}
		}
	}

	return det, nil
}
