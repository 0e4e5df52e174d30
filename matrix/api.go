// SPDX-License-Identifier: MIT

// Package matrix: public constructors and conversions.
//
// Every constructor returns a fresh *Dense; inputs are never retained.

package matrix

import (
	"fmt"
	"math"
)

// NewZeros returns an r×c zero matrix. Alias of NewDense kept for readability
// at call sites that build results.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// NewFromReal builds a Dense from real row slices.
//
// Inputs:
//   - rows: non-empty, rectangular, finite.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or the first row is empty.
//   - ErrDimensionMismatch if rows are ragged.
//   - ErrNaNInf if any entry is not finite.
//
// Complexity: O(r*c).
func NewFromReal(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromReal", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	out, _ := NewDense(r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf("NewFromReal", fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j := 0; j < c; j++ {
			v := rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf("NewFromReal", denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[i*c+j] = complex(v, 0)
		}
	}

	return out, nil
}

// NewFromRows builds a Dense from complex row slices with the same policy
// as NewFromReal.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	out, _ := NewDense(r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf("NewFromRows", fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j := 0; j < c; j++ {
			if err := out.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf("NewFromRows", err)
			}
		}
	}

	return out, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy built
// through the bounds-checked interface. Kernels then run their flat fast-path
// unconditionally.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v complex128
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
