// SPDX-License-Identifier: MIT

package matrix

import "math/cmplx"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, err := validateTolerance(opAllClose, rtol)
	if err != nil {
		return false, err
	}
	if atol, err = validateTolerance(opAllClose, atol); err != nil {
		return false, err
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(da, db); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if cmplx.Abs(da.data[idx]-db.data[idx]) > atol+rtol*cmplx.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| for identical shapes.
// Useful in test failure messages next to AllClose.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	if err = ValidateSameShape(da, db); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var worst, d float64
	for idx := range da.data {
		if d = cmplx.Abs(da.data[idx] - db.data[idx]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
