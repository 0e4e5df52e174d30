// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and validators.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qwt/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used by numeric assertions in this package.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense materialization path in kernels.
type hide struct{ matrix.Matrix }

// MustReal builds a Dense from real rows or fails the test.
func MustReal(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromReal(rows)
	require.NoError(t, err)

	return m
}

// hadamard2 returns the 2×2 orthonormal Hadamard matrix.
func hadamard2(t *testing.T) *matrix.Dense {
	t.Helper()
	s := 1 / math.Sqrt2

	return MustReal(t, [][]float64{{s, s}, {s, -s}})
}

// requireClose asserts AllClose(a, b) with tol and reports the max deviation.
func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	if !ok {
		d, _ := matrix.MaxAbsDiff(got, want)
		t.Fatalf("matrices differ: max |Δ| = %g\nwant:\n%v\ngot:\n%v", d, want, got)
	}
}
