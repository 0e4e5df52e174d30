// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/matrix"
)

// HaarMatrix returns the closed-form n-wire Haar matrix:
//
//	H₁ = [[1, 1], [1, −1]] / √2
//	Hₙ = vstack(Hₙ₋₁ ⊗ [1 1], I_{2ⁿ⁻¹} ⊗ [1 −1]) / √2
//
// Errors: circuit.ErrDomain for n < 1; ErrTooLarge above DefaultMaxQubits.
func HaarMatrix(n int) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("HaarMatrix(%d): %w", n, circuit.ErrDomain)
	}
	if n > DefaultMaxQubits {
		return nil, fmt.Errorf("HaarMatrix(%d): %w", n, ErrTooLarge)
	}

	return haarMatrix(n)
}

func haarMatrix(n int) (*matrix.Dense, error) {
	sum, _ := matrix.NewFromReal([][]float64{{1, 1}})
	diff, _ := matrix.NewFromReal([][]float64{{1, -1}})
	scale := complex(1/math.Sqrt2, 0)

	h, _ := matrix.NewFromReal([][]float64{{1}})
	for level := 1; level <= n; level++ {
		top, err := matrix.Kron(h, sum)
		if err != nil {
			return nil, err
		}
		id, err := matrix.NewIdentity(1 << (level - 1))
		if err != nil {
			return nil, err
		}
		bottom, err := matrix.Kron(id, diff)
		if err != nil {
			return nil, err
		}
		stacked, err := matrix.VStack(top, bottom)
		if err != nil {
			return nil, err
		}
		if h, err = matrix.Scale(stacked, scale); err != nil {
			return nil, err
		}
	}

	return h, nil
}
