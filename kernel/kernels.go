// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/matrix"
)

// Kernel names used in decompositions and resource counts.
const (
	NameHadamard = "Hadamard"
	NameC0       = "C0"
	NameC1       = "C1"
	NameUD4      = "UD4"
)

var (
	// ErrOutOfDomain indicates a reflection cosine outside [-1, 1].
	ErrOutOfDomain = errors.New("kernel: cosine outside [-1, 1]")

	// ErrUnknownKernel indicates a name the Library cannot resolve.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")
)

// D4 scaling coefficients. H0²+H1²+H2²+H3² = 1 and H0·H2 + H1·H3 = 0.
var (
	H0 = (1 + math.Sqrt(3)) / (4 * math.Sqrt2)
	H1 = (3 + math.Sqrt(3)) / (4 * math.Sqrt2)
	H2 = (3 - math.Sqrt(3)) / (4 * math.Sqrt2)
	H3 = (1 - math.Sqrt(3)) / (4 * math.Sqrt2)
)

// Reflection angles of the single-wire D4 kernels.
var (
	// Alpha = arccos((1+√3)/4) = arccos(√2·H0).
	Alpha = math.Acos((1 + math.Sqrt(3)) / 4)

	// Beta = arccos(H1). The literal (3+√3)/4 exceeds 1 and has no real arccos.
	Beta = math.Acos(H1)
)

// Hadamard returns [[1, 1], [1, −1]]/√2.
func Hadamard() circuit.Kernel {
	s := 1 / math.Sqrt2
	m, _ := matrix.NewFromReal([][]float64{{s, s}, {s, -s}})

	return circuit.Kernel{Name: NameHadamard, Matrix: m}
}

// Reflection returns the real reflection [[c, s], [s, −c]] with s = sin(arccos c).
// The result is symmetric, orthogonal and its own inverse.
//
// Errors: ErrOutOfDomain when |c| > 1 or c is NaN.
func Reflection(name string, c float64) (circuit.Kernel, error) {
	if math.IsNaN(c) || c < -1 || c > 1 {
		return circuit.Kernel{}, fmt.Errorf("Reflection(%s, %g): %w", name, c, ErrOutOfDomain)
	}
	s := math.Sin(math.Acos(c))
	m, _ := matrix.NewFromReal([][]float64{{c, s}, {s, -c}})

	return circuit.Kernel{Name: name, Matrix: m}, nil
}

// C0 is the reflection with angle Alpha.
func C0() circuit.Kernel {
	k, _ := Reflection(NameC0, (1+math.Sqrt(3))/4)

	return k
}

// C1 is the reflection with angle Beta.
func C1() circuit.Kernel {
	k, _ := Reflection(NameC1, H1)

	return k
}

// UD4 returns the orthogonal D4 pair kernel. Rows 0 and 1 are the low-pass
// filter at both shifts, rows 2 and 3 the matching high-pass filter:
//
//	[ h0  h1  h2  h3 ]
//	[ h2  h3  h0  h1 ]
//	[ h3 −h2  h1 −h0 ]
//	[ h1 −h0  h3 −h2 ]
//
// det(UD4) = +1.
func UD4() circuit.Kernel {
	m, _ := matrix.NewFromReal([][]float64{
		{H0, H1, H2, H3},
		{H2, H3, H0, H1},
		{H3, -H2, H1, -H0},
		{H1, -H0, H3, -H2},
	})

	return circuit.Kernel{Name: NameUD4, Matrix: m}
}
