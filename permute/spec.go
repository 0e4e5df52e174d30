// SPDX-License-Identifier: MIT

package permute

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/matrix"
)

// Kind selects a basis permutation.
type Kind int

const (
	// Shuffle is the perfect shuffle (cyclic right rotation of the index bits).
	Shuffle Kind = iota
	// Unshuffle is the inverse perfect shuffle.
	Unshuffle
	// Reversal reverses the index bits; it is an involution.
	Reversal
)

// MaxWires bounds N so every index fits an int shift.
const MaxWires = 62

// Block labels used when permutations appear inside wavelet stages.
const (
	LabelShuffle   = "PerfectShuffle"
	LabelUnshuffle = "PerfectShuffle†"
	LabelReversal  = "BitReversal"
)

// String returns the block label of the kind.
func (k Kind) String() string {
	switch k {
	case Shuffle:
		return LabelShuffle
	case Unshuffle:
		return LabelUnshuffle
	case Reversal:
		return LabelReversal
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec is an exact permutation of the 2^N basis indices.
type Spec struct {
	Kind Kind
	N    int
}

// NewSpec validates 1 ≤ n ≤ MaxWires and a known kind.
// Errors: circuit.ErrDomain.
func NewSpec(kind Kind, n int) (Spec, error) {
	if n < 1 || n > MaxWires {
		return Spec{}, fmt.Errorf("NewSpec(%s, %d): %w", kind, n, circuit.ErrDomain)
	}
	if kind < Shuffle || kind > Reversal {
		return Spec{}, fmt.Errorf("NewSpec(%s, %d): %w", kind, n, circuit.ErrDomain)
	}

	return Spec{Kind: kind, N: n}, nil
}

// Image returns the index that basis state i is mapped to.
func (s Spec) Image(i int) int {
	switch s.Kind {
	case Shuffle:
		return ShuffleIndex(i, s.N)
	case Unshuffle:
		return UnshuffleIndex(i, s.N)
	default:
		return ReverseIndex(i, s.N)
	}
}

// Inverse returns the inverse permutation.
func (s Spec) Inverse() Spec {
	switch s.Kind {
	case Shuffle:
		return Spec{Kind: Unshuffle, N: s.N}
	case Unshuffle:
		return Spec{Kind: Shuffle, N: s.N}
	default:
		return s
	}
}

// Table returns Image(i) for every i in [0, 2^N).
// Complexity: O(2^N) time and memory.
func (s Spec) Table() []int {
	size := 1 << s.N
	out := make([]int, size)
	for i := range size {
		out[i] = s.Image(i)
	}

	return out
}

// Matrix returns the 2^N×2^N permutation matrix P with P[Image(i), i] = 1,
// so P·|i⟩ = |Image(i)⟩.
func (s Spec) Matrix() (*matrix.Dense, error) {
	size := 1 << s.N
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("Spec.Matrix(%s, %d): %w", s.Kind, s.N, err)
	}
	for i, img := range s.Table() {
		_ = m.Set(img, i, 1)
	}

	return m, nil
}

// Swaps returns the adjacent-swap circuit that realizes the permutation on
// wires (wires[0] = most significant bit).
//
// Errors: circuit.ErrDimensionMismatch when len(wires) != N; wire validation errors.
func (s Spec) Swaps(wires circuit.Wires) (circuit.Decomposition, error) {
	if len(wires) != s.N {
		return nil, fmt.Errorf("Spec.Swaps(%s): %d wires for N=%d: %w", s.Kind, len(wires), s.N, circuit.ErrDimensionMismatch)
	}
	switch s.Kind {
	case Shuffle:
		return PerfectShuffle(wires)
	case Unshuffle:
		return PerfectUnshuffle(wires)
	default:
		return BitReversal(wires)
	}
}
