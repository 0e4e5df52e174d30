// SPDX-License-Identifier: MIT

package permute

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
)

// PerfectShuffle returns n−1 adjacent swaps that apply ShuffleIndex to the
// basis of wires. The chain starts at the tail:
// swap(w[n-2], w[n-1]), swap(w[n-3], w[n-2]), …, swap(w[0], w[1]).
//
// n = 1 yields an empty decomposition.
// Errors: circuit.ErrDomain for no wires; wire validation errors.
func PerfectShuffle(wires circuit.Wires) (circuit.Decomposition, error) {
	n := len(wires)
	if err := checkWires("PerfectShuffle", wires); err != nil {
		return nil, err
	}
	out := make(circuit.Decomposition, 0, n-1)
	for i := n - 2; i >= 0; i-- {
		out = append(out, circuit.Swap{A: wires[i], B: wires[i+1]})
	}

	return out, nil
}

// PerfectUnshuffle returns the head-first chain swap(w[0], w[1]), …,
// swap(w[n-2], w[n-1]), the inverse of PerfectShuffle.
func PerfectUnshuffle(wires circuit.Wires) (circuit.Decomposition, error) {
	n := len(wires)
	if err := checkWires("PerfectUnshuffle", wires); err != nil {
		return nil, err
	}
	out := make(circuit.Decomposition, 0, n-1)
	for i := 0; i+1 < n; i++ {
		out = append(out, circuit.Swap{A: wires[i], B: wires[i+1]})
	}

	return out, nil
}

// BitReversal returns ⌊n/2⌋ swaps pairing w[i] with w[n-1-i].
func BitReversal(wires circuit.Wires) (circuit.Decomposition, error) {
	n := len(wires)
	if err := checkWires("BitReversal", wires); err != nil {
		return nil, err
	}
	out := make(circuit.Decomposition, 0, n/2)
	for i := 0; i < n/2; i++ {
		out = append(out, circuit.Swap{A: wires[i], B: wires[n-1-i]})
	}

	return out, nil
}

// ShuffleBlock wraps PerfectShuffle(wires) in a Block labelled LabelShuffle.
func ShuffleBlock(wires circuit.Wires) (circuit.Block, error) {
	body, err := PerfectShuffle(wires)
	if err != nil {
		return circuit.Block{}, err
	}

	return circuit.Block{Label: LabelShuffle, On: wires.Clone(), Body: body}, nil
}

// checkWires enforces a non-empty, valid wire list.
func checkWires(op string, wires circuit.Wires) error {
	if len(wires) < 1 {
		return fmt.Errorf("%s: need at least 1 wire: %w", op, circuit.ErrDomain)
	}
	if err := wires.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
