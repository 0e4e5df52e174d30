// SPDX-License-Identifier: MIT
// File: simulate.go
// Role: statevector application of circuit operations.
// Bit layout:
//   - wires[p] ↔ bit (n-1-p) of the amplitude index (wires[0] is the MSB).
//   - A kernel's own index is big-endian over LocalUnitary.On.
// Determinism:
//   - Fixed loop orders; no map iteration on the hot path.

package verify

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/matrix"
)

// layout maps wires to amplitude bit masks.
type layout struct {
	n    int
	mask map[circuit.Wire]int
}

func newLayout(wires circuit.Wires) (layout, error) {
	if err := wires.Validate(); err != nil {
		return layout{}, err
	}
	l := layout{n: len(wires), mask: make(map[circuit.Wire]int, len(wires))}
	for p, w := range wires {
		l.mask[w] = 1 << (l.n - 1 - p)
	}

	return l, nil
}

// maskOf ORs the masks of ws; an unknown wire is a dimension mismatch.
func (l layout) maskOf(ws circuit.Wires) (int, error) {
	var m int
	for _, w := range ws {
		b, ok := l.mask[w]
		if !ok {
			return 0, fmt.Errorf("wire %d not in register: %w", w, circuit.ErrDimensionMismatch)
		}
		m |= b
	}

	return m, nil
}

// ApplyState returns dec applied to a copy of state on wires.
//
// Errors: circuit.ErrDimensionMismatch when len(state) != 2^len(wires) or an
// operation touches a wire outside wires; ErrTooLarge above DefaultMaxQubits;
// ErrUnsupported for unknown operation types.
func ApplyState(state []complex128, dec circuit.Decomposition, wires circuit.Wires) ([]complex128, error) {
	if len(wires) > DefaultMaxQubits {
		return nil, fmt.Errorf("ApplyState(%d wires): %w", len(wires), ErrTooLarge)
	}
	l, err := newLayout(wires)
	if err != nil {
		return nil, fmt.Errorf("ApplyState: %w", err)
	}
	if len(state) != 1<<l.n {
		return nil, fmt.Errorf("ApplyState: state length %d for %d wires: %w", len(state), l.n, circuit.ErrDimensionMismatch)
	}
	out := make([]complex128, len(state))
	copy(out, state)
	if err = l.applyAll(out, dec, 0); err != nil {
		return nil, fmt.Errorf("ApplyState: %w", err)
	}

	return out, nil
}

// Simulate returns the 2ⁿ×2ⁿ matrix of dec by applying it to every basis vector.
// Complexity: O(4ⁿ·len(flat dec)).
func Simulate(dec circuit.Decomposition, wires circuit.Wires) (*matrix.Dense, error) {
	if len(wires) > DefaultMaxQubits {
		return nil, fmt.Errorf("Simulate(%d wires): %w", len(wires), ErrTooLarge)
	}

	return simulate(dec, wires)
}

// simulate is Simulate without the size ceiling; the Builder applies its own.
func simulate(dec circuit.Decomposition, wires circuit.Wires) (*matrix.Dense, error) {
	l, err := newLayout(wires)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	if l.n < 1 {
		return nil, fmt.Errorf("Simulate: %w", circuit.ErrDomain)
	}
	size := 1 << l.n
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}
	state := make([]complex128, size)
	for col := 0; col < size; col++ {
		clear(state)
		state[col] = 1
		if err = l.applyAll(state, dec, 0); err != nil {
			return nil, fmt.Errorf("Simulate: column %d: %w", col, err)
		}
		if err = m.SetCol(col, state); err != nil {
			return nil, fmt.Errorf("Simulate: %w", err)
		}
	}

	return m, nil
}

func (l layout) applyAll(state []complex128, dec circuit.Decomposition, ctrl int) error {
	for i, op := range dec {
		if err := l.apply(state, op, ctrl); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}

	return nil
}

// apply runs op on the subspace where every bit in ctrl is 0.
func (l layout) apply(state []complex128, op circuit.Operation, ctrl int) error {
	switch v := op.(type) {
	case nil:
		return circuit.ErrNilOperation
	case circuit.Swap:
		ma, err := l.maskOf(circuit.Wires{v.A})
		if err != nil {
			return err
		}
		mb, err := l.maskOf(circuit.Wires{v.B})
		if err != nil {
			return err
		}
		if ma == mb || (ma|mb)&ctrl != 0 {
			return fmt.Errorf("swap(%d,%d): %w", v.A, v.B, circuit.ErrDuplicateWire)
		}
		for i := range state {
			if i&ctrl == 0 && i&ma != 0 && i&mb == 0 {
				j := (i &^ ma) | mb
				state[i], state[j] = state[j], state[i]
			}
		}

		return nil
	case circuit.LocalUnitary:
		return l.applyKernel(state, v, ctrl)
	case circuit.Controlled:
		cm, err := l.maskOf(v.Controls)
		if err != nil {
			return err
		}

		return l.apply(state, v.Target, ctrl|cm)
	case circuit.Block:
		return l.applyAll(state, v.Body, ctrl)
	default:
		return fmt.Errorf("%T: %w", op, ErrUnsupported)
	}
}

// applyKernel gathers the 2^k amplitudes of each target block, multiplies by
// the kernel matrix and scatters them back.
func (l layout) applyKernel(state []complex128, u circuit.LocalUnitary, ctrl int) error {
	k := len(u.On)
	if u.Kernel.Matrix == nil || u.Kernel.Arity() != k {
		return fmt.Errorf("kernel %s on %d wires: %w", u.Kernel.Name, k, ErrUnsupported)
	}
	bits := make([]int, k)
	var tmask int
	for t, w := range u.On {
		b, err := l.maskOf(circuit.Wires{w})
		if err != nil {
			return err
		}
		if tmask&b != 0 || ctrl&b != 0 {
			return fmt.Errorf("kernel %s wire %d: %w", u.Kernel.Name, w, circuit.ErrDuplicateWire)
		}
		bits[t] = b
		tmask |= b
	}

	d := 1 << k
	mat := make([]complex128, d*d)
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			v, err := u.Kernel.Matrix.At(r, c)
			if err != nil {
				return err
			}
			mat[r*d+c] = v
		}
	}
	// offset[r] spreads kernel index r over the target bits, On[0] as MSB.
	offset := make([]int, d)
	for r := 0; r < d; r++ {
		for t := 0; t < k; t++ {
			if (r>>(k-1-t))&1 == 1 {
				offset[r] |= bits[t]
			}
		}
	}

	in := make([]complex128, d)
	for base := range state {
		if base&tmask != 0 || base&ctrl != 0 {
			continue
		}
		for r := 0; r < d; r++ {
			in[r] = state[base|offset[r]]
		}
		for r := 0; r < d; r++ {
			var acc complex128
			for c := 0; c < d; c++ {
				acc += mat[r*d+c] * in[c]
			}
			state[base|offset[r]] = acc
		}
	}

	return nil
}
