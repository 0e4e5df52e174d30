// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/kernel"
	"github.com/katalvlaran/qwt/permute"
)

// Haar is the exact multiscale Haar decomposition. It realizes
//
//	H₁ = Hadamard,  Hₙ = vstack(Hₙ₋₁ ⊗ [1 1], I ⊗ [1 −1]) / √2
//
// using Hₙ = (Hₙ₋₁ ⊕ I)·Π·(I ⊗ H): the detail band is finished after one
// stage and only the approximation band (dropped wires all |0⟩) recurses.
//
// Stage L (window W = w[L:], controls C = w[:L]):
//  1. Hadamard on W[last], zero-controlled by C.
//  2. PerfectShuffle block over W, zero-controlled by C.
//
// Counts: Hadamard 1, Controlled(Hadamard) n−1, PerfectShuffle 1,
// Controlled(PerfectShuffle) n−1.
type Haar struct{}

func (Haar) Name() string  { return NameHaar }
func (Haar) MinWires() int { return 1 }

// Decompose emits 2n operations for n wires.
func (h Haar) Decompose(wires circuit.Wires) (circuit.Decomposition, error) {
	if err := checkInput(NameHaar, h.MinWires(), wires); err != nil {
		return nil, err
	}
	had := kernel.Hadamard()
	out := make(circuit.Decomposition, 0, 2*len(wires))
	win := newWindow(wires)
	for stage := 0; win.size() > 0; stage++ {
		controls := wires[:stage]

		local := circuit.LocalUnitary{Kernel: had, On: circuit.Wires{win.last()}}
		op, err := circuit.NewControlled(controls, local)
		if err != nil {
			return nil, fmt.Errorf("%s: stage %d: %w", NameHaar, stage, err)
		}
		out = append(out, op)

		blk, err := permute.ShuffleBlock(win.wires)
		if err != nil {
			return nil, fmt.Errorf("%s: stage %d: %w", NameHaar, stage, err)
		}
		if op, err = circuit.NewControlled(controls, blk); err != nil {
			return nil, fmt.Errorf("%s: stage %d: %w", NameHaar, stage, err)
		}
		out = append(out, op)

		win = win.dropLeading()
	}

	return out, nil
}

// HaarLayered applies, per stage L = 0…n−1, a Hadamard to every wire of the
// window w[L:] followed by a PerfectShuffle block over the full wire set.
// It is unitary but differs from the Haar matrix for n ≥ 2.
//
// Counts: Hadamard n(n+1)/2, PerfectShuffle n.
type HaarLayered struct{}

func (HaarLayered) Name() string  { return NameHaarLayered }
func (HaarLayered) MinWires() int { return 1 }

func (h HaarLayered) Decompose(wires circuit.Wires) (circuit.Decomposition, error) {
	if err := checkInput(NameHaarLayered, h.MinWires(), wires); err != nil {
		return nil, err
	}
	n := len(wires)
	had := kernel.Hadamard()
	out := make(circuit.Decomposition, 0, n*(n+1)/2+n)
	for win := newWindow(wires); win.size() > 0; win = win.dropLeading() {
		for _, w := range win.wires {
			out = append(out, circuit.LocalUnitary{Kernel: had, On: circuit.Wires{w}})
		}
		blk, err := permute.ShuffleBlock(wires)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", NameHaarLayered, err)
		}
		out = append(out, blk)
	}

	return out, nil
}
