// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/kernel"
	"github.com/katalvlaran/qwt/permute"
)

// D4 is the multiscale Daubechies-D4 decomposition with the 4×4 pair kernel.
//
// While the window holds at least two wires:
//  1. UD4 on (w0,w1), (w2,w3), …; an odd tail wire is untouched.
//  2. PerfectShuffle block over the window.
//  3. The window keeps its even-indexed entries (size ⌈w/2⌉).
type D4 struct{}

func (D4) Name() string  { return NameD4 }
func (D4) MinWires() int { return 2 }

func (d D4) Decompose(wires circuit.Wires) (circuit.Decomposition, error) {
	if err := checkInput(NameD4, d.MinWires(), wires); err != nil {
		return nil, err
	}
	ud4 := kernel.UD4()
	var out circuit.Decomposition
	for win := newWindow(wires); win.size() >= 2; win = win.evenHalf() {
		for _, p := range win.pairs() {
			out = append(out, circuit.LocalUnitary{Kernel: ud4, On: circuit.Wires{p[0], p[1]}})
		}
		blk, err := permute.ShuffleBlock(win.wires)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", NameD4, err)
		}
		out = append(out, blk)
	}

	return out, nil
}

// D4Single is the single-wire D4 variant. For L = 0…n−2 it applies C0 to
// the even offsets and C1 to the odd offsets of the window w[L:], then a
// PerfectShuffle block over the full wire set.
type D4Single struct{}

func (D4Single) Name() string  { return NameD4Single }
func (D4Single) MinWires() int { return 2 }

func (d D4Single) Decompose(wires circuit.Wires) (circuit.Decomposition, error) {
	if err := checkInput(NameD4Single, d.MinWires(), wires); err != nil {
		return nil, err
	}
	c0, c1 := kernel.C0(), kernel.C1()
	var out circuit.Decomposition
	for win := newWindow(wires); win.size() >= 2; win = win.dropLeading() {
		for off, w := range win.wires {
			k := c0
			if off%2 == 1 {
				k = c1
			}
			out = append(out, circuit.LocalUnitary{Kernel: k, On: circuit.Wires{w}})
		}
		blk, err := permute.ShuffleBlock(wires)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", NameD4Single, err)
		}
		out = append(out, blk)
	}

	return out, nil
}
