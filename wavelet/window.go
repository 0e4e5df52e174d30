// SPDX-License-Identifier: MIT

package wavelet

import (
	"github.com/katalvlaran/qwt/circuit"
	"github.com/samber/lo"
)

// window is the active wire set of a multiresolution stage. It is created
// per Decompose call and only ever shrinks.
type window struct {
	wires circuit.Wires
}

func newWindow(ws circuit.Wires) window { return window{wires: ws.Clone()} }

func (w window) size() int { return len(w.wires) }

// last returns the least significant wire of the window.
func (w window) last() circuit.Wire { return w.wires[len(w.wires)-1] }

// dropLeading removes the most significant wire.
func (w window) dropLeading() window { return window{wires: w.wires[1:]} }

// evenHalf keeps the entries at even positions; an odd tail is retained, so
// the size becomes ⌈size/2⌉.
func (w window) evenHalf() window {
	return window{wires: lo.Filter(w.wires, func(_ circuit.Wire, i int) bool { return i%2 == 0 })}
}

// pairs returns (w0,w1), (w2,w3), …; an odd tail wire is left out.
func (w window) pairs() [][2]circuit.Wire {
	out := make([][2]circuit.Wire, 0, len(w.wires)/2)
	for i := 0; i+1 < len(w.wires); i += 2 {
		out = append(out, [2]circuit.Wire{w.wires[i], w.wires[i+1]})
	}

	return out
}
