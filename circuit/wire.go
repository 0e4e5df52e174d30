// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/samber/lo"
)

// Wire is an opaque qubit label. Hosts with symbolic labels map them to
// ordinals in their own adapter.
type Wire int

// Wires is an ordered wire list. Position defines significance: the wire at
// index p corresponds to bit (n-1-p) of a basis index, so index 0 is the MSB.
type Wires []Wire

// Range returns the wires 0..n-1 in order. n <= 0 yields an empty list.
func Range(n int) Wires {
	if n <= 0 {
		return Wires{}
	}

	return lo.Map(lo.Range(n), func(i int, _ int) Wire { return Wire(i) })
}

// Validate rejects negative labels (ErrInvalidWire) and repeats (ErrDuplicateWire).
// Complexity: O(n).
func (ws Wires) Validate() error {
	for _, w := range ws {
		if w < 0 {
			return fmt.Errorf("Wires.Validate(%d): %w", w, ErrInvalidWire)
		}
	}
	if dups := lo.FindDuplicates(ws); len(dups) > 0 {
		return fmt.Errorf("Wires.Validate(%d): %w", dups[0], ErrDuplicateWire)
	}

	return nil
}

// Index returns the position of w, or -1 if absent.
func (ws Wires) Index(w Wire) int {
	for i, x := range ws {
		if x == w {
			return i
		}
	}

	return -1
}

// Contains reports whether w is in the list.
func (ws Wires) Contains(w Wire) bool { return ws.Index(w) >= 0 }

// Clone returns an independent copy; nil stays nil.
func (ws Wires) Clone() Wires {
	if ws == nil {
		return nil
	}
	out := make(Wires, len(ws))
	copy(out, ws)

	return out
}

// Concat returns ws followed by other as a fresh slice.
func (ws Wires) Concat(other Wires) Wires {
	out := make(Wires, 0, len(ws)+len(other))
	out = append(out, ws...)

	return append(out, other...)
}
