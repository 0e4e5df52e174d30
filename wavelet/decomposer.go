// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
)

// Decomposer turns an ordered wire list into a circuit for one transform.
// Implementations are pure and safe for concurrent use.
type Decomposer interface {
	// Name is the operator name, e.g. "Haar".
	Name() string

	// MinWires is the smallest supported wire count.
	MinWires() int

	// Decompose returns the time-ordered circuit on wires (wires[0] = MSB).
	// On error the decomposition is nil.
	Decompose(wires circuit.Wires) (circuit.Decomposition, error)
}

// Strategy names.
const (
	NameHaar        = "Haar"
	NameHaarLayered = "HaarLayered"
	NameD4          = "D4"
	NameD4Single    = "D4Single"
)

// All returns every strategy in a fixed order.
func All() []Decomposer {
	return []Decomposer{Haar{}, HaarLayered{}, D4{}, D4Single{}}
}

// Inverse returns the adjoint of d's decomposition on wires.
func Inverse(d Decomposer, wires circuit.Wires) (circuit.Decomposition, error) {
	dec, err := d.Decompose(wires)
	if err != nil {
		return nil, err
	}

	return dec.Adjoint(), nil
}

// checkInput validates wires and the minimum size of strategy name.
func checkInput(name string, minWires int, wires circuit.Wires) error {
	if len(wires) < minWires {
		return fmt.Errorf("%s: %d wires, need at least %d: %w", name, len(wires), minWires, circuit.ErrDomain)
	}
	if err := wires.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}
