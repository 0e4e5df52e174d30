package wavelet_test

import (
	"fmt"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/wavelet"
)

// ExampleHaar prints the operation names of the two-wire Haar circuit.
func ExampleHaar() {
	dec, err := wavelet.Haar{}.Decompose(circuit.Wires{0, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, op := range dec {
		fmt.Println(op.Name(), op.Wires())
	}
	// Output:
	// Hadamard [1]
	// PerfectShuffle [0 1]
	// Controlled(Hadamard) [0 1]
	// Controlled(PerfectShuffle) [0 1]
}
