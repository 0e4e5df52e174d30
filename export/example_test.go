package export_test

import (
	"fmt"

	"github.com/katalvlaran/qwt"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/export"
)

// ExampleListing prints the two-wire D4 circuit.
func ExampleListing() {
	dec, _ := qwt.Decompose(qwt.D4, circuit.Range(2))
	fmt.Print(export.Listing(dec))
	// Output:
	// UD4 on=[0 1]
	// PerfectShuffle on=[0 1]
	//   Swap on=[0 1]
}
