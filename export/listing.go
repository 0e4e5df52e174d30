// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qwt/circuit"
)

// Listing renders dec one operation per line, children indented by two spaces:
//
//	Hadamard on=[2]
//	PerfectShuffle on=[0 1 2]
//	  Swap on=[1 2]
//	  Swap on=[0 1]
//	Controlled ctrl=[0]
//	  Hadamard on=[2]
//
// Output is deterministic and ends with a newline for non-empty input.
func Listing(dec circuit.Decomposition) string {
	var sb strings.Builder
	for _, op := range dec {
		writeOp(&sb, op, 0)
	}

	return sb.String()
}

func writeOp(sb *strings.Builder, op circuit.Operation, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch v := op.(type) {
	case circuit.Controlled:
		fmt.Fprintf(sb, "Controlled ctrl=%v\n", v.Controls)
		writeOp(sb, v.Target, depth+1)
	case circuit.Block:
		fmt.Fprintf(sb, "%s on=%v\n", v.Label, v.On)
		for _, inner := range v.Body {
			writeOp(sb, inner, depth+1)
		}
	case nil:
		sb.WriteString("<nil>\n")
	default:
		fmt.Fprintf(sb, "%s on=%v\n", op.Name(), op.Wires())
	}
}
