// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// Decomposition is an ordered, time-ordered list of operations:
// element 0 is applied first.
type Decomposition []Operation

// Validate reports the first nil operation.
func (d Decomposition) Validate() error {
	for i, op := range d {
		if op == nil {
			return fmt.Errorf("Decomposition.Validate: op %d: %w", i, ErrNilOperation)
		}
	}

	return nil
}

// Adjoint returns the inverse decomposition: reversed order, each operation
// replaced by its adjoint.
// Complexity: O(len(d)) plus the cost of each operation's Adjoint.
func (d Decomposition) Adjoint() Decomposition {
	if d == nil {
		return nil
	}
	out := make(Decomposition, len(d))
	for i, op := range d {
		out[len(d)-1-i] = op.Adjoint()
	}

	return out
}

// Flatten expands every Block recursively. Controls around a block are
// pushed onto each body operation, and nested controls are merged (outer
// controls first), so the result contains only LocalUnitary, Swap and
// Controlled-of-leaf operations.
func (d Decomposition) Flatten() Decomposition {
	out := make(Decomposition, 0, len(d))
	for _, op := range d {
		out = flattenInto(out, nil, op)
	}

	return out
}

// flattenInto appends the leaves of op, carrying the accumulated controls.
func flattenInto(out Decomposition, controls Wires, op Operation) Decomposition {
	switch v := op.(type) {
	case Block:
		for _, inner := range v.Body {
			out = flattenInto(out, controls, inner)
		}
	case Controlled:
		out = flattenInto(out, controls.Concat(v.Controls), v.Target)
	default:
		if len(controls) == 0 {
			out = append(out, op)
		} else {
			out = append(out, Controlled{Controls: controls, Target: op})
		}
	}

	return out
}

// Counts returns the histogram of top-level operation names.
func (d Decomposition) Counts() Counts {
	c := make(Counts)
	for _, op := range d {
		c.Add(op.Name(), 1)
	}

	return c
}

// Wires returns every touched wire in first-appearance order.
func (d Decomposition) Wires() Wires {
	seen := make(map[Wire]struct{})
	var out Wires
	for _, op := range d {
		for _, w := range op.Wires() {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}

	return out
}
