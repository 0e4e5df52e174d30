// SPDX-License-Identifier: MIT

package circuit

import "errors"

// Sentinel errors for operation construction and decomposition requests.
// Call sites wrap them with fmt.Errorf("Op(ctx): %w", err); match with errors.Is.
var (
	// ErrDomain indicates a request outside an operator's defined domain,
	// e.g. zero wires, or fewer than two wires for D4.
	ErrDomain = errors.New("circuit: request outside operator domain")

	// ErrDimensionMismatch indicates that a wire count or matrix shape does not
	// match what the operation or kernel expects.
	ErrDimensionMismatch = errors.New("circuit: dimension mismatch")

	// ErrInvalidWire indicates a negative wire label.
	ErrInvalidWire = errors.New("circuit: invalid wire label")

	// ErrDuplicateWire indicates a wire listed twice where distinct wires are required.
	ErrDuplicateWire = errors.New("circuit: duplicate wire")

	// ErrNilOperation indicates a nil Operation inside a composite.
	ErrNilOperation = errors.New("circuit: nil operation")
)
