// SPDX-License-Identifier: MIT

package verify

import "errors"

var (
	// ErrTooLarge indicates a wire count above the configured qubit ceiling.
	ErrTooLarge = errors.New("verify: wire count exceeds qubit ceiling")

	// ErrNumericTolerance indicates a built matrix whose unitarity defect exceeds eps.
	ErrNumericTolerance = errors.New("verify: numeric tolerance exceeded")

	// ErrUnsupported indicates an operation type or kernel the simulator cannot apply.
	ErrUnsupported = errors.New("verify: unsupported operation")
)
