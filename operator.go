// SPDX-License-Identifier: MIT

package qwt

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/permute"
	"github.com/katalvlaran/qwt/resource"
	"github.com/katalvlaran/qwt/wavelet"
)

// Operator selects one of the supported transforms.
type Operator int

const (
	PerfectShuffle Operator = iota
	BitReversal
	Haar
	HaarLayered
	D4
	D4Single
)

// operatorNames is indexed by Operator.
var operatorNames = [...]string{
	PerfectShuffle: permute.LabelShuffle,
	BitReversal:    permute.LabelReversal,
	Haar:           wavelet.NameHaar,
	HaarLayered:    wavelet.NameHaarLayered,
	D4:             wavelet.NameD4,
	D4Single:       wavelet.NameD4Single,
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	return []Operator{PerfectShuffle, BitReversal, Haar, HaarLayered, D4, D4Single}
}

// String returns the operator name used in resource counts and documents.
func (op Operator) String() string {
	if op.valid() {
		return operatorNames[op]
	}

	return fmt.Sprintf("Operator(%d)", int(op))
}

func (op Operator) valid() bool { return op >= PerfectShuffle && op <= D4Single }

// ParseOperator resolves a name case-insensitively.
// Errors: circuit.ErrDomain for an unknown name.
func ParseOperator(s string) (Operator, error) {
	for _, op := range Operators() {
		if strings.EqualFold(s, operatorNames[op]) {
			return op, nil
		}
	}

	return 0, fmt.Errorf("ParseOperator(%q): %w", s, circuit.ErrDomain)
}

// MinWires is the smallest wire count op accepts.
func (op Operator) MinWires() int {
	if op == D4 || op == D4Single {
		return 2
	}

	return 1
}

// decomposer returns the wavelet strategy of op, or nil for permutations.
func (op Operator) decomposer() wavelet.Decomposer {
	switch op {
	case Haar:
		return wavelet.Haar{}
	case HaarLayered:
		return wavelet.HaarLayered{}
	case D4:
		return wavelet.D4{}
	case D4Single:
		return wavelet.D4Single{}
	default:
		return nil
	}
}

// Decompose returns the time-ordered circuit of op on wires.
// PerfectShuffle and BitReversal return bare swap chains.
//
// Errors: circuit.ErrDomain (unknown operator, too few wires) and wire
// validation errors. On error the decomposition is nil.
func Decompose(op Operator, wires circuit.Wires) (circuit.Decomposition, error) {
	switch op {
	case PerfectShuffle:
		return permute.PerfectShuffle(wires)
	case BitReversal:
		return permute.BitReversal(wires)
	}
	d := op.decomposer()
	if d == nil {
		return nil, fmt.Errorf("Decompose(%s): %w", op, circuit.ErrDomain)
	}

	return d.Decompose(wires)
}

// Estimate returns the closed-form resource report of op on n wires.
func Estimate(op Operator, n int) (resource.Report, error) {
	if !op.valid() {
		return resource.Report{}, fmt.Errorf("Estimate(%s): %w", op, circuit.ErrDomain)
	}

	return resource.Estimate(op.String(), n)
}
