// SPDX-License-Identifier: MIT
// File: operation.go
// Role: the elementary operation variants and their validating constructors.
// Determinism:
//   - Wires() always returns a fresh slice in a fixed order (controls first for Controlled).
//   - Adjoint() never mutates the receiver.

package circuit

import "fmt"

// Operation is one time step of a decomposition.
//
// Implementations are LocalUnitary, Swap, Controlled and Block. The set is
// closed: consumers switch on the concrete type.
type Operation interface {
	// Name is the label used for resource counting.
	Name() string

	// Wires lists every wire the operation touches.
	Wires() Wires

	// Adjoint returns the inverse operation.
	Adjoint() Operation
}

// nameSwap is the resource label of a two-wire exchange.
const nameSwap = "Swap"

// LocalUnitary applies a fixed kernel to an ordered tuple of wires. On[0] is
// the most significant bit of the kernel's index.
type LocalUnitary struct {
	Kernel Kernel
	On     Wires
}

// NewLocalUnitary validates that len(on) matches the kernel arity and that
// the wires are distinct and non-negative.
func NewLocalUnitary(k Kernel, on ...Wire) (LocalUnitary, error) {
	ws := Wires(on)
	if k.Arity() == 0 || len(ws) != k.Arity() {
		return LocalUnitary{}, fmt.Errorf("NewLocalUnitary(%s, %d wires): %w", k.Name, len(ws), ErrDimensionMismatch)
	}
	if err := ws.Validate(); err != nil {
		return LocalUnitary{}, fmt.Errorf("NewLocalUnitary(%s): %w", k.Name, err)
	}

	return LocalUnitary{Kernel: k, On: ws.Clone()}, nil
}

// Name returns the kernel name.
func (u LocalUnitary) Name() string { return u.Kernel.Name }

// Wires returns a copy of the target tuple.
func (u LocalUnitary) Wires() Wires { return u.On.Clone() }

// Adjoint applies the adjoint kernel on the same wires.
func (u LocalUnitary) Adjoint() Operation {
	return LocalUnitary{Kernel: u.Kernel.Adjoint(), On: u.On.Clone()}
}

// Swap exchanges the states of wires A and B. It is its own inverse.
type Swap struct {
	A, B Wire
}

// NewSwap rejects negative and identical wires.
func NewSwap(a, b Wire) (Swap, error) {
	if err := (Wires{a, b}).Validate(); err != nil {
		return Swap{}, fmt.Errorf("NewSwap(%d,%d): %w", a, b, err)
	}

	return Swap{A: a, B: b}, nil
}

func (s Swap) Name() string       { return nameSwap }
func (s Swap) Wires() Wires       { return Wires{s.A, s.B} }
func (s Swap) Adjoint() Operation { return s }

// Controlled applies Target only on the subspace where every control wire is |0⟩.
type Controlled struct {
	Controls Wires
	Target   Operation
}

// NewControlled wraps target with zero-controls. An empty control list
// returns target unchanged, so stage-0 code paths need no special case.
//
// Errors: ErrNilOperation for a nil target; ErrDuplicateWire when a control
// repeats or overlaps the target's wires; ErrInvalidWire for negative labels.
func NewControlled(controls Wires, target Operation) (Operation, error) {
	if target == nil {
		return nil, fmt.Errorf("NewControlled: %w", ErrNilOperation)
	}
	if len(controls) == 0 {
		return target, nil
	}
	if err := controls.Concat(target.Wires()).Validate(); err != nil {
		return nil, fmt.Errorf("NewControlled(%s): %w", target.Name(), err)
	}

	return Controlled{Controls: controls.Clone(), Target: target}, nil
}

// Name is "Controlled(" + Target.Name() + ")".
func (c Controlled) Name() string { return "Controlled(" + c.Target.Name() + ")" }

// Wires returns the controls followed by the target wires.
func (c Controlled) Wires() Wires { return c.Controls.Concat(c.Target.Wires()) }

// Adjoint keeps the controls and inverts the target.
func (c Controlled) Adjoint() Operation {
	return Controlled{Controls: c.Controls.Clone(), Target: c.Target.Adjoint()}
}

// Block is a named composite whose Body acts on On.
type Block struct {
	Label string
	On    Wires
	Body  Decomposition
}

// NewBlock checks that every body operation is non-nil and stays within on.
func NewBlock(label string, on Wires, body Decomposition) (Block, error) {
	if err := on.Validate(); err != nil {
		return Block{}, fmt.Errorf("NewBlock(%s): %w", label, err)
	}
	for i, op := range body {
		if op == nil {
			return Block{}, fmt.Errorf("NewBlock(%s): op %d: %w", label, i, ErrNilOperation)
		}
		for _, w := range op.Wires() {
			if !on.Contains(w) {
				return Block{}, fmt.Errorf("NewBlock(%s): op %d wire %d: %w", label, i, w, ErrDimensionMismatch)
			}
		}
	}

	return Block{Label: label, On: on.Clone(), Body: body}, nil
}

func (b Block) Name() string { return b.Label }
func (b Block) Wires() Wires { return b.On.Clone() }

// Adjoint inverts the body and toggles the adjoint marker on the label.
func (b Block) Adjoint() Operation {
	return Block{Label: AdjointName(b.Label), On: b.On.Clone(), Body: b.Body.Adjoint()}
}
