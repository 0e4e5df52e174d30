// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/qwt"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/kernel"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind indicates a node kind other than unitary, swap, controlled or block.
	ErrUnknownKind = errors.New("export: unknown node kind")

	// ErrUnknownKernel indicates a unitary node whose kernel name does not resolve.
	ErrUnknownKernel = errors.New("export: unknown kernel")

	// ErrMalformed indicates a document that parses but does not describe a valid circuit.
	ErrMalformed = errors.New("export: malformed document")
)

// Node kinds.
const (
	KindUnitary    = "unitary"
	KindSwap       = "swap"
	KindControlled = "controlled"
	KindBlock      = "block"
)

// Document is the serialized form of one decomposition.
type Document struct {
	Operator   string `yaml:"operator"`
	Wires      []int  `yaml:"wires"`
	Operations []Node `yaml:"operations"`
}

// Node is one operation. Name is the kernel name (unitary) or block label;
// Wires are the target wires; Controlled nodes carry Controls and Target;
// blocks carry Body.
type Node struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name,omitempty"`
	Wires    []int  `yaml:"wires,omitempty"`
	Controls []int  `yaml:"controls,omitempty"`
	Target   *Node  `yaml:"target,omitempty"`
	Body     []Node `yaml:"body,omitempty"`
}

func toInts(ws circuit.Wires) []int {
	return lo.Map(ws, func(w circuit.Wire, _ int) int { return int(w) })
}

func toWires(xs []int) circuit.Wires {
	return lo.Map(xs, func(x int, _ int) circuit.Wire { return circuit.Wire(x) })
}

// Encode serializes dec, produced by op on wires, as YAML.
// Errors: ErrUnknownKind for operation types outside the circuit package.
func Encode(op qwt.Operator, wires circuit.Wires, dec circuit.Decomposition) ([]byte, error) {
	nodes, err := encodeAll(dec)
	if err != nil {
		return nil, fmt.Errorf("Encode(%s): %w", op, err)
	}
	doc := Document{Operator: op.String(), Wires: toInts(wires), Operations: nodes}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("Encode(%s): %w", op, err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("Encode(%s): %w", op, err)
	}

	return buf.Bytes(), nil
}

func encodeAll(dec circuit.Decomposition) ([]Node, error) {
	out := make([]Node, 0, len(dec))
	for i, op := range dec {
		n, err := encodeNode(op)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		out = append(out, n)
	}

	return out, nil
}

func encodeNode(op circuit.Operation) (Node, error) {
	switch v := op.(type) {
	case circuit.LocalUnitary:
		return Node{Kind: KindUnitary, Name: v.Kernel.Name, Wires: toInts(v.On)}, nil
	case circuit.Swap:
		return Node{Kind: KindSwap, Wires: []int{int(v.A), int(v.B)}}, nil
	case circuit.Controlled:
		target, err := encodeNode(v.Target)
		if err != nil {
			return Node{}, err
		}

		return Node{Kind: KindControlled, Controls: toInts(v.Controls), Target: &target}, nil
	case circuit.Block:
		body, err := encodeAll(v.Body)
		if err != nil {
			return Node{}, fmt.Errorf("block %s: %w", v.Label, err)
		}

		return Node{Kind: KindBlock, Name: v.Label, Wires: toInts(v.On), Body: body}, nil
	default:
		return Node{}, fmt.Errorf("%T: %w", op, ErrUnknownKind)
	}
}

// Decode parses a document produced by Encode. Unknown YAML fields are
// rejected. Kernels resolve through lib.
//
// Errors: ErrMalformed (bad YAML, unknown operator, invalid wires),
// ErrUnknownKind, ErrUnknownKernel.
func Decode(data []byte, lib *kernel.Library) (Document, circuit.Decomposition, error) {
	var doc Document
	yd := yaml.NewDecoder(bytes.NewReader(data))
	yd.KnownFields(true)
	if err := yd.Decode(&doc); err != nil {
		return Document{}, nil, fmt.Errorf("Decode: %w: %w", ErrMalformed, err)
	}
	if _, err := qwt.ParseOperator(doc.Operator); err != nil {
		return Document{}, nil, fmt.Errorf("Decode: %w: %w", ErrMalformed, err)
	}
	wires := toWires(doc.Wires)
	if err := wires.Validate(); err != nil {
		return Document{}, nil, fmt.Errorf("Decode: %w: %w", ErrMalformed, err)
	}
	dec, err := decodeAll(doc.Operations, lib)
	if err != nil {
		return Document{}, nil, fmt.Errorf("Decode: %w", err)
	}
	for _, w := range dec.Wires() {
		if !wires.Contains(w) {
			return Document{}, nil, fmt.Errorf("Decode: wire %d not declared: %w", w, ErrMalformed)
		}
	}

	return doc, dec, nil
}

func decodeAll(nodes []Node, lib *kernel.Library) (circuit.Decomposition, error) {
	out := make(circuit.Decomposition, 0, len(nodes))
	for i := range nodes {
		op, err := decodeNode(&nodes[i], lib)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		out = append(out, op)
	}

	return out, nil
}

func decodeNode(n *Node, lib *kernel.Library) (circuit.Operation, error) {
	switch n.Kind {
	case KindUnitary:
		k, err := lib.Lookup(n.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownKernel, err)
		}
		u, err := circuit.NewLocalUnitary(k, toWires(n.Wires)...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return u, nil
	case KindSwap:
		if len(n.Wires) != 2 {
			return nil, fmt.Errorf("swap with %d wires: %w", len(n.Wires), ErrMalformed)
		}
		s, err := circuit.NewSwap(circuit.Wire(n.Wires[0]), circuit.Wire(n.Wires[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return s, nil
	case KindControlled:
		if n.Target == nil {
			return nil, fmt.Errorf("controlled without target: %w", ErrMalformed)
		}
		target, err := decodeNode(n.Target, lib)
		if err != nil {
			return nil, err
		}
		op, err := circuit.NewControlled(toWires(n.Controls), target)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return op, nil
	case KindBlock:
		body, err := decodeAll(n.Body, lib)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", n.Name, err)
		}
		b, err := circuit.NewBlock(n.Name, toWires(n.Wires), body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return b, nil
	default:
		return nil, fmt.Errorf("%q: %w", n.Kind, ErrUnknownKind)
	}
}
