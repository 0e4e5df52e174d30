// SPDX-License-Identifier: MIT

package export_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qwt"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/export"
	"github.com/katalvlaran/qwt/kernel"
	"github.com/katalvlaran/qwt/matrix"
	"github.com/katalvlaran/qwt/verify"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func mustDecompose(t *testing.T, op qwt.Operator, n int) circuit.Decomposition {
	t.Helper()
	dec, err := qwt.Decompose(op, circuit.Range(n))
	require.NoError(t, err)

	return dec
}

func TestListing_Golden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "haar_3", []byte(export.Listing(mustDecompose(t, qwt.Haar, 3))))
	g.Assert(t, "d4_4", []byte(export.Listing(mustDecompose(t, qwt.D4, 4))))
	g.Assert(t, "d4single_3", []byte(export.Listing(mustDecompose(t, qwt.D4Single, 3))))
	g.Assert(t, "haar_2_adjoint", []byte(export.Listing(mustDecompose(t, qwt.Haar, 2).Adjoint())))
}

func TestRoundTrip_PreservesCircuit(t *testing.T) {
	lib := kernel.NewLibrary()
	for _, op := range qwt.Operators() {
		for n := op.MinWires(); n <= 4; n++ {
			ws := circuit.Range(n)
			dec := mustDecompose(t, op, n)
			for _, d := range []circuit.Decomposition{dec, dec.Adjoint()} {
				data, err := export.Encode(op, ws, d)
				require.NoError(t, err)

				doc, back, err := export.Decode(data, lib)
				require.NoError(t, err, "%s n=%d\n%s", op, n, data)
				assert.Equal(t, op.String(), doc.Operator)
				assert.Empty(t, cmp.Diff(export.Listing(d), export.Listing(back)))
				assert.Empty(t, cmp.Diff(d.Counts(), back.Counts()))

				want, err := verify.Simulate(d, ws)
				require.NoError(t, err)
				got, err := verify.Simulate(back, ws)
				require.NoError(t, err)
				assert.True(t, want.Equal(got), "%s n=%d simulated matrices differ", op, n)
			}
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	lib := kernel.NewLibrary()
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"bad yaml", "operator: [", export.ErrMalformed},
		{"unknown field", "operator: Haar\nwires: [0]\noperations: []\nextra: 1\n", export.ErrMalformed},
		{"unknown operator", "operator: QFT\nwires: [0]\noperations: []\n", export.ErrMalformed},
		{"duplicate wires", "operator: Haar\nwires: [0, 0]\noperations: []\n", export.ErrMalformed},
		{"unknown kind", "operator: Haar\nwires: [0]\noperations:\n  - kind: measure\n    wires: [0]\n", export.ErrUnknownKind},
		{"unknown kernel", "operator: Haar\nwires: [0]\noperations:\n  - kind: unitary\n    name: CNOT\n    wires: [0]\n", export.ErrUnknownKernel},
		{"arity", "operator: D4\nwires: [0, 1]\noperations:\n  - kind: unitary\n    name: UD4\n    wires: [0]\n", export.ErrMalformed},
		{"swap arity", "operator: D4\nwires: [0, 1]\noperations:\n  - kind: swap\n    wires: [0]\n", export.ErrMalformed},
		{"no target", "operator: Haar\nwires: [0, 1]\noperations:\n  - kind: controlled\n    controls: [0]\n", export.ErrMalformed},
		{"undeclared wire", "operator: Haar\nwires: [0]\noperations:\n  - kind: unitary\n    name: Hadamard\n    wires: [3]\n", export.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, dec, err := export.Decode([]byte(tc.doc), lib)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, dec)
		})
	}
}

func TestDecode_KernelErrorChain(t *testing.T) {
	doc := "operator: Haar\nwires: [0]\noperations:\n  - kind: unitary\n    name: CNOT\n    wires: [0]\n"
	_, _, err := export.Decode([]byte(doc), kernel.NewLibrary())
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)
}

// foreign is an operation type the adapter does not know.
type foreign struct{}

func (foreign) Name() string                 { return "Foreign" }
func (foreign) Wires() circuit.Wires         { return circuit.Wires{0} }
func (f foreign) Adjoint() circuit.Operation { return f }

func TestEncode_UnknownOperation(t *testing.T) {
	_, err := export.Encode(qwt.Haar, circuit.Range(1), circuit.Decomposition{foreign{}})
	assert.ErrorIs(t, err, export.ErrUnknownKind)
}

func TestDecode_HandWritten(t *testing.T) {
	doc := `operator: D4
wires: [0, 1]
operations:
  - kind: unitary
    name: UD4
    wires: [0, 1]
  - kind: block
    name: PerfectShuffle
    wires: [0, 1]
    body:
      - kind: swap
        wires: [0, 1]
`
	_, dec, err := export.Decode([]byte(doc), kernel.NewLibrary())
	require.NoError(t, err)

	got, err := verify.Simulate(dec, circuit.Range(2))
	require.NoError(t, err)
	want, err := verify.NewBuilder().Simulated(qwt.D4, 2)
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, want, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}
