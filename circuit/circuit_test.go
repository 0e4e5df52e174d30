// SPDX-License-Identifier: MIT

package circuit_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustKernel builds a kernel from real rows or fails the test.
func mustKernel(t *testing.T, name string, rows [][]float64) circuit.Kernel {
	t.Helper()
	m, err := matrix.NewFromReal(rows)
	require.NoError(t, err)
	k, err := circuit.NewKernel(name, m)
	require.NoError(t, err)

	return k
}

func hadamard(t *testing.T) circuit.Kernel {
	s := 1 / math.Sqrt2

	return mustKernel(t, "Hadamard", [][]float64{{s, s}, {s, -s}})
}

// rotation is a real, non-symmetric 4×4 (a cyclic shift) used to exercise adjoint naming.
func rotation(t *testing.T) circuit.Kernel {
	return mustKernel(t, "Shift", [][]float64{
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	})
}

func TestWires_Validate(t *testing.T) {
	require.NoError(t, circuit.Wires{0, 3, 1}.Validate())
	require.NoError(t, circuit.Wires{}.Validate())
	assert.ErrorIs(t, circuit.Wires{0, -1}.Validate(), circuit.ErrInvalidWire)
	assert.ErrorIs(t, circuit.Wires{2, 1, 2}.Validate(), circuit.ErrDuplicateWire)
}

func TestRange(t *testing.T) {
	assert.Empty(t, cmp.Diff(circuit.Wires{0, 1, 2, 3}, circuit.Range(4)))
	assert.Empty(t, circuit.Range(0))
}

func TestNewKernel_Shape(t *testing.T) {
	m, _ := matrix.NewDense(3, 3)
	_, err := circuit.NewKernel("bad", m)
	assert.ErrorIs(t, err, circuit.ErrDimensionMismatch)

	_, err = circuit.NewKernel("nil", nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	assert.Equal(t, 1, hadamard(t).Arity())
	assert.Equal(t, 2, rotation(t).Arity())
}

func TestKernel_Adjoint(t *testing.T) {
	h := hadamard(t)
	assert.Equal(t, "Hadamard", h.Adjoint().Name, "Hermitian kernels are self-adjoint")

	r := rotation(t)
	ra := r.Adjoint()
	assert.Equal(t, "Shift†", ra.Name)
	assert.Equal(t, "Shift", ra.Adjoint().Name)

	prod, err := matrix.Mul(ra.Matrix, r.Matrix)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(4)
	assert.True(t, prod.Equal(id))
}

func TestNewLocalUnitary_Arity(t *testing.T) {
	_, err := circuit.NewLocalUnitary(hadamard(t), 0, 1)
	assert.ErrorIs(t, err, circuit.ErrDimensionMismatch)

	_, err = circuit.NewLocalUnitary(rotation(t), 1, 1)
	assert.ErrorIs(t, err, circuit.ErrDuplicateWire)

	u, err := circuit.NewLocalUnitary(rotation(t), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "Shift", u.Name())
	assert.Empty(t, cmp.Diff(circuit.Wires{2, 5}, u.Wires()))
	assert.Equal(t, "Shift†", u.Adjoint().Name())
}

func TestSwap(t *testing.T) {
	_, err := circuit.NewSwap(1, 1)
	assert.ErrorIs(t, err, circuit.ErrDuplicateWire)

	s, err := circuit.NewSwap(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "Swap", s.Name())
	assert.Equal(t, s, s.Adjoint())
}

func TestNewControlled(t *testing.T) {
	u, _ := circuit.NewLocalUnitary(hadamard(t), 2)

	op, err := circuit.NewControlled(nil, u)
	require.NoError(t, err)
	assert.Equal(t, u, op, "empty controls return the target")

	op, err = circuit.NewControlled(circuit.Wires{0, 1}, u)
	require.NoError(t, err)
	assert.Equal(t, "Controlled(Hadamard)", op.Name())
	assert.Empty(t, cmp.Diff(circuit.Wires{0, 1, 2}, op.Wires()))

	_, err = circuit.NewControlled(circuit.Wires{2}, u)
	assert.ErrorIs(t, err, circuit.ErrDuplicateWire)

	_, err = circuit.NewControlled(circuit.Wires{0}, nil)
	assert.ErrorIs(t, err, circuit.ErrNilOperation)
}

func TestNewBlock_WireContainment(t *testing.T) {
	s, _ := circuit.NewSwap(0, 3)
	_, err := circuit.NewBlock("B", circuit.Wires{0, 1}, circuit.Decomposition{s})
	assert.ErrorIs(t, err, circuit.ErrDimensionMismatch)

	_, err = circuit.NewBlock("B", circuit.Wires{0, 1}, circuit.Decomposition{nil})
	assert.ErrorIs(t, err, circuit.ErrNilOperation)
}

// shuffleLike builds a 3-wire block of two swaps for the composite tests.
func shuffleLike(t *testing.T, ws circuit.Wires) circuit.Block {
	t.Helper()
	s1, err := circuit.NewSwap(ws[1], ws[2])
	require.NoError(t, err)
	s2, err := circuit.NewSwap(ws[0], ws[1])
	require.NoError(t, err)
	b, err := circuit.NewBlock("PerfectShuffle", ws, circuit.Decomposition{s1, s2})
	require.NoError(t, err)

	return b
}

func TestDecomposition_Adjoint(t *testing.T) {
	u, _ := circuit.NewLocalUnitary(rotation(t), 0, 1)
	b := shuffleLike(t, circuit.Wires{0, 1, 2})
	d := circuit.Decomposition{u, b}

	adj := d.Adjoint()
	require.Len(t, adj, 2)
	assert.Equal(t, "PerfectShuffle†", adj[0].Name())
	assert.Equal(t, "Shift†", adj[1].Name())

	inner := adj[0].(circuit.Block).Body
	assert.Equal(t, circuit.Swap{A: 0, B: 1}, inner[0], "block body is reversed")
	assert.Equal(t, circuit.Swap{A: 1, B: 2}, inner[1])

	assert.Nil(t, circuit.Decomposition(nil).Adjoint())
}

func TestDecomposition_FlattenAndCounts(t *testing.T) {
	u, _ := circuit.NewLocalUnitary(hadamard(t), 3)
	ch, _ := circuit.NewControlled(circuit.Wires{0}, u)
	inner, _ := circuit.NewControlled(circuit.Wires{1}, shuffleLike(t, circuit.Wires{2, 3, 4}))
	outer := circuit.Block{Label: "Stage", On: circuit.Wires{0, 1, 2, 3, 4}, Body: circuit.Decomposition{inner}}
	cOuter, err := circuit.NewControlled(nil, outer)
	require.NoError(t, err)
	d := circuit.Decomposition{u, ch, cOuter}

	want := circuit.Counts{"Hadamard": 1, "Controlled(Hadamard)": 1, "Stage": 1}
	assert.Empty(t, cmp.Diff(want, d.Counts()))

	flat := d.Flatten()
	wantFlat := circuit.Counts{"Hadamard": 1, "Controlled(Hadamard)": 1, "Controlled(Swap)": 2}
	assert.Empty(t, cmp.Diff(wantFlat, flat.Counts()))

	last := flat[len(flat)-1].(circuit.Controlled)
	assert.Empty(t, cmp.Diff(circuit.Wires{1}, last.Controls))
	assert.Equal(t, circuit.Swap{A: 2, B: 3}, last.Target)

	assert.Empty(t, cmp.Diff(circuit.Wires{3, 0, 1, 2, 4}, d.Wires()))
}

func TestDecomposition_FlattenMergesControls(t *testing.T) {
	s, _ := circuit.NewSwap(2, 3)
	c1, _ := circuit.NewControlled(circuit.Wires{1}, s)
	c0, _ := circuit.NewControlled(circuit.Wires{0}, c1)

	flat := circuit.Decomposition{c0}.Flatten()
	require.Len(t, flat, 1)
	got := flat[0].(circuit.Controlled)
	assert.Empty(t, cmp.Diff(circuit.Wires{0, 1}, got.Controls))
	assert.Equal(t, s, got.Target)
}

func TestCounts(t *testing.T) {
	c := circuit.Counts{}
	c.Add("Swap", 0)
	assert.Empty(t, c, "zero increments are not stored")

	c.Add("Swap", 2)
	c.Add("Hadamard", 1)
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, []string{"Hadamard", "Swap"}, c.Names())
	assert.Equal(t, "Hadamard=1 Swap=2", c.String())

	c.Add("Swap", -2)
	_, ok := c["Swap"]
	assert.False(t, ok)
	assert.True(t, c.Equal(circuit.Counts{"Hadamard": 1}))
	assert.False(t, c.Equal(circuit.Counts{"Hadamard": 2}))
}

func TestDecomposition_Validate(t *testing.T) {
	assert.ErrorIs(t, circuit.Decomposition{nil}.Validate(), circuit.ErrNilOperation)
	assert.NoError(t, circuit.Decomposition{}.Validate())
}
