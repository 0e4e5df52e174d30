// SPDX-License-Identifier: MIT

package wavelet_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/wavelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposers_Domain(t *testing.T) {
	for _, d := range wavelet.All() {
		t.Run(d.Name(), func(t *testing.T) {
			dec, err := d.Decompose(circuit.Range(d.MinWires() - 1))
			assert.ErrorIs(t, err, circuit.ErrDomain)
			assert.Nil(t, dec)

			_, err = d.Decompose(circuit.Wires{0, 1, 0})
			assert.ErrorIs(t, err, circuit.ErrDuplicateWire)

			_, err = d.Decompose(circuit.Wires{0, -2, 3})
			assert.ErrorIs(t, err, circuit.ErrInvalidWire)
		})
	}
}

func TestHaar_Structure(t *testing.T) {
	ws := circuit.Wires{4, 5, 6}
	dec, err := wavelet.Haar{}.Decompose(ws)
	require.NoError(t, err)
	require.Len(t, dec, 6)

	names := make([]string, len(dec))
	for i, op := range dec {
		names[i] = op.Name()
	}
	want := []string{
		"Hadamard", "PerfectShuffle",
		"Controlled(Hadamard)", "Controlled(PerfectShuffle)",
		"Controlled(Hadamard)", "Controlled(PerfectShuffle)",
	}
	assert.Empty(t, cmp.Diff(want, names))

	first := dec[0].(circuit.LocalUnitary)
	assert.Empty(t, cmp.Diff(circuit.Wires{6}, first.On), "stage 0 acts on the least significant wire")

	last := dec[5].(circuit.Controlled)
	assert.Empty(t, cmp.Diff(circuit.Wires{4, 5}, last.Controls))
	assert.Empty(t, cmp.Diff(circuit.Wires{6}, last.Target.Wires()))
}

func TestHaar_SingleWire(t *testing.T) {
	dec, err := wavelet.Haar{}.Decompose(circuit.Wires{0})
	require.NoError(t, err)
	assert.Equal(t, circuit.Counts{"Hadamard": 1, "PerfectShuffle": 1}, dec.Counts())
	assert.Equal(t, circuit.Counts{"Hadamard": 1}, dec.Flatten().Counts())
}

func TestHaarLayered_Counts(t *testing.T) {
	for n := 1; n <= 6; n++ {
		dec, err := wavelet.HaarLayered{}.Decompose(circuit.Range(n))
		require.NoError(t, err)
		assert.Equal(t, circuit.Counts{"Hadamard": n * (n + 1) / 2, "PerfectShuffle": n}, dec.Counts(), "n=%d", n)
	}
}

func TestD4_WindowHalving(t *testing.T) {
	dec, err := wavelet.D4{}.Decompose(circuit.Range(5))
	require.NoError(t, err)

	var pairs []circuit.Wires
	var windows []circuit.Wires
	for _, op := range dec {
		switch v := op.(type) {
		case circuit.LocalUnitary:
			pairs = append(pairs, v.On)
		case circuit.Block:
			windows = append(windows, v.On)
		}
	}
	assert.Empty(t, cmp.Diff([]circuit.Wires{{0, 1}, {2, 3}, {0, 2}, {0, 4}}, pairs))
	assert.Empty(t, cmp.Diff([]circuit.Wires{{0, 1, 2, 3, 4}, {0, 2, 4}, {0, 4}}, windows))
}

func TestD4_TwoWires(t *testing.T) {
	dec, err := wavelet.D4{}.Decompose(circuit.Wires{8, 9})
	require.NoError(t, err)
	assert.Equal(t, circuit.Counts{"UD4": 1, "PerfectShuffle": 1}, dec.Counts())
	assert.Equal(t, circuit.Counts{"UD4": 1, "Swap": 1}, dec.Flatten().Counts())
}

func TestD4Single_Alternation(t *testing.T) {
	dec, err := wavelet.D4Single{}.Decompose(circuit.Range(3))
	require.NoError(t, err)

	var names []string
	for _, op := range dec {
		names = append(names, op.Name())
	}
	want := []string{"C0", "C1", "C0", "PerfectShuffle", "C0", "C1", "PerfectShuffle"}
	assert.Empty(t, cmp.Diff(want, names))

	// the shuffle always spans the full wire set
	assert.Empty(t, cmp.Diff(circuit.Wires{0, 1, 2}, dec[len(dec)-1].Wires()))
}

func TestInverse_ReversesOrder(t *testing.T) {
	ws := circuit.Range(3)
	fwd, err := wavelet.D4{}.Decompose(ws)
	require.NoError(t, err)
	inv, err := wavelet.Inverse(wavelet.D4{}, ws)
	require.NoError(t, err)
	require.Len(t, inv, len(fwd))
	assert.Equal(t, "PerfectShuffle†", inv[0].Name())
	assert.Equal(t, "UD4†", inv[len(inv)-1].Name())

	_, err = wavelet.Inverse(wavelet.D4{}, circuit.Wires{0})
	assert.ErrorIs(t, err, circuit.ErrDomain)
}

func TestDecompose_DoesNotAliasInput(t *testing.T) {
	ws := circuit.Wires{0, 1, 2, 3}
	dec, err := wavelet.Haar{}.Decompose(ws)
	require.NoError(t, err)
	ws[0] = 42
	assert.False(t, dec.Wires().Contains(42))
}
