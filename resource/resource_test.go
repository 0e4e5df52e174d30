// SPDX-License-Identifier: MIT

package resource_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/permute"
	"github.com/katalvlaran/qwt/resource"
	"github.com/katalvlaran/qwt/wavelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emit builds the real decomposition the estimator predicts.
func emit(t *testing.T, name string, ws circuit.Wires) circuit.Decomposition {
	t.Helper()
	var (
		dec circuit.Decomposition
		err error
	)
	switch name {
	case permute.LabelShuffle:
		dec, err = permute.PerfectShuffle(ws)
	case permute.LabelReversal:
		dec, err = permute.BitReversal(ws)
	default:
		for _, d := range wavelet.All() {
			if d.Name() == name {
				dec, err = d.Decompose(ws)
			}
		}
	}
	require.NoError(t, err)
	require.NotNil(t, dec)

	return dec
}

func TestEstimate_MatchesDecomposition(t *testing.T) {
	for _, name := range resource.Operators() {
		t.Run(name, func(t *testing.T) {
			start := 1
			if name == wavelet.NameD4 || name == wavelet.NameD4Single {
				start = 2
			}
			for n := start; n <= 12; n++ {
				rep, err := resource.Estimate(name, n)
				require.NoError(t, err)
				dec := emit(t, name, circuit.Range(n))
				if diff := cmp.Diff(dec.Counts(), rep.Counts); diff != "" {
					t.Fatalf("n=%d top-level counts (-emitted +estimated):\n%s", n, diff)
				}
				if diff := cmp.Diff(dec.Flatten().Counts(), rep.Flat); diff != "" {
					t.Fatalf("n=%d flat counts (-emitted +estimated):\n%s", n, diff)
				}
			}
		})
	}
}

func TestEstimate_ClosedForms(t *testing.T) {
	rep, err := resource.Estimate(wavelet.NameHaar, 4)
	require.NoError(t, err)
	assert.Equal(t, circuit.Counts{
		"Hadamard":                   1,
		"Controlled(Hadamard)":       3,
		"PerfectShuffle":             1,
		"Controlled(PerfectShuffle)": 3,
	}, rep.Counts)
	assert.Equal(t, circuit.Counts{
		"Hadamard":             1,
		"Controlled(Hadamard)": 3,
		"Swap":                 3,
		"Controlled(Swap)":     3,
	}, rep.Flat)

	rep, err = resource.Estimate(wavelet.NameD4, 5)
	require.NoError(t, err)
	assert.Equal(t, circuit.Counts{"UD4": 4, "PerfectShuffle": 3}, rep.Counts)
	assert.Equal(t, circuit.Counts{"UD4": 4, "Swap": 7}, rep.Flat)

	rep, err = resource.Estimate(wavelet.NameD4Single, 3)
	require.NoError(t, err)
	assert.Equal(t, circuit.Counts{"C0": 3, "C1": 2, "PerfectShuffle": 2}, rep.Counts)

	rep, err = resource.Estimate(permute.LabelShuffle, 1)
	require.NoError(t, err)
	assert.Empty(t, rep.Counts, "zero entries are omitted")
}

func TestEstimate_Domain(t *testing.T) {
	_, err := resource.Estimate(wavelet.NameD4, 1)
	assert.ErrorIs(t, err, circuit.ErrDomain)
	_, err = resource.Estimate(wavelet.NameHaar, 0)
	assert.ErrorIs(t, err, circuit.ErrDomain)
	_, err = resource.Estimate("QFT", 3)
	assert.ErrorIs(t, err, circuit.ErrDomain)
}
