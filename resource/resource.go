// SPDX-License-Identifier: MIT

package resource

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/kernel"
	"github.com/katalvlaran/qwt/permute"
	"github.com/katalvlaran/qwt/wavelet"
)

// Report is the predicted resource profile of one decomposition.
type Report struct {
	// Counts is keyed by top-level operation name.
	Counts circuit.Counts
	// Flat is keyed by leaf name after block expansion.
	Flat circuit.Counts
}

// estimator computes a Report for n ≥ its minimum.
type estimator struct {
	minWires int
	report   func(n int) Report
}

const (
	nameSwap     = "Swap"
	nameCtrlH    = "Controlled(" + kernel.NameHadamard + ")"
	nameCtrlSwap = "Controlled(" + nameSwap + ")"
	nameCtrlPS   = "Controlled(" + permute.LabelShuffle + ")"
)

var estimators = map[string]estimator{
	permute.LabelShuffle:    {minWires: 1, report: perfectShuffle},
	permute.LabelReversal:   {minWires: 1, report: bitReversal},
	wavelet.NameHaar:        {minWires: 1, report: haar},
	wavelet.NameHaarLayered: {minWires: 1, report: haarLayered},
	wavelet.NameD4:          {minWires: 2, report: d4},
	wavelet.NameD4Single:    {minWires: 2, report: d4Single},
}

// Operators lists the names Estimate accepts, ascending.
func Operators() []string {
	out := make([]string, 0, len(estimators))
	for k := range estimators {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Estimate returns the Report of operator name on n wires.
//
// Errors: circuit.ErrDomain for an unknown operator or n below its minimum.
func Estimate(name string, n int) (Report, error) {
	est, ok := estimators[name]
	if !ok {
		return Report{}, fmt.Errorf("Estimate(%q): unknown operator: %w", name, circuit.ErrDomain)
	}
	if n < est.minWires {
		return Report{}, fmt.Errorf("Estimate(%q, %d): need at least %d wires: %w", name, n, est.minWires, circuit.ErrDomain)
	}

	return est.report(n), nil
}

// pair is one name/multiplicity entry of a closed form.
type pair struct {
	name string
	k    int
}

// counts builds a Counts from pairs, dropping zeros.
func counts(pairs ...pair) circuit.Counts {
	c := make(circuit.Counts, len(pairs))
	for _, p := range pairs {
		c.Add(p.name, p.k)
	}

	return c
}

func perfectShuffle(n int) Report {
	return Report{Counts: counts(pair{nameSwap, n - 1}), Flat: counts(pair{nameSwap, n - 1})}
}

func bitReversal(n int) Report {
	return Report{Counts: counts(pair{nameSwap, n / 2}), Flat: counts(pair{nameSwap, n / 2})}
}

func haar(n int) Report {
	return Report{
		Counts: counts(
			pair{kernel.NameHadamard, 1},
			pair{nameCtrlH, n - 1},
			pair{permute.LabelShuffle, 1},
			pair{nameCtrlPS, n - 1},
		),
		Flat: counts(
			pair{kernel.NameHadamard, 1},
			pair{nameCtrlH, n - 1},
			pair{nameSwap, n - 1},
			pair{nameCtrlSwap, (n - 1) * (n - 2) / 2},
		),
	}
}

func haarLayered(n int) Report {
	return Report{
		Counts: counts(pair{kernel.NameHadamard, n * (n + 1) / 2}, pair{permute.LabelShuffle, n}),
		Flat:   counts(pair{kernel.NameHadamard, n * (n + 1) / 2}, pair{nameSwap, n * (n - 1)}),
	}
}

// d4 walks the window sizes n, ⌈n/2⌉, … while at least two wires remain.
func d4(n int) Report {
	var ud4, stages, swaps int
	for w := n; w >= 2; w = (w + 1) / 2 {
		ud4 += w / 2
		stages++
		swaps += w - 1
	}

	return Report{
		Counts: counts(pair{kernel.NameUD4, ud4}, pair{permute.LabelShuffle, stages}),
		Flat:   counts(pair{kernel.NameUD4, ud4}, pair{nameSwap, swaps}),
	}
}

func d4Single(n int) Report {
	var c0, c1 int
	for m := n; m >= 2; m-- {
		c0 += (m + 1) / 2
		c1 += m / 2
	}

	return Report{
		Counts: counts(pair{kernel.NameC0, c0}, pair{kernel.NameC1, c1}, pair{permute.LabelShuffle, n - 1}),
		Flat:   counts(pair{kernel.NameC0, c0}, pair{kernel.NameC1, c1}, pair{nameSwap, (n - 1) * (n - 1)}),
	}
}
