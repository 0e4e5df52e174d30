// Package qwt turns multiscale wavelet transforms into quantum circuits.
//
// 🚀 What is qwt?
//
//	A small, pure-Go engine that decomposes the n-qubit Haar and
//	Daubechies-D4 transforms, and the perfect-shuffle and bit-reversal
//	permutations, into ordered sequences of one- and two-wire operations.
//		• Exact index maps for every permutation
//		• Fixed numeric kernels (Hadamard, C0, C1, UD4)
//		• Closed-form resource estimates that match the emitted circuits
//		• A dense verification builder for small wire counts
//
// Under the hood, everything is organized in subpackages:
//
//	circuit/   wires, kernels, operations and decompositions
//	kernel/    the fixed unitary kernels and a name library
//	permute/   shuffle and reversal index maps and swap chains
//	wavelet/   Haar and D4 decomposers (canonical and layered variants)
//	resource/  closed-form operation counts
//	verify/    matrices of decompositions by statevector simulation
//	export/    YAML documents and text listings of decompositions
//	matrix/    small dense complex matrices
//
// Quick example:
//
//	dec, err := qwt.Decompose(qwt.Haar, circuit.Range(3))
//	// dec[0] is Hadamard on wire 2, dec[1] the first PerfectShuffle block.
//
// Wire 0 is always the most significant bit of a basis index.
package qwt
