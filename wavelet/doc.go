// Package wavelet decomposes the multiscale Haar and Daubechies-D4
// transforms into time-ordered circuits of fixed kernels, swaps and
// PerfectShuffle blocks.
//
// Every strategy implements Decomposer. Two are canonical:
//
//	Haar  exact Haar matrix: Hadamard on the last window wire and a shuffle
//	      of the window per stage, zero-controlled by the wires already dropped.
//	D4    UD4 on wire pairs and a window shuffle per stage; the window keeps
//	      its even-indexed wires after each stage.
//
// Two are layered variants kept for comparison; both are unitary but they
// are different operators from the canonical ones:
//
//	HaarLayered  Hadamard on every window wire, then a full-set shuffle.
//	D4Single     C0/C1 on alternating window wires, then a full-set shuffle.
//
// The inverse of any decomposition is circuit.Decomposition.Adjoint.
package wavelet
