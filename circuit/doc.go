// Package circuit defines the operation model shared by every decomposer:
// wires, fixed-matrix kernels, elementary operations and time-ordered
// decompositions.
//
// 🚀 What is in circuit?
//
//	• Wire / Wires   ordered wire labels; index 0 is the most significant bit.
//	• Kernel         a named 2×2 or 4×4 unitary.
//	• Operation      LocalUnitary, Swap, Controlled and Block.
//	• Decomposition  an ordered []Operation with Adjoint, Flatten and Counts.
//
// Controls are zero-controls: a Controlled operation acts only on the
// subspace where every control wire is |0⟩. That is the low-frequency band
// of a multiresolution window, which is what the Haar stages need.
//
// Blocks are named composites (for example a PerfectShuffle inside a wavelet
// stage). Counts reports blocks by label; Flatten expands them recursively
// into Swap and LocalUnitary leaves, pushing controls inward.
//
// Everything here is a value type; decompositions never share mutable state.
package circuit
