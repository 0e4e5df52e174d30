// Package matrix provides small dense complex matrices for verifying
// quantum wavelet decompositions.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked accessors.
//   - Constructors for zero, identity and real-valued matrices.
//   - Linear-algebra kernels: Mul, ConjugateTranspose, Scale, Kron, VStack,
//     MatVec and Det.
//   - Numeric validators: ValidateUnitary, IsHermitian, AllClose.
//
// Matrices here are meant for kernels (2×2, 4×4) and for verification of
// circuits on a handful of wires, where O(4ⁿ) memory is acceptable.
//
// See the examples in this package for usage patterns.
package matrix
