// Package verify builds dense 2ⁿ×2ⁿ matrices of decompositions so tests and
// tools can check them against closed-form transforms.
//
// The verify package provides:
//
//   - Simulate / ApplyState: a statevector kernel over circuit operations
//     (zero-controls, swaps, one- and two-wire kernels, nested blocks).
//   - HaarMatrix: the Kronecker recursion Hₙ = vstack(Hₙ₋₁⊗[1 1], I⊗[1 −1])/√2.
//   - Builder: a caller-owned, concurrency-safe cache of operator matrices
//     keyed by (operator, n, method). Each key is built at most once and
//     callers always receive private copies.
//
// Matrices are big-endian: wire 0 is the most significant bit of the row and
// column index. Memory is O(4ⁿ), so the builder refuses n above a ceiling
// (DefaultMaxQubits unless configured).
package verify
