// Package kernel holds the fixed numeric kernels used by the wavelet
// decomposers: the Hadamard, the two D4 reflections C0 and C1, and the
// 4×4 Daubechies-D4 pair kernel UD4.
//
// Coefficients (D4 scaling filter):
//
//	H0 = (1+√3)/(4√2)   H1 = (3+√3)/(4√2)
//	H2 = (3−√3)/(4√2)   H3 = (1−√3)/(4√2)
//
// A Library computes every kernel once and resolves names, including
// adjoint names such as "UD4†", for adapters that rebuild decompositions.
package kernel
