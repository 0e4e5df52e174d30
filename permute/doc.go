// Package permute implements the two basis permutations used by the wavelet
// stages, the perfect shuffle and bit reversal, as exact index maps and as
// adjacent-swap circuits.
//
// Bit convention: on n wires, the wire at position p carries bit (n-1-p) of a
// basis index, so position 0 is the most significant bit.
//
//	ShuffleIndex(i, n):  a_{n-1} … a_1 a_0  →  a_0 a_{n-1} … a_1   (cyclic right rotation)
//	ReverseIndex(i, n):  a_{n-1} … a_1 a_0  →  a_0 a_1 … a_{n-1}
//
// Example on three wires: |100⟩ shuffles to |010⟩ and reverses to |001⟩.
//
// Circuits:
//
//	PerfectShuffle(w): swap(w[n-2], w[n-1]), …, swap(w[0], w[1])   n−1 swaps
//	BitReversal(w):    swap(w[i], w[n-1-i]) for i < n/2            ⌊n/2⌋ swaps
//
// The shuffle chain runs from the tail; the head-first chain is its inverse
// (the unshuffle).
package permute
