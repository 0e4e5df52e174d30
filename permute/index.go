// SPDX-License-Identifier: MIT

package permute

import "math/bits"

// ShuffleIndex rotates the n-bit index i right by one: the least significant
// bit moves to the most significant position.
// Example: ShuffleIndex(0b100, 3) = 0b010.
// Complexity: O(1).
func ShuffleIndex(i, n int) int {
	return (i >> 1) | (i&1)<<(n-1)
}

// UnshuffleIndex is the inverse of ShuffleIndex (rotate left by one).
func UnshuffleIndex(i, n int) int {
	return ((i << 1) & (1<<n - 1)) | (i >> (n - 1) & 1)
}

// ReverseIndex reverses the lower n bits of i.
// Example: ReverseIndex(0b100, 3) = 0b001.
// Complexity: O(1).
func ReverseIndex(i, n int) int {
	return int(bits.Reverse64(uint64(i)) >> (64 - n))
}
