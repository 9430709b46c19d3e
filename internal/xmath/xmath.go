// Package xmath holds small generic numeric helpers shared across the codec's
// colour transform, scan order, bitplane coding, and DWT level-bound code.
package xmath

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// ILog2Floor returns floor(log2(x)) for x > 0, and 0 for x == 0.
func ILog2Floor(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	var n uint32
	for x > 1 {
		x >>= 1
		n++
	}
	return n
}

// BitLength returns the position of the highest set bit plus one (the number
// of bits required to represent x), and 0 for x == 0. This is the "ilog2"
// convention used by the run-length and bitplane-count computations: for a
// power of two it is one more than ILog2Floor (BitLength(8) == 4, not 3).
func BitLength(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return ILog2Floor(x) + 1
}

// Interleave16To32 spreads the low 16 bits of i into the even bit positions
// of a 32-bit word, clearing the odd bits.
func Interleave16To32(i uint32) uint32 {
	i &= 0x0000FFFF
	i = (i ^ (i << 8)) & 0x00FF00FF
	i = (i ^ (i << 4)) & 0x0F0F0F0F
	i = (i ^ (i << 2)) & 0x33333333
	i = (i ^ (i << 1)) & 0x55555555
	return i
}

// Deinterleave32To16 packs the even bits of i into its low 16 bits, clearing
// everything above bit 15.
func Deinterleave32To16(i uint32) uint32 {
	i &= 0x55555555
	i = (i ^ (i >> 1)) & 0x33333333
	i = (i ^ (i >> 2)) & 0x0F0F0F0F
	i = (i ^ (i >> 4)) & 0x00FF00FF
	i = (i ^ (i >> 8)) & 0x0000FFFF
	return i
}
