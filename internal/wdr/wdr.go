// Package wdr implements Wavelet Difference Reduction bitplane coding: the
// self-delimiting run codec, the per-bitplane sorting and refinement passes
// over a subband's LIP/LSP/NSP lists, and the sign-magnitude remap the
// passes operate on. There is no entropy coder; every emitted bit is
// significant to the reconstruction, and running out of bits mid-subband is
// the codec's normal way of honouring a truncated output budget.
package wdr

import (
	"github.com/cocosip/sqz/internal/bitio"
	"github.com/cocosip/sqz/internal/xmath"
)

// WriteRun emits a run length n >= 1 using the WDR integer coding: the bits
// of n below its most significant bit, interleaved with zero control bits,
// most significant pair first. It is self-delimiting in context because the
// next emitted symbol's leading bit doubles as this run's terminator.
func WriteRun(buf *bitio.Buffer, run uint32) bool {
	cost := xmath.BitLength(run) - 1
	if cost <= 16 {
		return buf.WriteBits(xmath.Interleave16To32(run), cost*2)
	}
	return buf.WriteBits(xmath.Interleave16To32(run>>16), (cost-16)*2) &&
		buf.WriteBits(xmath.Interleave16To32(run), 32)
}

// ReadRun reads a run length written by WriteRun. It returns ok == false
// only if the bit buffer is exhausted while a digit pair is mid-read; an
// exhaustion that happens to land exactly on a control bit is treated as an
// implicit terminator, matching the encoder's self-delimiting contract.
func ReadRun(buf *bitio.Buffer) (run uint32, ok bool) {
	run = 1
	for {
		control := buf.ReadBit()
		if control != 0 {
			break
		}
		bit := buf.ReadBit()
		if bit < 0 {
			return 0, false
		}
		run = run + run + uint32(bit)
	}
	return run, true
}

// ToSignMagnitude converts every coefficient in place from two's-complement
// to sign-magnitude form (bit 0 the sign, the rest the magnitude), the form
// the bitplane coder requires.
func ToSignMagnitude(coeffs []int32) {
	for i, v := range coeffs {
		if v < 0 {
			coeffs[i] = (-2 * v) | 1
		} else {
			coeffs[i] = 2 * v
		}
	}
}

// FromSignMagnitude reverses ToSignMagnitude in place.
func FromSignMagnitude(coeffs []int32) {
	for i, v := range coeffs {
		if v&1 != 0 {
			coeffs[i] = -(v >> 1)
		} else {
			coeffs[i] = v >> 1
		}
	}
}
