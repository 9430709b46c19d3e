package wdr

import (
	"github.com/cocosip/sqz/internal/subband"
	"github.com/cocosip/sqz/internal/xmath"
)

// Band couples a window of sign-magnitude coefficients (Data, addressed by
// Width/Height/Stride relative to the subband's origin) with the LIP/LSP/NSP
// bookkeeping and bitplane cursor the WDR passes advance.
type Band struct {
	Data   []int32
	Width  int
	Height int
	Stride int

	Book *subband.Bookkeeping

	Bitplane    int
	MaxBitplane int
}

func (b *Band) coeff(idx int32) int32 {
	x, y := b.Book.Cache.At(idx)
	return b.Data[int(y)*b.Stride+int(x)]
}

func (b *Band) orBits(idx int32, bits int32) {
	x, y := b.Book.Cache.At(idx)
	b.Data[int(y)*b.Stride+int(x)] |= bits
}

// Max returns the largest coefficient in the subband window. Callers must
// only invoke this once the window's coefficients are in sign-magnitude
// form, since the comparison is a plain (non-absolute) max.
func (b *Band) Max() int32 {
	max := b.Data[0]
	for y := 0; y < b.Height; y++ {
		row := y * b.Stride
		for x := 0; x < b.Width; x++ {
			if v := b.Data[row+x]; v > max {
				max = v
			}
		}
	}
	return max
}

// ComputeMaxBitplane derives MaxBitplane from the subband's current peak
// coefficient and resets Bitplane to it. Called once, at first touch by the
// scheduler.
func (b *Band) ComputeMaxBitplane() {
	b.MaxBitplane = int(xmath.BitLength(uint32(b.Max()) >> 1))
	b.Bitplane = b.MaxBitplane
}
