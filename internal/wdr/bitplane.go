package wdr

import (
	"github.com/cocosip/sqz/internal/bitio"
	"github.com/cocosip/sqz/internal/subband"
)

func terminatorWidth(nspNonEmpty bool) uint32 {
	if nspNonEmpty {
		return 2
	}
	return 1
}

// EncodeSortingPass walks band's LIP and, for every position significant at
// the current bitplane, emits a sign bit and a WDR run, preceded by a 1
// continuation marker for every such position after the first, exchanging
// each into NSP. A no-op if LIP is empty or the
// subband has no bitplane left to code.
func EncodeSortingPass(band *Band, buf *bitio.Buffer) bool {
	lip := band.Book.LIP
	if lip.Len() == 0 || band.Bitplane <= 0 {
		return true
	}
	nsp := band.Book.NSP
	mask := int32(1) << uint(band.Bitplane)

	pixel := lip.Head()
	previous := subband.Null
	var i, last uint32 = 1, 0
	for pixel != subband.Null {
		v := band.coeff(pixel)
		if v&mask != 0 {
			width := uint32(1)
			if last != 0 {
				width = 2
			}
			if !buf.WriteBits(uint32(2|(v&1)), width) || !WriteRun(buf, i-last) {
				break
			}
			last = i
			pixel = lip.Exchange(nsp, pixel, previous)
		} else {
			previous = pixel
			pixel = lip.Next(pixel)
		}
		i++
	}
	buf.WriteBits(3, terminatorWidth(nsp.Len() > 0))
	WriteRun(buf, i-last)
	buf.WriteBit(1)
	return !buf.EOB()
}

// DecodeSortingPass mirrors EncodeSortingPass: reads a sign bit and a WDR
// run, walks LIP forward by run-1 positions, sets the bitplane mask and
// sign on the landed position, and exchanges it into NSP.
func DecodeSortingPass(band *Band, buf *bitio.Buffer) bool {
	lip := band.Book.LIP
	if lip.Len() == 0 || band.Bitplane <= 0 {
		return true
	}
	nsp := band.Book.NSP
	mask := int32(1) << uint(band.Bitplane)

	pixel := lip.Head()
	previous := subband.Null
	for {
		sign := buf.ReadBit()
		if sign < 0 {
			break
		}
		run, ok := ReadRun(buf)
		if !ok {
			break
		}
		remaining := int64(run)
		for {
			remaining--
			if remaining <= 0 || pixel == subband.Null {
				break
			}
			previous = pixel
			pixel = lip.Next(pixel)
		}
		if pixel == subband.Null {
			break
		}
		band.orBits(pixel, mask|sign)
		pixel = lip.Exchange(nsp, pixel, previous)
	}
	return !buf.EOB()
}

// EncodeRefinementPass emits one bit per LSP position: the current
// bitplane's bit of that position's magnitude.
func EncodeRefinementPass(band *Band, buf *bitio.Buffer) bool {
	lsp := band.Book.LSP
	mask := int32(1) << uint(band.Bitplane)

	pixel := lsp.Head()
	for pixel != subband.Null {
		v := band.coeff(pixel)
		var bit uint32
		if v&mask != 0 {
			bit = 1
		}
		if !buf.WriteBit(bit) {
			break
		}
		pixel = lsp.Next(pixel)
	}
	return !buf.EOB()
}

// DecodeRefinementPass mirrors EncodeRefinementPass, ORing the bitplane
// mask into each LSP position's coefficient when the read bit is 1.
func DecodeRefinementPass(band *Band, buf *bitio.Buffer) bool {
	lsp := band.Book.LSP
	mask := int32(1) << uint(band.Bitplane)

	pixel := lsp.Head()
	for pixel != subband.Null {
		v := buf.ReadBit()
		if v > 0 {
			band.orBits(pixel, mask)
		} else if v < 0 {
			break
		}
		pixel = lsp.Next(pixel)
	}
	return !buf.EOB()
}

// EncodeBitplane runs one full sorting+refinement iteration, merges NSP
// into LSP, and decrements the bitplane cursor (saturating at 0).
func EncodeBitplane(band *Band, buf *bitio.Buffer) bool {
	if !EncodeSortingPass(band, buf) || !EncodeRefinementPass(band, buf) {
		return false
	}
	band.Book.NSP.Merge(band.Book.LSP)
	if band.Bitplane > 0 {
		band.Bitplane--
	}
	return !buf.EOB()
}

// DecodeBitplane is EncodeBitplane's decode-side mirror.
func DecodeBitplane(band *Band, buf *bitio.Buffer) bool {
	if !DecodeSortingPass(band, buf) || !DecodeRefinementPass(band, buf) {
		return false
	}
	band.Book.NSP.Merge(band.Book.LSP)
	if band.Bitplane > 0 {
		band.Bitplane--
	}
	return !buf.EOB()
}

// RoundCoefficients performs post-decode midpoint reconstruction: for every
// LSP position, it sets the low (bitplane-1) magnitude bits to 1, halving
// the mean squared error a truncated decode would otherwise leave on the
// table, while preserving the sign bit.
func RoundCoefficients(band *Band) {
	if band.MaxBitplane == 0 || band.Bitplane < 2 {
		return
	}
	mask := ((int32(1) << uint(band.Bitplane)) - 1) ^ 1
	pixel := band.Book.LSP.Head()
	for pixel != subband.Null {
		band.orBits(pixel, mask)
		pixel = band.Book.LSP.Next(pixel)
	}
}
