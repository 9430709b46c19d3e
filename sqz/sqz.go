package sqz

import (
	"github.com/cocosip/sqz/internal/bitio"
	"github.com/cocosip/sqz/internal/dwt"
	"github.com/cocosip/sqz/internal/wdr"
)

// Encode compresses an interleaved 8-bit pixel buffer into dest according to
// descriptor, honouring a budget of at most len(dest) bytes. On success it
// returns the number of bytes actually written, which is never more than
// len(dest) and, for any but the most demanding images, is usually smaller:
// the WDR coder stops as soon as every subband reaches bitplane 0, not when
// dest is full. Encode never returns ErrDataCorrupted.
func Encode(pixels []byte, dest []byte, descriptor Descriptor) (int, error) {
	d := descriptor
	if err := validateEncode(&d); err != nil {
		return 0, err
	}
	buf := bitio.New(dest)
	if !encodeHeader(&d, buf) {
		return 0, ErrBufferTooSmall
	}

	ctx := newContext(d)
	colorForward(ctx, pixels)
	for p := range ctx.planes {
		dwt.Forward(ctx.planes[p].data, d.Width, d.Height, d.Width, d.DWTLevels)
		wdr.ToSignMagnitude(ctx.planes[p].data)
	}

	schedule(ctx, buf, visitOrder(&d), encodeInitSubband, wdr.EncodeBitplane)

	return buf.BytesUsed(), nil
}

// Decode reconstructs an interleaved 8-bit pixel buffer from a bitstream
// produced by Encode. If dest is too small to hold the reconstructed image,
// Decode returns ErrBufferTooSmall without writing to dest; callers probing
// for the required size should pass a zero-length dest, the way the codec's
// query protocol expects.
func Decode(source []byte, dest []byte) (Descriptor, int, error) {
	buf := bitio.New(source)
	d, ok := decodeHeader(buf)
	if !ok {
		return Descriptor{}, 0, ErrInvalidParameter
	}
	if err := validateDecode(&d); err != nil {
		return Descriptor{}, 0, err
	}

	length := d.Width * d.Height * d.NumPlanes
	if len(dest) < length {
		return d, length, ErrBufferTooSmall
	}

	ctx := newContext(d)
	ctx.allocatePlaneData()
	schedule(ctx, buf, visitOrder(&d), decodeInitSubband, wdr.DecodeBitplane)

	roundDecodedCoefficients(ctx)
	for p := range ctx.planes {
		wdr.FromSignMagnitude(ctx.planes[p].data)
		dwt.Inverse(ctx.planes[p].data, d.Width, d.Height, d.Width, d.DWTLevels)
	}

	pixels := colorInverse(ctx)
	n := copy(dest, pixels)
	return d, n, nil
}

// roundDecodedCoefficients applies the post-decode midpoint reconstruction
// to every subband the scheduler actually activated; a subband whose round
// never arrived before the stream ran out is left exactly at zero, which
// RoundCoefficients would no-op on anyway.
func roundDecodedCoefficients(ctx *context) {
	for p := range ctx.planes {
		for level := range ctx.planes[p].bands {
			for orientation := range ctx.planes[p].bands[level] {
				entry := ctx.planes[p].bands[level][orientation]
				if entry != nil && entry.band != nil {
					wdr.RoundCoefficients(entry.band)
				}
			}
		}
	}
}
