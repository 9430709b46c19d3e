// Package colorspace implements the four colour transforms between an
// interleaved 8-bit pixel buffer and three signed coefficient planes:
// Grayscale, YCoCg-R (lossless), Oklab (lossy, perceptual), and logl1
// (lossy). Every transform operates sample-by-sample and level-shifts its
// luma-like channel so the DWT sees a coefficient stream centred on zero.
package colorspace

import "github.com/cocosip/sqz/internal/xmath"

const levelOffset8bpc = 128

func clip8(v int32) uint8 {
	return uint8(xmath.Clamp(v, 0, 255))
}
