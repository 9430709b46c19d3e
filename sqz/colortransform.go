package sqz

import "github.com/cocosip/sqz/internal/colorspace"

// colorForward fills ctx's plane buffers from an interleaved 8-bit pixel
// buffer: one byte per pixel for Grayscale, three (RGB) for every other
// mode.
func colorForward(ctx *context, pixels []byte) {
	switch ctx.desc.ColorMode {
	case Grayscale:
		ctx.planes[0].data = colorspace.GrayscaleForwardPlane(pixels)
	case YCoCgR:
		ctx.planes[0].data, ctx.planes[1].data, ctx.planes[2].data = colorspace.YCoCgRForwardImage(pixels)
	case Oklab:
		ctx.planes[0].data, ctx.planes[1].data, ctx.planes[2].data = colorspace.OklabForwardImage(pixels)
	case LogL1:
		ctx.planes[0].data, ctx.planes[1].data, ctx.planes[2].data = colorspace.LogL1ForwardImage(pixels)
	}
}

// colorInverse reassembles ctx's plane buffers into an interleaved 8-bit
// pixel buffer, reversing colorForward: exactly for Grayscale and YCoCgR,
// approximately for the lossy Oklab and LogL1 modes.
func colorInverse(ctx *context) []byte {
	switch ctx.desc.ColorMode {
	case Grayscale:
		return colorspace.GrayscaleInversePlane(ctx.planes[0].data)
	case YCoCgR:
		return colorspace.YCoCgRInverseImage(ctx.planes[0].data, ctx.planes[1].data, ctx.planes[2].data)
	case Oklab:
		return colorspace.OklabInverseImage(ctx.planes[0].data, ctx.planes[1].data, ctx.planes[2].data)
	case LogL1:
		return colorspace.LogL1InverseImage(ctx.planes[0].data, ctx.planes[1].data, ctx.planes[2].data)
	}
	return nil
}
