// Package sqz implements the scalable wavelet image codec: a reversible
// integer 5/3 DWT, four colour transforms, and WDR bitplane coding driven by
// a round-based scheduler, producing a bitstream with no entropy coder where
// every bit carries weight and truncation degrades quality rather than
// failing.
package sqz

import (
	"github.com/cocosip/sqz/internal/scan"
	"github.com/cocosip/sqz/internal/xmath"
)

// ColorMode selects the colour transform applied before the wavelet
// decomposition.
type ColorMode int

const (
	Grayscale ColorMode = iota
	YCoCgR
	Oklab
	LogL1
	colorModeCount
)

// ScanOrder selects the coefficient visiting order the sorting pass walks a
// subband's coordinate lists in. It is exactly internal/scan.Order, exposed
// under the codec's own name since it is part of the wire format.
type ScanOrder = scan.Order

const (
	Raster = scan.Raster
	Snake  = scan.Snake
	Morton = scan.Morton
	Hilbert = scan.Hilbert
)

const (
	// MinDimension is the smallest width or height the codec accepts.
	MinDimension = 8
	// MaxDimension is the largest width or height the codec accepts, the
	// span a 16-bit width-1/height-1 header field can encode.
	MaxDimension = 65535
	// MaxDWTLevels is the most decomposition levels a descriptor can name;
	// the number actually used is further clamped to the image's size, see
	// clampLevels.
	MaxDWTLevels = 8
	// numOrientations is the subband count per decomposition level: LL, HL,
	// LH, HH.
	numOrientations = 4
)

// numPlanesFor reports how many coefficient planes a colour mode produces:
// one for Grayscale, three (luma-like plus two chroma-like) for the rest.
func numPlanesFor(mode ColorMode) int {
	if mode == Grayscale {
		return 1
	}
	return 3
}

// Descriptor names an image's shape and the coding choices used to compress
// it. Encode fills NumPlanes from ColorMode and clamps DWTLevels to the
// image's size; Decode recovers a Descriptor entirely from the bitstream
// header.
type Descriptor struct {
	Width, Height int
	ColorMode     ColorMode
	DWTLevels     int
	ScanOrder     ScanOrder
	// Subsampling, when set, delays the two chroma planes' schedule by one
	// round relative to the luma-like plane, trading chroma resolution for
	// bit-rate the way 4:2:0-style subsampling does in other codecs.
	Subsampling bool

	NumPlanes int
}

// maxLevelsForDimensions returns the most DWT levels that keep the
// coarsest subband at least 8 samples on a side: floor(log2(min(w,h))) - 3,
// clamped to MaxDWTLevels and raised to at least 1. When the shorter side is
// 8 to 15 samples, that single level leaves a coarsest subband of 4 to 8
// samples on that side.
func maxLevelsForDimensions(width, height int) int {
	shortest := width
	if height < shortest {
		shortest = height
	}
	max := int(xmath.ILog2Floor(uint32(shortest))) - 3
	if max > MaxDWTLevels {
		max = MaxDWTLevels
	}
	if max < 1 {
		max = 1
	}
	return max
}
