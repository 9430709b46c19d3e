package sqz

import "github.com/cocosip/sqz/internal/dwt"

// subbandGeom locates a subband within its plane's width x height buffer:
// a top-left origin (row, col) and a size, addressed at the plane's own
// fixed row stride.
type subbandGeom struct {
	row, col      int
	width, height int
}

// levelDims returns a plane's width and height after p forward DWT passes.
func levelDims(width, height, p int) (int, int) {
	w, h := width, height
	for i := 0; i < p; i++ {
		w, h = dwt.NextLevelDims(w, h)
	}
	return w, h
}

// subbandGeometry computes the geometry of one subband, addressed in the
// codec's own level convention: level 0 is the coarsest (most decomposed)
// level, where orientation 0 (LL) names the final approximation subband;
// level increases towards the finest detail. This is the reverse of the
// order internal/dwt.Forward's pass index counts in, so level is first
// converted to a pass index before querying the shrinking dimensions.
func subbandGeometry(width, height, levels, level, orientation int) subbandGeom {
	pass := levels - 1 - level
	w, h := levelDims(width, height, pass)
	w1, h1 := dwt.NextLevelDims(w, h)
	switch orientation {
	case 0: // LL, only meaningful at level == 0
		return subbandGeom{row: 0, col: 0, width: w1, height: h1}
	case 1: // HL
		return subbandGeom{row: 0, col: w1, width: w - w1, height: h1}
	case 2: // LH
		return subbandGeom{row: h1, col: 0, width: w1, height: h - h1}
	default: // HH
		return subbandGeom{row: h1, col: w1, width: w - w1, height: h - h1}
	}
}
