package colorspace

// Based on "YCoCg-R: A Color Space with RGB Reversibility and Low Dynamic
// Range" by Henrique Malvar and Gary Sullivan.

// YCoCgRForward converts one 8-bit RGB sample (as plain integers) to the
// lossless YCoCg-R coefficients, level-shifting Y by -128.
func YCoCgRForward(r, g, b int32) (y, co, cg int32) {
	t := (r + b) >> 1
	y = ((t + g) >> 1) - levelOffset8bpc
	co = r - b
	cg = g - t
	return
}

// YCoCgRInverse is the exact inverse of YCoCgRForward; r, g, b are not
// clipped to [0,255] by the integer recurrence itself (that only holds for
// inputs that originated from valid 8-bit RGB), so callers must clip.
func YCoCgRInverse(y, co, cg int32) (r, g, b int32) {
	y += levelOffset8bpc
	b = y + ((1 - cg) >> 1) - (co >> 1)
	g = y - ((-cg) >> 1)
	r = co + b
	return
}

// YCoCgRForwardImage splits an interleaved RGB buffer into Y, Co, Cg planes.
func YCoCgRForwardImage(rgb []uint8) (y, co, cg []int32) {
	n := len(rgb) / 3
	y = make([]int32, n)
	co = make([]int32, n)
	cg = make([]int32, n)
	for i := 0; i < n; i++ {
		y[i], co[i], cg[i] = YCoCgRForward(int32(rgb[3*i]), int32(rgb[3*i+1]), int32(rgb[3*i+2]))
	}
	return
}

// YCoCgRInverseImage reassembles Y, Co, Cg planes into an interleaved,
// clipped RGB buffer.
func YCoCgRInverseImage(y, co, cg []int32) []uint8 {
	n := len(y)
	rgb := make([]uint8, n*3)
	for i := 0; i < n; i++ {
		r, g, b := YCoCgRInverse(y[i], co[i], cg[i])
		rgb[3*i] = clip8(r)
		rgb[3*i+1] = clip8(g)
		rgb[3*i+2] = clip8(b)
	}
	return rgb
}
