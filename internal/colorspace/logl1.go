package colorspace

// Based on "Exploiting context dependence for image compression with
// upsampling" by Jarek Duda. A fixed 3x3 integer matrix, scaled by 2^16, in
// both directions; lossy because the forward and reverse matrices are not
// exact inverses of one another.

const logl1LevelOffset = 221

// LogL1Forward converts one 8-bit RGB sample to Y/c0/c1 coefficients.
func LogL1Forward(r, g, b int32) (y, c0, c1 int32) {
	y = ((33779*r + 41184*g + 38182*b) >> 16) - logl1LevelOffset
	c0 = (-52830*r + 8188*g + 37906*b) >> 16
	c1 = (19051*r - 50317*g + 37420*b) >> 16
	return
}

// LogL1Inverse reverses LogL1Forward; results are clipped to [0,255] by the
// caller.
func LogL1Inverse(y, c0, c1 int32) (r, g, b int32) {
	y += logl1LevelOffset
	r = (33779*y - 52830*c0 + 19051*c1) >> 16
	g = (41184*y + 8188*c0 - 50317*c1) >> 16
	b = (38182*y + 37906*c0 + 37420*c1) >> 16
	return
}

// LogL1ForwardImage splits an interleaved RGB buffer into Y, c0, c1 planes.
func LogL1ForwardImage(rgb []uint8) (y, c0, c1 []int32) {
	n := len(rgb) / 3
	y = make([]int32, n)
	c0 = make([]int32, n)
	c1 = make([]int32, n)
	for i := 0; i < n; i++ {
		y[i], c0[i], c1[i] = LogL1Forward(int32(rgb[3*i]), int32(rgb[3*i+1]), int32(rgb[3*i+2]))
	}
	return
}

// LogL1InverseImage reassembles Y, c0, c1 planes into an interleaved,
// clipped RGB buffer.
func LogL1InverseImage(y, c0, c1 []int32) []uint8 {
	n := len(y)
	rgb := make([]uint8, n*3)
	for i := 0; i < n; i++ {
		r, g, b := LogL1Inverse(y[i], c0[i], c1[i])
		rgb[3*i] = clip8(r)
		rgb[3*i+1] = clip8(g)
		rgb[3*i+2] = clip8(b)
	}
	return rgb
}
