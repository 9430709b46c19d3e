package colorspace

// Based on "Oklab - A perceptual color space for image processing" by Bjorn
// Ottosson, and "Porting OkLab colorspace to integer arithmetic"
// (https://blog.pkh.me/p/38-porting-oklab-colorspace-to-integer-arithmetic.html).
// Accuracy is traded for integer-only arithmetic throughout; Oklab
// coefficients are carried at 12 bits per channel, L level-shifted by 2048.
// Round-tripping through sRGB is lossy.

const (
	linearPrecision       = 16
	linearMax             = (1 << linearPrecision) - 1
	linearToSRGBPrecision = 9
	linearToSRGBLUTSize   = (1 << linearToSRGBPrecision) - 1

	oklabPrecision   = 12
	oklabMul         = int64(1) << (linearPrecision - oklabPrecision)
	oklabLevelOffset = 1 << (oklabPrecision - 1)
)

// sRGBToLinear is a 256-entry LUT mapping an 8-bit sRGB sample to a 16-bit
// linear-light value.
var sRGBToLinear = [256]uint16{
	0x0000, 0x0014, 0x0028, 0x003C, 0x0050, 0x0063, 0x0077, 0x008B,
	0x009F, 0x00B3, 0x00C7, 0x00DB, 0x00F1, 0x0108, 0x0120, 0x0139,
	0x0154, 0x016F, 0x018C, 0x01AB, 0x01CA, 0x01EB, 0x020E, 0x0232,
	0x0257, 0x027D, 0x02A5, 0x02CE, 0x02F9, 0x0325, 0x0353, 0x0382,
	0x03B3, 0x03E5, 0x0418, 0x044D, 0x0484, 0x04BC, 0x04F6, 0x0532,
	0x056F, 0x05AD, 0x05ED, 0x062F, 0x0673, 0x06B8, 0x06FE, 0x0747,
	0x0791, 0x07DD, 0x082A, 0x087A, 0x08CA, 0x091D, 0x0972, 0x09C8,
	0x0A20, 0x0A79, 0x0AD5, 0x0B32, 0x0B91, 0x0BF2, 0x0C55, 0x0CBA,
	0x0D20, 0x0D88, 0x0DF2, 0x0E5E, 0x0ECC, 0x0F3C, 0x0FAE, 0x1021,
	0x1097, 0x110E, 0x1188, 0x1203, 0x1280, 0x1300, 0x1381, 0x1404,
	0x1489, 0x1510, 0x159A, 0x1625, 0x16B2, 0x1741, 0x17D3, 0x1866,
	0x18FB, 0x1993, 0x1A2C, 0x1AC8, 0x1B66, 0x1C06, 0x1CA7, 0x1D4C,
	0x1DF2, 0x1E9A, 0x1F44, 0x1FF1, 0x20A0, 0x2150, 0x2204, 0x22B9,
	0x2370, 0x242A, 0x24E5, 0x25A3, 0x2664, 0x2726, 0x27EB, 0x28B1,
	0x297B, 0x2A46, 0x2B14, 0x2BE3, 0x2CB6, 0x2D8A, 0x2E61, 0x2F3A,
	0x3015, 0x30F2, 0x31D2, 0x32B4, 0x3399, 0x3480, 0x3569, 0x3655,
	0x3742, 0x3833, 0x3925, 0x3A1A, 0x3B12, 0x3C0B, 0x3D07, 0x3E06,
	0x3F07, 0x400A, 0x4110, 0x4218, 0x4323, 0x4430, 0x453F, 0x4651,
	0x4765, 0x487C, 0x4995, 0x4AB1, 0x4BCF, 0x4CF0, 0x4E13, 0x4F39,
	0x5061, 0x518C, 0x52B9, 0x53E9, 0x551B, 0x5650, 0x5787, 0x58C1,
	0x59FE, 0x5B3D, 0x5C7E, 0x5DC2, 0x5F09, 0x6052, 0x619E, 0x62ED,
	0x643E, 0x6591, 0x66E8, 0x6840, 0x699C, 0x6AFA, 0x6C5B, 0x6DBE,
	0x6F24, 0x708D, 0x71F8, 0x7366, 0x74D7, 0x764A, 0x77C0, 0x7939,
	0x7AB4, 0x7C32, 0x7DB3, 0x7F37, 0x80BD, 0x8246, 0x83D1, 0x855F,
	0x86F0, 0x8884, 0x8A1B, 0x8BB4, 0x8D50, 0x8EEF, 0x9090, 0x9235,
	0x93DC, 0x9586, 0x9732, 0x98E2, 0x9A94, 0x9C49, 0x9E01, 0x9FBB,
	0xA179, 0xA339, 0xA4FC, 0xA6C2, 0xA88B, 0xAA56, 0xAC25, 0xADF6,
	0xAFCA, 0xB1A1, 0xB37B, 0xB557, 0xB737, 0xB919, 0xBAFF, 0xBCE7,
	0xBED2, 0xC0C0, 0xC2B1, 0xC4A5, 0xC69C, 0xC895, 0xCA92, 0xCC91,
	0xCE94, 0xD099, 0xD2A1, 0xD4AD, 0xD6BB, 0xD8CC, 0xDAE0, 0xDCF7,
	0xDF11, 0xE12E, 0xE34E, 0xE571, 0xE797, 0xE9C0, 0xEBEC, 0xEE1B,
	0xF04D, 0xF282, 0xF4BA, 0xF6F5, 0xF933, 0xFB74, 0xFDB8, 0xFFFF,
}

// linearToSRGB is a linearToSRGBLUTSize+1-entry LUT mapping a 9-bit slice of
// the linear-light domain to an 8-bit sRGB sample; linearToSRGB8
// interpolates between adjacent entries at 16-bit precision.
var linearToSRGB = [linearToSRGBLUTSize + 1]uint8{
	0x00, 0x06, 0x0D, 0x12, 0x16, 0x19, 0x1C, 0x1F, 0x22, 0x24, 0x26, 0x28, 0x2A, 0x2C, 0x2E, 0x30,
	0x32, 0x33, 0x35, 0x36, 0x38, 0x39, 0x3B, 0x3C, 0x3D, 0x3E, 0x40, 0x41, 0x42, 0x43, 0x45, 0x46,
	0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56,
	0x56, 0x57, 0x58, 0x59, 0x5A, 0x5B, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F, 0x5F, 0x60, 0x61, 0x62, 0x62,
	0x63, 0x64, 0x65, 0x65, 0x66, 0x67, 0x67, 0x68, 0x69, 0x6A, 0x6A, 0x6B, 0x6C, 0x6C, 0x6D, 0x6E,
	0x6E, 0x6F, 0x6F, 0x70, 0x71, 0x71, 0x72, 0x73, 0x73, 0x74, 0x74, 0x75, 0x76, 0x76, 0x77, 0x77,
	0x78, 0x79, 0x79, 0x7A, 0x7A, 0x7B, 0x7B, 0x7C, 0x7D, 0x7D, 0x7E, 0x7E, 0x7F, 0x7F, 0x80, 0x80,
	0x81, 0x81, 0x82, 0x82, 0x83, 0x84, 0x84, 0x85, 0x85, 0x86, 0x86, 0x87, 0x87, 0x88, 0x88, 0x89,
	0x89, 0x8A, 0x8A, 0x8B, 0x8B, 0x8C, 0x8C, 0x8C, 0x8D, 0x8D, 0x8E, 0x8E, 0x8F, 0x8F, 0x90, 0x90,
	0x91, 0x91, 0x92, 0x92, 0x93, 0x93, 0x93, 0x94, 0x94, 0x95, 0x95, 0x96, 0x96, 0x97, 0x97, 0x97,
	0x98, 0x98, 0x99, 0x99, 0x9A, 0x9A, 0x9A, 0x9B, 0x9B, 0x9C, 0x9C, 0x9C, 0x9D, 0x9D, 0x9E, 0x9E,
	0x9F, 0x9F, 0x9F, 0xA0, 0xA0, 0xA1, 0xA1, 0xA1, 0xA2, 0xA2, 0xA3, 0xA3, 0xA3, 0xA4, 0xA4, 0xA5,
	0xA5, 0xA5, 0xA6, 0xA6, 0xA6, 0xA7, 0xA7, 0xA8, 0xA8, 0xA8, 0xA9, 0xA9, 0xA9, 0xAA, 0xAA, 0xAB,
	0xAB, 0xAB, 0xAC, 0xAC, 0xAC, 0xAD, 0xAD, 0xAE, 0xAE, 0xAE, 0xAF, 0xAF, 0xAF, 0xB0, 0xB0, 0xB0,
	0xB1, 0xB1, 0xB1, 0xB2, 0xB2, 0xB3, 0xB3, 0xB3, 0xB4, 0xB4, 0xB4, 0xB5, 0xB5, 0xB5, 0xB6, 0xB6,
	0xB6, 0xB7, 0xB7, 0xB7, 0xB8, 0xB8, 0xB8, 0xB9, 0xB9, 0xB9, 0xBA, 0xBA, 0xBA, 0xBB, 0xBB, 0xBB,
	0xBC, 0xBC, 0xBC, 0xBD, 0xBD, 0xBD, 0xBE, 0xBE, 0xBE, 0xBF, 0xBF, 0xBF, 0xC0, 0xC0, 0xC0, 0xC1,
	0xC1, 0xC1, 0xC1, 0xC2, 0xC2, 0xC2, 0xC3, 0xC3, 0xC3, 0xC4, 0xC4, 0xC4, 0xC5, 0xC5, 0xC5, 0xC6,
	0xC6, 0xC6, 0xC6, 0xC7, 0xC7, 0xC7, 0xC8, 0xC8, 0xC8, 0xC9, 0xC9, 0xC9, 0xC9, 0xCA, 0xCA, 0xCA,
	0xCB, 0xCB, 0xCB, 0xCC, 0xCC, 0xCC, 0xCC, 0xCD, 0xCD, 0xCD, 0xCE, 0xCE, 0xCE, 0xCE, 0xCF, 0xCF,
	0xCF, 0xD0, 0xD0, 0xD0, 0xD0, 0xD1, 0xD1, 0xD1, 0xD2, 0xD2, 0xD2, 0xD2, 0xD3, 0xD3, 0xD3, 0xD4,
	0xD4, 0xD4, 0xD4, 0xD5, 0xD5, 0xD5, 0xD6, 0xD6, 0xD6, 0xD6, 0xD7, 0xD7, 0xD7, 0xD7, 0xD8, 0xD8,
	0xD8, 0xD9, 0xD9, 0xD9, 0xD9, 0xDA, 0xDA, 0xDA, 0xDA, 0xDB, 0xDB, 0xDB, 0xDC, 0xDC, 0xDC, 0xDC,
	0xDD, 0xDD, 0xDD, 0xDD, 0xDE, 0xDE, 0xDE, 0xDE, 0xDF, 0xDF, 0xDF, 0xE0, 0xE0, 0xE0, 0xE0, 0xE1,
	0xE1, 0xE1, 0xE1, 0xE2, 0xE2, 0xE2, 0xE2, 0xE3, 0xE3, 0xE3, 0xE3, 0xE4, 0xE4, 0xE4, 0xE4, 0xE5,
	0xE5, 0xE5, 0xE5, 0xE6, 0xE6, 0xE6, 0xE6, 0xE7, 0xE7, 0xE7, 0xE7, 0xE8, 0xE8, 0xE8, 0xE8, 0xE9,
	0xE9, 0xE9, 0xE9, 0xEA, 0xEA, 0xEA, 0xEA, 0xEB, 0xEB, 0xEB, 0xEB, 0xEC, 0xEC, 0xEC, 0xEC, 0xED,
	0xED, 0xED, 0xED, 0xEE, 0xEE, 0xEE, 0xEE, 0xEF, 0xEF, 0xEF, 0xEF, 0xEF, 0xF0, 0xF0, 0xF0, 0xF0,
	0xF1, 0xF1, 0xF1, 0xF1, 0xF2, 0xF2, 0xF2, 0xF2, 0xF3, 0xF3, 0xF3, 0xF3, 0xF3, 0xF4, 0xF4, 0xF4,
	0xF4, 0xF5, 0xF5, 0xF5, 0xF5, 0xF6, 0xF6, 0xF6, 0xF6, 0xF6, 0xF7, 0xF7, 0xF7, 0xF7, 0xF8, 0xF8,
	0xF8, 0xF8, 0xF9, 0xF9, 0xF9, 0xF9, 0xF9, 0xFA, 0xFA, 0xFA, 0xFA, 0xFB, 0xFB, 0xFB, 0xFB, 0xFB,
	0xFC, 0xFC, 0xFC, 0xFC, 0xFD, 0xFD, 0xFD, 0xFD, 0xFD, 0xFE, 0xFE, 0xFE, 0xFE, 0xFF, 0xFF, 0xFF,
}

// linearToSRGB8 maps a 16-bit linear-light value to an 8-bit sRGB sample via
// linearToSRGB, interpolating between adjacent LUT entries.
func linearToSRGB8(v int32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= linearMax {
		return 0xFF
	}
	vmul := v * linearToSRGBLUTSize
	offset := vmul >> linearPrecision
	interpoland := vmul & linearMax
	base := int32(linearToSRGB[offset])
	return uint8(base + ((interpoland * (int32(linearToSRGB[offset+1]) - base)) >> linearPrecision))
}

// cbrt01 computes the integer cube root of v/2^16 scaled back to the 2^16
// domain, via a cubic polynomial seed and two Halley iterations.
func cbrt01(v int32) int32 {
	if v <= 0 {
		return 0
	}
	if v >= linearMax {
		return linearMax
	}
	root := ((int64(v) * (((int64(v) * (int64(v) - 144107)) >> linearPrecision) + 132114)) >> linearPrecision) + 14379
	for i := 0; i < 2; i++ {
		n := root * root * root
		denominator := int64(v) + (n >> (linearPrecision*2 - 1))
		root = (root * (2*int64(v) + (n >> (linearPrecision * 2)))) / denominator
	}
	return int32(root)
}

// OklabForward converts one 8-bit sRGB sample (as plain integers) to Oklab
// L/a/b coefficients, with L level-shifted by oklabLevelOffset.
func OklabForward(r, g, b int32) (L, a, bb int32) {
	R := int64(sRGBToLinear[uint8(r)])
	G := int64(sRGBToLinear[uint8(g)])
	B := int64(sRGBToLinear[uint8(b)])

	l := cbrt01(int32((27015*R + 35149*G + 3372*B) >> linearPrecision))
	m := cbrt01(int32((13887*R + 44610*G + 7038*B) >> linearPrecision))
	s := cbrt01(int32((5787*R + 18462*G + 41286*B) >> linearPrecision))

	half := int32(linearMax / 2)
	L = ((862*l + 3250*m - 17*s + half) >> linearPrecision) - oklabLevelOffset
	a = (8100*l - 9945*m + 1845*s + half) >> linearPrecision
	bb = (106*l + 3205*m - 3311*s + half) >> linearPrecision
	return
}

// OklabInverse reverses OklabForward; the result is lossy relative to the
// original sRGB sample but is already range-bound to [0,255] by the LUT.
func OklabInverse(L, a, b int32) (r, g, bl int32) {
	L64 := int64(L) + oklabLevelOffset

	lp := L64*oklabMul + ((25974*int64(a) + 14143*int64(b)) >> oklabPrecision)
	mp := L64*oklabMul + ((-6918*int64(a) - 4185*int64(b)) >> oklabPrecision)
	sp := L64*oklabMul + ((-5864*int64(a) - 84638*int64(b)) >> oklabPrecision)

	l := (lp * lp * lp) >> (linearPrecision * 2)
	m := (mp * mp * mp) >> (linearPrecision * 2)
	s := (sp * sp * sp) >> (linearPrecision * 2)

	r = int32(linearToSRGB8(int32((267169*l - 216771*m + 15137*s) >> linearPrecision)))
	g = int32(linearToSRGB8(int32((-83127*l + 171030*m - 22368*s) >> linearPrecision)))
	bl = int32(linearToSRGB8(int32((-275*l - 46099*m + 111909*s) >> linearPrecision)))
	return
}

// OklabForwardImage splits an interleaved RGB buffer into L, a, b planes.
func OklabForwardImage(rgb []uint8) (L, a, b []int32) {
	n := len(rgb) / 3
	L = make([]int32, n)
	a = make([]int32, n)
	b = make([]int32, n)
	for i := 0; i < n; i++ {
		L[i], a[i], b[i] = OklabForward(int32(rgb[3*i]), int32(rgb[3*i+1]), int32(rgb[3*i+2]))
	}
	return
}

// OklabInverseImage reassembles L, a, b planes into an interleaved sRGB
// buffer.
func OklabInverseImage(L, a, b []int32) []uint8 {
	n := len(L)
	rgb := make([]uint8, n*3)
	for i := 0; i < n; i++ {
		r, g, bl := OklabInverse(L[i], a[i], b[i])
		rgb[3*i] = uint8(r)
		rgb[3*i+1] = uint8(g)
		rgb[3*i+2] = uint8(bl)
	}
	return rgb
}
