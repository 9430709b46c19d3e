package colorspace

import (
	"math/rand"
	"testing"
)

func TestGrayscaleRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		got := GrayscaleInverse(GrayscaleForward(uint8(v)))
		if int(got) != v {
			t.Fatalf("v=%d: got %d", v, got)
		}
	}
}

func TestGrayscalePlaneRoundTrip(t *testing.T) {
	pixels := make([]uint8, 256)
	for i := range pixels {
		pixels[i] = uint8(i)
	}
	coeffs := GrayscaleForwardPlane(pixels)
	out := GrayscaleInversePlane(coeffs)
	for i := range pixels {
		if out[i] != pixels[i] {
			t.Fatalf("index %d: got %d want %d", i, out[i], pixels[i])
		}
	}
}

func TestYCoCgRRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		r, g, b := int32(rnd.Intn(256)), int32(rnd.Intn(256)), int32(rnd.Intn(256))
		y, co, cg := YCoCgRForward(r, g, b)
		gotR, gotG, gotB := YCoCgRInverse(y, co, cg)
		if gotR != r || gotG != g || gotB != b {
			t.Fatalf("rgb=(%d,%d,%d): got (%d,%d,%d)", r, g, b, gotR, gotG, gotB)
		}
	}
}

func TestYCoCgRImageRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	rgb := make([]uint8, 300)
	rnd.Read(rgb)
	y, co, cg := YCoCgRForwardImage(rgb)
	out := YCoCgRInverseImage(y, co, cg)
	for i := range rgb {
		if out[i] != rgb[i] {
			t.Fatalf("byte %d: got %d want %d", i, out[i], rgb[i])
		}
	}
}

func TestYCoCgRCornersExact(t *testing.T) {
	cases := [][3]int32{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {128, 128, 128}}
	for _, c := range cases {
		y, co, cg := YCoCgRForward(c[0], c[1], c[2])
		r, g, b := YCoCgRInverse(y, co, cg)
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("case %v: got (%d,%d,%d)", c, r, g, b)
		}
	}
}

// logl1 is explicitly lossy: its forward and inverse matrices are not exact
// inverses, so round trips only need to stay within a small error bound.
func TestLogL1ApproxRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	const tolerance = 6
	for i := 0; i < 5000; i++ {
		r, g, b := int32(rnd.Intn(256)), int32(rnd.Intn(256)), int32(rnd.Intn(256))
		y, c0, c1 := LogL1Forward(r, g, b)
		gotR, gotG, gotB := LogL1Inverse(y, c0, c1)
		if abs32(gotR-r) > tolerance || abs32(gotG-g) > tolerance || abs32(gotB-b) > tolerance {
			t.Fatalf("rgb=(%d,%d,%d): got (%d,%d,%d)", r, g, b, gotR, gotG, gotB)
		}
	}
}

func TestLogL1ImageRoundTripClipped(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	rgb := make([]uint8, 300)
	rnd.Read(rgb)
	y, c0, c1 := LogL1ForwardImage(rgb)
	out := LogL1InverseImage(y, c0, c1)
	if len(out) != len(rgb) {
		t.Fatalf("length mismatch: got %d want %d", len(out), len(rgb))
	}
}

// Oklab is lossy and perceptual; verify it stays in a reasonable
// neighbourhood of the original sample rather than demanding exact equality.
func TestOklabApproxRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	const tolerance = 10
	for i := 0; i < 5000; i++ {
		r, g, b := int32(rnd.Intn(256)), int32(rnd.Intn(256)), int32(rnd.Intn(256))
		L, a, bb := OklabForward(r, g, b)
		gotR, gotG, gotB := OklabInverse(L, a, bb)
		if abs32(gotR-r) > tolerance || abs32(gotG-g) > tolerance || abs32(gotB-b) > tolerance {
			t.Fatalf("rgb=(%d,%d,%d): got (%d,%d,%d)", r, g, b, gotR, gotG, gotB)
		}
	}
}

func TestOklabGreyscaleAxis(t *testing.T) {
	for v := 0; v < 256; v += 17 {
		r, g, b := int32(v), int32(v), int32(v)
		L, a, bb := OklabForward(r, g, b)
		if a < -4 || a > 4 || bb < -4 || bb > 4 {
			t.Fatalf("v=%d: expected near-zero chroma, got a=%d b=%d", v, a, bb)
		}
		_ = L
	}
}

func TestOklabImageShapeAndRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	rgb := make([]uint8, 3*64)
	rnd.Read(rgb)
	L, a, b := OklabForwardImage(rgb)
	if len(L) != 64 || len(a) != 64 || len(b) != 64 {
		t.Fatalf("unexpected plane lengths: %d %d %d", len(L), len(a), len(b))
	}
	out := OklabInverseImage(L, a, b)
	if len(out) != len(rgb) {
		t.Fatalf("length mismatch: got %d want %d", len(out), len(rgb))
	}
}

func TestLinearToSRGB8Bounds(t *testing.T) {
	if got := linearToSRGB8(-5); got != 0 {
		t.Fatalf("negative input: got %d want 0", got)
	}
	if got := linearToSRGB8(linearMax + 100); got != 0xFF {
		t.Fatalf("overflow input: got %d want 0xFF", got)
	}
}

func TestCbrt01Bounds(t *testing.T) {
	if got := cbrt01(0); got != 0 {
		t.Fatalf("cbrt01(0): got %d want 0", got)
	}
	if got := cbrt01(linearMax); got != linearMax {
		t.Fatalf("cbrt01(max): got %d want %d", got, linearMax)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
