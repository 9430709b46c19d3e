package dwt

import (
	"math/rand/v2"
	"testing"
)

func TestRowRoundTrip(t *testing.T) {
	sizes := []int{4, 5, 8, 9, 16, 31, 32, 127}

	for _, size := range sizes {
		original := make([]int32, size)
		for i := range original {
			original[i] = int32(i*3 - 50)
		}

		data := make([]int32, size)
		copy(data, original)

		forwardRow(data)
		inverseRow(data)

		for i := range data {
			if data[i] != original[i] {
				t.Errorf("size %d: row reconstruction failed at %d: got %d, want %d", size, i, data[i], original[i])
			}
		}
	}
}

func TestRowBelowMinWidthIsNoop(t *testing.T) {
	for _, size := range []int{0, 1, 2, 3} {
		data := make([]int32, size)
		for i := range data {
			data[i] = int32(i + 1)
		}
		before := make([]int32, size)
		copy(before, data)

		forwardRow(data)
		for i := range data {
			if data[i] != before[i] {
				t.Errorf("size %d: expected no-op, got %d want %d at %d", size, data[i], before[i], i)
			}
		}
	}
}

func TestForward2DInverse2DRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"8x8", 8, 8},
		{"16x16", 16, 16},
		{"32x32", 32, 32},
		{"64x32", 64, 32},
		{"100x100", 100, 100},
		{"33x17", 33, 17},
		{"9x9", 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tt.width * tt.height

			original := make([]int32, size)
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					original[y*tt.width+x] = int32(x + y*2 - 10)
				}
			}

			data := make([]int32, size)
			copy(data, original)

			Forward2D(data, tt.width, tt.height, tt.width)
			Inverse2D(data, tt.width, tt.height, tt.width)

			for i := range data {
				if data[i] != original[i] {
					t.Fatalf("reconstruction mismatch at %d: got %d, want %d", i, data[i], original[i])
				}
			}
		})
	}
}

// TestForward2DWithinLargerStride checks that a level operating on a
// top-left window of a wider buffer (as a multilevel decomposition does for
// every level past the first) leaves data outside the window untouched and
// still reconstructs exactly.
func TestForward2DWithinLargerStride(t *testing.T) {
	stride := 20
	width, height := 12, 10
	rows := 16

	buf := make([]int32, stride*rows)
	rng := rand.New(rand.NewPCG(11, 0))
	for i := range buf {
		buf[i] = int32(rng.IntN(512) - 256)
	}
	original := make([]int32, len(buf))
	copy(original, buf)

	Forward2D(buf, width, height, stride)
	Inverse2D(buf, width, height, stride)

	for i := range buf {
		if buf[i] != original[i] {
			t.Fatalf("mismatch at flat index %d: got %d, want %d", i, buf[i], original[i])
		}
	}
}

func TestMultilevelRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		levels int
	}{
		{"64x64 1-level", 64, 64, 1},
		{"64x64 3-level", 64, 64, 3},
		{"128x128 5-level", 128, 128, 5},
		{"100x100 3-level", 100, 100, 3},
		{"96x48 4-level", 96, 48, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tt.width * tt.height

			original := make([]int32, size)
			rng := rand.New(rand.NewPCG(42, 0))
			for i := range original {
				original[i] = int32(rng.IntN(256))
			}

			data := make([]int32, size)
			copy(data, original)

			Forward(data, tt.width, tt.height, tt.width, tt.levels)
			Inverse(data, tt.width, tt.height, tt.width, tt.levels)

			errors := 0
			for i := range data {
				if data[i] != original[i] {
					errors++
				}
			}
			if errors > 0 {
				t.Errorf("%s: %d/%d samples failed to reconstruct", tt.name, errors, size)
			}
		})
	}
}

func TestNextLevelDims(t *testing.T) {
	tests := []struct {
		w, h     int
		wantW    int
		wantH    int
		testName string
	}{
		{8, 8, 4, 4, "even"},
		{9, 9, 5, 5, "odd rounds up"},
		{17, 9, 9, 5, "mixed parity"},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			gotW, gotH := NextLevelDims(tt.w, tt.h)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("NextLevelDims(%d,%d) = (%d,%d), want (%d,%d)", tt.w, tt.h, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestMirror(t *testing.T) {
	tests := []struct {
		value, max, want int32
	}{
		{0, 7, 0},
		{7, 7, 7},
		{-1, 7, 1},
		{8, 7, 6},
		{-1, 4, 1},
		{5, 4, 3},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := mirror(tt.value, tt.max); got != tt.want {
			t.Errorf("mirror(%d,%d) = %d, want %d", tt.value, tt.max, got, tt.want)
		}
	}
}

func TestEdgeCases(t *testing.T) {
	t.Run("1x1", func(t *testing.T) {
		data := []int32{42}
		original := []int32{42}

		Forward2D(data, 1, 1, 1)
		Inverse2D(data, 1, 1, 1)

		if data[0] != original[0] {
			t.Errorf("1x1 failed: got %d, want %d", data[0], original[0])
		}
	})

	t.Run("all zeros", func(t *testing.T) {
		data := make([]int32, 64)
		original := make([]int32, 64)

		Forward2D(data, 8, 8, 8)
		Inverse2D(data, 8, 8, 8)

		for i := range data {
			if data[i] != original[i] {
				t.Errorf("all zeros failed at %d", i)
				break
			}
		}
	})

	t.Run("constant value", func(t *testing.T) {
		data := make([]int32, 64)
		for i := range data {
			data[i] = 100
		}
		original := make([]int32, 64)
		copy(original, data)

		Forward2D(data, 8, 8, 8)
		Inverse2D(data, 8, 8, 8)

		for i := range data {
			if data[i] != original[i] {
				t.Errorf("constant value failed at %d: got %d, want %d", i, data[i], original[i])
				break
			}
		}
	})
}
