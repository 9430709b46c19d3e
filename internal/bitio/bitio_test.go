package bitio

import "testing"

func TestWriteReadBitRoundTrip(t *testing.T) {
	bits := []uint32{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0}

	buf := make([]byte, (len(bits)+7)/8)
	w := New(buf)
	for i, bit := range bits {
		if !w.WriteBit(bit) {
			t.Fatalf("WriteBit failed at index %d", i)
		}
	}

	r := New(buf)
	for i, want := range bits {
		got := r.ReadBit()
		if got != int32(want) {
			t.Errorf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestWriteReadBitsRoundTrip(t *testing.T) {
	tests := []struct {
		value uint32
		width uint32
	}{
		{0, 1},
		{1, 1},
		{5, 3},
		{255, 8},
		{0xABCD, 16},
		{1, 32},
		{0xFFFFFFFF, 32},
		{0, 0},
	}

	totalWidth := 0
	for _, tt := range tests {
		totalWidth += int(tt.width)
	}
	buf := make([]byte, (totalWidth+7)/8)

	w := New(buf)
	for i, tt := range tests {
		if !w.WriteBits(tt.value, tt.width) {
			t.Fatalf("WriteBits failed at index %d (value=%d width=%d)", i, tt.value, tt.width)
		}
	}

	r := New(buf)
	for i, tt := range tests {
		got := r.ReadBits(tt.width)
		mask := uint32(0)
		if tt.width > 0 {
			mask = (uint32(1) << tt.width) - 1
		}
		want := int32(tt.value & mask)
		if got != want {
			t.Errorf("entry %d: got %d, want %d (width=%d)", i, got, want, tt.width)
		}
	}
}

func TestWriteBitsAtAnyBitOffset(t *testing.T) {
	buf := make([]byte, 4)
	w := New(buf)
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBit(1)
	if !w.WriteBits(0x1F, 20) {
		t.Fatalf("WriteBits spanning multiple bytes failed")
	}

	r := New(buf)
	if got := r.ReadBit(); got != 1 {
		t.Errorf("bit 0: got %d want 1", got)
	}
	if got := r.ReadBit(); got != 0 {
		t.Errorf("bit 1: got %d want 0", got)
	}
	if got := r.ReadBit(); got != 1 {
		t.Errorf("bit 2: got %d want 1", got)
	}
	if got := r.ReadBits(20); got != 0x1F {
		t.Errorf("trailing bits: got %d want %d", got, 0x1F)
	}
}

func TestEOBStopsWritesWithoutCorruption(t *testing.T) {
	buf := make([]byte, 1)
	w := New(buf)
	if !w.WriteBits(0x3, 2) {
		t.Fatalf("first write should succeed")
	}
	if !w.WriteBits(0xF, 6) {
		t.Fatalf("second write should exactly fill the byte")
	}
	if !w.EOB() {
		t.Fatalf("expected EOB after filling capacity")
	}
	if w.WriteBit(1) {
		t.Errorf("WriteBit should fail past EOB")
	}
	if w.WriteBits(1, 1) {
		t.Errorf("WriteBits should fail past EOB")
	}
	if got := buf[0]; got != 0xCF {
		t.Errorf("buffer contents corrupted after failed write: got %08b", got)
	}
}

func TestReadPastEOBReturnsSentinel(t *testing.T) {
	buf := []byte{0xFF}
	r := New(buf)
	r.ReadBits(8)
	if !r.EOB() {
		t.Fatalf("expected EOB after consuming all bits")
	}
	if got := r.ReadBit(); got != -1 {
		t.Errorf("ReadBit past EOB: got %d want -1", got)
	}
	if got := r.ReadBits(4); got != -1 {
		t.Errorf("ReadBits past EOB: got %d want -1", got)
	}
}

func TestBitsUsedAndBytesUsed(t *testing.T) {
	buf := make([]byte, 4)
	w := New(buf)
	w.WriteBits(0, 5)
	if got := w.BitsUsed(); got != 5 {
		t.Errorf("BitsUsed after 5 bits: got %d want 5", got)
	}
	if got := w.BytesUsed(); got != 1 {
		t.Errorf("BytesUsed after 5 bits: got %d want 1", got)
	}
	w.WriteBits(0, 11)
	if got := w.BitsUsed(); got != 16 {
		t.Errorf("BitsUsed after 16 bits: got %d want 16", got)
	}
	if got := w.BytesUsed(); got != 2 {
		t.Errorf("BytesUsed after 16 bits: got %d want 2", got)
	}
}
