package sqz

import "github.com/cocosip/sqz/internal/bitio"

// headerMagic tags the start of a bitstream so a decode of unrelated data
// fails fast instead of silently misinterpreting it.
const headerMagic = 0xA5

// encodeHeader writes the fixed 48-bit header: magic, width-1, height-1,
// colour mode, dwt_levels-1, scan order, and the subsampling flag.
func encodeHeader(d *Descriptor, buf *bitio.Buffer) bool {
	return buf.WriteBits(headerMagic, 8) &&
		buf.WriteBits(uint32(d.Width-1), 16) &&
		buf.WriteBits(uint32(d.Height-1), 16) &&
		buf.WriteBits(uint32(d.ColorMode), 2) &&
		buf.WriteBits(uint32(d.DWTLevels-1), 3) &&
		buf.WriteBits(uint32(d.ScanOrder), 2) &&
		buf.WriteBit(boolBit(d.Subsampling))
}

// decodeHeader reads the header encodeHeader writes. It reports failure if
// the magic byte doesn't match or the buffer runs out before every field is
// read; it does not otherwise validate field values, that is validateInput's
// job once the whole descriptor is assembled.
func decodeHeader(buf *bitio.Buffer) (Descriptor, bool) {
	var d Descriptor
	magic := buf.ReadBits(8)
	if magic != headerMagic {
		return d, false
	}
	width := buf.ReadBits(16)
	height := buf.ReadBits(16)
	colorMode := buf.ReadBits(2)
	levels := buf.ReadBits(3)
	order := buf.ReadBits(2)
	subsampling := buf.ReadBit()
	if subsampling < 0 {
		return d, false
	}
	d.Width = int(width) + 1
	d.Height = int(height) + 1
	d.ColorMode = ColorMode(colorMode)
	d.DWTLevels = int(levels) + 1
	d.ScanOrder = ScanOrder(order)
	d.Subsampling = subsampling != 0
	return d, true
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
