package scan

import "github.com/cocosip/sqz/internal/xmath"

// mortonScan visits coordinates in Z-order, extending the square pattern
// along the longer axis for non-square rectangles.
type mortonScan struct {
	x, y          int
	width, height int
	index         uint32
	mask          uint32
	rangeBits     uint32
	length        uint32
}

func newMorton(width, height int) *mortonScan {
	m := &mortonScan{width: width, height: height}
	shorter, longer := width, height
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	m.rangeBits = xmath.BitLength(uint32(shorter - 1))
	m.mask = (uint32(1) << (m.rangeBits * 2)) - 1
	m.length = uint32(1) << (m.rangeBits + xmath.BitLength(uint32(longer-1)))
	return m
}

func (m *mortonScan) X() int { return m.x }
func (m *mortonScan) Y() int { return m.y }

func (m *mortonScan) Advance() bool {
	for {
		m.index++
		x := xmath.Deinterleave32To16(m.index & m.mask)
		y := xmath.Deinterleave32To16((m.index >> 1) & m.mask)
		extra := (m.index &^ m.mask) >> m.rangeBits
		if m.width > m.height {
			x |= extra
		} else {
			y |= extra
		}
		if int(x) < m.width && int(y) < m.height {
			m.x, m.y = int(x), int(y)
			return true
		}
		if m.index >= m.length {
			return false
		}
	}
}
