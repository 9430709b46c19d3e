package scan

// hilbertStackItem describes one sub-rectangle still to be traversed, given
// as an origin (x,y) and two edge vectors a=(ax,ay), b=(bx,by) spanning it.
// This is the generalized Hilbert curve construction for arbitrary
// (non power-of-two) rectangular regions.
type hilbertStackItem struct {
	x, y, ax, ay, bx, by int32
}

// hilbertScan visits coordinates along a generalized Hilbert space-filling
// curve, recursively subdividing the region into sub-rectangles traversed in
// an order that keeps successive coordinates spatially close.
type hilbertScan struct {
	stack                  []hilbertStackItem
	x, y                   int
	width, height          int32
	dax, day, dbx, dby     int32
	index                  int32
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v int32) int32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func (h *hilbertScan) push(x, y, ax, ay, bx, by int32) {
	h.stack = append(h.stack, hilbertStackItem{x, y, ax, ay, bx, by})
}

func newHilbert(width, height int) *hilbertScan {
	h := &hilbertScan{}
	if width >= height {
		h.push(0, 0, int32(width), 0, 0, int32(height))
	} else {
		h.push(0, 0, 0, int32(height), int32(width), 0)
	}
	h.index = -1
	h.Advance()
	return h
}

func (h *hilbertScan) X() int { return h.x }
func (h *hilbertScan) Y() int { return h.y }

func (h *hilbertScan) Advance() bool {
	for {
		if len(h.stack) == 0 {
			return false
		}
		item := &h.stack[len(h.stack)-1]
		if h.index < 0 {
			h.width = abs32(item.ax + item.ay)
			h.height = abs32(item.bx + item.by)
			h.dax = sign32(item.ax)
			h.day = sign32(item.ay)
			h.dbx = sign32(item.bx)
			h.dby = sign32(item.by)
			h.index = 0
		}

		if h.height == 1 {
			if h.index < h.width {
				h.x, h.y = int(item.x), int(item.y)
				item.x += h.dax
				item.y += h.day
				h.index++
				return true
			}
			h.stack = h.stack[:len(h.stack)-1]
			h.index = -1
			continue
		}

		if h.width == 1 {
			if h.index < h.height {
				h.x, h.y = int(item.x), int(item.y)
				item.x += h.dbx
				item.y += h.dby
				h.index++
				return true
			}
			h.stack = h.stack[:len(h.stack)-1]
			h.index = -1
			continue
		}

		current := *item
		h.stack = h.stack[:len(h.stack)-1]
		h.index = -1

		ax2 := current.ax / 2
		ay2 := current.ay / 2
		bx2 := current.bx / 2
		by2 := current.by / 2
		w2 := abs32(ax2 + ay2)
		h2 := abs32(bx2 + by2)

		if 2*h.width > 3*h.height {
			if (w2%2 != 0) && h.width > 2 {
				ax2 += h.dax
				ay2 += h.day
			}
			h.push(current.x+ax2, current.y+ay2, current.ax-ax2, current.ay-ay2, current.bx, current.by)
			h.push(current.x, current.y, ax2, ay2, current.bx, current.by)
		} else {
			if (h2%2 != 0) && h.height > 2 {
				bx2 += h.dbx
				by2 += h.dby
			}
			h.push(current.x+(current.ax-h.dax)+(bx2-h.dbx), current.y+(current.ay-h.day)+(by2-h.dby), -bx2, -by2, -(current.ax-ax2), -(current.ay-ay2))
			h.push(current.x+bx2, current.y+by2, current.ax, current.ay, current.bx-bx2, current.by-by2)
			h.push(current.x, current.y, bx2, by2, ax2, ay2)
		}
	}
}
