package scan

// rasterScan visits every coordinate row by row, x incrementing fastest.
type rasterScan struct {
	x, y          int
	width, height int
}

func newRaster(width, height int) *rasterScan {
	return &rasterScan{width: width, height: height}
}

func (r *rasterScan) X() int { return r.x }
func (r *rasterScan) Y() int { return r.y }

func (r *rasterScan) Advance() bool {
	r.x++
	if r.x >= r.width {
		r.x = 0
		r.y++
		if r.y >= r.height {
			return false
		}
	}
	return true
}
