package scan

// snakeScan divides [0,W)x[0,H) into a grid of tiles and visits coordinates
// in an alternating horizontal/vertical direction, both inside each tile and
// between tiles in the grid, so that successive coordinates are always a
// Manhattan distance of exactly 1 apart. The grid always has an odd number
// of columns, and the last row of tiles always has an odd tile height, so
// the alternation lines up cleanly at the boundaries.
type snakeScan struct {
	x, y int

	tileX, tileY                       int
	tileWidth, tileHeight               int
	tileDefaultWidth, tileDefaultHeight int
	tileColumnsRemaining                int
	tileRowsRemaining                   int
	tileRightToLeft                     bool

	gridX, gridY         int
	gridWidth, gridHeight int
	gridColumnsIndex     int
	gridColumnsOdd       bool
	gridRowsOdd          bool

	offsetX, offsetY int
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func newSnake(width, height, tileWidth, tileHeight int) *snakeScan {
	if tileWidth > width {
		tileWidth = width
	}
	if tileHeight > height {
		tileHeight = height
	}

	s := &snakeScan{}

	gridWidth := 0
	step := 1
	for {
		gridWidth = (width + tileWidth - 1) / tileWidth
		if gridWidth%2 == 0 {
			tileWidth += step
			if tileWidth > width {
				tileWidth = width
			} else if tileWidth == 0 {
				tileWidth = 1
			}
			step = -(abs(step) + 1) * signInt(step)
		} else {
			break
		}
	}
	s.tileColumnsRemaining = width % tileWidth
	if s.tileColumnsRemaining == 0 {
		s.tileColumnsRemaining = tileWidth
	}
	if gridWidth > 1 || s.tileColumnsRemaining > 0 {
		s.tileWidth = tileWidth
	} else {
		s.tileWidth = s.tileColumnsRemaining
	}
	s.tileDefaultWidth = tileWidth
	s.gridWidth = gridWidth

	if tileHeight%2 == 0 {
		tileHeight--
	}
	rowsRemaining := 0
	step = 2
	for {
		rowsRemaining = height % tileHeight
		if rowsRemaining > 0 && rowsRemaining%2 == 0 {
			tileHeight += step
			if tileHeight > height {
				tileHeight = height
			} else if tileHeight == 0 {
				tileHeight = 1
			}
			step = -(abs(step) + 2) * signInt(step)
		} else {
			if rowsRemaining == 0 {
				rowsRemaining = tileHeight
			}
			break
		}
	}
	s.tileRowsRemaining = rowsRemaining
	gridHeight := (height + tileHeight - 1) / tileHeight
	if gridHeight > 1 || rowsRemaining > 0 {
		s.tileHeight = tileHeight
	} else {
		s.tileHeight = rowsRemaining
	}
	s.tileDefaultHeight = tileHeight
	s.gridHeight = gridHeight

	s.x, s.y = 0, 0
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *snakeScan) X() int { return s.x }
func (s *snakeScan) Y() int { return s.y }

func (s *snakeScan) Advance() bool {
	var rowIdx, gw int

	s.tileX++
	if s.tileX < s.tileWidth {
		goto loopTileColumns
	}

	s.tileX = 0
	s.tileY++
	if s.tileY < s.tileHeight {
		goto loopTileRows
	}

	s.tileY = 0
	s.gridColumnsIndex++
	if s.gridColumnsIndex < s.gridWidth {
		goto loopGridColumns
	}

	s.gridColumnsIndex = 0
	s.gridY++
	if s.gridY < s.gridHeight {
		s.gridRowsOdd = s.gridY%2 == 1
		if s.gridY < s.gridHeight-1 {
			s.tileHeight = s.tileDefaultHeight
		} else {
			s.tileHeight = s.tileRowsRemaining
		}
		s.offsetY = s.gridY * s.tileDefaultHeight
		goto loopGridColumns
	}
	return false

loopGridColumns:
	gw = s.gridWidth - 1
	if s.gridRowsOdd {
		s.gridX = gw - s.gridColumnsIndex
	} else {
		s.gridX = s.gridColumnsIndex
	}
	s.gridColumnsOdd = s.gridX%2 == 1
	if s.gridX < gw {
		s.tileWidth = s.tileDefaultWidth
	} else {
		s.tileWidth = s.tileColumnsRemaining
	}
	s.offsetX = s.gridX * s.tileDefaultWidth
	goto loopTileRows

loopTileRows:
	if s.gridColumnsOdd {
		rowIdx = s.tileHeight - 1 - s.tileY
	} else {
		rowIdx = s.tileY
	}
	s.tileRightToLeft = (s.gridY^rowIdx)&1 == 1
	goto loopTileColumns

loopTileColumns:
	if s.tileRightToLeft {
		s.x = s.tileWidth - 1 - s.tileX + s.offsetX
	} else {
		s.x = s.tileX + s.offsetX
	}
	if s.gridColumnsOdd {
		s.y = s.tileHeight - 1 - s.tileY + s.offsetY
	} else {
		s.y = s.tileY + s.offsetY
	}
	return true
}
