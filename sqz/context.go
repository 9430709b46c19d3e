package sqz

import (
	"github.com/cocosip/sqz/internal/subband"
	"github.com/cocosip/sqz/internal/wdr"
)

// subbandEntry is a plane's subband bookkeeping. Its geometry and scheduled
// round are known as soon as the descriptor is, but its WDR Band (node
// cache, coordinate lists, bitplane cursor) is expensive to build and is
// only materialised once the scheduler first reaches its round.
type subbandEntry struct {
	geom  subbandGeom
	round int
	band  *wdr.Band
}

type plane struct {
	// data holds width*height coefficients at row stride == image width;
	// every subband's Band.Data is a sub-slice of this same backing array.
	data  []int32
	bands [][numOrientations]*subbandEntry
}

// context is the working state shared by encode and decode once a
// descriptor is known: one coefficient buffer per plane and that buffer's
// subband bookkeeping.
type context struct {
	desc   Descriptor
	planes []plane
}

func newContext(d Descriptor) *context {
	ctx := &context{desc: d, planes: make([]plane, d.NumPlanes)}
	for p := range ctx.planes {
		ctx.planes[p].bands = make([][numOrientations]*subbandEntry, d.DWTLevels)
		for level := 0; level < d.DWTLevels; level++ {
			for orientation := firstOrientation(level); orientation < numOrientations; orientation++ {
				ctx.planes[p].bands[level][orientation] = &subbandEntry{
					geom:  subbandGeometry(d.Width, d.Height, d.DWTLevels, level, orientation),
					round: bandRound(&d, p, level, orientation),
				}
			}
		}
	}
	return ctx
}

// allocatePlaneData gives every plane a fresh, zeroed coefficient buffer.
// Decode needs this up front, since the subbands it activates address
// windows into these buffers rather than replacing them outright the way
// colorForward does for Encode.
func (ctx *context) allocatePlaneData() {
	for p := range ctx.planes {
		ctx.planes[p].data = make([]int32, ctx.desc.Width*ctx.desc.Height)
	}
}

// firstOrientation is 0 (LL included) only at level 0; every other level
// has no LL subband of its own, since the final approximation lives solely
// at level 0.
func firstOrientation(level int) int {
	if level == 0 {
		return 0
	}
	return 1
}

// activate builds a subband's WDR Band: the node cache and LIP populated in
// the descriptor's scan order, pointed at the subband's window of its
// plane's coefficient buffer. Called once per subband, the first time the
// scheduler reaches its round.
func (ctx *context) activate(p, level, orientation int) *wdr.Band {
	entry := ctx.planes[p].bands[level][orientation]
	g := entry.geom
	stride := ctx.desc.Width
	origin := g.row*stride + g.col
	band := &wdr.Band{
		Data:   ctx.planes[p].data[origin:],
		Width:  g.width,
		Height: g.height,
		Stride: stride,
		Book:   subband.New(ctx.desc.ScanOrder, g.width, g.height),
	}
	entry.band = band
	return band
}
