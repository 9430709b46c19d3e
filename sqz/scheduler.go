package sqz

import (
	"github.com/cocosip/sqz/internal/bitio"
	"github.com/cocosip/sqz/internal/wdr"
)

// visitCoord names one subband by plane, level, and orientation.
type visitCoord struct{ plane, level, orientation int }

// visitOrder lists every subband in the fixed order the scheduler walks
// them each round: all of plane 0's levels (coarsest to finest) first, then,
// if there is more than one plane, the chroma-like planes' levels in the
// same coarsest-to-finest order with the two chroma planes interleaved at
// each (level, orientation) pair. The order itself never depends on round,
// so it is computed once and reused every round.
func visitOrder(d *Descriptor) []visitCoord {
	var order []visitCoord
	appendLevels := func(plane int) {
		for level := 0; level < d.DWTLevels; level++ {
			for orientation := firstOrientation(level); orientation < numOrientations; orientation++ {
				order = append(order, visitCoord{plane, level, orientation})
			}
		}
	}
	appendLevels(0)
	if d.NumPlanes > 1 {
		for level := 0; level < d.DWTLevels; level++ {
			for orientation := firstOrientation(level); orientation < numOrientations; orientation++ {
				for p := 1; p < d.NumPlanes; p++ {
					order = append(order, visitCoord{p, level, orientation})
				}
			}
		}
	}
	return order
}

// initFn activates a subband for its first round: building its Band and
// exchanging its 4-bit max-bitplane field with the bitstream.
type initFn func(ctx *context, c visitCoord, buf *bitio.Buffer)

// taskFn runs one bitplane iteration over an already-active subband.
type taskFn func(band *wdr.Band, buf *bitio.Buffer) bool

// schedule drives every subband through its WDR bitplane passes, round by
// round, until either every subband has exhausted its bitplanes or the bit
// buffer runs out. Running out mid-subband is not an error: schedule simply
// stops, leaving every later subband and bitplane uncoded, which is exactly
// what a truncated, lower-quality decode (or encode against a tight budget)
// looks like.
func schedule(ctx *context, buf *bitio.Buffer, order []visitCoord, init initFn, task taskFn) {
	round := 0
	for !buf.EOB() {
		done := true
		for _, c := range order {
			entry := ctx.planes[c.plane].bands[c.level][c.orientation]
			switch {
			case round < entry.round:
				done = false
			case round > entry.round && entry.band.Bitplane == 0:
				// already fully coded; done is unaffected.
			default:
				if entry.round == round {
					init(ctx, c, buf)
				}
				if !task(entry.band, buf) {
					return
				}
				if entry.band.Bitplane != 0 {
					done = false
				}
			}
		}
		round++
		if done {
			return
		}
	}
}

func encodeInitSubband(ctx *context, c visitCoord, buf *bitio.Buffer) {
	band := ctx.activate(c.plane, c.level, c.orientation)
	band.ComputeMaxBitplane()
	buf.WriteBits(uint32(band.MaxBitplane), 4)
}

func decodeInitSubband(ctx *context, c visitCoord, buf *bitio.Buffer) {
	band := ctx.activate(c.plane, c.level, c.orientation)
	band.MaxBitplane = int(buf.ReadBits(4))
	band.Bitplane = band.MaxBitplane
}
