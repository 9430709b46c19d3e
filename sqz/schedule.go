package sqz

// startingRound reports the round, counting from 0, at which a subband
// first becomes eligible for coding. Plane 0 (the luma-like plane) carries
// the coarsest approximation first, then each level's detail subbands in
// increasing order of detail; planes 1 and 2 (chroma-like) follow the same
// shape one round later per level, since their own DC subband is coded
// before their level-0 detail.
//
// The table is the same for every colour mode: a one-plane grayscale image
// and a three-plane colour one differ only in how many of these rows are actually
// visited (numPlanesFor), not in the round values themselves. orientation 0
// (LL) at level > 0 is never visited by the scheduler (see visitOrder) and
// its round value here is never read; it is left at the formula's value
// rather than a sentinel to keep this function total and simple.
func startingRound(plane, level, orientation int) int {
	base := 0
	if plane == 0 {
		switch {
		case level == 0:
			return [numOrientations]int{0, 1, 1, 2}[orientation]
		default:
			return [numOrientations]int{0, level + 1, level + 1, level + 2}[orientation]
		}
	}
	switch {
	case level == 0:
		base = [numOrientations]int{1, 2, 2, 3}[orientation]
	default:
		base = [numOrientations]int{0, level + 2, level + 2, level + 3}[orientation]
	}
	return base
}

// bandRound applies startingRound and, for a chroma plane under
// subsampling, delays eligibility by one further round.
func bandRound(d *Descriptor, plane, level, orientation int) int {
	round := startingRound(plane, level, orientation)
	if d.Subsampling && plane > 0 {
		round++
	}
	return round
}
