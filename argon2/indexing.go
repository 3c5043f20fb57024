package argon2

// indexAlpha maps a pseudo-random word to the absolute index of the reference
// block for the block currently being filled. The reachable window depends on
// pass, slice, and whether the reference lane is the current lane; within the
// window, the quadratic mapping x^2/2^32 favors recently written blocks.
//
// For Argon2d the word comes from the previous block (data-dependent); for
// Argon2i it comes from a generated address block (data-independent).
func indexAlpha(rand uint64, laneLength, segmentLength, lanes, n, slice, lane, index uint32) uint32 {
	refLane := uint32(rand>>32) % lanes
	if n == 0 && slice == 0 {
		// First slice of the first pass never crosses lanes.
		refLane = lane
	}
	m, s := 3*segmentLength, ((slice+1)%syncPoints)*segmentLength
	if lane == refLane {
		m += index
	}
	if n == 0 {
		m, s = slice*segmentLength, 0
		if slice == 0 || lane == refLane {
			m += index
		}
	}
	if index == 0 || lane == refLane {
		m-- // the immediately previous block is excluded
	}
	return phi(rand, uint64(m), uint64(s), refLane, laneLength)
}

func phi(rand, m, s uint64, refLane, laneLength uint32) uint32 {
	p := rand & 0xFFFFFFFF
	p = (p * p) >> 32
	p = (p * m) >> 32
	return refLane*laneLength + uint32((s+m-(p+1))%uint64(laneLength))
}
