package mineengine

// solveFrom is the lazy probabilistic solver's entry point: the
// small-world constraint solve, run for a reveal that the
// fairness judge has already cleared and whose cache entry has already
// been removed by revealCell. It returns the number to display at
// point, having written every frontier cell it touched back into the
// risk cache with its posterior probability of being a mine.
func (f *Field) solveFrom(point Coord, firstZero bool) uint8 {
	sw := f.buildSmallWorld(point)
	if sw == nil {
		return 0
	}

	sw.enumerate(f.density)
	dist := sw.convolve(f.density)
	num := f.sampleNum(sw, dist, firstZero)

	for i, c := range sw.unknowns {
		f.riskCache.insert(c, sw.unknownRisk(i, int(num), dist))
	}
	if len(sw.unconstrained) > 0 {
		risk := sw.unconstrainedRisk(int(num), dist)
		for _, c := range sw.unconstrained {
			f.riskCache.insert(c, risk)
		}
	}

	return num
}
