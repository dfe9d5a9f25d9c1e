package mineengine

// groupFrom computes the frontier flood-fill: starting from the
// given seeds, it alternates "hidden -> revealed neighbour -> hidden"
// hops, collecting every hidden coordinate reachable that way. A
// coordinate is skipped (never added, never expanded from) if:
//
//   - it is already in the group,
//   - its cached probability is 1.0,
//   - its cached probability is 0.0 and cutOnSafe is set,
//   - it lies outside the field's bounds, or
//   - it is revealed.
//
// The result is the connected frontier segment influencing, and
// influenced by, the seeds.
func (f *Field) groupFrom(seeds []Coord, cutOnSafe bool) map[Coord]struct{} {
	group := make(map[Coord]struct{})
	queue := make([]Coord, 0, len(seeds))

	consider := func(c Coord) {
		if _, already := group[c]; already {
			return
		}
		if r, ok := f.riskCache.get(c); ok {
			if r == 1.0 {
				return
			}
			if cutOnSafe && r == 0.0 {
				return
			}
		}
		cell, inBounds := f.getCell(c)
		if !inBounds || cell.IsRevealed() {
			return
		}
		group[c] = struct{}{}
		queue = append(queue, c)
	}

	for _, s := range seeds {
		consider(s)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		for _, n := range c.Neighbors() {
			revealedNeighbor, inBounds := f.getCell(n)
			if !inBounds || !revealedNeighbor.IsRevealed() {
				continue
			}
			for _, n2 := range n.Neighbors() {
				consider(n2)
			}
		}
	}

	return group
}

// GroupFrom is the exported form of groupFrom.
func (f *Field) GroupFrom(seeds []Coord, cutOnSafe bool) map[Coord]struct{} {
	return f.groupFrom(seeds, cutOnSafe)
}

// IsOneGroup reports whether every coordinate with a cached probability
// strictly between 0 and 1 is reachable from any single one of them via
// groupFrom(cutOnSafe=true) -- i.e. the whole frontier forms one
// connected group. An empty frontier is trivially a single (empty)
// group.
func (f *Field) IsOneGroup() bool {
	var seed Coord
	haveSeed := false
	inRange := 0

	f.riskCache.iter(func(c Coord, r float32) {
		if r > 0 && r < 1 {
			inRange++
			if !haveSeed {
				seed = c
				haveSeed = true
			}
		}
	})
	if !haveSeed {
		return true
	}

	group := f.groupFrom([]Coord{seed}, true)
	reached := 0
	f.riskCache.iter(func(c Coord, r float32) {
		if r > 0 && r < 1 {
			if _, ok := group[c]; ok {
				reached++
			}
		}
	})
	return reached == inRange
}
