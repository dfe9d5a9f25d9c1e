package mineengine

// cellRisk computes cell_risk(p): the cached value if
// present, else 0.0 if the cell is already revealed or this is the very
// first click of the game (cache empty and density < 1), else the prior
// density.
func (f *Field) cellRisk(p Coord) float32 {
	if r, ok := f.riskCache.get(p); ok {
		return r
	}
	if cell, inBounds := f.getCell(p); inBounds && cell.IsRevealed() {
		return 0.0
	}
	if f.riskCache.len() == 0 && f.density < 1.0 {
		return 0.0
	}
	return f.density
}

// CellRisk is the exported form of cellRisk.
func (f *Field) CellRisk(p Coord) float32 { return f.cellRisk(p) }

// groupSatisfies reports whether every cached member of the
// (unclipped) group reachable from p satisfies pred. Members with no
// cache entry are not constrained by pred -- the predicate only speaks
// about *known* risk.
func (f *Field) groupSatisfies(p Coord, pred func(float32) bool) bool {
	group := f.groupFrom([]Coord{p}, false)
	for q := range group {
		if r, ok := f.riskCache.get(q); ok {
			if !pred(r) {
				return false
			}
		}
	}
	return true
}

// isGlobalClear implements the Global policy's predicate, shared with
// Local's fallback when p is not yet on the frontier.
func (f *Field) isGlobalClear(r float32) bool {
	return r < 1.0 && r <= f.density && r <= f.riskCache.globalBest()
}

// isClear applies the fairness policy table to a requested reveal at
// p.
func (f *Field) isClear(p Coord) bool {
	r := f.cellRisk(p)

	switch f.judge {
	case Random:
		return f.rng.Float32() > r

	case Kind:
		return r != 1.0

	case Strict:
		return r == 0.0

	case Global:
		return f.isGlobalClear(r)

	case Local:
		if !f.riskCache.contains(p) {
			return f.isGlobalClear(r)
		}
		if r == 1.0 {
			return false
		}
		return f.groupSatisfies(p, func(q float32) bool { return q >= r })

	case KaboomGlobal:
		if r == 0 {
			return true
		}
		if r == 1 {
			return false
		}
		return f.riskCache.contains(p) && f.riskCache.globalBest() > 0

	case KaboomLocal:
		if r == 0 {
			return true
		}
		if r == 1 {
			return false
		}
		return f.riskCache.contains(p) && f.groupSatisfies(p, func(q float32) bool { return q > 0 })
	}
	return false
}

// IsClear is the exported form of isClear.
func (f *Field) IsClear(p Coord) bool { return f.isClear(p) }

// DefiniteRisk implements definite_risk(p): for Random,
// only r==0 or r==1 are definite; every other policy's refusal or
// acceptance is itself definite.
func (f *Field) DefiniteRisk(p Coord) *bool {
	r := f.cellRisk(p)
	falseVal, trueVal := false, true

	if f.judge == Random {
		switch r {
		case 0:
			return &falseVal
		case 1:
			return &trueVal
		default:
			return nil
		}
	}

	if f.isClear(p) {
		return &falseVal
	}
	return &trueVal
}

// HasSafe reports whether at least one cell is still definitely safe.
// The test depends on the policy: Random and Strict need a cached risk
// of exactly 0, every other policy a cached risk below 1.
func (f *Field) HasSafe() bool {
	switch f.judge {
	case Random, Strict:
		return f.riskCache.globalBest() == 0
	default:
		return f.riskCache.globalBest() < 1
	}
}

// SafeFrontier returns every cached coordinate for which DefiniteRisk is
// Some(false).
func (f *Field) SafeFrontier() []Coord {
	var out []Coord
	f.riskCache.iter(func(c Coord, _ float32) {
		if d := f.DefiniteRisk(c); d != nil && !*d {
			out = append(out, c)
		}
	})
	return out
}

// RevealCell attempts to reveal p. If the fairness policy refuses, it
// returns (0, false) and leaves the field unchanged. On success it
// removes p from the cache, runs the small-world solver to obtain the
// displayed number, writes the revealed cell, and returns (num, true).
func (f *Field) RevealCell(p Coord) (uint8, bool) {
	return f.revealCell(p, false)
}

// RevealCellFirstZero behaves like RevealCell but asks the solver to
// bias toward a zero on the very first reveal of the game (cache
// empty), when that outcome remains consistent with existing
// constraints.
func (f *Field) RevealCellFirstZero(p Coord) (uint8, bool) {
	return f.revealCell(p, true)
}

func (f *Field) revealCell(p Coord, firstZero bool) (uint8, bool) {
	if f.size != nil && !f.size.Bounds().Contains(p) {
		return 0, false
	}
	if !f.isClear(p) {
		return 0, false
	}
	f.riskCache.remove(p)
	num := f.solveFrom(p, firstZero)
	f.set(p, RevealedCell(num))
	return num, true
}
