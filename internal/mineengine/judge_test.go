package mineengine

import "testing"

func TestCellRiskFirstClickIsZero(t *testing.T) {
	f := New(0.3, Strict, true, nil, &Options{Seed: 1})
	if got := f.cellRisk(Coord{0, 0}); got != 0.0 {
		t.Errorf("first click risk = %v, want 0.0", got)
	}
}

func TestCellRiskFallsBackToDensity(t *testing.T) {
	f := New(0.3, Strict, true, nil, &Options{Seed: 1})
	// Once anything is cached, an uncached cell's prior is the density.
	f.riskCache.insert(Coord{9, 9}, 0.1)
	if got := f.cellRisk(Coord{0, 0}); got != 0.3 {
		t.Errorf("cellRisk = %v, want density 0.3", got)
	}
}

func TestCellRiskRevealedIsZero(t *testing.T) {
	f := New(1.0, Strict, true, nil, &Options{Seed: 1})
	f.set(Coord{0, 0}, RevealedCell(2))
	if got := f.cellRisk(Coord{0, 0}); got != 0.0 {
		t.Errorf("cellRisk of a revealed cell = %v, want 0.0", got)
	}
}

func TestIsClearStrict(t *testing.T) {
	f := New(0.5, Strict, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.0)
	f.riskCache.insert(Coord{1, 0}, 0.3)
	if !f.isClear(Coord{0, 0}) {
		t.Errorf("Strict must clear a risk-0 cell")
	}
	if f.isClear(Coord{1, 0}) {
		t.Errorf("Strict must refuse any risk > 0 cell")
	}
}

func TestIsClearKind(t *testing.T) {
	f := New(0.5, Kind, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.99)
	f.riskCache.insert(Coord{1, 0}, 1.0)
	if !f.isClear(Coord{0, 0}) {
		t.Errorf("Kind must clear anything short of certain death")
	}
	if f.isClear(Coord{1, 0}) {
		t.Errorf("Kind must refuse a risk-1.0 cell")
	}
}

func TestIsClearGlobal(t *testing.T) {
	f := New(0.5, Global, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.2)
	f.riskCache.insert(Coord{1, 0}, 0.6)
	if !f.isClear(Coord{0, 0}) {
		t.Errorf("Global must clear the global minimum risk cell")
	}
	if f.isClear(Coord{1, 0}) {
		t.Errorf("Global must refuse a cell above the global minimum")
	}
}

func TestIsClearKaboomGlobal(t *testing.T) {
	f := New(0.5, KaboomGlobal, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.0)
	f.riskCache.insert(Coord{1, 0}, 1.0)
	f.riskCache.insert(Coord{2, 0}, 0.4)
	if !f.isClear(Coord{0, 0}) {
		t.Errorf("KaboomGlobal must always clear a certain-safe cell")
	}
	if f.isClear(Coord{1, 0}) {
		t.Errorf("KaboomGlobal must always refuse a certain-mine cell")
	}
	// (2,0) is cached and the global best (0.0, at (0,0)) is already
	// revealed-safe-eligible... use a cache with no zero entry instead.
	f2 := New(0.5, KaboomGlobal, true, nil, &Options{Seed: 1})
	f2.riskCache.insert(Coord{2, 0}, 0.4)
	if !f2.isClear(Coord{2, 0}) {
		t.Errorf("KaboomGlobal should clear a cached mid-risk cell when global_best > 0")
	}
}

func TestDefiniteRiskRandomOnlyCertain(t *testing.T) {
	f := New(0.5, Random, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.0)
	f.riskCache.insert(Coord{1, 0}, 1.0)
	f.riskCache.insert(Coord{2, 0}, 0.4)

	if d := f.DefiniteRisk(Coord{0, 0}); d == nil || *d {
		t.Errorf("DefiniteRisk(risk=0) under Random = %v, want Some(false)", d)
	}
	if d := f.DefiniteRisk(Coord{1, 0}); d == nil || !*d {
		t.Errorf("DefiniteRisk(risk=1) under Random = %v, want Some(true)", d)
	}
	if d := f.DefiniteRisk(Coord{2, 0}); d != nil {
		t.Errorf("DefiniteRisk(risk=0.4) under Random = %v, want None", d)
	}
}

func TestHasSafeAndSafeFrontier(t *testing.T) {
	f := New(0.5, Strict, true, nil, &Options{Seed: 1})
	if f.HasSafe() {
		t.Errorf("an empty cache has no known-safe cell yet")
	}
	f.riskCache.insert(Coord{0, 0}, 0.0)
	f.riskCache.insert(Coord{1, 0}, 0.3)
	if !f.HasSafe() {
		t.Errorf("expected a risk-0 cell to make HasSafe true")
	}
	frontier := f.SafeFrontier()
	if len(frontier) != 1 || frontier[0] != (Coord{0, 0}) {
		t.Errorf("SafeFrontier() = %v, want only (0,0)", frontier)
	}
}

func TestRevealCellOutOfBoundsRefuses(t *testing.T) {
	f := New(0.2, Strict, true, &Size{Width: 4, Height: 4}, &Options{Seed: 1})
	// Size{4,4}.Bounds() is x,y in [-2, 1]; {-3, 0} lies just outside it.
	if _, ok := f.RevealCell(Coord{-3, 0}); ok {
		t.Errorf("revealing an out-of-bounds coordinate must be refused")
	}
}

func TestRevealCellRefusedByPolicyLeavesStateUnchanged(t *testing.T) {
	f := New(0.5, Strict, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.5)
	before := f.CellsRevealed()
	if _, ok := f.RevealCell(Coord{0, 0}); ok {
		t.Errorf("Strict must refuse a risk-0.5 cell")
	}
	if f.CellsRevealed() != before {
		t.Errorf("a refused reveal must not change cells revealed")
	}
	if cell, _ := f.Get(Coord{0, 0}); cell.IsRevealed() {
		t.Errorf("a refused reveal must leave the cell hidden")
	}
}
