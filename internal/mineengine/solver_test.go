package mineengine

import "testing"

func TestSolveFromZeroDensityAlwaysZero(t *testing.T) {
	f := New(0.0, Strict, true, &Size{Width: 6, Height: 6}, &Options{Seed: 42})
	for _, p := range []Coord{{0, 0}, {1, 0}, {-2, 1}} {
		num, ok := f.RevealCell(p)
		if !ok {
			t.Fatalf("reveal of %v refused at density 0", p)
		}
		if num != 0 {
			t.Errorf("reveal of %v at density 0 displayed %d, want 0", p, num)
		}
	}
}

func TestRevealCellRemovesCacheEntryAndSetsRevealed(t *testing.T) {
	f := New(0.2, Kind, true, nil, &Options{Seed: 7})
	f.RevealCell(Coord{0, 0})

	if f.riskCache.contains(Coord{0, 0}) {
		t.Errorf("a revealed cell must not remain in the risk cache")
	}
	cell, inBounds := f.Get(Coord{0, 0})
	if !inBounds || !cell.IsRevealed() {
		t.Errorf("reveal must leave the board cell Revealed")
	}
}

func TestRevealCellFirstZeroForcesZeroOnFirstClick(t *testing.T) {
	f := New(0.4, Kind, true, nil, &Options{Seed: 3})
	num, ok := f.RevealCellFirstZero(Coord{0, 0})
	if !ok {
		t.Fatalf("first reveal unexpectedly refused")
	}
	if num != 0 {
		t.Errorf("RevealCellFirstZero on an empty cache displayed %d, want 0", num)
	}
}

func TestSolveFromPopulatesNeighbourRisks(t *testing.T) {
	f := New(0.3, Kind, true, nil, &Options{Seed: 11})
	// Whatever number is displayed, every neighbour of the first reveal
	// is an unconstrained group cell and receives a cached risk (0.0
	// when the display is zero).
	if _, ok := f.RevealCell(Coord{0, 0}); !ok {
		t.Fatalf("reveal refused")
	}
	origin := Coord{0, 0}
	for _, n := range origin.Neighbors() {
		if _, ok := f.riskCache.get(n); !ok {
			t.Errorf("neighbour %v should have gained a cached risk after solving (0,0)", n)
		}
	}
}

func TestIsWonOnFullyClearedZeroDensityBoard(t *testing.T) {
	f := New(0.0, Strict, true, &Size{Width: 2, Height: 2}, &Options{Seed: 1})
	b := f.size.Bounds()
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			if _, ok := f.RevealCell(Coord{X: x, Y: y}); !ok {
				t.Fatalf("reveal of (%d,%d) refused on a density-0 board", x, y)
			}
		}
	}
	if !f.IsWon() {
		t.Errorf("expected IsWon() once every cell on a density-0 board is revealed")
	}
}

func TestClearResetsBoardAndCache(t *testing.T) {
	f := New(0.3, Kind, true, nil, &Options{Seed: 5})
	f.RevealCell(Coord{0, 0})
	f.Clear()
	if f.CellsRevealed() != 0 {
		t.Errorf("CellsRevealed() = %d after Clear(), want 0", f.CellsRevealed())
	}
	if len(f.Risks()) != 0 {
		t.Errorf("Risks() not empty after Clear()")
	}
	if cell, _ := f.Get(Coord{0, 0}); cell.IsRevealed() {
		t.Errorf("board cell still revealed after Clear()")
	}
}
