package mineengine

import "testing"

func TestToggleFlagOnlyHiddenCells(t *testing.T) {
	f := New(0.3, Kind, true, nil, &Options{Seed: 1})
	f.ToggleFlag(Coord{0, 0})
	cell, _ := f.Get(Coord{0, 0})
	if !cell.IsFlagged() {
		t.Fatalf("expected (0,0) to be flagged")
	}

	f.RevealCell(Coord{1, 0})
	f.ToggleFlag(Coord{1, 0})
	cell, _ = f.Get(Coord{1, 0})
	if cell.IsFlagged() {
		t.Errorf("ToggleFlag must be a no-op on a revealed cell")
	}
}

func TestToggleFlagOutOfBoundsNoOp(t *testing.T) {
	f := New(0.3, Kind, true, &Size{Width: 2, Height: 2}, &Options{Seed: 1})
	f.ToggleFlag(Coord{100, 100})
	if _, inBounds := f.Get(Coord{100, 100}); inBounds {
		t.Errorf("expected (100,100) to remain out of bounds")
	}
}

func TestPassTimeAccumulates(t *testing.T) {
	f := New(0.3, Kind, true, nil, &Options{Seed: 1})
	f.PassTime(3)
	f.PassTime(4)
	if f.TimeElapsed() != 7 {
		t.Errorf("TimeElapsed() = %v, want 7", f.TimeElapsed())
	}
}

func TestIsWonNilSizeAlwaysFalse(t *testing.T) {
	f := New(0.3, Kind, true, nil, &Options{Seed: 1})
	if f.IsWon() {
		t.Errorf("an unbounded field must never report IsWon()")
	}
}

func TestGetOutOfBoundsReportsFalse(t *testing.T) {
	f := New(0.3, Kind, true, &Size{Width: 4, Height: 4}, &Options{Seed: 1})
	if _, inBounds := f.Get(Coord{10, 10}); inBounds {
		t.Errorf("expected (10,10) to be outside a 4x4 field")
	}
}

func TestDefaultOptionsResolveSeedNonZero(t *testing.T) {
	opts := DefaultOptions()
	if opts.Seed == 0 {
		t.Errorf("DefaultOptions should seed from the wall clock, not zero")
	}
}

func TestNilOptionsStillProducesAUsableField(t *testing.T) {
	f := New(0.3, Kind, true, nil, nil)
	if _, ok := f.RevealCell(Coord{0, 0}); !ok {
		t.Errorf("a field built with nil Options should still function")
	}
}
