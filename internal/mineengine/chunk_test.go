package mineengine

import "testing"

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct{ a, b, div, mod int32 }{
		{0, 64, 0, 0},
		{63, 64, 0, 63},
		{64, 64, 1, 0},
		{-1, 64, -1, 63},
		{-64, 64, -1, 0},
		{-65, 64, -2, 63},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.div {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.div)
		}
		if got := floorMod(c.a, c.b); got != c.mod {
			t.Errorf("floorMod(%d,%d) = %d, want %d", c.a, c.b, got, c.mod)
		}
	}
}

func TestBoardGetSetAcrossNegativeChunks(t *testing.T) {
	b := newBoard()
	c := Coord{X: -70, Y: -70}

	if got := b.get(c); got.IsRevealed() || got.IsFlagged() {
		t.Fatalf("unallocated coordinate should default to Hidden(false), got %+v", got)
	}

	wasRevealed, nowRevealed := b.set(c, RevealedCell(3))
	if wasRevealed {
		t.Errorf("first write should report wasRevealed=false")
	}
	if !nowRevealed {
		t.Errorf("first write should report nowRevealed=true")
	}

	got := b.get(c)
	if !got.IsRevealed() || got.Count() != 3 {
		t.Errorf("get after set = %+v, want Revealed(3)", got)
	}
}

func TestBoardToggleFlagNoOpWhenRevealed(t *testing.T) {
	b := newBoard()
	c := Coord{X: 1, Y: 1}
	b.set(c, RevealedCell(0))
	b.toggleFlag(c)
	if got := b.get(c); !got.IsRevealed() {
		t.Errorf("toggleFlag must not alter a revealed cell")
	}
}

func TestBoardToggleFlagOnHidden(t *testing.T) {
	b := newBoard()
	c := Coord{X: 1, Y: 1}
	b.toggleFlag(c)
	if !b.get(c).IsFlagged() {
		t.Errorf("expected the cell to be flagged after one toggle")
	}
	b.toggleFlag(c)
	if b.get(c).IsFlagged() {
		t.Errorf("expected the cell to be unflagged after a second toggle")
	}
}

func TestCellEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Cell{
		HiddenCell(false),
		HiddenCell(true),
		RevealedCell(0),
		RevealedCell(8),
	}
	for _, c := range cases {
		got := decodeCell(encodeCell(c))
		if got != c {
			t.Errorf("round trip of %+v produced %+v", c, got)
		}
	}
}

func TestCountRevealed(t *testing.T) {
	b := newBoard()
	b.set(Coord{0, 0}, RevealedCell(1))
	b.set(Coord{1, 0}, RevealedCell(2))
	b.set(Coord{100, 100}, HiddenCell(true))
	if got := b.countRevealed(); got != 2 {
		t.Errorf("countRevealed() = %d, want 2", got)
	}
}
