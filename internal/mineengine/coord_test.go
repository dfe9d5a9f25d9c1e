package mineengine

import "testing"

func TestCoordLess(t *testing.T) {
	cases := []struct {
		a, b Coord
		want bool
	}{
		{Coord{0, 0}, Coord{1, 0}, true},
		{Coord{1, 0}, Coord{0, 0}, false},
		{Coord{0, 0}, Coord{0, 1}, true},
		{Coord{0, 1}, Coord{0, 0}, false},
		{Coord{2, 5}, Coord{2, 5}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNeighborsCount(t *testing.T) {
	n := Coord{X: 5, Y: -5}.Neighbors()
	if len(n) != 8 {
		t.Fatalf("expected 8 neighbours, got %d", len(n))
	}
	seen := make(map[Coord]bool)
	for _, c := range n {
		if c == (Coord{5, -5}) {
			t.Errorf("neighbour list includes the origin cell itself")
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("neighbour list has duplicates: %v", n)
	}
}

func TestRectContainsAndInflate(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 3, MaxY: 3}
	if !r.Contains(Coord{0, 0}) || !r.Contains(Coord{3, 3}) {
		t.Errorf("expected edges to be contained")
	}
	if r.Contains(Coord{4, 0}) {
		t.Errorf("expected (4,0) to be outside")
	}
	inflated := r.Inflate(1)
	if inflated.MinX != -1 || inflated.MinY != -1 || inflated.MaxX != 4 || inflated.MaxY != 4 {
		t.Errorf("Inflate(1) = %+v, want {-1,-1,4,4}", inflated)
	}
}

func TestSizeBoundsCentered(t *testing.T) {
	s := Size{Width: 10, Height: 10}
	b := s.Bounds()
	if b.Width() != 10 || b.Height() != 10 {
		t.Fatalf("expected a 10x10 bounds rect, got %dx%d", b.Width(), b.Height())
	}
	if !b.Contains(Coord{0, 0}) {
		t.Errorf("expected the origin to lie within a centred size")
	}
}

func TestBoundingBox(t *testing.T) {
	coords := []Coord{{2, -3}, {-1, 5}, {0, 0}}
	r := boundingBox(coords)
	if r.MinX != -1 || r.MaxX != 2 || r.MinY != -3 || r.MaxY != 5 {
		t.Errorf("boundingBox(%v) = %+v", coords, r)
	}
}
