// Package mineengine implements the lazy probabilistic Minesweeper engine:
// mines are never placed ahead of time, they are decided -- consistently
// with everything already revealed -- the moment a hidden cell is opened.
package mineengine

import "fmt"

// Coord is a signed 2-D board coordinate. The zero value is the origin.
type Coord struct {
	X, Y int32
}

// String renders a coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Less gives Coord a total, lexicographic order: by X then by Y. It backs
// the risk cache's ordered index and the sorted order in which
// buildSmallWorld lists a group's cells.
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// neighborOffsets lists the eight offsets around a cell in a fixed
// row-major order (dy outer, dx inner). The order itself is never
// observable: every consumer here iterates the full 8-set.
var neighborOffsets = [8]Coord{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Neighbors returns the eight coordinates adjacent to c, with no bounds
// filtering -- callers that care about a finite size or a rectangle
// filter afterward.
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, off := range neighborOffsets {
		out[i] = Coord{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return out
}

// Rect is an axis-aligned inclusive rectangle of coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY int32
}

// Contains reports whether c lies within r, inclusive of its edges.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Inflate grows r by n cells in every direction.
func (r Rect) Inflate(n int32) Rect {
	return Rect{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}

// Width and Height report the rectangle's cell span.
func (r Rect) Width() int32  { return r.MaxX - r.MinX + 1 }
func (r Rect) Height() int32 { return r.MaxY - r.MinY + 1 }

// boundingBox computes the smallest Rect containing every coordinate in
// coords. Callers must ensure coords is non-empty.
func boundingBox(coords []Coord) Rect {
	r := Rect{MinX: coords[0].X, MinY: coords[0].Y, MaxX: coords[0].X, MaxY: coords[0].Y}
	for _, c := range coords[1:] {
		if c.X < r.MinX {
			r.MinX = c.X
		}
		if c.X > r.MaxX {
			r.MaxX = c.X
		}
		if c.Y < r.MinY {
			r.MinY = c.Y
		}
		if c.Y > r.MaxY {
			r.MaxY = c.Y
		}
	}
	return r
}

// Size is a finite board extent, centred about the origin. A nil *Size on
// Field means the board is unbounded.
type Size struct {
	Width, Height int32
}

// Bounds returns the inclusive rectangle of a centred finite size.
// Division is Euclidean (floorDiv), not truncating: for an odd extent
// the centred range is asymmetric, with one more cell on the negative
// side than the positive side (width=9 yields x in [-5, 3], not
// [-4, 4]).
func (s Size) Bounds() Rect {
	return Rect{
		MinX: floorDiv(-s.Width, 2),
		MinY: floorDiv(-s.Height, 2),
		MaxX: floorDiv(s.Width, 2) - 1,
		MaxY: floorDiv(s.Height, 2) - 1,
	}
}
