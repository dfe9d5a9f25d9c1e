package mineengine

// board is the sparse Coord -> Chunk mapping backing a Field.
// Its zero value is a valid, empty board.
type board struct {
	chunks map[chunkCoord]*chunk
}

func newBoard() *board {
	return &board{chunks: make(map[chunkCoord]*chunk)}
}

// get returns the stored cell at c, defaulting to Hidden(false) for any
// coordinate whose chunk has never been allocated. Bounds checking
// against a finite size is the caller's responsibility (Field.Get).
func (b *board) get(c Coord) Cell {
	cc, lx, ly := splitCoord(c)
	ch, ok := b.chunks[cc]
	if !ok {
		return Cell{}
	}
	return ch.get(lx, ly)
}

// set stores c's cell, allocating its chunk on first write. It reports
// whether the write crossed a hidden<->revealed boundary, in either
// direction, so the caller can adjust cells_revealed by +-1.
func (b *board) set(c Coord, cell Cell) (wasRevealed, nowRevealed bool) {
	cc, lx, ly := splitCoord(c)
	ch, ok := b.chunks[cc]
	if !ok {
		ch = new(chunk)
		b.chunks[cc] = ch
	}
	wasRevealed = ch.get(lx, ly).IsRevealed()
	ch.set(lx, ly, cell)
	return wasRevealed, cell.IsRevealed()
}

// toggleFlag flips the flag bit of a hidden cell in place; revealed
// cells are left untouched (ToggleFlag is a no-op on them). It
// allocates the chunk only if needed to record the flag.
func (b *board) toggleFlag(c Coord) {
	cur := b.get(c)
	if cur.IsRevealed() {
		return
	}
	b.set(c, HiddenCell(!cur.IsFlagged()))
}

// clear empties the board entirely, matching Field.clear's "empties
// chunks and cache" contract.
func (b *board) clear() {
	b.chunks = make(map[chunkCoord]*chunk)
}

// countRevealed walks every allocated chunk and counts revealed cells.
// Used only by legacy-format loading, where cells_revealed must be
// recomputed rather than trusted from the stream.
func (b *board) countRevealed() int {
	n := 0
	for _, ch := range b.chunks {
		for _, byt := range ch {
			if byt&0x01 != 0 {
				n++
			}
		}
	}
	return n
}
