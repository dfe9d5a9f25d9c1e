package mineengine

import (
	"math/rand/v2"
	"time"
)

// Judge selects the fairness policy a Field enforces on reveals.
type Judge int

const (
	Random Judge = iota
	Strict
	Kind
	Local
	Global
	KaboomGlobal
	KaboomLocal
)

// Field is the engine's aggregate state: the board, the risk cache,
// the prior mine density, the active fairness policy,
// whether solvability is preserved, an optional finite size, the
// running reveal count, and elapsed play time. All mutation flows
// through RevealCell, ToggleFlag, PassTime, and Clear; Field owns no
// process-global state, so independent instances may be driven from
// separate goroutines concurrently.
type Field struct {
	chunks    *board
	riskCache *riskCache
	density   float32
	judge     Judge
	solvable  bool
	size      *Size

	cellsRevealed int
	timeElapsed   time.Duration

	rng *rand.Rand
}

// New creates a fresh, empty Field. density is the prior probability
// each cell is a mine, in [0, 1]. size is nil for an unbounded board, or
// a finite centred rectangle. opts may be nil for defaults.
func New(density float32, judge Judge, solvable bool, size *Size, opts *Options) *Field {
	return &Field{
		chunks:    newBoard(),
		riskCache: newRiskCache(),
		density:   density,
		judge:     judge,
		solvable:  solvable,
		size:      size,
		rng:       newRNG(opts.resolveSeed()),
	}
}

// getCell returns the cell at c and whether c lies within bounds. It is
// the bounds-aware counterpart to board.get, used by every component
// that must honor a finite Size.
func (f *Field) getCell(c Coord) (Cell, bool) {
	if f.size != nil && !f.size.Bounds().Contains(c) {
		return Cell{}, false
	}
	return f.chunks.get(c), true
}

// Get returns the cell at p, or (Cell{}, false) if p lies outside a
// finite field's bounds.
func (f *Field) Get(p Coord) (Cell, bool) {
	return f.getCell(p)
}

// set writes cell at c and maintains cellsRevealed. Never called with an
// out-of-bounds coordinate.
func (f *Field) set(c Coord, cell Cell) {
	wasRevealed, nowRevealed := f.chunks.set(c, cell)
	switch {
	case !wasRevealed && nowRevealed:
		f.cellsRevealed++
	case wasRevealed && !nowRevealed:
		f.cellsRevealed--
	}
}

// ToggleFlag flips the flag bit on a hidden, in-bounds cell; everything
// else is a no-op.
func (f *Field) ToggleFlag(p Coord) {
	if f.size != nil && !f.size.Bounds().Contains(p) {
		return
	}
	f.chunks.toggleFlag(p)
}

// Density returns the prior mine probability.
func (f *Field) Density() float32 { return f.density }

// CellsRevealed returns the running count of revealed cells.
func (f *Field) CellsRevealed() int { return f.cellsRevealed }

// TimeElapsed returns the accumulated play duration.
func (f *Field) TimeElapsed() time.Duration { return f.timeElapsed }

// PassTime accumulates elapsed play time; the engine never reads a
// clock itself.
func (f *Field) PassTime(d time.Duration) {
	f.timeElapsed += d
}

// Risks returns a snapshot copy of every cached (coord, risk) pair.
func (f *Field) Risks() map[Coord]float32 {
	out := make(map[Coord]float32, f.riskCache.len())
	f.riskCache.iter(func(c Coord, r float32) { out[c] = r })
	return out
}

// Clear empties the board and the cache and resets cellsRevealed.
// Density, judge, solvability and size
// are untouched.
func (f *Field) Clear() {
	f.chunks.clear()
	f.riskCache.clear()
	f.cellsRevealed = 0
	f.timeElapsed = 0
}

// IsWon reports the pure win predicate: a finite size,
// every cell either revealed or on the frontier, and no cell left that
// is definitely safe.
func (f *Field) IsWon() bool {
	if f.size == nil {
		return false
	}
	total := int64(f.size.Width) * int64(f.size.Height)
	if int64(f.cellsRevealed+f.riskCache.len()) != total {
		return false
	}
	return !f.HasSafe()
}
