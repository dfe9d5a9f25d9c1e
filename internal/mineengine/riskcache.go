package mineengine

import (
	"github.com/google/btree"
	"github.com/pkg/errors"
)

// ErrInvalidRisk is the invariant-violation error raised when a caller
// tries to store a NaN or out-of-range probability. This is a
// programmer error the engine is allowed to abort on; callers inside
// this package never trigger it because every risk computed by the
// sampler is clamped to [0, 1] by construction.
var ErrInvalidRisk = errors.New("mineengine: risk probability is NaN or out of [0, 1]")

// riskItem orders the btree's auxiliary index by (risk, coord), giving
// global_best its O(log n) minimum. Comparisons assume non-NaN risk.
type riskItem struct {
	risk  float32
	coord Coord
}

func (a riskItem) Less(than btree.Item) bool {
	b := than.(riskItem)
	if a.risk != b.risk {
		return a.risk < b.risk
	}
	return a.coord.Less(b.coord)
}

// riskCache is the dual-index structure backing the frontier: a map for
// uniqueness and membership, plus a btree ordered by (risk, coord) so
// the current global minimum is available in O(log n) without a linear
// scan. The two stay in lockstep under every mutation -- an insert that
// replaces an existing entry removes the old ordered-index entry first.
type riskCache struct {
	byCoord map[Coord]float32
	ordered *btree.BTree
}

// btreeDegree matches google/btree's README-recommended default for
// workloads with no particular cache-line tuning need.
const btreeDegree = 32

func newRiskCache() *riskCache {
	return &riskCache{
		byCoord: make(map[Coord]float32),
		ordered: btree.New(btreeDegree),
	}
}

// get returns the cached risk at p, if any.
func (rc *riskCache) get(p Coord) (float32, bool) {
	r, ok := rc.byCoord[p]
	return r, ok
}

// contains reports membership without returning the value.
func (rc *riskCache) contains(p Coord) bool {
	_, ok := rc.byCoord[p]
	return ok
}

// insert stores risk r for p, replacing any prior entry. It panics via
// ErrInvalidRisk-wrapping if r is NaN or outside
// [0, 1]; every call site in this package only ever passes a value
// produced by clamp01, so this path is unreachable in practice.
func (rc *riskCache) insert(p Coord, r float32) {
	if r != r || r < 0 || r > 1 {
		panic(errors.Wrapf(ErrInvalidRisk, "coord %s risk %v", p, r))
	}
	if old, ok := rc.byCoord[p]; ok {
		rc.ordered.Delete(riskItem{risk: old, coord: p})
	}
	rc.byCoord[p] = r
	rc.ordered.ReplaceOrInsert(riskItem{risk: r, coord: p})
}

// remove deletes p's entry; removing an absent coord is a no-op.
func (rc *riskCache) remove(p Coord) {
	old, ok := rc.byCoord[p]
	if !ok {
		return
	}
	delete(rc.byCoord, p)
	rc.ordered.Delete(riskItem{risk: old, coord: p})
}

// clear empties both indices atomically with the board.
func (rc *riskCache) clear() {
	rc.byCoord = make(map[Coord]float32)
	rc.ordered = btree.New(btreeDegree)
}

// len reports the number of cached coordinates.
func (rc *riskCache) len() int { return len(rc.byCoord) }

// globalBest returns the minimum stored probability, or 1.0 if the
// cache is empty.
func (rc *riskCache) globalBest() float32 {
	if rc.ordered.Len() == 0 {
		return 1.0
	}
	return rc.ordered.Min().(riskItem).risk
}

// iter invokes fn for every (coord, risk) pair in the cache. Iteration
// order is unspecified; fn must not mutate the cache.
func (rc *riskCache) iter(fn func(Coord, float32)) {
	for c, r := range rc.byCoord {
		fn(c, r)
	}
}

// clamp01 forces a computed probability into [0, 1] and rejects NaN by
// substituting 0; probabilities are clamped by construction and must
// never surface as NaN.
func clamp01(r float32) float32 {
	if r != r {
		return 0
	}
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
