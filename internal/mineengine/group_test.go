package mineengine

import "testing"

func TestGroupFromExpandsThroughRevealedNeighbours(t *testing.T) {
	f := New(0.2, Strict, true, nil, &Options{Seed: 1})

	// A small revealed corridor with two hidden, cached cells on either
	// side of it: group_from from one must reach the other by hopping
	// hidden -> revealed -> hidden.
	f.set(Coord{1, 0}, RevealedCell(0))
	f.riskCache.insert(Coord{0, 0}, 0.4)
	f.riskCache.insert(Coord{2, 0}, 0.4)

	group := f.groupFrom([]Coord{{0, 0}}, false)
	if _, ok := group[Coord{2, 0}]; !ok {
		t.Errorf("expected group to reach (2,0) through the revealed (1,0) bridge, got %v", group)
	}
}

func TestGroupFromCutOnSafe(t *testing.T) {
	f := New(0.2, Strict, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{0, 0}, 0.0)

	group := f.groupFrom([]Coord{{0, 0}}, true)
	if len(group) != 0 {
		t.Errorf("expected a risk-0 seed to be cut, got %v", group)
	}

	group = f.groupFrom([]Coord{{0, 0}}, false)
	if _, ok := group[Coord{0, 0}]; !ok {
		t.Errorf("without cut_on_safe the risk-0 seed should still be included")
	}
}

func TestGroupFromExcludesRiskOneAndRevealed(t *testing.T) {
	f := New(0.2, Strict, true, nil, &Options{Seed: 1})
	f.riskCache.insert(Coord{1, 1}, 1.0)
	f.set(Coord{2, 2}, RevealedCell(0))

	group := f.groupFrom([]Coord{{1, 1}, {2, 2}, {0, 0}}, false)
	if _, ok := group[Coord{1, 1}]; ok {
		t.Errorf("a risk-1.0 cell must never enter the group")
	}
	if _, ok := group[Coord{2, 2}]; ok {
		t.Errorf("a revealed cell must never enter the group")
	}
	if _, ok := group[Coord{0, 0}]; !ok {
		t.Errorf("an uncached hidden seed should be included")
	}
}

func TestIsOneGroupTrivialWhenFrontierEmpty(t *testing.T) {
	f := New(0.2, Strict, true, nil, &Options{Seed: 1})
	if !f.IsOneGroup() {
		t.Errorf("an empty frontier should be trivially one group")
	}
}

func TestIsOneGroupDetectsSplitFrontier(t *testing.T) {
	f := New(0.2, Strict, true, nil, &Options{Seed: 1})
	// Two cached cells with no revealed path between them: disconnected.
	f.riskCache.insert(Coord{0, 0}, 0.3)
	f.riskCache.insert(Coord{1000, 1000}, 0.3)
	if f.IsOneGroup() {
		t.Errorf("two far-apart cached cells with no path between them should not be one group")
	}
}
