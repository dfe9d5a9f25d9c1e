package ui

import (
	"testing"

	"github.com/fenwick-labs/mineoracle/internal/mineengine"
)

func TestHitMineRandomAlwaysTrue(t *testing.T) {
	m := Model{judge: mineengine.Random}
	if !m.hitMine(0.3) {
		t.Error("Random policy must treat every refusal as a mine hit")
	}
}

func TestHitMineKaboomOnlyOnCertainty(t *testing.T) {
	m := Model{judge: mineengine.KaboomGlobal}
	if m.hitMine(0.5) {
		t.Error("a non-certain refusal under KaboomGlobal is not a mine hit")
	}
	if !m.hitMine(1.0) {
		t.Error("a refusal at risk 1.0 under KaboomGlobal is a mine hit")
	}
}

func TestHitMineFairPoliciesNeverExplode(t *testing.T) {
	for _, j := range []mineengine.Judge{mineengine.Strict, mineengine.Kind, mineengine.Global, mineengine.Local} {
		m := Model{judge: j}
		if m.hitMine(1.0) {
			t.Errorf("judge %v must never report a mine hit, it only blocks the reveal", j)
		}
	}
}

func TestRiskColorClampsToUnitRange(t *testing.T) {
	if c := riskColor(-1); c != "#00ff00" {
		t.Errorf("riskColor(-1) = %v, want full green", c)
	}
	if c := riskColor(2); c != "#ff0000" {
		t.Errorf("riskColor(2) = %v, want full red", c)
	}
}

func TestIsFirstRevealOnFreshField(t *testing.T) {
	f := mineengine.New(0, mineengine.Kind, false, nil, &mineengine.Options{Seed: 1})
	m := Model{field: f}
	if !m.isFirstReveal() {
		t.Error("a field with nothing revealed and an empty cache is a first reveal")
	}
	f.RevealCell(mineengine.Coord{})
	m2 := Model{field: f}
	if m2.isFirstReveal() {
		t.Error("after a reveal the field is no longer at its first reveal")
	}
}

func TestViewportFollowsCursorOutsideMargin(t *testing.T) {
	m := Model{width: 30, height: 20}
	m.cursor = mineengine.Coord{X: 100, Y: 100}
	cols, rows := m.viewport()
	if m.cursor.X < m.camX || m.cursor.X >= m.camX+cols {
		t.Error("camera must recentre so the cursor's column stays visible")
	}
	if m.cursor.Y < m.camY || m.cursor.Y >= m.camY+rows {
		t.Error("camera must recentre so the cursor's row stays visible")
	}
}

func TestToggleFlagIncrementsAndDecrements(t *testing.T) {
	f := mineengine.New(0.5, mineengine.Kind, false, nil, &mineengine.Options{Seed: 1})
	m := Model{field: f}
	m.toggleFlag()
	if m.flags != 1 {
		t.Errorf("flags = %d, want 1", m.flags)
	}
	m.toggleFlag()
	if m.flags != 0 {
		t.Errorf("flags = %d, want 0 after untoggling", m.flags)
	}
}
