package life

import (
	"testing"

	"oled-life/internal/core"
)

// liveSet scans a grid region and returns the set of live coordinates.
func liveSet(g *core.BitGrid, x0, y0, x1, y1 int) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.Get(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func sameSet(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestLonelyCellDies(t *testing.T) {
	e := New()
	e.Front().Set(10, 10, true)
	e.Step()
	if e.Front().Get(10, 10) {
		t.Fatal("isolated cell survived")
	}
	if e.Population() != 0 {
		t.Fatalf("population = %d, want 0", e.Population())
	}
}

func TestPairDies(t *testing.T) {
	e := New()
	e.Front().Set(10, 10, true)
	e.Front().Set(11, 10, true)
	e.Step()
	if e.Front().Get(10, 10) || e.Front().Get(11, 10) {
		t.Fatal("cell with one neighbor survived")
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	e := New()
	// Center with four orthogonal neighbors.
	e.Front().Set(10, 10, true)
	e.Front().Set(9, 10, true)
	e.Front().Set(11, 10, true)
	e.Front().Set(10, 9, true)
	e.Front().Set(10, 11, true)
	e.Step()
	if e.Front().Get(10, 10) {
		t.Fatal("cell with four neighbors survived")
	}
}

func TestBirthOnExactlyThree(t *testing.T) {
	e := New()
	e.Front().Set(9, 10, true)
	e.Front().Set(11, 10, true)
	e.Front().Set(10, 9, true)
	e.Step()
	if !e.Front().Get(10, 10) {
		t.Fatal("dead cell with three neighbors was not born")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	e := New()
	for _, c := range [][2]int{{20, 20}, {21, 20}, {20, 21}, {21, 21}} {
		e.Front().Set(c[0], c[1], true)
	}
	before := liveSet(e.Front(), 15, 15, 26, 26)
	e.Step()
	after := liveSet(e.Front(), 15, 15, 26, 26)
	if !sameSet(before, after) {
		t.Fatal("block changed shape")
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	e := New()
	gen0 := map[[2]int]bool{{5, 5}: true, {6, 5}: true, {7, 5}: true}
	for c := range gen0 {
		e.Front().Set(c[0], c[1], true)
	}

	e.Step()
	gen1 := liveSet(e.Front(), 0, 0, 12, 12)
	want1 := map[[2]int]bool{{6, 4}: true, {6, 5}: true, {6, 6}: true}
	if !sameSet(gen1, want1) {
		t.Fatalf("after step 1 live set = %v, want %v", gen1, want1)
	}

	e.Step()
	gen2 := liveSet(e.Front(), 0, 0, 12, 12)
	if !sameSet(gen2, gen0) {
		t.Fatalf("after step 2 live set = %v, want original %v", gen2, gen0)
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	e := New()
	gliderCells := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	const ox, oy = 20, 20
	want := map[[2]int]bool{}
	for _, c := range gliderCells {
		e.Front().Set(ox+c[0], oy+c[1], true)
		want[[2]int{ox + c[0] + 1, oy + c[1] + 1}] = true
	}

	for i := 0; i < 4; i++ {
		e.Step()
	}

	got := liveSet(e.Front(), ox-4, oy-4, ox+8, oy+8)
	if !sameSet(got, want) {
		t.Fatalf("after 4 generations live set = %v, want translated %v", got, want)
	}
	if e.Population() != 5 {
		t.Fatalf("population = %d, want 5", e.Population())
	}
}

func TestStepBookkeeping(t *testing.T) {
	e := New()
	e.Front().Set(5, 5, true)
	e.Step()
	e.Step()
	if e.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", e.Generation())
	}

	e.Reset(func(g *core.BitGrid) { g.Set(0, 0, true) })
	if e.Generation() != 0 {
		t.Fatalf("generation = %d after Reset, want 0", e.Generation())
	}
	if e.Population() != 1 {
		t.Fatalf("population = %d after seeded Reset, want 1", e.Population())
	}
}
