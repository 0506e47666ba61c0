package life

import (
	"slices"
	"testing"

	"life-canvas/internal/core"
)

func aliveSet(g *Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	s := g.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if g.Get(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("population %d, want %d (alive=%v)", len(got), len(want), got)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("cell (%d,%d) dead, expected alive (alive=%v)", c[0], c[1], got)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	if !g.Step() {
		t.Fatal("blinker step should report a change")
	}
	expectAlive(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	if !g.Step() {
		t.Fatal("second blinker step should report a change")
	}
	expectAlive(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
}

func TestDeadCellWithThreeNeighborsIsBorn(t *testing.T) {
	g := New(3, 3)
	g.Set(0, 0, true)
	g.Set(2, 0, true)
	g.Set(0, 2, true)

	g.Step()
	if !g.Get(1, 1) {
		t.Fatal("center with exactly three live neighbors should become alive")
	}
}

func TestLiveCellDiesWhenLonelyOrCrowded(t *testing.T) {
	lonely := New(5, 5)
	lonely.Set(2, 2, true)
	lonely.Set(1, 1, true)
	lonely.Step()
	if lonely.Get(2, 2) {
		t.Fatal("live cell with one neighbor should die")
	}

	crowded := New(5, 5)
	crowded.Set(2, 2, true)
	for _, c := range [][2]int{{1, 1}, {3, 1}, {1, 3}, {3, 3}} {
		crowded.Set(c[0], c[1], true)
	}
	crowded.Step()
	if crowded.Get(2, 2) {
		t.Fatal("live cell with four neighbors should die")
	}
}

func TestLiveCellSurvivesWithTwoOrThreeNeighbors(t *testing.T) {
	two := New(5, 5)
	two.Set(2, 2, true)
	two.Set(1, 2, true)
	two.Set(3, 2, true)
	two.Step()
	if !two.Get(2, 2) {
		t.Fatal("live cell with two neighbors should survive")
	}

	three := New(5, 5)
	three.Set(2, 2, true)
	three.Set(1, 1, true)
	three.Set(3, 1, true)
	three.Set(2, 3, true)
	three.Step()
	if !three.Get(2, 2) {
		t.Fatal("live cell with three neighbors should survive")
	}
}

func TestCornerCellHasAtMostThreeNeighbors(t *testing.T) {
	g := New(4, 4)
	for i := range g.Cells() {
		g.Cells()[i] = true
	}
	g.Step()
	for _, c := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}} {
		if !g.Get(c[0], c[1]) {
			t.Fatalf("corner (%d,%d) should survive with three neighbors", c[0], c[1])
		}
	}
	if g.Get(1, 1) {
		t.Fatal("interior cell with eight neighbors should die")
	}
}

func TestOppositeCornersDoNotInteract(t *testing.T) {
	g := New(6, 6)
	for _, c := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		g.Set(c[0], c[1], true)
	}
	if g.Step() {
		t.Fatal("corner blocks are still lifes on a non-wrapping board")
	}

	lone := New(5, 5)
	lone.Set(0, 0, true)
	lone.Set(4, 4, true)
	lone.Step()
	if lone.Population() != 0 {
		t.Fatalf("mirrored corner cells should both die, population %d", lone.Population())
	}
}

func TestStepReportsStability(t *testing.T) {
	g := New(8, 8)
	if g.Step() {
		t.Fatal("empty grid should be stable")
	}
	if g.Generation() != 0 {
		t.Fatalf("generation = %d after stable step, want 0", g.Generation())
	}

	g.Set(4, 4, true)
	if !g.Step() {
		t.Fatal("isolated cell dying is a change")
	}
	if g.Step() {
		t.Fatal("grid emptied by the previous step should be stable")
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", g.Generation())
	}
}

func TestStepSwapsBuffersWithoutCopy(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	first := g.Cells()
	g.Step()
	second := g.Cells()
	if &first[0] == &second[0] {
		t.Fatal("changed step should expose the other buffer")
	}
	g.Step()
	if &g.Cells()[0] != &first[0] {
		t.Fatal("two changed steps should return to the original buffer")
	}

	still := New(4, 4)
	before := still.Cells()
	still.Step()
	if &still.Cells()[0] != &before[0] {
		t.Fatal("stable step must not swap buffers")
	}
}

func TestStampIsNotCentered(t *testing.T) {
	g := New(10, 10)
	g.Stamp(3, 2, []core.Cell{{0, 0}, {2, 1}})
	expectAlive(t, g, [2]int{3, 2}, [2]int{5, 3})
}

func TestStampOutsideBoardPanics(t *testing.T) {
	g := New(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("stamping past the edge should panic")
		}
	}()
	g.Stamp(3, 3, []core.Cell{{1, 0}})
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(32, 24)
	b := New(32, 24)
	a.Randomize(core.NewRNG(99), DefaultDensity)
	b.Randomize(core.NewRNG(99), DefaultDensity)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Randomize with the same seed should match")
	}
	pop := a.Population()
	if pop == 0 || pop == 32*24 {
		t.Fatalf("half density fill produced degenerate population %d", pop)
	}

	a.Randomize(core.NewRNG(1), 0)
	if a.Population() != 0 {
		t.Fatal("zero density should leave every cell dead")
	}
}

func TestGliderGunPeriod(t *testing.T) {
	g := New(96, 64)
	g.Stamp(GliderGunOrigin.Col, GliderGunOrigin.Row, GliderGun)
	if g.Population() != 36 {
		t.Fatalf("seed population %d, want 36", g.Population())
	}

	for i := 0; i < 30; i++ {
		if !g.Step() {
			t.Fatalf("gun reported stable at step %d", i+1)
		}
	}
	if g.Generation() != 30 {
		t.Fatalf("generation = %d, want 30", g.Generation())
	}

	var want [][2]int
	for _, o := range GliderGun {
		want = append(want, [2]int{GliderGunOrigin.Col + o.Col, GliderGunOrigin.Row + o.Row})
	}
	want = append(want, [2]int{29, 13}, [2]int{29, 15}, [2]int{30, 14}, [2]int{30, 15}, [2]int{31, 14})
	expectAlive(t, g, want...)
}

func TestExtent(t *testing.T) {
	s := Extent(GliderGun)
	if s.W != 36 || s.H != 9 {
		t.Fatalf("glider gun extent %dx%d, want 36x9", s.W, s.H)
	}
}
