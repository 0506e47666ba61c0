package life

import (
	"fmt"

	"life-canvas/internal/core"
)

// DefaultDensity is the live-cell probability used when filling the board.
const DefaultDensity = 0.5

// Grid implements Conway's Game of Life (B3/S23) on a fixed board whose edges
// are not wrapped: cells outside the board count as dead.
type Grid struct {
	w, h int
	cur  *core.BoolGrid
	nxt  *core.BoolGrid

	generation int
}

// New returns an empty Grid with the provided dimensions.
func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", w, h))
	}
	return &Grid{w: w, h: h, cur: core.NewBoolGrid(w, h), nxt: core.NewBoolGrid(w, h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the current generation in row-major order. The slice is
// replaced by Step, so callers must not hold on to it across steps.
func (g *Grid) Cells() []bool { return g.cur.Cells() }

// Generation reports how many steps were applied since the last reset.
func (g *Grid) Generation() int { return g.generation }

// ResetGeneration sets the generation counter back to zero.
func (g *Grid) ResetGeneration() { g.generation = 0 }

// Population returns the number of live cells.
func (g *Grid) Population() int { return g.cur.Count() }

// Clamp pins (col, row) to the nearest cell on the board.
func (g *Grid) Clamp(col, row int) (int, int) { return g.cur.Clamp(col, row) }

// Get reports whether the cell at (col, row) is alive.
func (g *Grid) Get(col, row int) bool { return g.cur.At(col, row) }

// Set writes a cell of the current generation. It leaves the generation
// counter alone.
func (g *Grid) Set(col, row int, alive bool) { g.cur.Put(col, row, alive) }

// Clear kills every cell.
func (g *Grid) Clear() { g.cur.Clear() }

// Randomize sets each cell alive independently with probability p.
func (g *Grid) Randomize(rng *core.RNG, p float64) {
	core.FillChance(rng.Source(), g.cur.Cells(), p)
}

// Stamp sets origin+offset alive for every offset. Offsets are relative to
// the origin, not centered on it, and must land on the board.
func (g *Grid) Stamp(originCol, originRow int, offsets []core.Cell) {
	for _, o := range offsets {
		g.cur.Put(originCol+o.Col, originRow+o.Row, true)
	}
}

// Step advances the simulation by one generation. When no cell changes the
// buffers are left untouched and Step returns false.
func (g *Grid) Step() bool {
	w, h := g.w, g.h
	cur, nxt := g.cur.Cells(), g.nxt.Cells()
	changed := false
	for y := 0; y < h; y++ {
		y0, y1 := max(y-1, 0), min(y+1, h-1)
		for x := 0; x < w; x++ {
			x0, x1 := max(x-1, 0), min(x+1, w-1)
			neighbors := 0
			for ny := y0; ny <= y1; ny++ {
				row := ny * w
				for nx := x0; nx <= x1; nx++ {
					if (nx != x || ny != y) && cur[row+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := cur[idx]
			next := alive
			if alive && (neighbors < 2 || neighbors > 3) {
				next = false
			} else if !alive && neighbors == 3 {
				next = true
			}
			nxt[idx] = next
			if next != alive {
				changed = true
			}
		}
	}
	if !changed {
		return false
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
	return true
}
