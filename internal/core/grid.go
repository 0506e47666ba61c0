package core

import "fmt"

// BoolGrid stores a 2D grid of binary cell values in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g *BoolGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clamp pins the provided coordinates to the nearest in-bounds cell.
func (g *BoolGrid) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, g.W-1), clampInt(y, 0, g.H-1)
}

// At returns the value at (x, y). It panics when the coordinates are outside
// the grid.
func (g *BoolGrid) At(x, y int) bool {
	g.mustContain(x, y)
	return g.data[g.Index(x, y)]
}

// Put stores v at (x, y). It panics when the coordinates are outside the grid.
func (g *BoolGrid) Put(x, y int, v bool) {
	g.mustContain(x, y)
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with false.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Count returns the number of true cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

func (g *BoolGrid) mustContain(x, y int) {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
