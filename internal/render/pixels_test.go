package render

import (
	"image"
	"image/color"
	"testing"

	"life-canvas/internal/core"
)

type stubBoard struct {
	size  core.Size
	alive map[[2]int]bool
}

func (b stubBoard) Size() core.Size { return b.size }

func (b stubBoard) Get(col, row int) bool { return b.alive[[2]int{col, row}] }

func pixelAt(buf []byte, w, x, y int) color.RGBA {
	i := 4 * (y*w + x)
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func TestCanvasSize(t *testing.T) {
	l := Layout{Cols: 96, Rows: 64, Size: 10, Border: 1}
	w, h := l.CanvasSize()
	if w != 961 || h != 641 {
		t.Fatalf("canvas %dx%d, want 961x641", w, h)
	}
}

func TestCellAtMapsAndClamps(t *testing.T) {
	l := Layout{Cols: 96, Rows: 64, Size: 10, Border: 1}
	cases := []struct {
		px, py   float64
		col, row int
	}{
		{0.5, 0.5, 0, 0},
		{10.4, 0.5, 0, 0},
		{10.5, 20.5, 1, 2},
		{955, 635, 95, 63},
		{960.9, 640.9, 95, 63},
		{-3, -40, 0, 0},
		{5000, 5000, 95, 63},
	}
	for _, tc := range cases {
		col, row := l.CellAt(tc.px, tc.py)
		if col != tc.col || row != tc.row {
			t.Fatalf("CellAt(%.1f,%.1f) = (%d,%d), want (%d,%d)", tc.px, tc.py, col, row, tc.col, tc.row)
		}
	}
}

func TestContains(t *testing.T) {
	l := Layout{Cols: 2, Rows: 2, Size: 4, Border: 1}
	if !l.Contains(0, 0) || !l.Contains(8, 8) {
		t.Fatal("corners of the canvas should be inside")
	}
	if l.Contains(9, 0) || l.Contains(0, -1) {
		t.Fatal("pixels past the canvas should be outside")
	}
}

func TestRasterizeCells(t *testing.T) {
	l := Layout{Cols: 2, Rows: 1, Size: 4, Border: 1}
	w, h := l.CanvasSize()
	buf := make([]byte, 4*w*h)
	board := stubBoard{size: core.Size{W: 2, H: 1}, alive: map[[2]int]bool{{0, 0}: true}}
	pal := DefaultPalette

	Rasterize(buf, l, board, pal, image.Point{}, false)

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, pal.Border},
		{1, 1, pal.Alive},
		{3, 3, pal.Alive},
		{4, 2, pal.Border},
		{5, 2, pal.Dead},
		{8, 4, pal.Border},
	}
	for _, c := range checks {
		if got := pixelAt(buf, w, c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRasterizeSelectionOutline(t *testing.T) {
	l := Layout{Cols: 2, Rows: 1, Size: 4, Border: 1}
	w, h := l.CanvasSize()
	buf := make([]byte, 4*w*h)
	board := stubBoard{size: core.Size{W: 2, H: 1}, alive: map[[2]int]bool{{0, 0}: true}}
	pal := DefaultPalette

	Rasterize(buf, l, board, pal, image.Point{X: 1}, true)

	for _, p := range []image.Point{{3, 2}, {4, 2}, {6, 0}, {8, 2}, {6, 4}} {
		if got := pixelAt(buf, w, p.X, p.Y); got != pal.Highlight {
			t.Fatalf("pixel %v = %v, want highlight", p, got)
		}
	}
	if got := pixelAt(buf, w, 5, 2); got != pal.Dead {
		t.Fatalf("inside of the outline = %v, want dead fill", got)
	}
	if got := pixelAt(buf, w, 1, 1); got != pal.Alive {
		t.Fatalf("neighbouring cell = %v, want alive fill", got)
	}
}
