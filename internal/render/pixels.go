package render

import (
	"image"
	"image/color"
	"math"

	"life-canvas/internal/core"
)

// Palette holds the tones used to draw the board.
type Palette struct {
	Alive     color.RGBA
	Dead      color.RGBA
	Border    color.RGBA
	Highlight color.RGBA
}

// DefaultPalette is dark cells on a light board with grey grid lines.
var DefaultPalette = Palette{
	Alive:     color.RGBA{R: 64, G: 64, B: 64, A: 255},
	Dead:      color.RGBA{R: 247, G: 247, B: 247, A: 255},
	Border:    color.RGBA{R: 196, G: 196, B: 196, A: 255},
	Highlight: color.RGBA{R: 223, G: 64, B: 16, A: 255},
}

// Layout maps between grid cells and canvas pixels. Each cell owns a
// Size+Border square and neighbouring cells share their border line.
type Layout struct {
	Cols, Rows int
	Size       int
	Border     int
}

// CanvasSize returns the pixel dimensions of the whole board.
func (l Layout) CanvasSize() (int, int) {
	return l.Cols*l.Size + l.Border, l.Rows*l.Size + l.Border
}

// Contains reports whether the pixel lies on the canvas.
func (l Layout) Contains(px, py int) bool {
	w, h := l.CanvasSize()
	return px >= 0 && px < w && py >= 0 && py < h
}

// CellAt converts a pixel position to the cell under it, clamped to the grid.
func (l Layout) CellAt(px, py float64) (int, int) {
	w, h := l.CanvasSize()
	half := 0.5 * float64(l.Border)
	col := int(math.Floor((px - half) * float64(l.Cols) / float64(w-l.Border)))
	row := int(math.Floor((py - half) * float64(l.Rows) / float64(h-l.Border)))
	return clamp(col, 0, l.Cols-1), clamp(row, 0, l.Rows-1)
}

// CellRect is the border-inclusive square for a cell.
func (l Layout) CellRect(col, row int) image.Rectangle {
	x, y := col*l.Size, row*l.Size
	return image.Rect(x, y, x+l.Size+l.Border, y+l.Size+l.Border)
}

// HighlightRect is the outer bound of the selection outline, which is
// 2*Border wide and centred on the cell's border line.
func (l Layout) HighlightRect(col, row int) image.Rectangle {
	return l.CellRect(col, row).Inset(-l.Border)
}

// fillCells paints every cell of board into buf, an RGBA buffer laid out for
// the layout's canvas size.
func fillCells(buf []byte, l Layout, board core.Board, pal Palette) {
	w, h := l.CanvasSize()
	if len(buf) < 4*w*h {
		return
	}
	stride := 4 * w
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			cell := l.CellRect(col, row)
			fillRect(buf, stride, cell, pal.Border)
			fill := pal.Dead
			if board.Get(col, row) {
				fill = pal.Alive
			}
			inner := image.Rect(cell.Min.X+l.Border, cell.Min.Y+l.Border, cell.Max.X-l.Border, cell.Max.Y-l.Border)
			fillRect(buf, stride, inner, fill)
		}
	}
}

// strokeRect paints a frame of the given width just inside r, clipped to
// bounds.
func strokeRect(buf []byte, stride int, bounds, r image.Rectangle, width int, c color.RGBA) {
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		fillRect(buf, stride, e.Intersect(bounds), c)
	}
}

func fillRect(buf []byte, stride int, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := y*stride + 4*r.Min.X
		for x := r.Min.X; x < r.Max.X; x++ {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
			base += 4
		}
	}
}

// Rasterize draws the board and, when sel is active, its selection outline
// into buf.
func Rasterize(buf []byte, l Layout, board core.Board, pal Palette, sel image.Point, selActive bool) {
	fillCells(buf, l, board, pal)
	if !selActive || l.Border <= 0 {
		return
	}
	w, h := l.CanvasSize()
	strokeRect(buf, 4*w, image.Rect(0, 0, w, h), l.HighlightRect(sel.X, sel.Y), 2*l.Border, pal.Highlight)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
