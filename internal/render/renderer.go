//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"life-canvas/internal/core"
)

// GridPainter keeps one RGBA image of the board and refreshes it each frame.
type GridPainter struct {
	layout  Layout
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout, pal Palette) *GridPainter {
	w, h := l.CanvasSize()
	gp := &GridPainter{layout: l, palette: pal, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit rasterizes board into the painter image and draws it at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, board core.Board, sel image.Point, selActive bool) {
	s := board.Size()
	if s.W != gp.layout.Cols || s.H != gp.layout.Rows {
		return
	}
	Rasterize(gp.buf, gp.layout, board, gp.palette, sel, selActive)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
