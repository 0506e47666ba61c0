//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key binding legend on top of the board. H toggles it.
type Overlay struct {
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the legend.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the legend in the top-left corner when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range KeyLegend {
		width = max(width, text.BoundString(face, line).Dx())
	}
	height := len(KeyLegend)*legendLineHeight + 2*legendPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*legendPadding), float64(height))
	op.GeoM.Translate(legendMargin, legendMargin)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 20, G: 20, B: 24, A: 200})
	screen.DrawImage(o.pixel, op)

	y := legendMargin + legendPadding + 10
	for _, line := range KeyLegend {
		text.Draw(screen, line, face, legendMargin+legendPadding, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		y += legendLineHeight
	}
}

const (
	legendMargin     = 8
	legendPadding    = 6
	legendLineHeight = 16
)
