//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the board.
type HUD struct {
	*panel

	canvas     *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image
}

var (
	hudInk      = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	hudInkFaint = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{panel: newPanel(src, width)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width is the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// MinHeight is the height needed to show every row of the panel.
func (h *HUD) MinHeight() int { return h.minHeight() }

// Update refreshes the cached snapshot and handles clicks on the panel,
// whose left edge is at panelOffsetX.
func (h *HUD) Update(panelOffsetX int) {
	if h.width <= 0 {
		return
	}
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= panelOffsetX {
		h.click(mx-panelOffsetX, my)
	}
}

// Draw paints the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h.width <= 0 {
		return
	}
	height = max(height, h.MinHeight())
	if h.canvas == nil || h.lastHeight != height {
		h.canvas = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.canvas.Fill(color.RGBA{R: 236, G: 236, B: 236, A: 255})
	h.drawStatus()
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.label, true)
	}
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.canvas, "Game of Life", face, panelPadding, y, hudInk)
	for _, key := range []string{"generation", "population"} {
		y += statusSpacing
		param, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		text.Draw(h.canvas, param.Label+": "+param.Value, face, panelPadding, y, hudInk)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.canvas, state.control.Label, face, panelPadding, labelY, hudInk)
		valueColor := hudInk
		if !state.hasValue {
			valueColor = hudInkFaint
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.canvas, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := adjustedValue(state.control, state.intValue, -1)
		_, plusEnabled := adjustedValue(state.control, state.intValue, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusEnabled)
		h.drawButton(state.plusRect, "+", state.hasValue && plusEnabled)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 200, G: 200, B: 206, A: 255}
	fg := color.RGBA{R: 30, G: 30, B: 36, A: 255}
	if !enabled {
		bg = color.RGBA{R: 222, G: 222, B: 226, A: 255}
		fg = color.RGBA{R: 150, G: 150, B: 158, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.canvas.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.canvas, label, face, x, y, fg)
}
