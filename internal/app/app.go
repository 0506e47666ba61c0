//go:build ebiten

package app

import (
	"image"
	"time"

	"life-canvas/internal/control"
	"life-canvas/internal/render"
	"life-canvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []binding[ebiten.Key]{
	{ebiten.KeySpace, control.CmdToggleRun},
	{ebiten.KeyN, control.CmdStep},
	{ebiten.KeyC, control.CmdClear},
	{ebiten.KeyF, control.CmdRandomize},
	{ebiten.KeyEqual, control.CmdRateUp},
	{ebiten.KeyKPAdd, control.CmdRateUp},
	{ebiten.KeyMinus, control.CmdRateDown},
	{ebiten.KeyKPSubtract, control.CmdRateDown},
	{ebiten.KeyBracketRight, control.CmdRateUpFast},
	{ebiten.KeyBracketLeft, control.CmdRateDownFast},
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *control.Controller
	layout  render.Layout
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pointer pointerTracker
}

// New constructs a Game drawing ctrl's board with the given layout and a
// control panel panel pixels wide.
func New(ctrl *control.Controller, layout render.Layout, panel int) *Game {
	return &Game{
		ctrl:    ctrl,
		layout:  layout,
		painter: render.NewGridPainter(layout, render.DefaultPalette),
		hud:     ui.NewHUD(ctrl, panel),
		overlay: ui.NewOverlay(),
		pointer: pointerTracker{layout: layout},
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dispatchPressed(g.ctrl, keyBindings, inpututil.IsKeyJustPressed)

	mx, my := ebiten.CursorPosition()
	g.pointer.apply(g.ctrl, pointerFrame{
		X:        mx,
		Y:        my,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})

	canvasW, _ := g.layout.CanvasSize()
	g.hud.Update(canvasW)
	g.overlay.Update()

	g.ctrl.Tick(time.Now())
	return nil
}

// Draw renders the board, the selection outline and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	sel := g.ctrl.Selection()
	g.painter.Blit(screen, g.ctrl.Grid(), image.Pt(sel.Col, sel.Row), sel.Active)
	canvasW, canvasH := g.layout.CanvasSize()
	g.hud.Draw(screen, canvasW, canvasH)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.CanvasSize()
	return w + g.hud.Width(), max(h, g.hud.MinHeight())
}
