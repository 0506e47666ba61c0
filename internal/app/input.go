package app

import (
	"life-canvas/internal/control"
	"life-canvas/internal/render"
)

// binding ties a key to the command it triggers.
type binding[K comparable] struct {
	key K
	cmd control.Command
}

// dispatchPressed runs the command of every binding whose key went down this
// frame, in binding order.
func dispatchPressed[K comparable](ctrl *control.Controller, bindings []binding[K], justPressed func(K) bool) {
	for _, b := range bindings {
		if justPressed(b.key) {
			ctrl.Dispatch(b.cmd)
		}
	}
}

// pointerFrame is the primary mouse button and cursor sampled once per frame.
type pointerFrame struct {
	X, Y     int
	Pressed  bool
	Released bool
	Held     bool
}

// pointerTracker turns per-frame mouse samples into controller pointer events.
type pointerTracker struct {
	layout   render.Layout
	hovering bool
}

func (p *pointerTracker) apply(ctrl *control.Controller, f pointerFrame) {
	inside := p.layout.Contains(f.X, f.Y)
	if inside != p.hovering {
		p.hovering = inside
		if inside {
			ctrl.PointerEnter()
		} else {
			ctrl.PointerLeave()
		}
	}
	if f.Released {
		ctrl.PointerUp()
	}
	if !inside {
		return
	}
	col, row := p.layout.CellAt(float64(f.X), float64(f.Y))
	if f.Pressed {
		ctrl.PointerDown(col, row)
		return
	}
	// A release can be missed while the window is unfocused.
	if ctrl.Editing().Active && !f.Held {
		ctrl.PointerUp()
	}
	ctrl.PointerMove(col, row)
}
