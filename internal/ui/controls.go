package ui

import "life-canvas/internal/core"

// adjustedValue returns the value one step away from current, clamped to the
// control's bounds. ok is false when current already sits on that bound.
func adjustedValue(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		if current <= ctrl.Min {
			return current, false
		}
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		if current >= ctrl.Max {
			return current, false
		}
		target = ctrl.Max
	}
	return target, true
}

// KeyLegend lists the keyboard bindings shared by the frontends.
var KeyLegend = []string{
	"space  start / stop",
	"n      single step",
	"c      clear",
	"f      fill randomly",
	"+ / -  rate +1 / -1",
	"] / [  rate +10 / -10",
	"h      toggle this help",
	"q      quit",
}
