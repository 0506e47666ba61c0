package ui

import (
	"image"
	"strconv"

	"life-canvas/internal/control"
	"life-canvas/internal/core"
)

// Source is what the HUD reads from and sends commands to.
type Source interface {
	Parameters() core.ParameterSnapshot
	Dispatch(cmd control.Command) bool
}

// panel holds the HUD state that does not depend on drawing: button and
// control geometry, the latest snapshot and click handling.
type panel struct {
	src       Source
	width     int
	snapshot  core.ParameterSnapshot
	buttons   []hudButton
	controls  []hudControlState
	intSetter core.IntParameterSetter
}

type hudButton struct {
	cmd   control.Command
	label string
	rect  image.Rectangle
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonHeight   = 26
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 20
	buttonsTop     = panelPadding + headerBaseline + 3*statusSpacing
)

var panelCommands = []control.Command{control.CmdToggleRun, control.CmdStep, control.CmdClear, control.CmdRandomize}

func controlsTop() int { return buttonsTop + 2*(buttonHeight+buttonGap) + 8 }

func newPanel(src Source, width int) *panel {
	p := &panel{src: src, width: max(width, 0)}
	for _, cmd := range panelCommands {
		p.buttons = append(p.buttons, hudButton{cmd: cmd})
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	p.layout()
	return p
}

func (p *panel) minHeight() int {
	if p.width <= 0 {
		return 0
	}
	return controlsTop() + len(p.controls)*lineHeight + panelPadding
}

// refresh pulls a new snapshot and updates labels and control values.
func (p *panel) refresh() {
	p.snapshot = p.src.Parameters()
	running, _ := p.snapshot.Lookup("running")
	for i := range p.buttons {
		b := &p.buttons[i]
		switch b.cmd {
		case control.CmdToggleRun:
			b.label = "Start"
			if running.Value == "true" {
				b.label = "Stop"
			}
		case control.CmdStep:
			b.label = "Step"
		case control.CmdClear:
			b.label = "Clear"
		case control.CmdRandomize:
			b.label = "Fill"
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := p.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

// click handles a primary button press at panel coordinates (x, y) and
// reports whether it hit a button or an enabled control.
func (p *panel) click(x, y int) bool {
	pt := image.Pt(x, y)
	for _, b := range p.buttons {
		if pt.In(b.rect) {
			p.src.Dispatch(b.cmd)
			return true
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			return p.adjust(state, -1)
		}
		if pt.In(state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *panel) adjust(state *hudControlState, direction int) bool {
	if p.intSetter == nil {
		return false
	}
	target, ok := adjustedValue(state.control, state.intValue, direction)
	if !ok || target == state.intValue {
		return false
	}
	if !p.intSetter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

func (p *panel) layout() {
	if p.width <= 0 {
		return
	}
	inner := p.width - 2*panelPadding
	half := (inner - buttonGap) / 2
	for i := range p.buttons {
		x := panelPadding + (i%2)*(half+buttonGap)
		y := buttonsTop + (i/2)*(buttonHeight+buttonGap)
		p.buttons[i].rect = image.Rect(x, y, x+half, y+buttonHeight)
	}
	for i := range p.controls {
		top := controlsTop() + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}
