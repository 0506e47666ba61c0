// Package term is a terminal frontend for the controller. Each cell is two
// columns wide and the first screen line holds the status bar.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"

	"life-canvas/internal/control"
	"life-canvas/internal/ui"
)

const (
	cellWidth = 2
	boardTop  = 1
)

var (
	styleAlive     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(64, 64, 64)).Background(tcell.NewRGBColor(247, 247, 247))
	styleDead      = tcell.StyleDefault.Background(tcell.NewRGBColor(247, 247, 247))
	styleHighlight = tcell.StyleDefault.Foreground(tcell.NewRGBColor(64, 64, 64)).Background(tcell.NewRGBColor(223, 64, 16))
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 40, 48))
)

var runeBindings = map[rune]control.Command{
	' ': control.CmdToggleRun,
	'n': control.CmdStep,
	'c': control.CmdClear,
	'f': control.CmdRandomize,
	'+': control.CmdRateUp,
	'=': control.CmdRateUp,
	'-': control.CmdRateDown,
	']': control.CmdRateUpFast,
	'[': control.CmdRateDownFast,
}

// Session connects a tcell screen to a controller.
type Session struct {
	screen tcell.Screen
	ctrl   *control.Controller
	log    log.Interface

	pressed  bool
	inside   bool
	showHelp bool
}

// New returns a Session drawing ctrl on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, ctrl *control.Controller, logger log.Interface) *Session {
	if logger == nil {
		logger = log.Log
	}
	screen.EnableMouse()
	return &Session{screen: screen, ctrl: ctrl, log: logger}
}

// Run processes input and ticks the controller fps times per second until
// the user quits or ctx is cancelled.
func (s *Session) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if s.HandleEvent(ev) {
				s.log.Debug("quit requested")
				return nil
			}
			s.Draw()
		case now := <-ticker.C:
			if s.ctrl.Tick(now) {
				s.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event and reports whether the user asked
// to quit.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch r := ev.Rune(); r {
	case 'q':
		return true
	case 'h':
		s.showHelp = !s.showHelp
	default:
		if cmd, ok := runeBindings[r]; ok {
			s.ctrl.Dispatch(cmd)
		}
	}
	return false
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	size := s.ctrl.Grid().Size()
	inside := x >= 0 && x < size.W*cellWidth && y >= boardTop && y < boardTop+size.H
	held := ev.Buttons()&tcell.Button1 != 0

	if inside != s.inside {
		s.inside = inside
		if inside {
			s.ctrl.PointerEnter()
		} else {
			s.ctrl.PointerLeave()
		}
	}
	defer func() { s.pressed = held }()

	if !inside {
		if s.pressed && !held {
			s.ctrl.PointerUp()
		}
		return
	}
	col, row := x/cellWidth, y-boardTop
	switch {
	case held && !s.pressed:
		s.ctrl.PointerDown(col, row)
	case !held && s.pressed:
		s.ctrl.PointerUp()
		s.ctrl.PointerMove(col, row)
	default:
		s.ctrl.PointerMove(col, row)
	}
}

// Draw renders the status bar and board and shows the frame.
func (s *Session) Draw() {
	s.screen.Clear()
	st := s.ctrl.Status()
	state := "paused"
	if st.Running {
		state = "running"
	}
	s.drawText(0, 0, fmt.Sprintf(" gen %d  pop %d  rate %d/s  %s  [h] help", st.Generation, st.Population, st.Rate, state), styleStatus)

	grid := s.ctrl.Grid()
	size := grid.Size()
	sel := s.ctrl.Selection()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			ch, style := ' ', styleDead
			if grid.Get(col, row) {
				ch, style = '█', styleAlive
			}
			if sel.Active && sel.Col == col && sel.Row == row {
				style = styleHighlight
			}
			for i := 0; i < cellWidth; i++ {
				s.screen.SetContent(col*cellWidth+i, boardTop+row, ch, nil, style)
			}
		}
	}
	if s.showHelp {
		for i, line := range ui.KeyLegend {
			s.drawText(1, boardTop+1+i, " "+line+" ", styleStatus)
		}
	}
	s.screen.Show()
}

func (s *Session) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
