// Package control drives a life.Grid from a render loop: it decides when a
// step is due, owns the run/pause state and applies pointer edits.
//
// A Controller is not safe for concurrent use. Frontends call every method
// from the goroutine that runs their frame callback.
package control

import (
	"time"

	"github.com/apex/log"

	"life-canvas/internal/core"
	"life-canvas/internal/sims/life"
)

// DefaultRate is the step rate a new Controller starts with.
const DefaultRate = 24

// Selection is the cell under the pointer.
type Selection struct {
	Col, Row int
	Active   bool
}

// Editing tracks a drag-paint gesture.
type Editing struct {
	Value  bool
	Active bool
}

// Status is a read-only snapshot for display labels.
type Status struct {
	Generation int
	Rate       int
	Running    bool
	Population int
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Rate    int
	Seed    int64
	Density float64
	Log     log.Interface
	Now     func() time.Time
}

// Controller owns a Grid plus the state needed to step it on a schedule.
type Controller struct {
	grid    *life.Grid
	clock   *core.StepClock
	rng     *core.RNG
	density float64
	running bool

	selection Selection
	editing   Editing

	log log.Interface
	now func() time.Time
}

// New wraps grid in a paused Controller.
func New(grid *life.Grid, opts Options) *Controller {
	if opts.Rate == 0 {
		opts.Rate = DefaultRate
	}
	if opts.Density <= 0 {
		opts.Density = life.DefaultDensity
	}
	if opts.Log == nil {
		opts.Log = log.Log
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{
		grid:      grid,
		clock:     core.NewStepClock(opts.Rate),
		rng:       core.NewRNG(opts.Seed),
		density:   opts.Density,
		selection: Selection{Col: -1, Row: -1},
		log:       opts.Log,
		now:       opts.Now,
	}
}

// Grid exposes the simulated board for drawing.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Running reports whether automatic stepping is active.
func (c *Controller) Running() bool { return c.running }

// Rate returns the target steps per second.
func (c *Controller) Rate() int { return c.clock.Rate() }

// Generation returns the grid's generation counter.
func (c *Controller) Generation() int { return c.grid.Generation() }

// Selection returns the cell last seen under the pointer.
func (c *Controller) Selection() Selection { return c.selection }

// Editing returns the state of the current paint gesture.
func (c *Controller) Editing() Editing { return c.editing }

// Status returns the values shown on the frontend's labels.
func (c *Controller) Status() Status {
	return Status{
		Generation: c.grid.Generation(),
		Rate:       c.clock.Rate(),
		Running:    c.running,
		Population: c.grid.Population(),
	}
}

// ToggleRun flips between running and paused. Starting steps once right away
// and restarts the step timer.
func (c *Controller) ToggleRun() {
	if c.running {
		c.running = false
		c.log.WithField("generation", c.grid.Generation()).Debug("paused")
		return
	}
	c.running = true
	c.log.WithField("generation", c.grid.Generation()).Debug("running")
	c.step()
	c.clock.Mark(c.now())
}

// SetRate stores rate clamped to [core.MinRate, core.MaxRate] and returns the
// stored value.
func (c *Controller) SetRate(rate int) int { return c.clock.SetRate(rate) }

// IncreaseRate raises the rate by delta.
func (c *Controller) IncreaseRate(delta int) int { return c.SetRate(c.Rate() + delta) }

// DecreaseRate lowers the rate by delta.
func (c *Controller) DecreaseRate(delta int) int { return c.SetRate(c.Rate() - delta) }

// Tick is called once per rendered frame. It steps the grid when running and
// at least one step interval has passed since the last step, and reports
// whether a step was attempted.
func (c *Controller) Tick(now time.Time) bool {
	if !c.running || !c.clock.Due(now) {
		return false
	}
	c.step()
	c.clock.Mark(now)
	return true
}

// SingleStep advances one generation regardless of the run state. The step
// timer is left alone.
func (c *Controller) SingleStep() bool { return c.step() }

// step applies one generation and pauses when the board stopped changing
// while running.
func (c *Controller) step() bool {
	if c.grid.Step() {
		return true
	}
	if c.running {
		c.running = false
		c.log.WithFields(log.Fields{
			"generation": c.grid.Generation(),
			"population": c.grid.Population(),
		}).Info("stable configuration, halting")
	}
	return false
}

// EditCell negates one cell and restarts the generation count.
func (c *Controller) EditCell(col, row int) {
	col, row = c.grid.Clamp(col, row)
	c.grid.Set(col, row, !c.grid.Get(col, row))
	c.grid.ResetGeneration()
}

// BeginPaint starts a drag-paint gesture. The painted value is the negation
// of the cell under the pointer and stays fixed until EndPaint.
func (c *Controller) BeginPaint(col, row int) {
	col, row = c.grid.Clamp(col, row)
	c.editing = Editing{Value: !c.grid.Get(col, row), Active: true}
	c.grid.Set(col, row, c.editing.Value)
	c.grid.ResetGeneration()
}

// PaintMove applies the gesture's value to another cell.
func (c *Controller) PaintMove(col, row int) {
	if !c.editing.Active {
		return
	}
	col, row = c.grid.Clamp(col, row)
	c.grid.Set(col, row, c.editing.Value)
	c.grid.ResetGeneration()
}

// EndPaint finishes the current paint gesture.
func (c *Controller) EndPaint() { c.editing.Active = false }

// SetHover records whether the pointer is over the canvas. Leaving the canvas
// ends any paint gesture.
func (c *Controller) SetHover(active bool) {
	c.selection.Active = active
	if !active {
		c.EndPaint()
	}
}

// Clear kills every cell and restarts the generation count.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.grid.ResetGeneration()
}

// Randomize refills the board at the configured density and restarts the
// generation count.
func (c *Controller) Randomize() { c.RandomizeWith(c.density) }

// RandomizeWith refills the board with live probability p.
func (c *Controller) RandomizeWith(p float64) {
	c.grid.Randomize(c.rng, p)
	c.grid.ResetGeneration()
}

// Stamp sets the offsets alive relative to origin and restarts the
// generation count.
func (c *Controller) Stamp(origin core.Cell, offsets []core.Cell) {
	c.grid.Stamp(origin.Col, origin.Row, offsets)
	c.grid.ResetGeneration()
}
