package app

import (
	"errors"
	"flag"
	"fmt"

	"life-canvas/internal/control"
	"life-canvas/internal/core"
	"life-canvas/internal/render"
	"life-canvas/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols    int
	Rows    int
	Size    int
	Border  int
	Rate    int
	Seed    int64
	Pattern bool
	Density float64
	Panel   int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cols:    96,
		Rows:    64,
		Size:    10,
		Border:  1,
		Rate:    control.DefaultRate,
		Seed:    42,
		Pattern: true,
		Density: life.DefaultDensity,
		Panel:   180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Size, "size", c.Size, "cell size in pixels")
	fs.IntVar(&c.Border, "border", c.Border, "grid line width in pixels")
	fs.IntVar(&c.Rate, "rate", c.Rate, "steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the fill command")
	fs.BoolVar(&c.Pattern, "pattern", c.Pattern, "start with the glider gun on the board")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the fill command")
	fs.IntVar(&c.Panel, "panel", c.Panel, "control panel width in pixels")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Validate reports the first setting that cannot produce a usable board.
func (c *Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Cols, c.Rows)
	}
	if c.Size <= 0 {
		return fmt.Errorf("cell size %d must be positive", c.Size)
	}
	if c.Border < 0 || c.Border >= c.Size {
		return fmt.Errorf("border %d must be in [0,%d)", c.Border, c.Size)
	}
	if c.Rate < core.MinRate || c.Rate > core.MaxRate {
		return fmt.Errorf("rate %d must be in [%d,%d]", c.Rate, core.MinRate, core.MaxRate)
	}
	if c.Density <= 0 || c.Density > 1 {
		return fmt.Errorf("density %g must be in (0,1]", c.Density)
	}
	if c.Panel < 0 {
		return errors.New("panel width must not be negative")
	}
	if c.Pattern {
		ext := life.Extent(life.GliderGun)
		o := life.GliderGunOrigin
		if o.Col+ext.W > c.Cols || o.Row+ext.H > c.Rows {
			return fmt.Errorf("glider gun needs at least %dx%d cells, grid is %dx%d",
				o.Col+ext.W, o.Row+ext.H, c.Cols, c.Rows)
		}
	}
	return nil
}

// Layout returns the pixel layout of the board.
func (c *Config) Layout() render.Layout {
	return render.Layout{Cols: c.Cols, Rows: c.Rows, Size: c.Size, Border: c.Border}
}
