package app

import (
	"fmt"

	"github.com/apex/log"

	"life-canvas/internal/control"
	"life-canvas/internal/sims/life"
)

// NewController builds the board described by cfg, seeds it and wraps it in
// a paused controller.
func NewController(cfg *Config, logger log.Interface) (*control.Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	grid := life.New(cfg.Cols, cfg.Rows)
	ctrl := control.New(grid, control.Options{
		Rate:    cfg.Rate,
		Seed:    cfg.Seed,
		Density: cfg.Density,
		Log:     logger,
	})
	if cfg.Pattern {
		ctrl.Stamp(life.GliderGunOrigin, life.GliderGun)
	}
	logger.WithFields(log.Fields{
		"cols":       cfg.Cols,
		"rows":       cfg.Rows,
		"rate":       ctrl.Rate(),
		"population": grid.Population(),
	}).Info("board ready")
	return ctrl, nil
}
