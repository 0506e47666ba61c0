//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"life-canvas/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	ctrl, err := app.NewController(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("startup failed")
	}

	game := app.New(ctrl, cfg.Layout(), cfg.Panel)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-canvas")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithError(err).Fatal("game loop")
	}
	logger.WithField("generation", ctrl.Generation()).Info("bye")
}
