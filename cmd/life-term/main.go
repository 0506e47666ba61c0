package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"

	"life-canvas/internal/app"
	"life-canvas/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Cols, cfg.Rows = 60, 30
	cfg.Bind(flag.CommandLine)
	fps := flag.Int("fps", 60, "screen refreshes per second")
	logPath := flag.String("log", "", "append log lines to this file; the terminal is busy drawing")
	flag.Parse()

	stderr := app.NewLogger(os.Stderr, cfg.Verbose)
	generation, err := run(cfg, *fps, *logPath)
	if err != nil {
		stderr.WithError(err).Error("life-term failed")
		os.Exit(1)
	}
	stderr.WithField("generation", generation).Info("bye")
}

// run owns every resource of the session so deferred cleanups happen before
// main decides the exit code.
func run(cfg *app.Config, fps int, logPath string) (int, error) {
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := app.NewLogger(out, cfg.Verbose)

	ctrl, err := app.NewController(cfg, logger)
	if err != nil {
		return 0, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, ctrl, logger).Run(ctx, fps)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("session ended")
		return ctrl.Generation(), fmt.Errorf("session: %w", err)
	}
	logger.WithFields(log.Fields{
		"generation": ctrl.Generation(),
		"population": ctrl.Grid().Population(),
	}).Info("session closed")
	return ctrl.Generation(), nil
}
