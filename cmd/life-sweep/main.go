package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"life-canvas/internal/app"
	"life-canvas/internal/sweep"
)

func main() {
	opts := sweep.DefaultOptions()
	flag.IntVar(&opts.Cols, "cols", opts.Cols, "grid columns")
	flag.IntVar(&opts.Rows, "rows", opts.Rows, "grid rows")
	flag.Float64Var(&opts.Density, "density", opts.Density, "initial live cell probability")
	flag.IntVar(&opts.Trials, "trials", opts.Trials, "number of random soups")
	flag.IntVar(&opts.MaxSteps, "steps", opts.MaxSteps, "step budget per soup")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed of the first soup; soup i uses seed+i")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of worker goroutines")
	verbose := flag.Bool("v", false, "log every trial")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, *verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	report, err := sweep.Run(ctx, opts, logger)
	if err != nil {
		logger.WithError(err).Fatal("survey failed")
	}
	logger.WithDuration(time.Since(start)).Info("survey complete")

	fmt.Printf("grid %dx%d  density %.2f  trials %d  budget %d steps\n",
		opts.Cols, opts.Rows, opts.Density, opts.Trials, opts.MaxSteps)
	fmt.Printf("stabilized %d/%d\n", report.Stabilized, len(report.Trials))
	fmt.Printf("unsettled after %d steps %d/%d\n", opts.MaxSteps, report.Unsettled, len(report.Trials))
	if report.Stabilized > 0 {
		fmt.Printf("generations to stability min %d  mean %.1f  max %d\n",
			report.MinGeneration, report.MeanGeneration, report.MaxGeneration)
	}
	fmt.Printf("final population mean %.1f\n", report.MeanPopulation)
}
