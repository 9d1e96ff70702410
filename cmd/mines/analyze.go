package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/analysis"
)

var (
	flagBoards  int
	flagWorkers int
	flagQuiet   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [preset]",
	Short: "Measure the difficulty of random boards",
	Long: `Generate boards for a preset, each opened at the centre tile, and
report the spread of their 3BV (the fewest clicks that clear the board)
and opening counts.

Board i uses seed --seed+i, so a run is reproducible for any --workers.

Examples:
  mines analyze
  mines analyze expert --boards 100000 --workers 8
  mines analyze intermediate --seed 7 --quiet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&flagBoards, "boards", 1000, "Number of boards to generate")
	analyzeCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Parallel generators")
	analyzeCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Hide the progress bar")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	p, err := presetArg(settings, args)
	if err != nil {
		return err
	}
	if flagBoards <= 0 {
		return fmt.Errorf("--boards must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := pb.StartNew(flagBoards)
	if flagQuiet {
		bar.SetWriter(io.Discard)
	}
	samples, err := analysis.Generate(ctx, p, analysis.Options{
		Boards:   flagBoards,
		Seed:     seed,
		Workers:  flagWorkers,
		Progress: func() { bar.Increment() },
	})
	used := time.Since(bar.StartTime())
	bar.Finish()
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%s: %dx%d, %d mines\n", p.Name, p.Width, p.Height, p.Mines)
	fmt.Printf("%d boards in %s (base seed %d)\n\n", len(samples), used.Round(time.Millisecond), seed)

	fmt.Printf("  %-9s %8s %8s %6s %6s %6s\n", "", "mean", "stddev", "min", "median", "max")
	printSummary("3BV", analysis.Summarize(analysis.BBBVs(samples)))
	printSummary("openings", analysis.Summarize(analysis.Openings(samples)))

	if hardest, ok := analysis.Hardest(samples); ok {
		fmt.Println()
		color.New(color.FgYellow).Printf("Hardest board: seed %d, 3BV %d\n", hardest.Seed, hardest.BBBV)
		fmt.Printf("Show it with: mines print %s --seed %d\n", p.Name, hardest.Seed)
	}
	return nil
}

func printSummary(name string, s analysis.Summary) {
	fmt.Printf("  %-9s %8.2f %8.2f %6.0f %6.0f %6.0f\n", name, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}
