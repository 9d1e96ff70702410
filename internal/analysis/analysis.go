// Package analysis samples random boards and summarizes how hard they are
// to clear. It backs the analyze command.
package analysis

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

// Sample describes one generated board.
type Sample struct {
	Seed     int64
	BBBV     int
	Openings int
}

// Options controls board generation.
type Options struct {
	// Boards is the number of boards to generate.
	Boards int

	// Seed is the base seed; board i uses Seed+i, so results do not depend
	// on the number of workers.
	Seed int64

	// Workers is the number of generating goroutines. Values below one
	// mean one.
	Workers int

	// Progress, if set, is called once per finished board from any worker.
	Progress func()
}

// Generate builds opts.Boards boards for the preset, each opened at the
// centre tile, and measures them. Samples are returned in seed order.
func Generate(ctx context.Context, p config.Preset, opts Options) ([]Sample, error) {
	if err := config.ValidatePreset(p); err != nil {
		return nil, err
	}
	if opts.Boards <= 0 {
		return nil, nil
	}
	workers := max(opts.Workers, 1)

	samples := make([]Sample, opts.Boards)
	jobs := make(chan int)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s, err := measure(p, opts.Seed+int64(i))
				if err != nil {
					errs <- err
					return
				}
				samples[i] = s
				if opts.Progress != nil {
					opts.Progress()
				}
			}
		}()
	}

	var err error
feed:
	for i := range opts.Boards {
		select {
		case jobs <- i:
		case err = <-errs:
			break feed
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err == nil {
		select {
		case err = <-errs:
		default:
		}
	}
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func measure(p config.Preset, seed int64) (Sample, error) {
	b, err := board.New(p.Height, p.Width, board.WithRandomSource(rand.New(rand.NewSource(seed))))
	if err != nil {
		return Sample{}, err
	}
	safe, err := b.Index(p.Height/2, p.Width/2)
	if err != nil {
		return Sample{}, err
	}
	if err := b.Initialize(safe, p.Mines); err != nil {
		return Sample{}, err
	}
	return Sample{
		Seed:     seed,
		BBBV:     board.BBBV(b),
		Openings: board.Openings(b),
	}, nil
}

// Summary holds descriptive statistics for one measure.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Summarize computes the summary of xs. The zero Summary is returned for
// an empty slice.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return Summary{
		N:      len(sorted),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(sorted),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:    floats.Max(sorted),
	}
}

// BBBVs returns the 3BV of every sample.
func BBBVs(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.BBBV)
	}
	return out
}

// Openings returns the opening count of every sample.
func Openings(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Openings)
	}
	return out
}

// Hardest returns the sample with the highest 3BV, preferring the lowest
// seed on ties.
func Hardest(samples []Sample) (Sample, bool) {
	if len(samples) == 0 {
		return Sample{}, false
	}
	best := samples[0]
	for _, s := range samples[1:] {
		if s.BBBV > best.BBBV {
			best = s
		}
	}
	return best, true
}
