package analysis

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{4}, Summary{N: 1, Mean: 4, Min: 4, Median: 4, Max: 4}},
		{"odd", []float64{3, 1, 2}, Summary{N: 3, Mean: 2, StdDev: 1, Min: 1, Median: 2, Max: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.xs)
			if got.N != tt.want.N || got.Min != tt.want.Min || got.Max != tt.want.Max || got.Median != tt.want.Median {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.xs, got, tt.want)
			}
			if math.Abs(got.Mean-tt.want.Mean) > 1e-9 || math.Abs(got.StdDev-tt.want.StdDev) > 1e-9 {
				t.Errorf("mean/std = %v/%v, want %v/%v", got.Mean, got.StdDev, tt.want.Mean, tt.want.StdDev)
			}
		})
	}
}

func TestSummarizeKeepsInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Summarize(xs)
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Errorf("input reordered: %v", xs)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p, _ := config.DefaultMinesweeperConfig().Preset("intermediate")

	one, err := Generate(context.Background(), p, Options{Boards: 20, Seed: 99, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	many, err := Generate(context.Background(), p, Options{Boards: 20, Seed: 99, Workers: 4})
	if err != nil {
		t.Fatal(err)
	}

	for i := range one {
		if one[i] != many[i] {
			t.Errorf("sample %d differs: %+v vs %+v", i, one[i], many[i])
		}
		if one[i].Seed != 99+int64(i) {
			t.Errorf("sample %d seed = %d", i, one[i].Seed)
		}
		if one[i].BBBV < 1 || one[i].BBBV < one[i].Openings {
			t.Errorf("sample %d = %+v", i, one[i])
		}
	}
}

func TestGenerateProgress(t *testing.T) {
	p := config.Preset{Name: "tiny", Height: 3, Width: 3, Mines: 8}

	var calls atomic.Int32
	samples, err := Generate(context.Background(), p, Options{
		Boards:   10,
		Workers:  3,
		Progress: func() { calls.Add(1) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 10 {
		t.Errorf("progress called %d times, want 10", calls.Load())
	}
	for _, s := range samples {
		// Only the centre is safe; it touches all eight mines.
		if s.BBBV != 1 || s.Openings != 0 {
			t.Errorf("sample = %+v, want 3BV 1 and no openings", s)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(context.Background(), config.Preset{Height: 2, Width: 2, Mines: 4}, Options{Boards: 1})
	if !errors.Is(err, board.ErrInvalidMineCount) {
		t.Errorf("err = %v, want ErrInvalidMineCount", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, _ := config.DefaultMinesweeperConfig().Preset("expert")
	if _, err := Generate(ctx, p, Options{Boards: 1000}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestHardest(t *testing.T) {
	if _, ok := Hardest(nil); ok {
		t.Error("Hardest(nil) reported a sample")
	}
	got, _ := Hardest([]Sample{{Seed: 1, BBBV: 5}, {Seed: 2, BBBV: 9}, {Seed: 3, BBBV: 9}})
	if got.Seed != 2 {
		t.Errorf("Hardest seed = %d, want 2", got.Seed)
	}
	if xs := BBBVs([]Sample{{BBBV: 5}, {BBBV: 9}}); xs[0] != 5 || xs[1] != 9 {
		t.Errorf("BBBVs = %v", xs)
	}
}
