package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

var flagOpen bool

var printCmd = &cobra.Command{
	Use:   "print [preset]",
	Short: "Print a generated board",
	Long: `Generate a board, opened at the centre tile, and print its layout.
With --open only the tiles the first click reveals are shown.

Examples:
  mines print expert --seed 42
  mines print --open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&flagOpen, "open", false, "Show only what the first click reveals")
}

func runPrint(_ *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	p, err := presetArg(settings, args)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b, err := board.New(p.Height, p.Width, board.WithRandomSource(rand.New(rand.NewSource(seed))))
	if err != nil {
		return err
	}
	safe, _ := b.Index(p.Height/2, p.Width/2)
	if err := b.Initialize(safe, p.Mines); err != nil {
		return err
	}

	if flagOpen {
		v, err := b.Uncover(safe)
		if err != nil {
			return err
		}
		if v.Count == 0 && settings.FloodReveal {
			if _, err := b.FloodReveal(safe); err != nil {
				return err
			}
		}
	}

	fmt.Printf("%s, seed %d, 3BV %d, %d openings\n",
		p.Name, seed, board.BBBV(b), board.Openings(b))
	printBoard(os.Stdout, b, flagOpen)
	return nil
}

var (
	mineColor   = color.New(color.FgRed, color.Bold)
	coverColor  = color.New(color.FgHiBlack)
	countColors = []*color.Color{
		1: color.New(color.FgBlue),
		2: color.New(color.FgGreen),
		3: color.New(color.FgRed),
		4: color.New(color.FgMagenta),
		5: color.New(color.FgYellow),
		6: color.New(color.FgCyan),
		7: color.New(color.FgWhite, color.Bold),
		8: color.New(color.FgHiBlack, color.Bold),
	}
)

// printBoard writes the board one row per line. With coveredOnly set,
// covered tiles print as '#'; otherwise every tile shows its content.
func printBoard(w io.Writer, b *board.Board, coveredOnly bool) {
	for r := range b.Height() {
		var sb strings.Builder
		for c := range b.Width() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			i, _ := b.Index(r, c)
			t, _ := b.Tile(i)
			switch {
			case coveredOnly && t.IsCovered:
				sb.WriteString(coverColor.Sprint("#"))
			case t.IsMine:
				sb.WriteString(mineColor.Sprint("*"))
			case t.AdjacentCount == 0:
				sb.WriteByte('.')
			default:
				sb.WriteString(countColors[t.AdjacentCount].Sprint(t.AdjacentCount))
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}
