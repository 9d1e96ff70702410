package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagHeight int
	flagWidth  int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing a board. Without arguments the beginner board is used.

Controls:
  Arrows/hjkl/wasd  - Move cursor
  Space/Enter       - Reveal (on a number: chord)
  F/M               - Flag
  C                 - Chord
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Custom boards are set with --height, --width and --mines; results for them
are stored under mines_custom.

Examples:
  mines play
  mines play expert
  mines play --height 20 --width 40 --mines 160
  mines play intermediate --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Rows of a custom board")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Columns of a custom board")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Mines on a custom board")
}

func runPlay(cmd *cobra.Command, args []string) {
	game, err := pickGame(cmd, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// pickGame builds a custom board when any size flag is set, otherwise the
// registered preset named by args.
func pickGame(cmd *cobra.Command, args []string) (registry.Game, error) {
	flags := cmd.Flags()
	if flags.Changed("height") || flags.Changed("width") || flags.Changed("mines") {
		settings, err := loadSettings()
		if err != nil {
			return nil, err
		}
		p := config.Preset{Name: "custom", Height: flagHeight, Width: flagWidth, Mines: flagMines}
		if err := config.ValidatePreset(p); err != nil {
			return nil, err
		}
		return minesweeper.NewCustom(p, settings), nil
	}

	id := "mines_beginner"
	if len(args) > 0 {
		id = gameID(args[0])
	}
	if !registered(id) {
		return nil, fmt.Errorf("unknown board %q (run 'mines list')", id)
	}
	return registry.Create(id)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
