// mines is a terminal Minesweeper with local play, an SSH server and an
// HTTP API.
//
// Usage:
//
//	mines list               - List available boards
//	mines play [preset]      - Play a board
//	mines menu               - Pick boards interactively
//	mines serve              - Start SSH server for remote play
//	mines api                - Start the HTTP game API
//	mines scores [preset]    - Show best times for a board
//	mines analyze [preset]   - Measure the difficulty of random boards
//	mines print [preset]     - Print a generated board
//	mines config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.mines/results.db)
//	--config <path>  - Use a custom minesweeper.yaml
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal Minesweeper. Play locally, host boards over SSH,
or serve them as a JSON API.

Examples:
  mines list
  mines play expert
  mines menu
  mines serve --ssh :2222
  mines api --addr :8080
  mines analyze expert --boards 10000`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		minesweeper.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(configCmd)
}

// gameID turns "expert" or "mines_expert" into a registry ID.
func gameID(arg string) string {
	arg = strings.ToLower(arg)
	if strings.HasPrefix(arg, "mines_") {
		return arg
	}
	return "mines_" + arg
}

// presetArg returns the preset named by the optional first argument,
// defaulting to the first configured preset.
func presetArg(settings config.MinesweeperConfig, args []string) (config.Preset, error) {
	if len(args) == 0 {
		return settings.Presets[0], nil
	}
	name := strings.TrimPrefix(strings.ToLower(args[0]), "mines_")
	p, ok := settings.Preset(name)
	if !ok {
		return config.Preset{}, fmt.Errorf("unknown preset %q (run 'mines list')", args[0])
	}
	return p, nil
}

// loadSettings reads the minesweeper config named by --config.
func loadSettings() (config.MinesweeperConfig, error) {
	settings, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return config.MinesweeperConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return settings, nil
}

// registered reports whether the ID names a registered game.
func registered(id string) bool {
	return registry.Exists(id)
}
