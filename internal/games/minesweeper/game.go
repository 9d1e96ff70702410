// Package minesweeper implements the playable minesweeper game on top of
// the board engine: cursor, flags, chording, the clock and scoring.
package minesweeper

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Game implements registry.Game for one board preset.
type Game struct {
	preset   config.Preset
	settings config.MinesweeperConfig
	custom   bool // preset and settings are fixed, config files are not read

	runtime core.RuntimeConfig
	board   *board.Board
	flags   []bool
	tick    uint64
	clock   uint64 // ticks while playing

	cursorRow int
	cursorCol int
	exploded  int // index of the mine that ended the game, -1 otherwise

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets a custom config file used by registered games.
// An empty path uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game for the named preset. Dimensions are resolved from
// the loaded config on Reset.
func New(presetName string) *Game {
	p, ok := config.DefaultMinesweeperConfig().Preset(presetName)
	if !ok {
		p = config.Preset{Name: presetName}
	}
	return &Game{preset: p, exploded: -1}
}

// NewCustom creates a game with a fixed preset and settings.
func NewCustom(p config.Preset, settings config.MinesweeperConfig) *Game {
	return &Game{preset: p, settings: settings, custom: true, exploded: -1}
}

func init() {
	for _, p := range config.DefaultMinesweeperConfig().Presets {
		name := p.Name
		registry.Register("mines_"+name, func() registry.Game {
			return New(name)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mines_" + g.preset.Name
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset.Name == "" {
		return "Minesweeper"
	}
	return "Minesweeper (" + strings.ToUpper(g.preset.Name[:1]) + g.preset.Name[1:] + ")"
}

// Description summarizes the board size.
func (g *Game) Description() string {
	return fmt.Sprintf("%dx%d, %d mines", g.preset.Width, g.preset.Height, g.preset.Mines)
}

// Reset starts a new board. Mines are placed on the first reveal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.custom {
		g.settings = loadSettings()
		if p, ok := g.settings.Preset(g.preset.Name); ok {
			g.preset = p
		}
	}

	g.runtime = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.clock = 0
	g.exploded = -1
	g.gameOver = false
	g.won = false
	g.paused = false

	b, err := newBoard(g.preset, cfg.Seed)
	if err != nil {
		// Unusable sizes play as beginner under the same name
		def, _ := config.DefaultMinesweeperConfig().Preset("beginner")
		def.Name = g.preset.Name
		g.preset = def
		b, _ = newBoard(def, cfg.Seed)
	}
	g.board = b
	g.flags = make([]bool, g.board.Len())

	g.cursorRow = g.preset.Height / 2
	g.cursorCol = g.preset.Width / 2

	g.checkScreenSize()
}

// newBoard validates p and allocates its board.
func newBoard(p config.Preset, seed int64) (*board.Board, error) {
	if err := config.ValidatePreset(p); err != nil {
		return nil, err
	}
	return board.New(p.Height, p.Width, board.WithRandomSource(rand.New(rand.NewSource(seed))))
}

// loadSettings reads the config, falling back to defaults on error.
func loadSettings() config.MinesweeperConfig {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		return config.DefaultMinesweeperConfig()
	}
	return cfg
}

// Resize adapts to new screen dimensions without losing the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := layoutSize(g.preset.Height, g.preset.Width)
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.board.Initialized() {
		g.clock++
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionUp:
			g.moveCursor(-1, 0)
		case core.ActionDown:
			g.moveCursor(1, 0)
		case core.ActionLeft:
			g.moveCursor(0, -1)
		case core.ActionRight:
			g.moveCursor(0, 1)
		case core.ActionConfirm:
			g.Reveal(g.cursorRow, g.cursorCol)
		case core.ActionFlag:
			g.ToggleFlag(g.cursorRow, g.cursorCol)
		case core.ActionChord:
			g.Chord(g.cursorRow, g.cursorCol)
		}
		if g.gameOver {
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor, clamped to the board.
func (g *Game) moveCursor(dRow, dCol int) {
	g.cursorRow = core.Clamp(g.cursorRow+dRow, 0, g.preset.Height-1)
	g.cursorCol = core.Clamp(g.cursorCol+dCol, 0, g.preset.Width-1)
}

// Cursor returns the cursor position.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// Reveal uncovers the tile at (row, col). The first reveal places the
// mines with that tile kept safe. Revealing an uncovered number chords.
func (g *Game) Reveal(row, col int) {
	if g.gameOver {
		return
	}
	idx, err := g.board.Index(row, col)
	if err != nil || g.flags[idx] {
		return
	}

	if !g.board.Initialized() {
		if err := g.board.Initialize(idx, g.preset.Mines); err != nil {
			return
		}
	}

	t, _ := g.board.Tile(idx)
	if !t.IsCovered {
		g.Chord(row, col)
		return
	}

	if g.uncover(idx) {
		g.checkWin()
	}
}

// uncover reveals one covered tile, flooding zero regions when enabled.
// It returns false if the tile was a mine.
func (g *Game) uncover(idx int) bool {
	v, err := g.board.Uncover(idx)
	if err != nil {
		return true
	}
	if v.Mine {
		g.lose(idx)
		return false
	}

	if v.Count == 0 && g.settings.FloodReveal {
		revealed, _ := g.board.FloodReveal(idx)
		for _, i := range revealed {
			g.flags[i] = false
		}
	}
	return true
}

// ToggleFlag marks or unmarks a covered tile.
func (g *Game) ToggleFlag(row, col int) {
	if g.gameOver {
		return
	}
	idx, err := g.board.Index(row, col)
	if err != nil {
		return
	}
	if t, _ := g.board.Tile(idx); !t.IsCovered {
		return
	}
	g.flags[idx] = !g.flags[idx]
}

// Chord uncovers every unflagged covered neighbor of an uncovered number
// once the number of flagged neighbors equals it.
func (g *Game) Chord(row, col int) {
	if g.gameOver {
		return
	}
	idx, err := g.board.Index(row, col)
	if err != nil {
		return
	}
	t, _ := g.board.Tile(idx)
	if t.IsCovered || t.IsMine || t.AdjacentCount == 0 {
		return
	}

	neighbors := g.board.Neighbors(idx)
	flagged := 0
	for _, n := range neighbors {
		if g.flags[n] {
			flagged++
		}
	}
	if flagged != t.AdjacentCount {
		return
	}

	for _, n := range neighbors {
		nt, _ := g.board.Tile(n)
		if !nt.IsCovered || g.flags[n] {
			continue
		}
		if !g.uncover(n) {
			return
		}
	}
	g.checkWin()
}

// checkWin ends the game once every safe tile is uncovered.
func (g *Game) checkWin() {
	if !g.board.IsWon() {
		return
	}
	g.gameOver = true
	g.won = true
	for _, m := range g.board.Mines() {
		g.flags[m] = true
	}
}

// lose ends the game on the mine at idx.
func (g *Game) lose(idx int) {
	g.gameOver = true
	g.exploded = idx
}

// Elapsed returns the clock in whole seconds, capped at the time limit.
func (g *Game) Elapsed() int {
	secs := g.runtime.Seconds(g.clock)
	if limit := g.settings.Scoring.TimeLimitSecs; limit > 0 && secs > limit {
		return limit
	}
	return secs
}

// Revealed returns the number of safe tiles uncovered.
func (g *Game) Revealed() int {
	if !g.board.Initialized() {
		return 0
	}
	return g.board.Len() - g.board.MineCount() - g.board.CoveredSafe()
}

// FlagCount returns the number of flagged tiles.
func (g *Game) FlagCount() int {
	n := 0
	for _, f := range g.flags {
		if f {
			n++
		}
	}
	return n
}

// MinesLeft returns mines minus flags; it goes negative with too many flags.
func (g *Game) MinesLeft() int {
	return g.preset.Mines - g.FlagCount()
}

// Score is the number of safe tiles revealed plus, on a win, the seconds
// left under the time limit.
func (g *Game) Score() int {
	score := g.Revealed()
	if g.won {
		score += max(0, g.settings.Scoring.TimeLimitSecs-g.Elapsed())
	}
	return score
}

// Preset returns the board preset in play.
func (g *Game) Preset() config.Preset {
	return g.preset
}

// Board returns the underlying board.
func (g *Game) Board() *board.Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
		Elapsed:  g.Elapsed(),
	}
}
