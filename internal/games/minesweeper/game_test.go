package minesweeper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

// newTestGame returns a reset game on a fixed 3x3 board with the given mines
// already placed, so tests control the layout.
func newTestGame(t *testing.T, mines ...int) *Game {
	t.Helper()
	g := NewCustom(config.Preset{Name: "test", Height: 3, Width: 3, Mines: len(mines)}, config.DefaultMinesweeperConfig())
	g.Reset(testConfig(1))

	safe := 0
	for contains(mines, safe) {
		safe++
	}
	if err := g.board.PlaceMines(safe, mines); err != nil {
		t.Fatalf("PlaceMines(%v) failed: %v", mines, err)
	}
	return g
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegisteredPresets(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"mines_beginner", "Minesweeper (Beginner)"},
		{"mines_intermediate", "Minesweeper (Intermediate)"},
		{"mines_expert", "Minesweeper (Expert)"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.id, err)
			}
			if g.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", g.ID(), tt.id)
			}
			if g.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", g.Title(), tt.title)
			}
		})
	}
}

func TestResetUsesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New("expert")
	g.Reset(testConfig(1))

	if g.board.Height() != 16 || g.board.Width() != 30 {
		t.Errorf("board = %dx%d, want 16x30", g.board.Height(), g.board.Width())
	}
	if row, col := g.Cursor(); row != 8 || col != 15 {
		t.Errorf("cursor = (%d, %d), want (8, 15)", row, col)
	}
	if g.board.Initialized() {
		t.Error("mines should not be placed before the first reveal")
	}
	if g.Snapshot().State != StateReady {
		t.Errorf("state = %s, want ready", g.Snapshot().State)
	}
}

func TestResetFallsBackOnUnusableSize(t *testing.T) {
	tests := []struct {
		name   string
		preset config.Preset
	}{
		{"overflowing area", config.Preset{Name: "huge", Height: 1 << 33, Width: 1<<31 + 1, Mines: 10}},
		{"over side cap", config.Preset{Name: "huge", Height: 100000, Width: 100000, Mines: 10}},
		{"no safe tile", config.Preset{Name: "huge", Height: 2, Width: 2, Mines: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCustom(tt.preset, config.DefaultMinesweeperConfig())
			g.Reset(testConfig(1))

			if g.board == nil {
				t.Fatal("Reset left no board")
			}
			if g.board.Height() != 9 || g.board.Width() != 9 || g.Preset().Mines != 10 {
				t.Errorf("board = %dx%d with %d mines, want beginner 9x9/10",
					g.board.Height(), g.board.Width(), g.Preset().Mines)
			}
			if g.ID() != "mines_huge" {
				t.Errorf("ID() = %q, want mines_huge", g.ID())
			}
		})
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := NewCustom(config.Preset{Name: "dense", Height: 5, Width: 5, Mines: 24}, config.DefaultMinesweeperConfig())
		g.Reset(testConfig(seed))
		g.Step(frame(core.ActionConfirm))

		if g.board.MineCount() != 24 {
			t.Fatalf("seed %d: MineCount() = %d, want 24", seed, g.board.MineCount())
		}
		// 24 mines on 25 tiles: the first reveal is the only safe tile
		if !g.won {
			t.Errorf("seed %d: first reveal should clear the board", seed)
		}
		if g.exploded != -1 {
			t.Errorf("seed %d: first reveal exploded at %d", seed, g.exploded)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := []core.InputFrame{
		frame(core.ActionConfirm),
		frame(core.ActionLeft, core.ActionLeft),
		frame(core.ActionUp),
		frame(core.ActionConfirm),
		frame(core.ActionFlag),
		frame(),
		frame(core.ActionDown, core.ActionDown, core.ActionRight),
		frame(core.ActionConfirm),
	}

	run := func() Snapshot {
		g := NewCustom(config.Preset{Name: "beginner", Height: 9, Width: 9, Mines: 10}, config.DefaultMinesweeperConfig())
		g.Reset(testConfig(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("replay diverged:\n%+v\n%+v", first, second)
	}
	if first.Layout == "" {
		t.Error("board should be initialized after a reveal")
	}
}

func TestCursorClamp(t *testing.T) {
	g := newTestGame(t, 8)

	g.Step(frame(core.ActionUp, core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionLeft))
	if row, col := g.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", row, col)
	}

	for range 5 {
		g.Step(frame(core.ActionDown, core.ActionRight))
	}
	if row, col := g.Cursor(); row != 2 || col != 2 {
		t.Errorf("cursor = (%d, %d), want (2, 2)", row, col)
	}
}

func TestFlagBlocksReveal(t *testing.T) {
	g := newTestGame(t, 8)

	g.ToggleFlag(0, 0)
	if got := g.DisplayAt(0, 0).Kind; got != KindFlagged {
		t.Fatalf("DisplayAt(0, 0) = %v, want flagged", got)
	}
	if g.MinesLeft() != 0 {
		t.Errorf("MinesLeft() = %d, want 0", g.MinesLeft())
	}

	g.Reveal(0, 0)
	if g.Revealed() != 0 {
		t.Errorf("flagged tile was revealed")
	}

	g.ToggleFlag(0, 0)
	g.ToggleFlag(1, 1)
	if g.MinesLeft() != 0 || g.FlagCount() != 1 {
		t.Errorf("MinesLeft() = %d, FlagCount() = %d", g.MinesLeft(), g.FlagCount())
	}

	g.ToggleFlag(0, 2)
	if g.MinesLeft() != -1 {
		t.Errorf("MinesLeft() = %d, want -1 with excess flags", g.MinesLeft())
	}
}

func TestFlagIgnoresUncoveredTile(t *testing.T) {
	g := newTestGame(t, 8)

	g.Reveal(1, 1)
	g.ToggleFlag(1, 1)
	if g.FlagCount() != 0 {
		t.Error("uncovered tile should not take a flag")
	}
}

func TestFloodRevealWins(t *testing.T) {
	g := newTestGame(t, 8)
	g.flags[2] = true

	g.Reveal(0, 0)

	if !g.won || !g.gameOver {
		t.Fatalf("expected win, got %+v", g.Snapshot())
	}
	if g.Revealed() != 8 {
		t.Errorf("Revealed() = %d, want 8", g.Revealed())
	}
	// Flags on flooded tiles are cleared and mines are flagged on a win
	if g.flags[2] {
		t.Error("flag on revealed tile should be cleared")
	}
	if got := g.DisplayAt(2, 2).Kind; got != KindFlagged {
		t.Errorf("DisplayAt(2, 2) = %v, want flagged", got)
	}
	if g.MinesLeft() != 0 {
		t.Errorf("MinesLeft() = %d, want 0", g.MinesLeft())
	}

	state := g.State()
	if !state.Won || state.Score != 8+999 {
		t.Errorf("State() = %+v, want won with score %d", state, 8+999)
	}
}

func TestFloodRevealDisabled(t *testing.T) {
	settings := config.DefaultMinesweeperConfig()
	settings.FloodReveal = false

	g := NewCustom(config.Preset{Name: "test", Height: 3, Width: 3, Mines: 1}, settings)
	g.Reset(testConfig(1))
	if err := g.board.PlaceMines(0, []int{8}); err != nil {
		t.Fatal(err)
	}

	g.Reveal(0, 0)
	if g.Revealed() != 1 {
		t.Errorf("Revealed() = %d, want 1", g.Revealed())
	}
	if g.gameOver {
		t.Error("game should continue")
	}
}

func TestLoss(t *testing.T) {
	g := newTestGame(t, 4)

	g.Reveal(0, 0)
	if got := g.DisplayAt(0, 0); got != (Display{Kind: KindCount, Count: 1}) {
		t.Errorf("DisplayAt(0, 0) = %+v, want count 1", got)
	}

	g.Reveal(1, 1)
	if !g.gameOver || g.won {
		t.Fatalf("expected loss, got %+v", g.Snapshot())
	}
	if g.exploded != 4 {
		t.Errorf("exploded = %d, want 4", g.exploded)
	}
	if got := g.DisplayAt(1, 1).Kind; got != KindExploded {
		t.Errorf("DisplayAt(1, 1) = %v, want exploded", got)
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}

	// Input after the game ends is ignored
	g.Reveal(2, 2)
	if g.Revealed() != 1 {
		t.Errorf("Revealed() = %d after loss, want 1", g.Revealed())
	}
	if g.Snapshot().State != StateLost {
		t.Errorf("state = %s, want lost", g.Snapshot().State)
	}
}

func TestLossShowsFlags(t *testing.T) {
	g := newTestGame(t, 4, 8)

	g.ToggleFlag(0, 0)
	g.ToggleFlag(2, 2)
	g.Reveal(1, 1)

	tests := []struct {
		name     string
		row, col int
		want     Kind
	}{
		{"exploded mine", 1, 1, KindExploded},
		{"wrong flag", 0, 0, KindWrongFlag},
		{"correct flag", 2, 2, KindFlagged},
		{"covered safe", 0, 1, KindCovered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.DisplayAt(tt.row, tt.col).Kind; got != tt.want {
				t.Errorf("DisplayAt(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestLossRevealsUnflaggedMines(t *testing.T) {
	g := newTestGame(t, 4, 8)

	if got := g.DisplayAt(2, 2).Kind; got != KindCovered {
		t.Fatalf("DisplayAt(2, 2) = %v before loss, want covered", got)
	}
	g.Reveal(1, 1)
	if got := g.DisplayAt(2, 2).Kind; got != KindMine {
		t.Errorf("DisplayAt(2, 2) = %v after loss, want mine", got)
	}
}

func TestChord(t *testing.T) {
	t.Run("needs matching flags", func(t *testing.T) {
		g := newTestGame(t, 8)
		g.Reveal(1, 1)
		g.Chord(1, 1)
		if g.Revealed() != 1 {
			t.Errorf("Revealed() = %d, want 1", g.Revealed())
		}
	})

	t.Run("clears neighbors", func(t *testing.T) {
		g := newTestGame(t, 8)
		g.Reveal(1, 1)
		g.ToggleFlag(2, 2)
		g.Chord(1, 1)
		if !g.won {
			t.Errorf("chord should clear the board, got %+v", g.Snapshot())
		}
	})

	t.Run("wrong flag explodes", func(t *testing.T) {
		g := newTestGame(t, 8)
		g.Reveal(1, 1)
		g.ToggleFlag(0, 0)
		g.Chord(1, 1)
		if !g.gameOver || g.won {
			t.Fatalf("expected loss, got %+v", g.Snapshot())
		}
		if g.exploded != 8 {
			t.Errorf("exploded = %d, want 8", g.exploded)
		}
	})

	t.Run("confirm on number chords", func(t *testing.T) {
		g := newTestGame(t, 8)
		g.Reveal(1, 1)
		g.ToggleFlag(2, 2)
		g.Reveal(1, 1)
		if !g.won {
			t.Errorf("reveal on a satisfied number should chord")
		}
	})
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 8)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Revealed() != 0 {
		t.Error("input while paused should be ignored")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionConfirm))
	if g.Revealed() == 0 {
		t.Error("reveal after unpause should work")
	}
}

func TestClock(t *testing.T) {
	g := newTestGame(t, 8)

	for range 60 {
		g.Step(frame())
	}
	if g.Elapsed() != 2 {
		t.Errorf("Elapsed() = %d, want 2", g.Elapsed())
	}

	g.settings.Scoring.TimeLimitSecs = 1
	if g.Elapsed() != 1 {
		t.Errorf("Elapsed() = %d, want capped at 1", g.Elapsed())
	}
}

func TestClockWaitsForFirstReveal(t *testing.T) {
	g := NewCustom(config.Preset{Name: "test", Height: 3, Width: 3, Mines: 1}, config.DefaultMinesweeperConfig())
	g.Reset(testConfig(1))

	for range 90 {
		g.Step(frame())
	}
	if g.Elapsed() != 0 {
		t.Errorf("Elapsed() = %d before first reveal, want 0", g.Elapsed())
	}
}

func TestDisplayRunes(t *testing.T) {
	tests := []struct {
		d    Display
		want rune
	}{
		{Display{Kind: KindCovered}, '.'},
		{Display{Kind: KindFlagged}, 'F'},
		{Display{Kind: KindMine}, '*'},
		{Display{Kind: KindExploded}, '#'},
		{Display{Kind: KindWrongFlag}, 'X'},
		{Display{Kind: KindCount, Count: 0}, ' '},
		{Display{Kind: KindCount, Count: 3}, '3'},
		{Display{Kind: KindCount, Count: 8}, '8'},
	}
	for _, tt := range tests {
		if got := tt.d.Rune(); got != tt.want {
			t.Errorf("%+v.Rune() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 8)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Minesweeper (Test)", "Mines: 001", "Time: 000", "[.]"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Reveal(1, 1)
	g.Render(screen)
	if !strings.Contains(screen.String(), "[1]") {
		t.Errorf("render missing revealed cursor tile:\n%s", screen.String())
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, 8)
	g.Reveal(1, 1)

	g.Resize(20, 4)
	screen := core.NewScreen(20, 4)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}
	if !g.State().Paused {
		t.Error("too-small window should pause the game")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("game should resume after growing the window")
	}
	if g.Revealed() != 1 {
		t.Errorf("Revealed() = %d after resize, want 1", g.Revealed())
	}
}

func TestDescription(t *testing.T) {
	g := New("expert")
	if got := g.Description(); got != "30x16, 99 mines" {
		t.Errorf("Description() = %q", got)
	}
}
