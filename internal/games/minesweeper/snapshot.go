package minesweeper

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady       GameStateType = "ready" // no tile revealed yet
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Preset    string
	Height    int
	Width     int
	Mines     int
	CursorRow int
	CursorCol int
	Layout    string // board.String(), empty before the first reveal
	Revealed  int
	Flags     int
	Exploded  int
	Elapsed   int
	Score     int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateLost
	case g.paused:
		state = StatePaused
	case !g.board.Initialized():
		state = StateReady
	}

	var layout string
	if g.board.Initialized() {
		layout = g.board.String()
	}

	return Snapshot{
		Tick:      g.tick,
		Preset:    g.preset.Name,
		Height:    g.preset.Height,
		Width:     g.preset.Width,
		Mines:     g.preset.Mines,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Layout:    layout,
		Revealed:  g.Revealed(),
		Flags:     g.FlagCount(),
		Exploded:  g.exploded,
		Elapsed:   g.Elapsed(),
		Score:     g.Score(),
		State:     state,
	}
}
