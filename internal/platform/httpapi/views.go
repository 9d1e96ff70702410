package httpapi

import "github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"

// CreateRequest starts a game from a named preset or explicit dimensions.
// Preset wins when both are given.
type CreateRequest struct {
	Preset string `json:"preset,omitempty"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
	Mines  int    `json:"mines,omitempty"`
	Seed   int64  `json:"seed,omitempty"`
}

// UncoverRequest names the tile to reveal.
type UncoverRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameView is the public state of a game. Each row renders one character
// per tile: '.' covered, '0'-'8' revealed counts, '*' a mine and '#' the
// mine that ended the game. Mines stay hidden until the game is lost.
type GameView struct {
	ID       string   `json:"id"`
	Preset   string   `json:"preset,omitempty"`
	Height   int      `json:"height"`
	Width    int      `json:"width"`
	Mines    int      `json:"mines"`
	State    string   `json:"state"`
	Revealed int      `json:"revealed"`
	Elapsed  int      `json:"elapsed"`
	Rows     []string `json:"rows"`
}

// UncoverResult is the outcome of one reveal. Revealed lists every tile
// index this request uncovered, starting with the requested one; it is
// empty when the tile was already uncovered.
type UncoverResult struct {
	Value    board.TileValue `json:"value"`
	Revealed []int           `json:"revealed"`
	Game     GameView        `json:"game"`
}

// Analysis describes a finished board.
type Analysis struct {
	Openings int   `json:"openings"`
	BBBV     int   `json:"bbbv"`
	Mines    []int `json:"mines"`
}

type errorResponse struct {
	Error string `json:"error"`
}
