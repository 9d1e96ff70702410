// Package board implements the Minesweeper board engine: a flat row-major
// grid of tiles, random mine placement around a safe first tile, adjacency
// counts and the covered/uncovered reveal state machine.
//
// The engine is pure and synchronous. It performs no I/O and holds no locks;
// hosts that drive it from several goroutines must serialize mutating calls.
package board

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrInvalidDimensions  = errors.New("board: invalid dimensions")
	ErrInvalidMineCount   = errors.New("board: invalid mine count")
	ErrIndexOutOfBounds   = errors.New("board: index out of bounds")
	ErrAlreadyInitialized = errors.New("board: already initialized")
	ErrDuplicateMine      = errors.New("board: duplicate mine index")
	ErrNotInitialized     = errors.New("board: mines not placed")
)

// RandomSource produces uniform integers in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Tile is one cell of the grid.
type Tile struct {
	IsMine        bool
	IsCovered     bool
	AdjacentCount int // mines among the up to 8 neighbors
}

// Value projects the tile to what a reveal shows.
func (t Tile) Value() TileValue {
	if t.IsMine {
		return Mine()
	}
	return Clear(t.AdjacentCount)
}

// Board owns all tile storage. Collaborators address tiles by index
// (row*width + col) and never hold references into the grid.
type Board struct {
	width       int
	height      int
	tiles       []Tile
	rng         RandomSource
	initialized bool
	mines       int
}

// Option configures a Board at construction.
type Option func(*Board)

// WithRandomSource sets the source used by Initialize.
func WithRandomSource(r RandomSource) Option {
	return func(b *Board) {
		b.rng = r
	}
}

// New allocates a height x width board with every tile covered, mine-free
// and with a zero count. Zero-area boards are rejected.
func New(height, width int, opts ...Option) (*Board, error) {
	if height <= 0 || width <= 0 || height > math.MaxInt/width {
		return nil, ErrInvalidDimensions
	}

	b := &Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, height*width),
	}
	for i := range b.tiles {
		b.tiles[i].IsCovered = true
	}

	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Initialized reports whether mines have been placed.
func (b *Board) Initialized() bool {
	return b.initialized
}

// MineCount returns the number of placed mines.
func (b *Board) MineCount() int {
	return b.mines
}

// Index converts grid coordinates to a tile index.
func (b *Board) Index(row, col int) (int, error) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0, ErrIndexOutOfBounds
	}
	return row*b.width + col, nil
}

// Coords converts a tile index to grid coordinates.
// The index is not validated.
func (b *Board) Coords(index int) (row, col int) {
	return index / b.width, index % b.width
}

func (b *Board) inBounds(index int) bool {
	return index >= 0 && index < len(b.tiles)
}

// Neighbors returns the indices of the up to 8 tiles around index.
// Edge and corner tiles have fewer neighbors; rows never wrap.
func (b *Board) Neighbors(index int) []int {
	if !b.inBounds(index) {
		return nil
	}
	return b.appendNeighbors(make([]int, 0, 8), index)
}

func (b *Board) appendNeighbors(dst []int, index int) []int {
	row, col := b.Coords(index)
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= b.height {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= b.width {
				continue
			}
			dst = append(dst, r*b.width+c)
		}
	}
	return dst
}

// Tile returns a copy of the tile at index.
func (b *Board) Tile(index int) (Tile, error) {
	if !b.inBounds(index) {
		return Tile{}, ErrIndexOutOfBounds
	}
	return b.tiles[index], nil
}

// Mines returns the indices of all mines in ascending order.
func (b *Board) Mines() []int {
	mines := make([]int, 0, b.mines)
	for i, t := range b.tiles {
		if t.IsMine {
			mines = append(mines, i)
		}
	}
	return mines
}

// Uncovered returns the number of uncovered tiles.
func (b *Board) Uncovered() int {
	n := 0
	for _, t := range b.tiles {
		if !t.IsCovered {
			n++
		}
	}
	return n
}

// CoveredSafe returns the number of non-mine tiles still covered.
func (b *Board) CoveredSafe() int {
	n := 0
	for _, t := range b.tiles {
		if t.IsCovered && !t.IsMine {
			n++
		}
	}
	return n
}

// IsWon reports whether every non-mine tile is uncovered.
// It is recomputed from the tiles on every call. A board whose mines have
// not been placed yet is never won.
func (b *Board) IsWon() bool {
	if !b.initialized {
		return false
	}
	return b.CoveredSafe() == 0
}

// String dumps the full layout, ignoring cover state: M for mines, the
// count for numbered tiles and a space for zero.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.tiles) * 2)

	for i, t := range b.tiles {
		switch {
		case t.IsMine:
			sb.WriteByte('M')
		case t.AdjacentCount == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteByte(byte('0' + t.AdjacentCount))
		}
		if (i+1)%b.width == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
