package minesweeper

import (
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Kind is how a tile is presented to the player.
type Kind uint8

const (
	KindCovered   Kind = iota
	KindFlagged        // covered, marked by the player
	KindMine           // revealed after a loss
	KindExploded       // the mine that ended the game
	KindWrongFlag      // flag on a safe tile, shown after a loss
	KindCount          // uncovered safe tile; Display.Count holds its number
)

// Display is the presentation of a single tile.
type Display struct {
	Kind  Kind
	Count int
}

// DisplayAt combines the engine's view of the tile at (row, col) with the
// player's flags and the outcome of the game.
func (g *Game) DisplayAt(row, col int) Display {
	idx, err := g.board.Index(row, col)
	if err != nil {
		return Display{Kind: KindCovered}
	}
	ds, _ := g.board.TileDisplay(idx)
	lost := g.gameOver && !g.won

	if !ds.Covered {
		switch {
		case ds.Value.Mine && idx == g.exploded:
			return Display{Kind: KindExploded}
		case ds.Value.Mine:
			return Display{Kind: KindMine}
		default:
			return Display{Kind: KindCount, Count: ds.Value.Count}
		}
	}

	t, _ := g.board.Tile(idx)
	switch {
	case g.flags[idx] && lost && !t.IsMine:
		return Display{Kind: KindWrongFlag}
	case g.flags[idx]:
		return Display{Kind: KindFlagged}
	case lost && t.IsMine:
		return Display{Kind: KindMine}
	}
	return Display{Kind: KindCovered}
}

// Rune returns the character drawn for the tile.
func (d Display) Rune() rune {
	switch d.Kind {
	case KindFlagged:
		return 'F'
	case KindMine:
		return '*'
	case KindExploded:
		return '#'
	case KindWrongFlag:
		return 'X'
	case KindCount:
		if d.Count == 0 {
			return ' '
		}
		return rune('0' + d.Count)
	}
	return '.'
}

// countColors follows the classic palette, one color per number.
var countColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorNavy,
	core.ColorMaroon,
	core.ColorTeal,
	core.ColorWhite,
	core.ColorGray,
}

// Color returns the color the tile is drawn in.
func (d Display) Color() core.Color {
	switch d.Kind {
	case KindFlagged:
		return core.ColorBrightYellow
	case KindMine:
		return core.ColorRed
	case KindExploded:
		return core.ColorBrightRed
	case KindWrongFlag:
		return core.ColorMagenta
	case KindCount:
		if d.Count >= 0 && d.Count < len(countColors) {
			return countColors[d.Count]
		}
	}
	return core.ColorGray
}
