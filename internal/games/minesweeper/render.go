package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

const (
	hudHeight  = 2  // title and counters above the board
	hintHeight = 1  // status line below the board
	hudWidth   = 22 // "Mines: 000" and "Time: 000" side by side
)

// frameWidth returns the width of the framed grid. Each tile takes two
// columns so the cursor brackets fit between tiles.
func frameWidth(width int) int {
	return width*2 + 3
}

// layoutSize returns the screen size needed for a height x width board.
func layoutSize(height, width int) (w, h int) {
	return max(frameWidth(width), hudWidth), height + 2 + hudHeight + hintHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := layoutSize(g.preset.Height, g.preset.Width)
	area := core.CenteredRect(dst.Bounds(), w, h)
	fw := frameWidth(g.preset.Width)
	frame := core.Rect{X: area.X + (w-fw)/2, Y: area.Y + hudHeight, W: fw, H: g.preset.Height + 2}

	g.renderHUD(dst, area)
	g.renderBoard(dst, frame)
	g.renderStatus(dst, area.X, frame.Bottom(), w)

	if g.paused {
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	w, h := layoutSize(g.preset.Height, g.preset.Width)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws the title, remaining mines and the clock.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	title := g.Title()
	dst.DrawTextColor(area.X+(area.W-len(title))/2, area.Y, title, core.ColorBrightWhite)

	dst.DrawTextColor(area.X, area.Y+1, fmt.Sprintf("Mines: %03d", g.MinesLeft()), core.ColorBrightRed)

	clock := fmt.Sprintf("Time: %03d", g.Elapsed())
	dst.DrawTextColor(area.Right()-len(clock), area.Y+1, clock, core.ColorBrightCyan)
}

// renderBoard draws the framed grid and the cursor.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	border := core.ColorGray
	switch {
	case g.won:
		border = core.ColorBrightGreen
	case g.gameOver:
		border = core.ColorRed
	}
	dst.DrawBoxColor(frame, border)

	for row := range g.preset.Height {
		for col := range g.preset.Width {
			d := g.DisplayAt(row, col)
			x, y := tileOrigin(frame, row, col)
			dst.SetColor(x, y, d.Rune(), d.Color())
		}
	}

	if !g.gameOver {
		x, y := tileOrigin(frame, g.cursorRow, g.cursorCol)
		dst.SetColor(x-1, y, '[', core.ColorBrightYellow)
		dst.SetColor(x+1, y, ']', core.ColorBrightYellow)
	}
}

// tileOrigin returns the screen position of a tile inside the frame.
func tileOrigin(frame core.Rect, row, col int) (x, y int) {
	return frame.X + 2 + col*2, frame.Y + 1 + row
}

// renderStatus draws the outcome or the control hints below the board.
func (g *Game) renderStatus(dst *core.Screen, x, y, w int) {
	var msg string
	color := core.ColorGray
	switch {
	case g.won:
		msg = fmt.Sprintf("CLEAR! %ds  R: restart", g.Elapsed())
		color = core.ColorBrightGreen
	case g.gameOver:
		msg = "BOOM!  R: restart"
		color = core.ColorBrightRed
	case !g.board.Initialized():
		msg = "Reveal any tile"
	default:
		msg = "F: flag  C: chord"
	}
	if len(msg) > w {
		msg = msg[:w]
	}
	dst.DrawTextColor(x+(w-len(msg))/2, y, msg, color)
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, over core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(over, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL/WASD: Move | Space/Enter: Reveal | F: Flag | C: Chord | P: Pause | R: Restart | Q: Quit"
}
