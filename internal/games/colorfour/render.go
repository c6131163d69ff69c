package colorfour

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/colorfour/internal/core"
	"github.com/vovakirdan/colorfour/internal/engine"
)

const (
	cellWidth  = 4 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 4
	footHeight = 5
	minWidth   = 42

	discGlyph = '●'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH+1)

	if g.sparkle != nil {
		g.sparkle.Render(dst)
	}
}

// boardSize returns the board's drawn width and height including borders.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Board.Cols*cellWidth + 1, g.cfg.Board.Rows*cellHeight + 1
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	minW := max(boardW, minWidth)
	minH := hudHeight + boardH + footHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// renderTooSmall shows a boxed "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	const hint = "Please resize terminal"
	y := g.screenH / 2
	w := len(hint) + 4
	dst.DrawBox(core.NewRect((g.screenW-w)/2, y-1, w, 4))
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, hint)
}

// renderHUD draws title, level, score, timer and the roster.
func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	dst.DrawTextCenteredColored(0, "C O L O R   F O U R", core.ColorBrightWhite)

	stats := fmt.Sprintf("Level: %d/%d   Score: %d   Time Left: %2ds",
		e.Level(), g.cfg.Round.MaxLevel, e.Score(), e.TimeLeft())
	timeColor := core.ColorDefault
	if e.Active() && e.TimeLeft() <= 5 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextCenteredColored(1, stats, timeColor)

	// Turn indicator followed by the roster in play order
	roster := e.Roster()
	label := "Turn: "
	width := len(label) + 2 + len(string(e.CurrentColor())) + 3 + len(roster)*2
	x := (g.screenW - width) / 2

	dst.DrawText(x, 2, label)
	x += len(label)
	current := e.CurrentColor()
	dst.SetColored(x, 2, discGlyph, discColor(current))
	x += 2
	name := strings.ToUpper(string(current))
	dst.DrawTextColored(x, 2, name, discColor(current))
	x += len(name) + 3

	for i, c := range roster {
		glyph := '○'
		if i == e.Turn() {
			glyph = discGlyph
		}
		dst.SetColored(x+i*2, 2, glyph, discColor(c))
	}
}

// renderBoard draws the grid, the discs and the cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	board := g.engine.Board()

	for y := 0; y < rows+1; y++ {
		for x := 0; x < cols+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, gridCorner(x, y, cols, rows), core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx := boardX + c*cellWidth + cellWidth/2
			cy := boardY + r*cellHeight + 1
			if color := board.At(r, c); color != engine.NoColor {
				dst.SetColored(cx, cy, discGlyph, discColor(color))
			}
		}
	}

	if g.engine.Active() {
		cx := boardX + g.cursorCol*cellWidth + cellWidth/2
		cy := boardY + g.cursorRow*cellHeight + 1
		cursorColor := discColor(g.engine.CurrentColor())
		dst.SetColored(cx-1, cy, '[', cursorColor)
		dst.SetColored(cx+1, cy, ']', cursorColor)
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// renderFooter draws the status message and control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCenteredColored(y, g.message, core.ColorBrightYellow)
	}

	sound := "M: Mute"
	if g.muted {
		sound = "M: Unmute"
	}
	dst.DrawTextCenteredColored(y+2, "Arrows/WASD: Move  Space: Drop  "+sound, core.ColorGray)

	reset := "R: Reset Game"
	if g.engine.Finished() {
		reset = "R: Play Again"
	}
	dst.DrawTextCenteredColored(y+3, "L: Reset Level  "+reset+"  Q: Quit", core.ColorGray)
}

// discColor maps an engine color to a terminal color.
func discColor(c engine.Color) core.Color {
	return core.ColorByName(string(c))
}
