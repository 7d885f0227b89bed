package tui

import (
	"strconv"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

// Board view layout. Everything is fixed size so mouse clicks can be mapped
// back to cells without consulting the renderer.
const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)

	gridW = game.BoardSize*cellWidth + 1  // +1 for right border
	gridH = game.BoardSize*cellHeight + 1 // +1 for bottom border

	boardViewW = 26
	boardViewH = gridY + gridH

	gridX = (boardViewW - gridW) / 2
	gridY = 4 // Title, status, substatus, spacer
)

// gridRect is the screen area covered by the grid, borders included.
var gridRect = core.NewRect(gridX, gridY, gridW, gridH)

// cellAt maps a position in the board view to a cell index.
// Clicks on grid lines or outside the grid do not hit a cell.
func cellAt(x, y int) (int, bool) {
	if !gridRect.Contains(x, y) {
		return 0, false
	}
	dx, dy := x-gridX, y-gridY
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return 0, false
	}
	col, row := dx/cellWidth, dy/cellHeight
	if col >= game.BoardSize || row >= game.BoardSize {
		return 0, false
	}
	return game.Index(row, col), true
}

// cellCenter returns the screen position where a cell's mark is drawn.
func cellCenter(index int) (int, int) {
	row, col := game.RowCol(index)
	return gridX + col*cellWidth + cellWidth/2, gridY + row*cellHeight + cellHeight/2
}

// drawBoard renders the snapshot into dst.
// The cursor is bracketed only while the board has focus.
func drawBoard(dst *core.Screen, s game.Snapshot, cursor int, focused bool) {
	dst.Clear()

	dst.DrawTextCentered(0, "TIC-TAC-TOE", core.ColorTitle)

	statusColor := core.ColorDefault
	switch {
	case s.Win != nil:
		statusColor = core.ColorWin
	case !s.Locked:
		statusColor = markColor(s.NextPlayer)
	}
	dst.DrawTextCentered(1, s.Status, statusColor)
	dst.DrawTextCentered(2, s.Substatus, core.ColorDim)

	drawGrid(dst)

	for i, c := range s.Board {
		x, y := cellCenter(i)
		switch {
		case c != game.Empty:
			color := markColor(c)
			if s.Win != nil && s.Win.Contains(i) {
				color = core.ColorWin
			}
			dst.SetColor(x, y, []rune(c.String())[0], color)
		case !s.Locked:
			// Cell number hints the digit key for that cell
			dst.SetColor(x, y, rune('1'+i), core.ColorDim)
		}
	}

	if focused && !s.Locked && game.ValidIndex(cursor) {
		x, y := cellCenter(cursor)
		dst.SetColor(x-1, y, '[', core.ColorCursor)
		dst.SetColor(x+1, y, ']', core.ColorCursor)
	}
}

// drawGrid draws the 3x3 grid lines.
func drawGrid(dst *core.Screen) {
	n := game.BoardSize
	for gy := 0; gy < n+1; gy++ {
		for gx := 0; gx < n+1; gx++ {
			px := gridX + gx*cellWidth
			py := gridY + gy*cellHeight

			var corner rune
			switch {
			case gy == 0 && gx == 0:
				corner = '┌'
			case gy == 0 && gx == n:
				corner = '┐'
			case gy == n && gx == 0:
				corner = '└'
			case gy == n && gx == n:
				corner = '┘'
			case gy == 0:
				corner = '┬'
			case gy == n:
				corner = '┴'
			case gx == 0:
				corner = '├'
			case gx == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGrid)

			if gx < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGrid)
				}
			}
			if gy < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}
}

func markColor(c game.Cell) core.Color {
	switch c {
	case game.PlayerX:
		return core.ColorMarkX
	case game.PlayerO:
		return core.ColorMarkO
	default:
		return core.ColorDefault
	}
}

// moveLabel names a history row for the move list.
func moveLabel(g *game.Game, step int) string {
	if step == 0 {
		return "Game start"
	}
	if mv, ok := g.MoveAt(step); ok {
		return mv.Label()
	}
	return "#" + strconv.Itoa(step) + " cleared"
}
