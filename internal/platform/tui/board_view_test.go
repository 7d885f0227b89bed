package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

func TestCellAtCenters(t *testing.T) {
	for i := 0; i < game.CellCount; i++ {
		x, y := cellCenter(i)
		got, ok := cellAt(x, y)
		if !ok || got != i {
			t.Errorf("cellAt(cellCenter(%d)) = %d, %v", i, got, ok)
		}
	}
}

func TestCellAtMisses(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"above grid", gridX + 2, 0},
		{"left of grid", 0, gridY + 1},
		{"top border", gridX + 2, gridY},
		{"vertical line", gridX + cellWidth, gridY + 1},
		{"horizontal line", gridX + 2, gridY + cellHeight},
		{"bottom right corner", gridX + gridW - 1, gridY + gridH - 1},
		{"below grid", gridX + 2, gridY + gridH},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if i, ok := cellAt(tt.x, tt.y); ok {
				t.Errorf("cellAt(%d, %d) hit cell %d", tt.x, tt.y, i)
			}
		})
	}
}

func TestGridFitsView(t *testing.T) {
	if gridRect.Right() > boardViewW || gridRect.Bottom() > boardViewH {
		t.Errorf("grid %+v does not fit %dx%d view", gridRect, boardViewW, boardViewH)
	}
}

func TestDrawBoardInProgress(t *testing.T) {
	g := game.New()
	g.ApplyMove(4)

	screen := core.NewScreen(boardViewW, boardViewH)
	drawBoard(screen, g.Snapshot(), 0, true)

	if !strings.Contains(screen.Row(1), "Next player: O") {
		t.Errorf("status row = %q", screen.Row(1))
	}
	if !strings.Contains(screen.Row(2), "Move #1") {
		t.Errorf("substatus row = %q", screen.Row(2))
	}

	x, y := cellCenter(4)
	if c := screen.GetCell(x, y); c.Rune != 'X' || c.Color != core.ColorMarkX {
		t.Errorf("center cell = %+v", c)
	}

	// Empty cells show their digit key.
	x, y = cellCenter(8)
	if r := screen.Get(x, y); r != '9' {
		t.Errorf("empty cell hint = %q, want '9'", r)
	}

	x, y = cellCenter(0)
	if screen.Get(x-1, y) != '[' || screen.Get(x+1, y) != ']' {
		t.Error("cursor brackets missing around cell 0")
	}
}

func TestDrawBoardUnfocusedHidesCursor(t *testing.T) {
	screen := core.NewScreen(boardViewW, boardViewH)
	drawBoard(screen, game.New().Snapshot(), 0, false)

	x, y := cellCenter(0)
	if screen.Get(x-1, y) == '[' {
		t.Error("cursor drawn while the board is not focused")
	}
}

func TestDrawBoardWin(t *testing.T) {
	g := game.New()
	for _, i := range []int{0, 3, 1, 4, 2} {
		g.ApplyMove(i)
	}

	screen := core.NewScreen(boardViewW, boardViewH)
	drawBoard(screen, g.Snapshot(), 8, true)

	if !strings.Contains(screen.Row(1), "Winner: X") {
		t.Errorf("status row = %q", screen.Row(1))
	}
	for _, i := range []int{0, 1, 2} {
		x, y := cellCenter(i)
		if c := screen.GetCell(x, y); c.Color != core.ColorWin {
			t.Errorf("winning cell %d color = %s", i, c.Color)
		}
	}
	x, y := cellCenter(3)
	if c := screen.GetCell(x, y); c.Color != core.ColorMarkO {
		t.Errorf("losing mark color = %s", c.Color)
	}

	// A locked board hides hints and the cursor.
	x, y = cellCenter(8)
	if screen.Get(x, y) != ' ' || screen.Get(x-1, y) == '[' {
		t.Error("locked board still shows hint or cursor")
	}
}

func TestMoveLabel(t *testing.T) {
	g := game.New()
	g.ApplyMove(4)
	g.ApplyMove(0)
	g.ResetCurrent()

	tests := []struct {
		step int
		want string
	}{
		{0, "Game start"},
		{1, "#1 X r2c2"},
		{2, "#2 cleared"},
	}
	for _, tt := range tests {
		if got := moveLabel(g, tt.step); got != tt.want {
			t.Errorf("moveLabel(%d) = %q, want %q", tt.step, got, tt.want)
		}
	}
}
