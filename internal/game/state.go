package game

import (
	"fmt"
	"strings"
)

// Game holds the history of board snapshots, the index of the snapshot on
// display and whose turn it is.
//
// history[0] is always the empty board and 0 <= step < len(history).
// Invalid operations are no-ops that report false.
type Game struct {
	history []Board
	step    int
	xIsNext bool
}

// New returns a game at the empty board with X to move.
func New() *Game {
	g := &Game{}
	g.NewGame()
	return g
}

// NewGame discards all history and starts again from the empty board.
func (g *Game) NewGame() {
	g.history = []Board{{}}
	g.step = 0
	g.xIsNext = true
}

// ApplyMove places the current player's mark at index on the displayed board.
// Any snapshots after the current step are dropped first, so moving after a
// jump back starts a new branch. Returns false, leaving the game unchanged,
// when the board is locked, the index is off the board or the cell is taken.
func (g *Game) ApplyMove(index int) bool {
	current := g.Current()
	if !ValidIndex(index) || current[index] != Empty || IsLocked(current) {
		return false
	}

	next := current
	next[index] = g.NextPlayer()

	g.history = append(g.history[:g.step+1:g.step+1], next)
	g.step = len(g.history) - 1
	g.xIsNext = !g.xIsNext
	return true
}

// JumpTo displays the snapshot at step. The player to move is derived from
// the parity of step. Out-of-range steps are ignored.
func (g *Game) JumpTo(step int) bool {
	if step < 0 || step >= len(g.history) {
		return false
	}
	g.step = step
	g.xIsNext = step%2 == 0
	return true
}

// ResetCurrent clears the displayed board while keeping every snapshot before
// it. Snapshots after the current step belong to the board being cleared and
// are dropped with it. X moves next.
func (g *Game) ResetCurrent() {
	g.history = append(g.history[:g.step:g.step], Board{})
	g.xIsNext = true
}

// Current returns the displayed board.
func (g *Game) Current() Board {
	return g.history[g.step]
}

// Step returns the index of the displayed snapshot.
func (g *Game) Step() int {
	return g.step
}

// Len returns the number of snapshots in the history.
func (g *Game) Len() int {
	return len(g.history)
}

// At returns the snapshot at step.
func (g *Game) At(step int) (Board, bool) {
	if step < 0 || step >= len(g.history) {
		return Board{}, false
	}
	return g.history[step], true
}

// History returns a copy of every snapshot.
func (g *Game) History() []Board {
	out := make([]Board, len(g.history))
	copy(out, g.history)
	return out
}

// XIsNext reports whether X moves next.
func (g *Game) XIsNext() bool {
	return g.xIsNext
}

// NextPlayer returns the mark placed by the next move.
func (g *Game) NextPlayer() Cell {
	if g.xIsNext {
		return PlayerX
	}
	return PlayerO
}

// Winner evaluates the displayed board.
func (g *Game) Winner() (WinResult, bool) {
	return Evaluate(g.Current())
}

// IsDraw reports whether the displayed board is a draw.
func (g *Game) IsDraw() bool {
	return IsDraw(g.Current())
}

// IsLocked reports whether the displayed board rejects moves.
func (g *Game) IsLocked() bool {
	return IsLocked(g.Current())
}

// CanReset reports whether a reset would change anything visible.
func (g *Game) CanReset() bool {
	return g.step > 0 || !g.Current().IsEmpty()
}

// Status is the headline for the displayed board.
func (g *Game) Status() string {
	if win, ok := g.Winner(); ok {
		return "Winner: " + win.Player.String()
	}
	if g.IsDraw() {
		return "Draw"
	}
	return "Next player: " + g.NextPlayer().String()
}

// Substatus names the winning cells (1-based), reports a full board, or
// gives the move number on display.
func (g *Game) Substatus() string {
	if win, ok := g.Winner(); ok {
		cells := make([]string, len(win.Line))
		for i, idx := range win.Line {
			cells[i] = fmt.Sprint(idx + 1)
		}
		return "Line: cells " + strings.Join(cells, ", ")
	}
	if g.IsDraw() {
		return "All cells filled"
	}
	return fmt.Sprintf("Move #%d", g.step)
}
