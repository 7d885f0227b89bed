package game

import "fmt"

// MoveInfo describes the mark placed to reach a history snapshot.
type MoveInfo struct {
	Step   int
	Player Cell
	Index  int
}

// Label formats the move for a move list, e.g. "#3 X r2c1" (1-based row and column).
func (m MoveInfo) Label() string {
	row, col := RowCol(m.Index)
	return fmt.Sprintf("#%d %s r%dc%d", m.Step, m.Player, row+1, col+1)
}

// MoveAt returns the move that produced snapshot step. Step 0, a snapshot
// cleared by ResetCurrent and out-of-range steps have no move.
func (g *Game) MoveAt(step int) (MoveInfo, bool) {
	if step <= 0 || step >= len(g.history) {
		return MoveInfo{}, false
	}
	prev, cur := g.history[step-1], g.history[step]
	found := MoveInfo{Step: step, Index: -1}
	for i := range cur {
		if cur[i] == prev[i] {
			continue
		}
		if prev[i] != Empty || found.Index >= 0 {
			return MoveInfo{}, false
		}
		found.Index = i
		found.Player = cur[i]
	}
	if found.Index < 0 {
		return MoveInfo{}, false
	}
	return found, true
}

// Snapshot is a read-only view of the game for renderers.
type Snapshot struct {
	Board      Board
	Step       int
	HistoryLen int
	NextPlayer Cell
	Win        *WinResult
	Draw       bool
	Locked     bool
	CanReset   bool
	Status     string
	Substatus  string
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:      g.Current(),
		Step:       g.step,
		HistoryLen: len(g.history),
		NextPlayer: g.NextPlayer(),
		Draw:       g.IsDraw(),
		Locked:     g.IsLocked(),
		CanReset:   g.CanReset(),
		Status:     g.Status(),
		Substatus:  g.Substatus(),
	}
	if win, ok := g.Winner(); ok {
		s.Win = &win
	}
	return s
}
