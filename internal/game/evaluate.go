package game

// Line is one of the eight index triples that wins the game.
type Line [3]int

// Lines lists the winning lines in evaluation order: rows, columns, diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinResult names the winner and the line that won.
type WinResult struct {
	Player Cell
	Line   Line
}

// Contains reports whether the winning line covers index.
func (w WinResult) Contains(index int) bool {
	for _, i := range w.Line {
		if i == index {
			return true
		}
	}
	return false
}

// Evaluate returns the first line, in Lines order, whose three cells hold the
// same mark. ok is false when no line is complete.
func Evaluate(b Board) (result WinResult, ok bool) {
	for _, ln := range Lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return WinResult{Player: a, Line: ln}, true
		}
	}
	return WinResult{}, false
}

// IsDraw reports a full board with no winning line.
func IsDraw(b Board) bool {
	if _, won := Evaluate(b); won {
		return false
	}
	return b.IsFull()
}

// IsLocked reports whether the board accepts no more moves.
func IsLocked(b Board) bool {
	if _, won := Evaluate(b); won {
		return true
	}
	return b.IsFull()
}
