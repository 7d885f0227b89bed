// Package game contains the pure tic-tac-toe logic: the board, the win
// evaluator and the history-keeping state machine. It has no dependency on
// the terminal UI so it can be driven and tested directly.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// BoardSize is the side length of the grid.
const BoardSize = 3

// CellCount is the number of cells on the board.
const CellCount = BoardSize * BoardSize

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

// String returns the mark for the cell ("X", "O" or ".").
func (c Cell) String() string {
	switch c {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Board is a 3x3 grid stored row-major: index = row*3 + col.
type Board [CellCount]Cell

// ErrInvalidBoard is returned when a board string cannot be parsed.
var ErrInvalidBoard = errors.New("invalid board")

// ParseBoard reads a board from its 9-character text form.
// X and O (any case) are marks; '.', '-', '_' and ' ' are empty cells.
func ParseBoard(s string) (Board, error) {
	var b Board
	runes := []rune(s)
	if len(runes) != CellCount {
		return b, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, CellCount, len(runes))
	}
	for i, r := range runes {
		switch r {
		case 'X', 'x':
			b[i] = PlayerX
		case 'O', 'o':
			b[i] = PlayerO
		case '.', '-', '_', ' ':
			b[i] = Empty
		default:
			return b, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidBoard, r, i+1)
		}
	}
	return b, nil
}

// String returns the 9-character text form of the board.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for _, c := range b {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// IsEmpty reports whether no cell has been played.
func (b Board) IsEmpty() bool {
	for _, c := range b {
		if c != Empty {
			return false
		}
	}
	return true
}

// IsFull reports whether every cell has been played.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of non-empty cells.
func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// RowCol converts a cell index to its row and column.
func RowCol(index int) (row, col int) {
	return index / BoardSize, index % BoardSize
}

// Index converts a row and column to a cell index.
func Index(row, col int) int {
	return row*BoardSize + col
}

// ValidIndex reports whether index addresses a cell.
func ValidIndex(index int) bool {
	return index >= 0 && index < CellCount
}
