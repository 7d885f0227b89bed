package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

var evalCmd = &cobra.Command{
	Use:   "eval <board>",
	Short: "Evaluate a board",
	Long: `Print the winner and winning line, a draw, or "in progress" for a board.

The board is 9 characters, row by row: X, O, and '.' (or '-', '_', space)
for an empty cell.

Examples:
  tictactoe eval XXXOO....
  tictactoe eval XOXXOOOXX
  tictactoe eval "X.O.X...."`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func runEval(_ *cobra.Command, args []string) error {
	b, err := game.ParseBoard(args[0])
	if err != nil {
		return err
	}
	printEval(os.Stdout, b)
	return nil
}

// printEval writes the board grid followed by its outcome.
func printEval(w io.Writer, b game.Board) {
	s := b.String()
	for row := 0; row < game.BoardSize; row++ {
		fmt.Fprintf(w, "  %s\n", s[row*game.BoardSize:(row+1)*game.BoardSize])
	}
	fmt.Fprintln(w)

	if win, ok := game.Evaluate(b); ok {
		fmt.Fprintf(w, "Winner: %s\n", win.Player)
		fmt.Fprintf(w, "Line: %s\n", formatLine(win.Line[:]))
		return
	}
	if game.IsDraw(b) {
		fmt.Fprintln(w, "Draw")
		return
	}
	next := game.PlayerX
	if x, o := countMarks(b); x > o {
		next = game.PlayerO
	}
	fmt.Fprintf(w, "In progress, %d of %d cells filled (next: %s)\n", b.Filled(), game.CellCount, next)
}

func countMarks(b game.Board) (x, o int) {
	for _, c := range b {
		switch c {
		case game.PlayerX:
			x++
		case game.PlayerO:
			o++
		}
	}
	return x, o
}
