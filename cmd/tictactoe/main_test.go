package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

func TestPrintEval(t *testing.T) {
	tests := []struct {
		board string
		want  []string
	}{
		{"XXXOO....", []string{"  XXX\n", "Winner: X", "Line: 1,2,3"}},
		{"XOXXOOOXX", []string{"Draw"}},
		{"X...O....", []string{"In progress, 2 of 9 cells filled (next: X)"}},
		{"X........", []string{"(next: O)"}},
	}

	for _, tt := range tests {
		t.Run(tt.board, func(t *testing.T) {
			b, err := game.ParseBoard(tt.board)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			printEval(&buf, b)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestPrintStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, storage.Tally{}, nil)

	if !strings.Contains(buf.String(), "No games recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf,
		storage.Tally{XWins: 1, Draws: 1},
		[]storage.Result{
			{Winner: game.PlayerX, Line: []int{2, 4, 6}, Moves: 5, FinishedAt: time.Now()},
			{Winner: game.Empty, Moves: 9, FinishedAt: time.Now()},
		},
	)

	out := buf.String()
	for _, want := range []string{"X wins: 1", "Draws: 1", "Total: 2", "3,5,7", "draw"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatLine(t *testing.T) {
	if got := formatLine(nil); got != "-" {
		t.Errorf("formatLine(nil) = %q", got)
	}
	if got := formatLine([]int{0, 4, 8}); got != "1,5,9" {
		t.Errorf("formatLine = %q", got)
	}
}
