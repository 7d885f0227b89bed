package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game locally",
	Long: `Start a hot-seat game: X moves first, then players alternate.

Controls:
  Arrows/hjkl   - Move cursor
  Enter/Space   - Place mark (or jump, in the move list)
  1-9           - Place mark at cell (row by row)
  Mouse click   - Place mark
  [ / ]         - Step back / forward through history
  Tab           - Switch between board and move list
  R             - Clear the current board
  N             - New game
  Q/Ctrl+C      - Quit

Examples:
  tictactoe play
  tictactoe play --no-store
  tictactoe play --log-level debug --log-file ./tictactoe.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs only go to a file.
	logger, closer, err := newLogger(cfg.Log, io.Discard, "tictactoe")
	if err != nil {
		return err
	}
	defer closer.Close()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.MinWidth || h < tui.MinHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, at least %dx%d is recommended\n",
				w, h, tui.MinWidth, tui.MinHeight)
		}
	}

	var recorder tui.ResultRecorder
	if store := openStore(cfg.Storage, logger); store != nil {
		defer store.Close()
		recorder = store
	}

	logger.Info("starting local game", "store", recorder != nil)
	if err := tui.Run(game.New(), tui.NewTheme(cfg.Theme), recorder, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
