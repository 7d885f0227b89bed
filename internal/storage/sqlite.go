// Package storage keeps a ledger of finished games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only outcomes are stored; a game in progress is never saved or restored.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished board.
type Result struct {
	ID         string
	Winner     game.Cell // Empty for a draw
	Line       []int     // Winning cell indices, nil for a draw
	Moves      int       // Marks on the final board
	FinishedAt time.Time
}

// Draw reports whether the result has no winner.
func (r Result) Draw() bool {
	return r.Winner == game.Empty
}

// Outcome returns "X", "O" or "draw".
func (r Result) Outcome() string {
	if r.Draw() {
		return "draw"
	}
	return r.Winner.String()
}

// ResultFromBoard builds the result for a locked board.
// ok is false while the board still accepts moves.
func ResultFromBoard(b game.Board) (Result, bool) {
	if win, won := game.Evaluate(b); won {
		return Result{Winner: win.Player, Line: win.Line[:], Moves: b.Filled()}, true
	}
	if game.IsDraw(b) {
		return Result{Winner: game.Empty, Moves: b.Filled()}, true
	}
	return Result{}, false
}

// Tally counts results by outcome.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

// Total returns the number of recorded results.
func (t Tally) Total() int {
	return t.XWins + t.OWins + t.Draws
}

// Open creates or opens a SQLite database at the given path.
// It expands "~", creates parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			winner TEXT NOT NULL,
			line TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			finished_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results(finished_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its generated ID.
// A zero FinishedAt is replaced by the current time.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.Winner != game.Empty && len(r.Line) != 3 {
		return "", fmt.Errorf("storage: winning result needs a 3-cell line, got %v", r.Line)
	}

	id := uuid.NewString()
	finished := r.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO results (id, winner, line, moves, finished_at) VALUES (?, ?, ?, ?, ?)",
		id, winnerColumn(r.Winner), encodeLine(r.Line), r.Moves, finished.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return id, nil
}

// RecentResults returns the latest results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, winner, line, moves, finished_at
		 FROM results
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r          Result
			winner     string
			line       string
			finishedAt any
		)
		if err := rows.Scan(&r.ID, &winner, &line, &r.Moves, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = parseWinner(winner)
		r.Line = decodeLine(line)

		// The driver hands back time.Time or text depending on how the value was stored
		switch v := finishedAt.(type) {
		case time.Time:
			r.FinishedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05.999999999-07:00", v); err == nil {
				r.FinishedAt = parsed
			}
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Tally counts all recorded results by outcome.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END), 0)
		 FROM results`,
	).Scan(&t.XWins, &t.OWins, &t.Draws)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot tally results: %w", err)
	}
	return t, nil
}

// Clear deletes every recorded result.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func winnerColumn(c game.Cell) string {
	if c == game.Empty {
		return ""
	}
	return c.String()
}

func parseWinner(s string) game.Cell {
	switch s {
	case "X":
		return game.PlayerX
	case "O":
		return game.PlayerO
	default:
		return game.Empty
	}
}

func encodeLine(line []int) string {
	parts := make([]string, len(line))
	for i, idx := range line {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

func decodeLine(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	line := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		line = append(line, n)
	}
	return line
}
