package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tictactoe/results.db")
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(home, ".tictactoe", "results.db"))
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveResult(Result{Winner: game.Empty, Moves: 9})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	tally, err := store.Tally()
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Draws)
}

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	results := []Result{
		{Winner: game.PlayerX, Line: []int{0, 1, 2}, Moves: 5, FinishedAt: base},
		{Winner: game.Empty, Moves: 9, FinishedAt: base.Add(time.Minute)},
		{Winner: game.PlayerO, Line: []int{2, 4, 6}, Moves: 6, FinishedAt: base.Add(2 * time.Minute)},
	}
	ids := make(map[string]bool)
	for _, r := range results {
		id, err := store.SaveResult(r)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		ids[id] = true
	}
	assert.Len(t, ids, 3, "ids must be unique")

	recent, err := store.RecentResults(10)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	assert.Equal(t, game.PlayerO, recent[0].Winner)
	assert.Equal(t, []int{2, 4, 6}, recent[0].Line)
	assert.Equal(t, 6, recent[0].Moves)
	assert.True(t, recent[0].FinishedAt.Equal(base.Add(2*time.Minute)))

	assert.True(t, recent[1].Draw())
	assert.Nil(t, recent[1].Line)
	assert.Equal(t, "draw", recent[1].Outcome())

	assert.Equal(t, "X", recent[2].Outcome())

	limited, err := store.RecentResults(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSaveResultRejectsBadLine(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{Winner: game.PlayerX, Line: []int{0, 1}, Moves: 5})
	assert.Error(t, err)
}

func TestTallyAndClear(t *testing.T) {
	store := openTestStore(t)

	tally, err := store.Tally()
	require.NoError(t, err)
	assert.Equal(t, Tally{}, tally)

	for _, r := range []Result{
		{Winner: game.PlayerX, Line: []int{0, 1, 2}, Moves: 5},
		{Winner: game.PlayerX, Line: []int{0, 4, 8}, Moves: 7},
		{Winner: game.PlayerO, Line: []int{3, 4, 5}, Moves: 6},
		{Winner: game.Empty, Moves: 9},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	tally, err = store.Tally()
	require.NoError(t, err)
	assert.Equal(t, Tally{XWins: 2, OWins: 1, Draws: 1}, tally)
	assert.Equal(t, 4, tally.Total())

	require.NoError(t, store.Clear())
	tally, err = store.Tally()
	require.NoError(t, err)
	assert.Zero(t, tally.Total())
}

func TestResultFromBoard(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		ok     bool
		winner game.Cell
		line   []int
		moves  int
	}{
		{name: "in progress", board: "XO.......", ok: false},
		{name: "x wins", board: "XXXOO....", ok: true, winner: game.PlayerX, line: []int{0, 1, 2}, moves: 5},
		{name: "draw", board: "XOXXOOOXX", ok: true, winner: game.Empty, moves: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := game.ParseBoard(tt.board)
			require.NoError(t, err)

			r, ok := ResultFromBoard(b)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.winner, r.Winner)
			assert.Equal(t, tt.line, r.Line)
			assert.Equal(t, tt.moves, r.Moves)
		})
	}
}

func TestLineEncoding(t *testing.T) {
	assert.Equal(t, "2,4,6", encodeLine([]int{2, 4, 6}))
	assert.Equal(t, "", encodeLine(nil))
	assert.Equal(t, []int{2, 4, 6}, decodeLine("2,4,6"))
	assert.Nil(t, decodeLine(""))
	assert.Nil(t, decodeLine("a,b"))
}
