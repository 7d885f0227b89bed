package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded results",
	Long: `Display the win/draw tally and the most recent finished games.

Examples:
  tictactoe stats
  tictactoe stats --limit 25
  tictactoe stats --clear`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent results to show")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("error opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	}

	tally, err := store.Tally()
	if err != nil {
		return err
	}
	recent, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}

	printStats(os.Stdout, tally, recent)
	return nil
}

// printStats writes the tally and a table of results.
func printStats(w io.Writer, tally storage.Tally, recent []storage.Result) {
	fmt.Fprintln(w, "Results")
	fmt.Fprintln(w)

	if tally.Total() == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tictactoe play' and finish a game to record one!")
		return
	}

	fmt.Fprintf(w, "  X wins: %d   O wins: %d   Draws: %d   Total: %d\n",
		tally.XWins, tally.OWins, tally.Draws, tally.Total())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-16s  %-7s  %-5s  %s\n", "Date", "Outcome", "Moves", "Line")
	fmt.Fprintf(w, "  %-16s  %-7s  %-5s  %s\n", "----", "-------", "-----", "----")
	for _, r := range recent {
		fmt.Fprintf(w, "  %-16s  %-7s  %-5d  %s\n",
			r.FinishedAt.Local().Format("2006-01-02 15:04"), r.Outcome(), r.Moves, formatLine(r.Line))
	}
}

// formatLine prints winning cells 1-based, matching the in-game status.
func formatLine(line []int) string {
	if len(line) == 0 {
		return "-"
	}
	cells := make([]string, len(line))
	for i, idx := range line {
		cells[i] = fmt.Sprint(idx + 1)
	}
	return strings.Join(cells, ",")
}
