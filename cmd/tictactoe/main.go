// tictactoe is a two-player hot-seat tic-tac-toe for the terminal.
//
// Usage:
//
//	tictactoe play            - Play locally, two players at one keyboard
//	tictactoe serve           - Start SSH server; each connection gets its own game
//	tictactoe stats           - Show recorded results
//	tictactoe eval <board>    - Evaluate a board given as 9 characters
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tictactoe/config.yaml, ./configs/tictactoe.yaml)
//	--db <path>         - Results database path
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//	--no-store          - Do not record results
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagNoStore  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe for two players in your terminal",
	Long: `Tic-tac-toe for two players sharing one terminal.

Every move is kept in a history you can step through. Jump back to any
earlier position and play on from there; the old future is dropped.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  stats    - Show recorded results
  eval     - Evaluate a board

Examples:
  tictactoe play
  tictactoe serve --ssh :2222
  tictactoe stats --limit 20
  tictactoe eval XXXOO....`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "Do not record results")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(evalCmd)
}

// loadConfig reads the config and applies the global flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flagNoStore {
		cfg.Storage.Enabled = false
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger from config. Logs go to the configured file,
// or to fallback when none is set. The returned closer must be called on exit.
func newLogger(cfg config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the results database when storage is enabled.
// A store that cannot be opened is logged and skipped; the game still works.
func openStore(cfg config.StorageConfig, logger *log.Logger) *storage.Store {
	if !cfg.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.Path)
	if err != nil {
		logger.Warn("could not open results database", "path", cfg.Path, "error", err)
		return nil
	}
	return store
}
