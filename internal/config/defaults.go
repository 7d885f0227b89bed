package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/tictactoe.yaml
// and is used when the embedded file cannot be decoded.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.tictactoe/results.db",
		},
		Theme: ThemeConfig{
			MarkX:  "12",
			MarkO:  "9",
			Win:    "10",
			Cursor: "229",
			Grid:   "240",
			Dim:    "245",
			Title:  "229",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
