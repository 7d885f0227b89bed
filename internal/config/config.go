// Package config loads the tictactoe configuration: YAML files layered over
// embedded defaults, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Theme   ThemeConfig   `yaml:"theme"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `yaml:"file" env:"TICTACTOE_LOG_FILE"`
}

// StorageConfig controls the finished-game results database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_STORAGE"`
	Path    string `yaml:"path" env:"TICTACTOE_DB"`
}

// ThemeConfig holds lipgloss color strings for each screen role.
type ThemeConfig struct {
	MarkX  string `yaml:"mark_x"`
	MarkO  string `yaml:"mark_o"`
	Win    string `yaml:"win"`
	Cursor string `yaml:"cursor"`
	Grid   string `yaml:"grid"`
	Dim    string `yaml:"dim"`
	Title  string `yaml:"title"`
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"TICTACTOE_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key_path" env:"TICTACTOE_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"TICTACTOE_IDLE_TIMEOUT"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Validate checks the config for values the application cannot run with.
func (c Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	if !logLevels[level] {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Storage.Enabled && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("%w: storage enabled without a path", ErrInvalid)
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("%w: empty ssh address", ErrInvalid)
	}
	if c.SSH.IdleTimeout <= 0 {
		return fmt.Errorf("%w: ssh idle timeout must be positive, got %s", ErrInvalid, c.SSH.IdleTimeout)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Dir returns the per-user application directory (~/.tictactoe).
func Dir() (string, error) {
	return ExpandHome("~/.tictactoe")
}
