package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Theme maps screen color roles and UI chrome to lipgloss styles.
type Theme struct {
	cells   map[core.Color]lipgloss.Style
	Panel   lipgloss.Style
	Heading lipgloss.Style
	Help    lipgloss.Style
}

// NewTheme builds styles from the configured colors.
func NewTheme(cfg config.ThemeConfig) Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorMarkX:   fg(cfg.MarkX).Bold(true),
			core.ColorMarkO:   fg(cfg.MarkO).Bold(true),
			core.ColorWin:     fg(cfg.Win).Bold(true).Underline(true),
			core.ColorCursor:  fg(cfg.Cursor).Bold(true),
			core.ColorGrid:    fg(cfg.Grid),
			core.ColorDim:     fg(cfg.Dim),
			core.ColorTitle:   fg(cfg.Title).Bold(true),
		},
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.Grid)).
			Padding(0, 1),
		Heading: fg(cfg.Title).Bold(true),
		Help:    fg(cfg.Dim),
	}
}

// DefaultTheme returns the theme for the built-in colors.
func DefaultTheme() Theme {
	return NewTheme(config.Default().Theme)
}

// style returns the style for a color role, falling back to the default style.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
