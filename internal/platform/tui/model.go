package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// Focus selects which pane receives navigation keys.
type Focus int

const (
	FocusBoard Focus = iota
	FocusMoves
)

// ResultRecorder stores the outcome of finished boards.
type ResultRecorder interface {
	SaveResult(r storage.Result) (string, error)
}

const movesListHeight = 10

// Terminal size needed to show the board, the move list and the short help.
const (
	MinWidth  = 50
	MinHeight = 18
)

// Model is the Bubble Tea model for one hot-seat game.
// It reads the game through snapshots and changes it only via Dispatch.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	theme    Theme
	keys     KeyMap
	help     help.Model
	moves    table.Model
	recorder ResultRecorder
	logger   *log.Logger
	cursor   int
	focus    Focus
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around g. recorder and logger may be nil.
func NewModel(g *game.Game, theme Theme, recorder ResultRecorder, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	moves := table.New(
		table.WithColumns([]table.Column{
			{Title: " ", Width: 1},
			{Title: "Move", Width: 12},
		}),
		table.WithHeight(movesListHeight),
		table.WithFocused(false),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	moves.SetStyles(s)

	m := Model{
		game:     g,
		screen:   core.NewScreen(boardViewW, boardViewH),
		theme:    theme,
		keys:     DefaultKeyMap(),
		help:     h,
		moves:    moves,
		recorder: recorder,
		logger:   logger,
		cursor:   4, // Center cell
	}
	m.syncMoves()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.dispatch(game.NewGameCommand())
		m.cursor = 4
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if m.game.CanReset() {
			m.dispatch(game.ResetCurrentCommand())
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.dispatch(game.Jump(m.game.Step() - 1))
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		m.dispatch(game.Jump(m.game.Step() + 1))
		return m, nil
	}

	if m.focus == FocusMoves {
		return m.handleMovesKey(msg)
	}
	return m.handleBoardKey(msg)
}

// handleBoardKey moves the cursor and places marks.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := game.RowCol(m.cursor)
	last := game.BoardSize - 1

	switch {
	case key.Matches(msg, m.keys.Up):
		row = core.Clamp(row-1, 0, last)
	case key.Matches(msg, m.keys.Down):
		row = core.Clamp(row+1, 0, last)
	case key.Matches(msg, m.keys.Left):
		col = core.Clamp(col-1, 0, last)
	case key.Matches(msg, m.keys.Right):
		col = core.Clamp(col+1, 0, last)
	case key.Matches(msg, m.keys.Place):
		m.dispatch(game.Move(m.cursor))
		return m, nil
	case key.Matches(msg, m.keys.Cell):
		m.cursor = int(msg.String()[0] - '1')
		m.dispatch(game.Move(m.cursor))
		return m, nil
	default:
		return m, nil
	}

	m.cursor = game.Index(row, col)
	return m, nil
}

// handleMovesKey scrolls the move list; Enter jumps to the highlighted step.
func (m Model) handleMovesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Place) {
		m.dispatch(game.Jump(m.moves.Cursor()))
		return m, nil
	}

	var cmd tea.Cmd
	m.moves, cmd = m.moves.Update(msg)
	return m, cmd
}

// handleMouse places a mark on a left click over a board cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	index, ok := cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	m.cursor = index
	if m.focus != FocusBoard {
		m.toggleFocus()
	}
	m.dispatch(game.Move(index))
	return m, nil
}

// dispatch sends a command to the game and records boards a move finished.
func (m *Model) dispatch(cmd game.Command) {
	changed := m.game.Dispatch(cmd)
	m.logger.Debug("command",
		"cmd", cmd.String(),
		"applied", changed,
		"step", m.game.Step(),
		"board", m.game.Current().String(),
	)

	if changed && cmd.Kind == game.CommandMove && m.game.IsLocked() {
		m.record()
	}
	m.syncMoves()
}

// record saves the outcome of the current board. Failures are logged only.
func (m *Model) record() {
	result, ok := storage.ResultFromBoard(m.game.Current())
	if !ok {
		return
	}
	m.logger.Info("game finished", "outcome", result.Outcome(), "moves", result.Moves)

	if m.recorder == nil {
		return
	}
	id, err := m.recorder.SaveResult(result)
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.logger.Debug("result saved", "id", id)
}

// toggleFocus switches between the board and the move list.
func (m *Model) toggleFocus() {
	if m.focus == FocusBoard {
		m.focus = FocusMoves
		m.moves.Focus()
		m.moves.SetCursor(m.game.Step())
		return
	}
	m.focus = FocusBoard
	m.moves.Blur()
}

// syncMoves rebuilds the move list from the game history.
func (m *Model) syncMoves() {
	step := m.game.Step()
	rows := make([]table.Row, m.game.Len())
	for i := range rows {
		marker := " "
		if i == step {
			marker = ">"
		}
		rows[i] = table.Row{marker, moveLabel(m.game, i)}
	}
	m.moves.SetRows(rows)
	m.moves.SetCursor(step)
}

// View renders the board, the move list and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, m.game.Snapshot(), m.cursor, m.focus == FocusBoard)
	board := RenderScreen(m.screen, m.theme)

	heading := "Moves"
	if m.focus == FocusMoves {
		heading = "Moves (enter to jump)"
	}
	panel := m.theme.Panel.Render(m.theme.Heading.Render(heading) + "\n" + m.moves.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
	return body + "\n\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// Snapshot returns the state of the game being played.
func (m Model) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// Cursor returns the highlighted board cell.
func (m Model) Cursor() int {
	return m.cursor
}

// Focused returns the pane receiving navigation keys.
func (m Model) Focused() Focus {
	return m.focus
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program for g.
func Run(g *game.Game, theme Theme, recorder ResultRecorder, logger *log.Logger) error {
	model := NewModel(g, theme, recorder, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks place marks
	)

	_, err := p.Run()
	return err
}
