package game

import "fmt"

// CommandKind selects a state machine operation.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandJump
	CommandNewGame
	CommandResetCurrent
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandMove:
		return "move"
	case CommandJump:
		return "jump"
	case CommandNewGame:
		return "new-game"
	case CommandResetCurrent:
		return "reset-current"
	default:
		return "unknown"
	}
}

// Command is a request from the presentation layer. Arg is the cell index
// for CommandMove and the step for CommandJump; other kinds ignore it.
type Command struct {
	Kind CommandKind
	Arg  int
}

// Move requests a mark at the given cell index.
func Move(index int) Command { return Command{Kind: CommandMove, Arg: index} }

// Jump requests the snapshot at step.
func Jump(step int) Command { return Command{Kind: CommandJump, Arg: step} }

// NewGameCommand requests a full reset.
func NewGameCommand() Command { return Command{Kind: CommandNewGame} }

// ResetCurrentCommand requests a reset of the displayed board only.
func ResetCurrentCommand() Command { return Command{Kind: CommandResetCurrent} }

// String formats the command for logs.
func (c Command) String() string {
	switch c.Kind {
	case CommandMove, CommandJump:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Arg)
	default:
		return c.Kind.String()
	}
}

// Dispatch runs cmd against the game and reports whether state changed.
func (g *Game) Dispatch(cmd Command) bool {
	switch cmd.Kind {
	case CommandMove:
		return g.ApplyMove(cmd.Arg)
	case CommandJump:
		return g.JumpTo(cmd.Arg)
	case CommandNewGame:
		g.NewGame()
		return true
	case CommandResetCurrent:
		g.ResetCurrent()
		return true
	default:
		return false
	}
}
