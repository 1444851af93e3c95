package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Action represents a semantic player action, abstracted from how it was
// typed or clicked.
type Action int

const (
	ActionNone    Action = iota
	ActionReveal         // r <row> <col> - open a cell
	ActionMark           // m <row> <col> - cycle flag / question mark
	ActionRestart        // n - discard the board and start over
	ActionQuit           // q - exit
	ActionHelp           // h, ? - show commands
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReveal:
		return "Reveal"
	case ActionMark:
		return "Mark"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NeedsTarget reports whether the action applies to a cell.
func (a Action) NeedsTarget() bool {
	return a == ActionReveal || a == ActionMark
}

// Command is one parsed player input.
type Command struct {
	Action Action
	Row    int
	Col    int
}

// ParseCommand parses a single input line.
// Blank lines and lines starting with '#' yield ActionNone.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{Action: ActionNone}, nil
	}

	fields := strings.Fields(line)
	var cmd Command
	switch strings.ToLower(fields[0]) {
	case "r", "reveal", "open":
		cmd.Action = ActionReveal
	case "m", "mark", "flag":
		cmd.Action = ActionMark
	case "n", "new", "restart":
		cmd.Action = ActionRestart
	case "q", "quit", "exit":
		cmd.Action = ActionQuit
	case "h", "help", "?":
		cmd.Action = ActionHelp
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	if !cmd.Action.NeedsTarget() {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no arguments", strings.ToLower(cmd.Action.String()))
		}
		return cmd, nil
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("%s needs <row> <col>", strings.ToLower(cmd.Action.String()))
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("invalid row %q: %w", fields[1], err)
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("invalid column %q: %w", fields[2], err)
	}
	cmd.Row = row
	cmd.Col = col
	return cmd, nil
}
