package game

import "strings"

// Command is a player action for one turn.
type Command int

const (
	CommandUnknown Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandExit
)

// Command tokens accepted from the input collaborator.
const (
	TokenUp    = "w"
	TokenLeft  = "a"
	TokenDown  = "s"
	TokenRight = "d"
	TokenExit  = "exit"
)

// ParseCommand maps an input token to a command. Surrounding whitespace is
// ignored; anything else yields CommandUnknown.
func ParseCommand(token string) Command {
	switch strings.TrimSpace(token) {
	case TokenUp:
		return CommandUp
	case TokenDown:
		return CommandDown
	case TokenLeft:
		return CommandLeft
	case TokenRight:
		return CommandRight
	case TokenExit:
		return CommandExit
	default:
		return CommandUnknown
	}
}

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// IsMove returns true for the four directional commands.
func (c Command) IsMove() bool {
	return c >= CommandUp && c <= CommandRight
}
