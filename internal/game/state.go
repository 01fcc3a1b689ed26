// Package game provides the game session, turn handling and frontends.
package game

// Outcome represents how far a session has progressed.
type Outcome int

const (
	// OutcomePlaying means the session accepts further commands.
	OutcomePlaying Outcome = iota
	// OutcomeWon means every monster has been destroyed.
	OutcomeWon
	// OutcomeLost means the player's life reached zero.
	OutcomeLost
	// OutcomeQuit means the player left without winning or losing.
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if the session has ended.
func (o Outcome) IsTerminal() bool {
	return o != OutcomePlaying
}
