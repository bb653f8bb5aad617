package game

// Action identifies a move the way the rule engine does: a single integer.
type Action int

// InvalidAction is returned by bots that could not pick a move.
const InvalidAction Action = -1

// NoWinner is reported by Winner for unfinished and drawn games.
const NoWinner = -1

// State is the view of a rule-engine position the harness consumes.
// State should be immutable - operations on State always return a new copy
type State interface {
	// Player is the index of the player to move.
	Player() int
	LegalActions() []Action
	Play(Action) State
	IsTerminal() bool
	Winner() int
	// String is the engine's board rendering (for breakthrough, 10 bytes per row).
	String() string
}
