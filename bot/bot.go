// Package bot defines the players that can sit at a game: built-in bots, the
// human seat fed by the UI, and any bot registered at runtime.
package bot

import (
	"context"
	"spiel/game"

	"github.com/pkg/errors"
)

var (
	ErrNoLegalActions = errors.New("no legal actions")
	ErrClosed         = errors.New("bot is closed")
)

// Bot chooses the next action for the player to move.
type Bot interface {
	Step(ctx context.Context, state game.State) (game.Action, error)
}

// Informer is implemented by bots that track the opponent's moves.
type Informer interface {
	InformAction(state game.State, player int, action game.Action)
}

type first struct{}

// NewFirst returns a bot that always plays the first legal action.
func NewFirst() Bot { return first{} }

func (first) Step(_ context.Context, state game.State) (game.Action, error) {
	legal := state.LegalActions()
	if len(legal) == 0 {
		return game.InvalidAction, ErrNoLegalActions
	}
	return legal[0], nil
}
