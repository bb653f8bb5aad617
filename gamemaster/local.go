package gamemaster

import (
	"errors"
	"fmt"
	"spiel/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrIllegalAction = errors.New("illegal action")
)

// UpdateGetter returns the latest accepted action and the state it produced,
// or InvalidAction and nil when there is none. It never blocks.
type UpdateGetter func() (game.Action, game.State)

type Engine interface {
	Init(game.State) (game.State, UpdateGetter)
	Play(game.Action) error
}

type update struct {
	action game.Action
	state  game.State
}

// LocalEngine owns the authoritative state of one game and only applies
// actions the rule engine lists as legal.
type LocalEngine struct {
	state    game.State
	updateCh chan update
	gameOver bool
}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

func (e *LocalEngine) Init(state game.State) (game.State, UpdateGetter) {
	e.state = state
	e.gameOver = state.IsTerminal()
	e.updateCh = make(chan update, 1)
	if e.gameOver {
		close(e.updateCh)
	}

	return e.state, func() (game.Action, game.State) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return game.InvalidAction, nil
			}
			return u.action, u.state
		default:
			return game.InvalidAction, nil
		}
	}
}

// State is the current position.
func (e *LocalEngine) State() game.State {
	return e.state
}

// Play applies action. An update the getter has not consumed yet is replaced
// by the new one, so Play never blocks.
func (e *LocalEngine) Play(action game.Action) error {
	if e.state == nil {
		return fmt.Errorf("engine not initialised")
	}
	if e.gameOver {
		return ErrGameOver
	}

	legal := e.state.LegalActions()
	if !slices.Contains(legal, action) {
		return fmt.Errorf("%w %d for player %d", ErrIllegalAction, action, e.state.Player())
	}

	e.state = e.state.Play(action)
	select {
	case <-e.updateCh: // Stale
	default:
	}
	e.updateCh <- update{action: action, state: e.state}

	if e.state.IsTerminal() {
		e.gameOver = true
		log.Debug().Msgf("game over after action %d, winner %d", action, e.state.Winner())
		close(e.updateCh)
	}
	return nil
}
