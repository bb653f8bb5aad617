package bot

import (
	"context"
	"spiel/game"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Human is the seat of a person playing through the UI. The UI submits the
// actions it decoded from clicks and Step hands the first legal one to the game.
type Human struct {
	actions chan game.Action
	done    chan struct{}
	once    sync.Once
}

func NewHuman() *Human {
	return &Human{
		actions: make(chan game.Action, 1),
		done:    make(chan struct{}),
	}
}

// Submit queues an action. It reports false when an action is already
// pending or the seat is closed.
func (h *Human) Submit(action game.Action) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.actions <- action:
		return true
	default:
		return false
	}
}

// Step waits for a legal submission.
func (h *Human) Step(ctx context.Context, state game.State) (game.Action, error) {
	legal := state.LegalActions()
	if len(legal) == 0 {
		return game.InvalidAction, ErrNoLegalActions
	}
	for {
		select {
		case <-ctx.Done():
			return game.InvalidAction, ctx.Err()
		case <-h.done:
			return game.InvalidAction, ErrClosed
		case action := <-h.actions:
			if slices.Contains(legal, action) {
				return action, nil
			}
			log.Debug().Msgf("ignoring illegal submission %d", action)
		}
	}
}

// Close releases a pending Step.
func (h *Human) Close() {
	h.once.Do(func() { close(h.done) })
}
