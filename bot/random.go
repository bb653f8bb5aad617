package bot

import (
	"context"
	"spiel/game"
	"sync"

	"golang.org/x/exp/rand"
)

// Random plays uniformly among the legal actions.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Step(_ context.Context, state game.State) (game.Action, error) {
	legal := state.LegalActions()
	if len(legal) == 0 {
		return game.InvalidAction, ErrNoLegalActions
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return legal[r.rng.Intn(len(legal))], nil
}
