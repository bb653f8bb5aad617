package engine

import (
	"context"
	"errors"
	"fmt"
	"spiel/bot"
	"spiel/config"
	"spiel/game"
	"spiel/gamemaster"
	"spiel/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Option func(e *Engine)

func WithMaxMoves(moves int) Option {
	return func(e *Engine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// Engine plays one game between bots, one per player index.
type Engine struct {
	State    game.State
	Bots     []bot.Bot
	master   *gamemaster.LocalEngine
	maxMoves int
	metrics  metrics.Collector
}

func New(state game.State, bots []bot.Bot, options ...Option) *Engine {
	if len(bots) < 2 {
		panic("need at least two bots")
	}
	e := &Engine{ // Default values
		State:    state,
		Bots:     bots,
		master:   gamemaster.NewLocalEngine(),
		maxMoves: config.Default().MaxMoves,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game ends or the move budget is spent.
func (e *Engine) Run(ctx context.Context) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, getUpdate := e.master.Init(e.State)
	e.metrics.Start(state.Player())

	log.Info().Msgf("player %d is starting", state.Player())

	step := 1
	for !state.IsTerminal() && step <= e.maxMoves {
		player := state.Player()
		if player < 0 || player >= len(e.Bots) {
			return game.NoWinner, metrics.GameMetric{}, nil, fmt.Errorf("no bot seated for player %d", player)
		}

		start := time.Now()
		action, err := e.Bots[player].Step(ctx, state)
		if err != nil {
			return game.NoWinner, metrics.GameMetric{}, nil, fmt.Errorf("player %d failed to move: %w", player, err)
		}
		elapsed := time.Since(start)

		fallback := false
		err = e.master.Play(action)
		if errors.Is(err, gamemaster.ErrIllegalAction) {
			legal := state.LegalActions()
			if len(legal) == 0 {
				return game.NoWinner, metrics.GameMetric{}, nil, fmt.Errorf("player %d to move without legal actions", player)
			}
			log.Warn().Msgf("player %d chose illegal action %d, forcing %d", player, action, legal[0])
			action, fallback = legal[0], true
			err = e.master.Play(action)
		}
		if err != nil {
			return game.NoWinner, metrics.GameMetric{}, nil, err
		}

		_, state = getUpdate()
		e.inform(state, player, action)
		e.metrics.AddMove(metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Action:   action,
			Duration: elapsed,
			Fallback: fallback,
		})
		step++
	}

	e.State = state
	if state.IsTerminal() {
		log.Info().Msgf("game ended after %d moves, winner: %d", step-1, state.Winner())
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", e.maxMoves)
	}

	gameMetric, moveMetrics := e.metrics.Complete(state.Winner())
	return state.Winner(), gameMetric, moveMetrics, nil
}

func (e *Engine) inform(state game.State, player int, action game.Action) {
	for i, b := range e.Bots {
		if i == player {
			continue
		}
		if informer, ok := b.(bot.Informer); ok {
			informer.InformAction(state, player, action)
		}
	}
}
