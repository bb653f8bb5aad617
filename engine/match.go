package engine

import (
	"context"
	"fmt"
	"spiel/bot"
	"spiel/config"
	"spiel/game"
	"spiel/metrics"

	"github.com/rs/zerolog/log"
)

// Match describes a series of games between two bot configurations.
type Match struct {
	Name     string
	Bots     [2]string // Bot configurations, see bot.New
	Games    int
	MaxMoves int // Zero keeps the engine default
	NewState func() game.State
}

// RunConfiguredMatch runs m with the move limit and record directory of s.
// Records go to <metrics_dir>/<m.Name>/<timestamp>.
func RunConfiguredMatch(ctx context.Context, s config.Settings, m Match) ([]metrics.GameRecord, error) {
	if m.MaxMoves == 0 {
		m.MaxMoves = s.MaxMoves
	}
	w, err := metrics.NewWriter(s.MetricsDir, m.Name)
	if err != nil {
		return nil, err
	}
	return RunMatch(ctx, m, w)
}

// RunMatch plays the games of m, swapping seats every other game. Records are
// written through w when it is not nil.
func RunMatch(ctx context.Context, m Match, w *metrics.Writer) ([]metrics.GameRecord, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting match %s: %s vs %s, %d games", m.Name, m.Bots[0], m.Bots[1], m.Games)

	for i := 0; i < m.Games; i++ {
		seats := m.Bots
		if i%2 == 1 {
			seats[0], seats[1] = seats[1], seats[0]
		}

		bots := make([]bot.Bot, len(seats))
		for player, botConfig := range seats {
			b, err := bot.New(player, botConfig)
			if err != nil {
				return gameRecords, err
			}
			if _, ok := b.(*bot.Human); ok {
				return gameRecords, fmt.Errorf("seat %d: human seats cannot play unattended matches", player)
			}
			bots[player] = b
		}

		e := New(m.NewState(), bots, WithMaxMoves(m.MaxMoves), WithMetrics())
		winner, gameMetric, moveMetrics, err := e.Run(ctx)
		if err != nil {
			return gameRecords, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Bot0:       seats[0],
			Bot1:       seats[1],
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %d", id, m.Games, winner)
	}

	if w == nil {
		return gameRecords, nil
	}
	if err := w.WriteGameRecords(gameRecords); err != nil {
		return gameRecords, err
	}
	if err := w.WriteMoveRecords(moveRecords); err != nil {
		return gameRecords, err
	}
	log.Info().Msgf("stored match records in %s", w.Dir())
	return gameRecords, nil
}
