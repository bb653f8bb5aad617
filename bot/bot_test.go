package bot

import (
	"context"
	"spiel/game"
	"spiel/game/gametest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	t.Run("plays the first legal action", func(t *testing.T) {
		action, err := NewFirst().Step(context.Background(), gametest.NewRace(5))

		require.NoError(t, err)
		require.Equal(t, game.Action(1), action)
	})

	t.Run("errors without legal actions", func(t *testing.T) {
		state := gametest.NewRace(1).Play(1)

		action, err := NewFirst().Step(context.Background(), state)

		require.ErrorIs(t, err, ErrNoLegalActions)
		require.Equal(t, game.InvalidAction, action)
	})
}

func TestRandom(t *testing.T) {
	t.Run("plays only legal actions", func(t *testing.T) {
		r := NewRandom(7)
		seen := map[game.Action]bool{}
		for i := 0; i < 200; i++ {
			action, err := r.Step(context.Background(), gametest.NewRace(5))
			require.NoError(t, err)
			require.Contains(t, []game.Action{1, 2}, action)
			seen[action] = true
		}
		require.Len(t, seen, 2, "Both actions should eventually be played")
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a, b := NewRandom(42), NewRandom(42)
		for i := 0; i < 20; i++ {
			x, _ := a.Step(context.Background(), gametest.NewRace(5))
			y, _ := b.Step(context.Background(), gametest.NewRace(5))
			require.Equal(t, x, y)
		}
	})
}

func TestHuman(t *testing.T) {
	t.Run("returns a legal submission", func(t *testing.T) {
		h := NewHuman()
		require.True(t, h.Submit(2))

		action, err := h.Step(context.Background(), gametest.NewRace(5))

		require.NoError(t, err)
		require.Equal(t, game.Action(2), action)
	})

	t.Run("skips illegal submissions", func(t *testing.T) {
		h := NewHuman()
		state := gametest.NewRace(5)
		go func() {
			for _, a := range []game.Action{9, 1} {
				for !h.Submit(a) {
					time.Sleep(time.Millisecond)
				}
			}
		}()

		action, err := h.Step(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, game.Action(1), action)
	})

	t.Run("only one pending submission", func(t *testing.T) {
		h := NewHuman()
		require.True(t, h.Submit(1))
		require.False(t, h.Submit(2), "Second submission should be rejected while one is pending")
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := NewHuman().Step(ctx, gametest.NewRace(5))

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("close releases step", func(t *testing.T) {
		h := NewHuman()
		h.Close()
		h.Close()

		_, err := h.Step(context.Background(), gametest.NewRace(5))

		require.ErrorIs(t, err, ErrClosed)
		require.False(t, h.Submit(1), "Closed seats accept no submissions")
	})
}
