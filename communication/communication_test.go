package communication

import (
	"spiel/game"
	"spiel/game/gametest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	req := Request("race", gametest.NewRace(4).Play(1))

	require.Equal(t, StepRequest{Game: "race", Player: 1, LegalActions: []game.Action{1, 2}, Board: "race 1/4"}, req)

	state := req.State()
	require.Equal(t, 1, state.Player())
	require.Equal(t, []game.Action{1, 2}, state.LegalActions())
	require.False(t, state.IsTerminal())
	require.Equal(t, game.NoWinner, state.Winner())
}

func TestRequestStateWithoutActions(t *testing.T) {
	state := StepRequest{Player: 0}.State()

	require.True(t, state.IsTerminal(), "A position without legal actions is treated as finished")
}
