// Package communication carries bot requests between a game and a bot
// running in another process.
package communication

import "spiel/game"

// StepRequest asks a remote bot to move.
type StepRequest struct {
	Game         string        `json:"game"`
	Player       int           `json:"player"`
	LegalActions []game.Action `json:"legal_actions"`
	Board        string        `json:"board"`
}

type StepResponse struct {
	Action game.Action `json:"action"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Request(gameName string, state game.State) StepRequest {
	snap := game.Detach(state)
	return StepRequest{
		Game:         gameName,
		Player:       snap.Current,
		LegalActions: snap.Actions,
		Board:        snap.Board,
	}
}

// State rebuilds a playable-by-bots view of the requested position.
func (r StepRequest) State() game.State {
	return game.Snapshot{
		Current:  r.Player,
		Actions:  r.LegalActions,
		Board:    r.Board,
		Terminal: len(r.LegalActions) == 0,
		Won:      game.NoWinner,
	}
}
