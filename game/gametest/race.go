// Package gametest provides a small deterministic game for exercising code
// that drives a game.State.
package gametest

import (
	"fmt"
	"spiel/game"
)

// Race is a two-player counting game: each turn the mover adds 1 or 2 to a
// shared total, and whoever reaches Target first wins.
type Race struct {
	Target  int
	Total   int
	Current int
	Won     int
	History []game.Action
}

// NewRace returns a game starting at zero with player 0 to move.
func NewRace(target int) *Race {
	return &Race{Target: target, Won: game.NoWinner}
}

func (r *Race) Player() int { return r.Current }

func (r *Race) LegalActions() []game.Action {
	if r.IsTerminal() {
		return nil
	}
	if r.Target-r.Total == 1 {
		return []game.Action{1}
	}
	return []game.Action{1, 2}
}

func (r *Race) Play(action game.Action) game.State {
	next := &Race{
		Target:  r.Target,
		Total:   r.Total + int(action),
		Current: 1 - r.Current,
		Won:     r.Won,
		History: append(append([]game.Action{}, r.History...), action),
	}
	if next.Total >= next.Target {
		next.Won = r.Current
	}
	return next
}

func (r *Race) IsTerminal() bool { return r.Won != game.NoWinner }

func (r *Race) Winner() int { return r.Won }

func (r *Race) String() string { return fmt.Sprintf("race %d/%d", r.Total, r.Target) }
