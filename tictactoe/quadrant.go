// Package tictactoe maps clicks on the 600x600 board image to engine actions.
package tictactoe

import (
	"spiel/game"

	"golang.org/x/exp/slices"
)

const (
	Size     = 3
	band     = 200
	NumCells = Size * Size
)

// Quadrant returns the cell under a click, numbered row-major from the top
// left. Band edges belong to the lower band, so x=200 is still column 0.
func Quadrant(x, y int) game.Action {
	return game.Action(bandOf(y)*Size + bandOf(x))
}

func bandOf(p int) int {
	switch {
	case p <= band:
		return 0
	case p <= 2*band:
		return 1
	}
	return 2
}

// CellOf is the row and column of an action.
func CellOf(action game.Action) (row, col int) {
	return int(action) / Size, int(action) % Size
}

// Click returns the action under the pointer when the engine allows it.
func Click(x, y int, legal []game.Action) (game.Action, bool) {
	action := Quadrant(x, y)
	if !slices.Contains(legal, action) {
		return game.InvalidAction, false
	}
	return action, true
}
