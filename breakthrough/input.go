package breakthrough

import "golang.org/x/exp/slices"

// Selector turns a human player's clicks into actions. The first click picks
// one of the player's pawns and the second picks its destination.
type Selector struct {
	color    Color
	selected Cell
	active   bool
}

func NewSelector(color Color) *Selector {
	return &Selector{color: color}
}

// Selected returns the currently picked pawn, if any.
func (s *Selector) Selected() (Cell, bool) {
	return s.selected, s.active
}

func (s *Selector) Reset() {
	s.active = false
}

// Click handles a click on cell. It returns an action once a destination
// click encodes to one of the legal actions; the selection is then cleared.
// Clicking another own pawn while one is selected clears the selection.
func (s *Selector) Click(cell Cell, board Board, legal []ActionID) (ActionID, bool) {
	occupant, ok := board.At(cell)
	if !ok {
		return Invalid, false
	}

	own := occupant.Is(s.color)
	switch {
	case !s.active && own:
		s.selected, s.active = cell, true
	case s.active && own:
		s.active = false
	case s.active:
		action := Encode(s.selected, cell, s.color, occupant)
		if action != Invalid && slices.Contains(legal, action) {
			s.active = false
			return action, true
		}
	}
	return Invalid, false
}
