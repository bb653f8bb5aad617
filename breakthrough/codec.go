// Package breakthrough maps breakthrough moves to the rule engine's action ids
// and back.
//
// An action id is the mixed-radix number [row, col, direction, capture] over
// the radices [8, 8, 6, 2], origin row most significant, so ids span [0, 767].
package breakthrough

import "strings"

const (
	Rows       = 8
	Cols       = 8
	Directions = 6
	NumActions = Rows * Cols * Directions * 2
)

// ActionID is the engine's integer encoding of a breakthrough move.
type ActionID int

// Invalid is returned by Encode for clicks that cannot be a single-step move.
const Invalid ActionID = -1

func (id ActionID) Valid() bool { return id >= 0 && id < NumActions }

// Direction is an index into the offset tables. 0-2 are black's moves, 3-5 white's.
type Direction int

// Diagonal reports whether the direction changes column.
func (d Direction) Diagonal() bool { return colOffsets[d] != 0 }

var (
	radices    = [4]int{Rows, Cols, Directions, 2}
	rowOffsets = [Directions]int{1, 1, 1, -1, -1, -1}
	colOffsets = [Directions]int{-1, 0, 1, -1, 0, 1}

	// Indexed by color, then by origin.Col-dest.Col+1, i.e. delta -1, 0, +1.
	directions = [2][3]Direction{
		Black: {2, 1, 0},
		White: {5, 4, 3},
	}
)

// Move is a decoded action.
type Move struct {
	From      Cell
	To        Cell
	Direction Direction
	Capture   bool
}

// DirectionFor selects the direction for a column delta (origin minus
// destination). ok is false when the delta is not -1, 0 or +1.
func DirectionFor(delta int, mover Color) (dir Direction, ok bool) {
	if delta < -1 || delta > 1 {
		return 0, false
	}
	return directions[mover][delta+1], true
}

// Encode returns the action id for moving the pawn on origin to dest, or
// Invalid when the cells are not one step apart. occupant is what currently
// sits on dest; only diagonal moves onto an opposing pawn are captures.
// Whether the move is legal is for the rule engine to decide.
func Encode(origin, dest Cell, mover Color, occupant Occupant) ActionID {
	if abs(origin.Row-dest.Row) > 1 {
		return Invalid
	}
	dir, ok := DirectionFor(origin.Col-dest.Col, mover)
	if !ok {
		return Invalid
	}

	capture := 0
	if dir.Diagonal() && occupant.Is(mover.Opponent()) {
		capture = 1
	}
	return Rank([4]int{origin.Row, origin.Col, int(dir), capture})
}

// Rank composes mixed-radix digits, most significant first.
func Rank(digits [4]int) ActionID {
	id, place := 0, 1
	for i := len(radices) - 1; i >= 0; i-- {
		id += digits[i] * place
		place *= radices[i]
	}
	return ActionID(id)
}

// Unrank splits an id back into its digits. Every digit is reduced into its
// radix, so any integer yields in-range digits.
func Unrank(id ActionID) [4]int {
	var digits [4]int
	n := int(id)
	for i := len(radices) - 1; i >= 0; i-- {
		digits[i] = ((n % radices[i]) + radices[i]) % radices[i]
		n = floorDiv(n, radices[i])
	}
	return digits
}

// Decode reconstructs the move behind an id. The destination comes from the
// direction's offsets and is not checked against the board edges.
func Decode(id ActionID) Move {
	digits := Unrank(id)
	from := Cell{Row: digits[0], Col: digits[1]}
	dir := Direction(digits[2])
	return Move{
		From:      from,
		To:        Cell{Row: from.Row + rowOffsets[dir], Col: from.Col + colOffsets[dir]},
		Direction: dir,
		Capture:   digits[3] == 1,
	}
}

// String renders the move as origin and destination labels, e.g. "a7b6*".
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.Capture {
		b.WriteByte('*')
	}
	return b.String()
}

func (id ActionID) String() string {
	if id == Invalid {
		return "invalid"
	}
	return Decode(id).String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
