package breakthrough

import (
	"fmt"
	"math"
)

// Cell is a board square. Row 0 is black's home edge and is labelled "8".
type Cell struct {
	Row, Col int
}

func (c Cell) OnBoard() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// String labels the cell the way the engine does: column letter then row number.
func (c Cell) String() string {
	return string([]byte{byte('a' + c.Col), byte('1' + Rows - 1 - c.Row)})
}

// ParseCell is the inverse of Cell.String for on-board labels.
func ParseCell(label string) (Cell, error) {
	if len(label) != 2 {
		return Cell{}, fmt.Errorf("cell label %q: want a column letter and a row number", label)
	}
	c := Cell{Col: int(label[0] - 'a'), Row: Rows - 1 - int(label[1]-'1')}
	if label[0] < 'a' || label[1] < '1' || !c.OnBoard() {
		return Cell{}, fmt.Errorf("cell label %q is off the board", label)
	}
	return c, nil
}

// Color is the side moving. Black is player 0 and moves towards higher rows.
type Color int

const (
	Black Color = iota
	White
)

// ColorOf returns the color played by the given player index.
func ColorOf(player int) Color {
	if player == 0 {
		return Black
	}
	return White
}

func (c Color) Opponent() Color { return 1 - c }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// ParseColor accepts "black"/"b" and "white"/"w".
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Occupant is the content of a square as printed by the engine.
type Occupant byte

const (
	Empty     Occupant = '.'
	BlackPawn Occupant = 'b'
	WhitePawn Occupant = 'w'
)

// Is reports whether the square holds a pawn of the given color.
func (o Occupant) Is(c Color) bool {
	if c == Black {
		return o == BlackPawn
	}
	return o == WhitePawn
}

// ParseOccupant accepts the engine tokens ".", "b" and "w".
func ParseOccupant(s string) (Occupant, error) {
	if len(s) == 1 {
		switch o := Occupant(s[0]); o {
		case Empty, BlackPawn, WhitePawn:
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown occupant %q", s)
}

// Board is the engine's string rendering of a position: one line per row,
// each a row label, eight squares and a newline.
type Board string

const rowStride = Cols + 2

// At returns the occupant of c. ok is false for off-board cells and for
// boards too short to contain c.
func (b Board) At(c Cell) (o Occupant, ok bool) {
	if !c.OnBoard() {
		return 0, false
	}
	i := c.Row*rowStride + c.Col + 1
	if i >= len(b) {
		return 0, false
	}
	return Occupant(b[i]), true
}

// Screen geometry of the board image.
const (
	gridOffset = 246
	cellSize   = 84
	borderSize = 6
	pawnOffset = 240
	pawnUnit   = 89
)

// CellAt maps a pointer position in pixels to the cell under it. The result
// may be off the board.
func CellAt(x, y int) Cell {
	span := float64(cellSize + borderSize)
	return Cell{
		Row: int(math.Floor(float64(y-gridOffset+borderSize) / span)),
		Col: int(math.Floor(float64(x-gridOffset+borderSize) / span)),
	}
}

// CellOrigin is the top-left pixel where a pawn on c is drawn.
func CellOrigin(c Cell) (x, y int) {
	return c.Col*pawnUnit + pawnOffset, c.Row*pawnUnit + pawnOffset
}
