package breakthrough

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const initialBoard = Board(`8bbbbbbbb
7bbbbbbbb
6........
5........
4........
3........
2wwwwwwww
1wwwwwwww
 abcdefgh
`)

func TestBoardAt(t *testing.T) {
	t.Run("reads pawns and empty squares", func(t *testing.T) {
		o, ok := initialBoard.At(Cell{0, 0})
		require.True(t, ok)
		require.Equal(t, BlackPawn, o)

		o, _ = initialBoard.At(Cell{3, 5})
		require.Equal(t, Empty, o)

		o, _ = initialBoard.At(Cell{7, 7})
		require.Equal(t, WhitePawn, o)
	})

	t.Run("off-board cells", func(t *testing.T) {
		_, ok := initialBoard.At(Cell{8, 0})
		require.False(t, ok)
		_, ok = initialBoard.At(Cell{0, -1})
		require.False(t, ok)
	})

	t.Run("short board", func(t *testing.T) {
		_, ok := Board("8bb").At(Cell{5, 5})
		require.False(t, ok)
	})
}

func TestCellLabels(t *testing.T) {
	require.Equal(t, "a8", Cell{0, 0}.String())
	require.Equal(t, "h1", Cell{7, 7}.String())

	c, err := ParseCell("b6")
	require.NoError(t, err)
	require.Equal(t, Cell{2, 1}, c)

	for _, label := range []string{"", "a", "i1", "a9", "a0", "A1", "a10"} {
		_, err := ParseCell(label)
		require.Error(t, err, "label %q", label)
	}
}

func TestParseColorAndOccupant(t *testing.T) {
	c, err := ParseColor("w")
	require.NoError(t, err)
	require.Equal(t, White, c)
	_, err = ParseColor("red")
	require.Error(t, err)

	o, err := ParseOccupant("b")
	require.NoError(t, err)
	require.Equal(t, BlackPawn, o)
	_, err = ParseOccupant("x")
	require.Error(t, err)

	require.Equal(t, Black, ColorOf(0))
	require.Equal(t, White, ColorOf(1))
	require.Equal(t, White, Black.Opponent())
}

func TestScreenMapping(t *testing.T) {
	t.Run("pixels to cells", func(t *testing.T) {
		require.Equal(t, Cell{0, 0}, CellAt(240, 240))
		require.Equal(t, Cell{0, 1}, CellAt(330, 300), "Next cell starts every 90 pixels")
		require.Equal(t, Cell{7, 7}, CellAt(900, 900))
		require.Equal(t, Cell{-1, -1}, CellAt(200, 200), "Clicks in the margin are off the board")
	})

	t.Run("cells to pixels", func(t *testing.T) {
		x, y := CellOrigin(Cell{Row: 2, Col: 3})
		require.Equal(t, 3*89+240, x)
		require.Equal(t, 2*89+240, y)
	})
}
