package main

import (
	"fmt"
	"io"
	"spiel/breakthrough"

	"github.com/muesli/termenv"
)

// renderMove draws an empty board with the move's origin (o) and destination
// (x, or * for captures) highlighted.
func renderMove(w io.Writer, move breakthrough.Move) {
	output := termenv.NewOutput(w)
	origin := output.Color("4")
	dest := output.Color("1")

	for row := 0; row < breakthrough.Rows; row++ {
		fmt.Fprintf(w, "%d", breakthrough.Rows-row)
		for col := 0; col < breakthrough.Cols; col++ {
			cell := breakthrough.Cell{Row: row, Col: col}
			switch cell {
			case move.From:
				fmt.Fprint(w, output.String("o").Foreground(origin).Bold())
			case move.To:
				mark := "x"
				if move.Capture {
					mark = "*"
				}
				fmt.Fprint(w, output.String(mark).Foreground(dest).Bold())
			default:
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, " abcdefgh")
}
