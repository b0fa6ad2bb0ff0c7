package cli

import (
	"clickchess/src/base"
	"clickchess/src/logic/selection"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	lightSq    = color.New(color.BgWhite, color.FgBlack)
	darkSq     = color.New(color.BgHiBlack, color.FgHiWhite)
	highlight  = color.New(color.BgGreen, color.FgBlack)
	selectedSq = color.New(color.BgYellow, color.FgBlack)
	captureSq  = color.New(color.BgRed, color.FgHiWhite)
)

// cell text is three columns wide so the board keeps its shape without colour:
// "[P]" selected, "(p)" capturable, " * " highlighted
func cellText(pc base.Piece, cat selection.Category, selected, capture bool) string {
	switch {
	case selected:
		return "[" + pc.Glyph() + "]"
	case capture:
		return "(" + pc.Glyph() + ")"
	case cat == selection.Highlighted:
		return " * "
	case cat == selection.Occupied:
		return " " + pc.Glyph() + " "
	default:
		return "   "
	}
}

func cellColor(sq base.Square, cat selection.Category, selected, capture bool) *color.Color {
	switch {
	case selected:
		return selectedSq
	case capture:
		return captureSq
	case cat == selection.Highlighted:
		return highlight
	case sq.IsLight():
		return lightSq
	default:
		return darkSq
	}
}

func PrintBoard(w io.Writer, pos base.Position, st selection.State, proj selection.Projection, flipped bool) {
	files := "   a  b  c  d  e  f  g  h"
	if flipped {
		files = "   h  g  f  e  d  c  b  a"
	}
	selSq, active := st.Square()
	moves := st.Moves()

	fmt.Fprintln(w)
	fmt.Fprintln(w, files)
	for row := 0; row < 8; row++ {
		rank := 7 - row
		if flipped {
			rank = row
		}
		fmt.Fprintf(w, "%d ", rank+1)
		for col := 0; col < 8; col++ {
			file := col
			if flipped {
				file = 7 - col
			}
			sq, _ := base.NewSquare(file, rank)
			pc, _ := pos.PieceAt(sq)
			cat := proj.At(sq)
			selected := active && sq == selSq
			capture := cat == selection.Occupied && moves.Has(sq)
			fmt.Fprint(w, cellColor(sq, cat, selected, capture).Sprint(cellText(pc, cat, selected, capture)))
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, files)
	fmt.Fprintln(w)
}
