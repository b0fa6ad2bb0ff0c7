package selection

import (
	"clickchess/src/base"
)

type Category uint8

const (
	Plain Category = iota
	Occupied
	Highlighted
)

func (c Category) String() string {
	switch c {
	case Occupied:
		return "occupied"
	case Highlighted:
		return "highlighted"
	default:
		return "plain"
	}
}

// Projection is the display category of every square, indexed by square
type Projection [base.NumSquares]Category

func (p Projection) At(sq base.Square) Category { return p[sq] }

// Squares lists every square of the given category
func (p Projection) Squares(c Category) base.SquareSet {
	var out base.SquareSet
	for i, cat := range p {
		if cat == c {
			out = out.Add(base.Square(i))
		}
	}
	return out
}

// Project maps a position and a selection to display categories. An
// occupied square is Occupied even when it is selected or capturable;
// only empty move-set squares are Highlighted. Capture targets are read
// from State.Moves(), not from the category.
func Project(pos base.Position, st State) Projection {
	var p Projection
	moves := st.Moves()
	for i := range p {
		sq := base.Square(i)
		_, occupied := pos.PieceAt(sq)
		switch {
		case occupied:
			p[i] = Occupied
		case moves.Has(sq):
			p[i] = Highlighted
		default:
			p[i] = Plain
		}
	}
	return p
}
