package rules

import (
	"clickchess/src/base"
	"clickchess/src/logic/rules/moves"
)

// Engine is the rules capability consumed by the position store. Every
// reachability method is pseudo-legal and ignores which side owns the target
// square; Queen and pawn captures are composed by the caller.
type Engine interface {
	PawnPushes(sq base.Square, side base.Side, occ base.SquareSet) base.SquareSet
	PawnAttacks(sq base.Square, side base.Side) base.SquareSet
	Knight(sq base.Square) base.SquareSet
	Bishop(sq base.Square, occ base.SquareSet) base.SquareSet
	Rook(sq base.Square, occ base.SquareSet) base.SquareSet
	King(sq base.Square) base.SquareSet
	ApplyMove(pos base.Position, mv base.Move) base.Position
}

type standard struct{}

// Standard returns the orthodox chess movement rules
func Standard() Engine { return standard{} }

func (standard) PawnPushes(sq base.Square, side base.Side, occ base.SquareSet) base.SquareSet {
	return moves.PawnPushes(sq, side, occ)
}

func (standard) PawnAttacks(sq base.Square, side base.Side) base.SquareSet {
	return moves.PawnAttacks(sq, side)
}

func (standard) Knight(sq base.Square) base.SquareSet { return moves.KnightReach(sq) }

func (standard) Bishop(sq base.Square, occ base.SquareSet) base.SquareSet {
	return moves.BishopReach(sq, occ)
}

func (standard) Rook(sq base.Square, occ base.SquareSet) base.SquareSet {
	return moves.RookReach(sq, occ)
}

func (standard) King(sq base.Square) base.SquareSet { return moves.KingReach(sq) }

func (standard) ApplyMove(pos base.Position, mv base.Move) base.Position {
	return moves.ApplyMove(pos, mv)
}
