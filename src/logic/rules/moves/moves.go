package moves

import (
	"clickchess/src/base"
)

// Pseudo-legal reachability per piece kind. Nothing here knows about
// side-to-move or king safety; own-side exclusion is left to the caller.

var (
	knightTable [base.NumSquares]base.SquareSet
	kingTable   [base.NumSquares]base.SquareSet

	knightOffsets = [8][2]int{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
	kingOffsets   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func init() {
	for i := 0; i < base.NumSquares; i++ {
		sq := base.Square(i)
		for _, o := range knightOffsets {
			if to, ok := sq.Offset(o[0], o[1]); ok {
				knightTable[i] = knightTable[i].Add(to)
			}
		}
		for _, o := range kingOffsets {
			if to, ok := sq.Offset(o[0], o[1]); ok {
				kingTable[i] = kingTable[i].Add(to)
			}
		}
	}
}

func KnightReach(sq base.Square) base.SquareSet { return knightTable[sq] }

func KingReach(sq base.Square) base.SquareSet { return kingTable[sq] }

// genSliding walks every ray until the board edge or the first occupant,
// the occupant's square is included (caller masks own pieces)
func genSliding(sq base.Square, occ base.SquareSet, dirs [4][2]int) base.SquareSet {
	var out base.SquareSet
	for _, d := range dirs {
		for step := 1; ; step++ {
			to, ok := sq.Offset(d[0]*step, d[1]*step)
			if !ok {
				break
			}
			out = out.Add(to)
			if occ.Has(to) {
				break
			}
		}
	}
	return out
}

func RookReach(sq base.Square, occ base.SquareSet) base.SquareSet {
	return genSliding(sq, occ, rookDirs)
}

func BishopReach(sq base.Square, occ base.SquareSet) base.SquareSet {
	return genSliding(sq, occ, bishopDirs)
}

func pawnDir(side base.Side) (dir, startRank int) {
	if side == base.White {
		return 1, 1
	}
	return -1, 6
}

// PawnPushes returns plain advances only: one step if empty, two steps from
// the start rank if both squares are empty
func PawnPushes(sq base.Square, side base.Side, occ base.SquareSet) base.SquareSet {
	var out base.SquareSet
	dir, startRank := pawnDir(side)
	one, ok := sq.Offset(0, dir)
	if !ok || occ.Has(one) {
		return out
	}
	out = out.Add(one)
	if sq.Rank() == startRank {
		if two, ok := sq.Offset(0, 2*dir); ok && !occ.Has(two) {
			out = out.Add(two)
		}
	}
	return out
}

// PawnAttacks returns the diagonal geometry regardless of occupancy
func PawnAttacks(sq base.Square, side base.Side) base.SquareSet {
	var out base.SquareSet
	dir, _ := pawnDir(side)
	for _, df := range []int{-1, 1} {
		if to, ok := sq.Offset(df, dir); ok {
			out = out.Add(to)
		}
	}
	return out
}

// apply move to a copy of the position
func ApplyMove(pos base.Position, mv base.Move) base.Position {
	pc, ok := pos.PieceAt(mv.From)
	if !ok {
		return pos
	}
	if mv.Promotion != 0 {
		pc.Kind = mv.Promotion
	}
	pos.Mailbox.Remove(mv.From)
	pos.Mailbox.Put(mv.To, pc)
	pos.ToMove = pos.ToMove.Other()
	return pos
}
