package position

import (
	"clickchess/src/base"
	"clickchess/src/logic/rules"
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// Store is the single source of truth for the board and turn order.
// The position only changes through ApplyMove.
type Store struct {
	pos   base.Position
	rules rules.Engine
}

func NewStore(pos base.Position, engine rules.Engine) *Store {
	if engine == nil {
		engine = rules.Standard()
	}
	return &Store{pos: pos, rules: engine}
}

func (s *Store) PieceAt(sq base.Square) (base.Piece, bool) {
	return s.pos.PieceAt(sq)
}

func (s *Store) SideToMove() base.Side { return s.pos.ToMove }

// Position returns a copy
func (s *Store) Position() base.Position { return s.pos }

// LegalDestinations is the pseudo-legal move-set of the piece on sq, empty
// when sq is vacant. Squares held by the mover's own side are never included.
func (s *Store) LegalDestinations(sq base.Square) base.SquareSet {
	pc, ok := s.pos.PieceAt(sq)
	if !ok {
		return base.EmptySet
	}
	occ := s.pos.Occupied()
	own := s.pos.SideSet(pc.Side)

	var reach base.SquareSet
	switch pc.Kind {
	case base.Pawn:
		enemy := s.pos.SideSet(pc.Side.Other())
		captures := s.rules.PawnAttacks(sq, pc.Side).Intersect(enemy)
		reach = s.rules.PawnPushes(sq, pc.Side, occ).Union(captures)
	case base.Knight:
		reach = s.rules.Knight(sq)
	case base.Bishop:
		reach = s.rules.Bishop(sq, occ)
	case base.Rook:
		reach = s.rules.Rook(sq, occ)
	case base.Queen:
		reach = s.rules.Rook(sq, occ).Union(s.rules.Bishop(sq, occ))
	case base.King:
		reach = s.rules.King(sq)
	}
	return reach.Minus(own)
}

// ApplyMove moves the side-to-move piece on from to a square in its current
// move-set and hands the turn over. Anything else is rejected and the
// position stays as it was.
func (s *Store) ApplyMove(from, to base.Square) error {
	pc, ok := s.pos.PieceAt(from)
	if !ok {
		return fmt.Errorf("%w: no piece on %v", ErrIllegalMove, from)
	}
	if pc.Side != s.pos.ToMove {
		return fmt.Errorf("%w: %v is not %v to move", ErrIllegalMove, pc, s.pos.ToMove)
	}
	if !s.LegalDestinations(from).Has(to) {
		return fmt.Errorf("%w: %v cannot reach %v from %v", ErrIllegalMove, pc, to, from)
	}
	s.pos = s.rules.ApplyMove(s.pos, base.Move{From: from, To: to})
	return nil
}
