package moves

import (
	"clickchess/src/base"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKnightReach(t *testing.T) {
	tests := []struct {
		name string
		sq   base.Square
		want []base.Square
	}{
		{"corner", base.A1, []base.Square{base.C2, base.B3}},
		{"center", base.D4, []base.Square{base.C2, base.E2, base.B3, base.F3, base.B5, base.F5, base.C6, base.E6}},
		{"edge", base.H5, []base.Square{base.G3, base.F4, base.F6, base.G7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, KnightReach(tt.sq).Squares()); diff != "" {
				t.Errorf("knight from %v (-want +got):\n%s", tt.sq, diff)
			}
		})
	}
}

func TestKingReach(t *testing.T) {
	if got := KingReach(base.A1); got != base.SetOf(base.B1, base.A2, base.B2) {
		t.Errorf("king a1 = %v", got)
	}
	if got := KingReach(base.E4).Len(); got != 8 {
		t.Errorf("king e4 reaches %d squares", got)
	}
}

func TestSlidingStopsAtFirstOccupant(t *testing.T) {
	occ := base.SetOf(base.D4, base.D6, base.F4, base.B6)

	rook := RookReach(base.D4, occ)
	want := base.SetOf(
		base.D5, base.D6, // blocked by d6, included
		base.D3, base.D2, base.D1,
		base.E4, base.F4, // blocked by f4
		base.C4, base.B4, base.A4,
	)
	if rook != want {
		t.Errorf("rook d4 = %v, want %v", rook, want)
	}

	bishop := BishopReach(base.D4, occ)
	wantB := base.SetOf(
		base.E5, base.F6, base.G7, base.H8,
		base.C5, base.B6, // blocked by b6
		base.E3, base.F2, base.G1,
		base.C3, base.B2, base.A1,
	)
	if bishop != wantB {
		t.Errorf("bishop d4 = %v, want %v", bishop, wantB)
	}
}

func TestPawnPushes(t *testing.T) {
	tests := []struct {
		name string
		sq   base.Square
		side base.Side
		occ  base.SquareSet
		want base.SquareSet
	}{
		{"white start", base.E2, base.White, 0, base.SetOf(base.E3, base.E4)},
		{"black start", base.E7, base.Black, 0, base.SetOf(base.E6, base.E5)},
		{"white moved", base.E3, base.White, 0, base.SetOf(base.E4)},
		{"blocked", base.E2, base.White, base.SetOf(base.E3), 0},
		{"double blocked", base.E2, base.White, base.SetOf(base.E4), base.SetOf(base.E3)},
		{"last rank", base.E8, base.White, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PawnPushes(tt.sq, tt.side, tt.occ); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	if got := PawnAttacks(base.E4, base.White); got != base.SetOf(base.D5, base.F5) {
		t.Errorf("white e4 = %v", got)
	}
	if got := PawnAttacks(base.A7, base.Black); got != base.SetOf(base.B6) {
		t.Errorf("black a7 = %v", got)
	}
}

func TestApplyMove(t *testing.T) {
	var pos base.Position
	pos.Mailbox.Put(base.E7, base.Piece{Kind: base.Pawn, Side: base.White})
	pos.Mailbox.Put(base.D8, base.Piece{Kind: base.Rook, Side: base.Black})

	next := ApplyMove(pos, base.Move{From: base.E7, To: base.D8, Promotion: base.Queen})
	if _, ok := next.PieceAt(base.E7); ok {
		t.Error("origin not vacated")
	}
	if pc, _ := next.PieceAt(base.D8); pc != (base.Piece{Kind: base.Queen, Side: base.White}) {
		t.Errorf("d8 holds %v", pc)
	}
	if next.ToMove != base.Black {
		t.Error("side to move not flipped")
	}
	if pc, _ := pos.PieceAt(base.D8); pc.Kind != base.Rook {
		t.Error("input position was modified")
	}

	same := ApplyMove(pos, base.Move{From: base.A1, To: base.A2})
	if same != pos {
		t.Error("move from an empty square must not change the position")
	}
}
