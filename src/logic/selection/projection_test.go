package selection

import (
	"clickchess/src/base"
	"clickchess/src/logic/convert/convfen"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectEmptySelection(t *testing.T) {
	pos := convfen.StartPosition()
	p := Project(pos, Empty())
	if got := p.Squares(Occupied); got != pos.Occupied() {
		t.Errorf("occupied %v", got)
	}
	if got := p.Squares(Highlighted); !got.Empty() {
		t.Errorf("highlighted %v with nothing selected", got)
	}
	if got := p.Squares(Plain).Len(); got != 32 {
		t.Errorf("%d plain squares", got)
	}
}

func TestProjectActivePawn(t *testing.T) {
	pos := convfen.StartPosition()
	pawn := base.Piece{Kind: base.Pawn, Side: base.White}
	p := Project(pos, Active(base.E2, pawn, base.SetOf(base.E3, base.E4)))

	if diff := cmp.Diff([]base.Square{base.E3, base.E4}, p.Squares(Highlighted).Squares()); diff != "" {
		t.Errorf("highlighted (-want +got):\n%s", diff)
	}
	if got := p.Squares(Occupied); got != pos.Occupied() {
		t.Errorf("occupied %v, want every occupied square", got)
	}
	if p.At(base.E2) != Occupied {
		t.Errorf("selected square is %v", p.At(base.E2))
	}
	if p.At(base.E5) != Plain || p.At(base.A4) != Plain {
		t.Error("unrelated empty squares must be plain")
	}
}

func TestProjectCaptureSquareStaysOccupied(t *testing.T) {
	pos, err := convfen.ConvertFENToPosition("4k3/8/8/3p4/4P3/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	pawn := base.Piece{Kind: base.Pawn, Side: base.White}
	p := Project(pos, Active(base.E4, pawn, base.SetOf(base.E5, base.D5)))
	if p.At(base.D5) != Occupied {
		t.Errorf("capture target is %v", p.At(base.D5))
	}
	if p.At(base.E5) != Highlighted {
		t.Errorf("e5 is %v", p.At(base.E5))
	}
}
