package tui

import (
	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/logic/selection"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCellSquareRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		for i := 0; i < base.NumSquares; i++ {
			sq := base.Square(i)
			x, y := SquareToCell(sq, flipped)
			for dx := 0; dx < squareWidth; dx++ {
				got, ok := CellToSquare(x+dx, y, flipped)
				if !ok || got != sq {
					t.Fatalf("flipped=%v %v: cell (%d,%d) maps to %v %v", flipped, sq, x+dx, y, got, ok)
				}
			}
		}
	}
}

func TestCellOutsideBoard(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {leftMargin - 1, topMargin}, {leftMargin + 8*squareWidth, topMargin}, {leftMargin, topMargin + 8}, {leftMargin, topMargin - 1}} {
		if sq, ok := CellToSquare(c[0], c[1], false); ok {
			t.Errorf("cell %v maps to %v", c, sq)
		}
	}
}

func TestCornerCells(t *testing.T) {
	if sq, _ := CellToSquare(leftMargin, topMargin, false); sq != base.A8 {
		t.Errorf("top-left is %v, want a8", sq)
	}
	if sq, _ := CellToSquare(leftMargin, topMargin, true); sq != base.H1 {
		t.Errorf("flipped top-left is %v, want h1", sq)
	}
}

func newSimTUI(t *testing.T) (*TUIProcessing, tcell.SimulationScreen, *src.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	s := src.NewSession(nil, selection.Sticky)
	return NewTUI(s, screen, LightTheme, false, nil), screen, s
}

func click(tu *TUIProcessing, sq base.Square) {
	x, y := SquareToCell(sq, tu.flipped)
	tu.HandleEvent(tcell.NewEventMouse(x+1, y, tcell.Button1, tcell.ModNone))
	tu.HandleEvent(tcell.NewEventMouse(x+1, y, tcell.ButtonNone, tcell.ModNone))
}

func TestMouseClicksMovePiece(t *testing.T) {
	tu, screen, s := newSimTUI(t)

	click(tu, base.E2)
	if !s.Selection().IsActive() {
		t.Fatal("e2 not selected")
	}
	tu.Draw()
	x, y := SquareToCell(base.E4, false)
	if r, _, _, _ := screen.GetContent(x+1, y); r != '·' {
		t.Errorf("e4 cell shows %q, want a move marker", r)
	}

	click(tu, base.E4)
	if s.SideToMove() != base.Black {
		t.Fatal("move not played")
	}
	tu.Draw()
	if r, _, _, _ := screen.GetContent(x+1, y); r != []rune(base.Piece{Kind: base.Pawn, Side: base.White}.Glyph())[0] {
		t.Errorf("e4 cell shows %q after the move", r)
	}
}

func TestHeldButtonClicksOnce(t *testing.T) {
	tu, _, s := newSimTUI(t)
	x, y := SquareToCell(base.E2, false)
	tu.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	// drag events keep the button down and must not click again
	tu.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	if !s.Selection().IsActive() || tu.status != "e2: selected" {
		t.Fatalf("status %q", tu.status)
	}
}

func TestKeys(t *testing.T) {
	tu, _, s := newSimTUI(t)
	if !tu.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)) || !tu.flipped {
		t.Error("'f' did not flip")
	}
	click(tu, base.E2)
	if !tu.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)) || s.Selection().IsActive() {
		t.Error("'n' did not restart")
	}
	if tu.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' did not quit")
	}
	if tu.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not quit")
	}
}
