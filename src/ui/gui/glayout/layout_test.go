package glayout

import (
	"clickchess/src/base"
	"testing"
)

func TestPixelSquareRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		l := NewLayout(880, 640, flipped)
		for i := 0; i < base.NumSquares; i++ {
			sq := base.Square(i)
			cx, cy := l.SquareCenter(sq)
			got, ok := l.PixelToSquare(int(cx), int(cy))
			if !ok || got != sq {
				t.Fatalf("flipped=%v: centre of %v maps to %v %v", flipped, sq, got, ok)
			}
			x, y := l.SquareOrigin(sq)
			if got, _ := l.PixelToSquare(x+l.SqSize-1, y+l.SqSize-1); got != sq {
				t.Fatalf("flipped=%v: far corner of %v maps to %v", flipped, sq, got)
			}
		}
	}
}

func TestOrientation(t *testing.T) {
	l := NewLayout(880, 640, false)
	if sq, _ := l.PixelToSquare(l.BoardX, l.BoardY); sq != base.A8 {
		t.Errorf("top-left %v, want a8", sq)
	}
	l = NewLayout(880, 640, true)
	if sq, _ := l.PixelToSquare(l.BoardX, l.BoardY); sq != base.H1 {
		t.Errorf("flipped top-left %v, want h1", sq)
	}
}

func TestOutsideBoard(t *testing.T) {
	l := NewLayout(880, 640, false)
	for _, p := range [][2]int{{0, 0}, {l.BoardX - 1, l.BoardY}, {l.BoardX + l.BoardSize, l.BoardY}, {l.BoardX, l.BoardY + l.BoardSize}} {
		if sq, ok := l.PixelToSquare(p[0], p[1]); ok {
			t.Errorf("pixel %v maps to %v", p, sq)
		}
	}
}

func TestBoardFitsWindow(t *testing.T) {
	for _, size := range [][2]int{{880, 640}, {1600, 900}, {700, 500}} {
		l := NewLayout(size[0], size[1], false)
		if l.BoardSize != 8*l.SqSize || l.SqSize <= 0 {
			t.Errorf("%v: board %d square %d", size, l.BoardSize, l.SqSize)
		}
		if l.BoardX < panelW {
			t.Errorf("%v: board overlaps the button panel", size)
		}
	}
}

func TestBoardClickNeedsPressOnBoard(t *testing.T) {
	l := NewLayout(880, 640, false)
	cx, cy := l.SquareCenter(base.E2)
	x, y := int(cx), int(cy)

	var bc BoardClick
	bc.Update(l, x, y, true, false)
	if sq, ok := bc.Update(l, x, y, false, true); !ok || sq != base.E2 {
		t.Fatalf("press and release on e2 gave %v %v", sq, ok)
	}

	// pressed on the button panel, dragged onto the board
	bc.Update(l, 40, l.BoardY+50, true, false)
	bc.Update(l, x, y, false, false)
	if sq, ok := bc.Update(l, x, y, false, true); ok {
		t.Errorf("drag from the panel clicked %v", sq)
	}

	// pressed on the board, released outside
	bc.Update(l, x, y, true, false)
	if sq, ok := bc.Update(l, 5, 5, false, true); ok {
		t.Errorf("release outside clicked %v", sq)
	}

	// a release with no press before it
	if _, ok := bc.Update(l, x, y, false, true); ok {
		t.Error("stray release clicked")
	}
}

func TestFrameSurroundsBoard(t *testing.T) {
	l := NewLayout(880, 640, false)
	x, y, size := l.Frame()
	if x >= l.BoardX || y >= l.BoardY || x+size <= l.BoardX+l.BoardSize || y+size <= l.BoardY+l.BoardSize {
		t.Errorf("frame (%d,%d,%d) does not enclose board %+v", x, y, size, l)
	}
	if _, _, bigger := NewLayout(1600, 900, false).Frame(); bigger <= size {
		t.Errorf("frame did not grow with the window: %d <= %d", bigger, size)
	}
}
