package glayout

import "clickchess/src/base"

// Layout places the board inside the window, rank 8 at the top unless flipped
type Layout struct {
	BoardX, BoardY int // top-left pixel
	BoardSize      int // pixel size (square*8)
	SqSize         int // pixel size per square
	Flipped        bool
}

const (
	panelW   = 220 // space reserved for buttons on the left
	minBoard = 320
)

func NewLayout(windowW, windowH int, flipped bool) Layout {
	size := windowW - 2*panelW
	if size > windowH-80 {
		size = windowH - 80
	}
	if size < minBoard {
		size = minBoard
	}
	sq := size / 8
	size = sq * 8
	x := panelW + (windowW-2*panelW-size)/2
	if x < panelW {
		x = panelW
	}
	return Layout{
		BoardX:    x,
		BoardY:    (windowH - size) / 2,
		BoardSize: size,
		SqSize:    sq,
		Flipped:   flipped,
	}
}

func (l Layout) InBoard(px, py int) bool {
	return px >= l.BoardX && py >= l.BoardY && px < l.BoardX+l.BoardSize && py < l.BoardY+l.BoardSize
}

// PixelToSquare returns false for pixels outside the board
func (l Layout) PixelToSquare(px, py int) (base.Square, bool) {
	if !l.InBoard(px, py) || l.SqSize <= 0 {
		return 0, false
	}
	col := (px - l.BoardX) / l.SqSize
	row := (py - l.BoardY) / l.SqSize
	if l.Flipped {
		return base.NewSquare(7-col, row)
	}
	return base.NewSquare(col, 7-row)
}

// SquareOrigin returns the top-left pixel of sq
func (l Layout) SquareOrigin(sq base.Square) (int, int) {
	col, row := sq.File(), 7-sq.Rank()
	if l.Flipped {
		col, row = 7-sq.File(), sq.Rank()
	}
	return l.BoardX + col*l.SqSize, l.BoardY + row*l.SqSize
}

// SquareCenter returns the centre pixel of sq
func (l Layout) SquareCenter(sq base.Square) (float64, float64) {
	x, y := l.SquareOrigin(sq)
	half := float64(l.SqSize) / 2
	return float64(x) + half, float64(y) + half
}

const framePad = 4

// Frame is the square drawn behind the board
func (l Layout) Frame() (x, y, size int) {
	return l.BoardX - framePad, l.BoardY - framePad, l.BoardSize + 2*framePad
}

// BoardClick pairs a mouse press with its release. A release yields a
// square only when the press also landed on the board.
type BoardClick struct {
	pressedOnBoard bool
}

func (bc *BoardClick) Update(l Layout, px, py int, justPressed, justReleased bool) (base.Square, bool) {
	if justPressed {
		bc.pressedOnBoard = l.InBoard(px, py)
	}
	if !justReleased {
		return 0, false
	}
	pressed := bc.pressedOnBoard
	bc.pressedOnBoard = false
	if !pressed {
		return 0, false
	}
	return l.PixelToSquare(px, py)
}
