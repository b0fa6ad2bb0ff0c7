package base

import (
	"errors"
	"fmt"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidSquare = errors.New("invalid square")

// ---- Square ----

// Square is a board square, indexed rank*8+file (a1 = 0, h8 = 63)
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const NumSquares = 64

func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return Square(rank*8 + file), true
}

func SquareFromIndex(i int) (Square, bool) {
	if i < 0 || i >= NumSquares {
		return 0, false
	}
	return Square(i), true
}

// 'a' ~ 'h' to file, '1' ~ '8' to rank
func ParseSquare(pos string) (Square, error) {
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, pos)
	}
	return Square(int(pos[1]-'1')*8 + int(pos[0]-'a')), nil
}

func (s Square) Index() int { return int(s) }
func (s Square) File() int  { return int(s) % 8 }
func (s Square) Rank() int  { return int(s) / 8 }

// Offset returns the square df files and dr ranks away, false if off board
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// IsLight reports the colour of the square itself (a1 is dark)
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

func (s Square) String() string {
	if int(s) >= NumSquares {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ---- Side ----

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// ---- Piece ----

type PieceKind uint8

// zero value is reserved for "no piece"
const (
	Pawn PieceKind = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

var AllKinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

type Piece struct {
	Kind PieceKind
	Side Side
}

var EmptyPiece = Piece{}

func (p Piece) IsEmpty() bool { return p.Kind == 0 }

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

func PieceFromRune(r rune) (Piece, bool) {
	side := White
	if r >= 'a' && r <= 'z' {
		side = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'P':
		return Piece{Pawn, side}, true
	case 'N':
		return Piece{Knight, side}, true
	case 'B':
		return Piece{Bishop, side}, true
	case 'R':
		return Piece{Rook, side}, true
	case 'Q':
		return Piece{Queen, side}, true
	case 'K':
		return Piece{King, side}, true
	default:
		return EmptyPiece, false
	}
}

// upper case for white, lower case for black, '.' for empty
func (p Piece) Rune() rune {
	var r rune
	switch p.Kind {
	case Pawn:
		r = 'P'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Rook:
		r = 'R'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if p.Side == Black {
		r += 'a' - 'A'
	}
	return r
}

// Glyph returns the unicode chess symbol of the piece
func (p Piece) Glyph() string {
	white := [...]string{"♙", "♘", "♗", "♖", "♕", "♔"}
	black := [...]string{"♟", "♞", "♝", "♜", "♛", "♚"}
	if p.IsEmpty() || p.Kind > King {
		return " "
	}
	if p.Side == White {
		return white[p.Kind-1]
	}
	return black[p.Kind-1]
}

// ---- Position ----

type Mailbox [NumSquares]Piece

func (mb *Mailbox) Put(sq Square, p Piece) { mb[sq] = p }
func (mb *Mailbox) Remove(sq Square)       { mb[sq] = EmptyPiece }

// Position is copied by value: a copy never aliases the original
type Position struct {
	Mailbox Mailbox
	ToMove  Side
}

func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if int(sq) >= NumSquares {
		return EmptyPiece, false
	}
	pc := p.Mailbox[sq]
	return pc, !pc.IsEmpty()
}

func (p *Position) Occupied() SquareSet {
	var set SquareSet
	for i, pc := range p.Mailbox {
		if !pc.IsEmpty() {
			set = set.Add(Square(i))
		}
	}
	return set
}

func (p *Position) SideSet(side Side) SquareSet {
	var set SquareSet
	for i, pc := range p.Mailbox {
		if !pc.IsEmpty() && pc.Side == side {
			set = set.Add(Square(i))
		}
	}
	return set
}

// ---- Move ----

// Promotion is zero when the moved piece keeps its kind
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != 0 {
		s += string(Piece{Kind: m.Promotion, Side: Black}.Rune())
	}
	return s
}
