package base

import (
	"math/bits"
	"strings"
)

// SquareSet is a 64-bit set, one bit per square
type SquareSet uint64

const (
	EmptySet SquareSet = 0
	FullSet  SquareSet = ^SquareSet(0)
)

func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

func (s SquareSet) Has(sq Square) bool { return s&(1<<sq) != 0 }

func (s SquareSet) Add(sq Square) SquareSet { return s | (1 << sq) }

func (s SquareSet) Remove(sq Square) SquareSet { return s &^ (1 << sq) }

func (s SquareSet) Union(o SquareSet) SquareSet { return s | o }

func (s SquareSet) Intersect(o SquareSet) SquareSet { return s & o }

func (s SquareSet) Minus(o SquareSet) SquareSet { return s &^ o }

func (s SquareSet) Complement() SquareSet { return ^s }

func (s SquareSet) Empty() bool { return s == 0 }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Squares lists members in ascending order
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	s.Each(func(sq Square) {
		out = append(out, sq)
	})
	return out
}

func (s SquareSet) Each(fn func(Square)) {
	rest := uint64(s)
	for rest != 0 {
		fn(Square(bits.TrailingZeros64(rest)))
		rest &= rest - 1
	}
}

func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	s.Each(func(sq Square) {
		names = append(names, sq.String())
	})
	return "{" + strings.Join(names, ",") + "}"
}
