package convfen

import (
	"clickchess/src/base"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// ConvertPositionToFEN writes placement and side to move; castling and
// en-passant are not tracked and always written as "-"
func ConvertPositionToFEN(pos base.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := pos.Mailbox[rank*8+file]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(pc.Rune())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	if pos.ToMove == base.White {
		b.WriteString(" w")
	} else {
		b.WriteString(" b")
	}
	b.WriteString(" - - 0 1")
	return b.String()
}

// ConvertFENToPosition accepts a full FEN or just placement + side;
// fields after the side to move are ignored
func ConvertFENToPosition(fen string) (base.Position, error) {
	var pos base.Position

	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return pos, fmt.Errorf("%w: need at least 2 fields, got %d", ErrInvalidFEN, len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return pos, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for r, row := range ranks {
		rank := 7 - r
		file := 0
		for _, ch := range row {
			if file >= 8 {
				return pos, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return pos, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
				}
				continue
			}
			pc, ok := base.PieceFromRune(ch)
			if !ok {
				return pos, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			pos.Mailbox[rank*8+file] = pc
			file++
		}
		if file != 8 {
			return pos, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	switch parts[1] {
	case "w":
		pos.ToMove = base.White
	case "b":
		pos.ToMove = base.Black
	default:
		return pos, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}

	return pos, nil
}

func StartPosition() base.Position {
	pos, err := ConvertFENToPosition(base.FEN_START_GAME)
	if err != nil {
		panic(err)
	}
	return pos
}
