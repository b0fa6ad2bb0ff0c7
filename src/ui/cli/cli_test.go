package cli

import (
	"bytes"
	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/logic/convert/convfen"
	"clickchess/src/logic/selection"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestRunClicksAndPrintsFEN(t *testing.T) {
	s := src.NewSession(nil, selection.Sticky)
	var out bytes.Buffer
	in := strings.NewReader("e2\nE4\nfen\nz9\nq\nd7\n")

	if err := NewCLI(s, in, &out, false).Run(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"e2: selected",
		"e4: moved",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"Unknown input: z9",
		"black to move, selection: empty",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
	// input after "q" is not read
	if strings.Contains(got, "d7:") {
		t.Error("clicks processed after quit")
	}
}

func TestRunEndsOnEOF(t *testing.T) {
	s := src.NewSession(nil, selection.Sticky)
	var out bytes.Buffer
	if err := NewCLI(s, strings.NewReader("g1\n"), &out, false).Run(); err != nil {
		t.Fatal(err)
	}
	if !s.Selection().IsActive() {
		t.Error("g1 not selected")
	}
}

func TestPrintBoardMarks(t *testing.T) {
	pos := convfen.StartPosition()
	pawn := base.Piece{Kind: base.Pawn, Side: base.White}
	st := selection.Active(base.E2, pawn, base.SetOf(base.E3, base.E4))
	var out bytes.Buffer
	PrintBoard(&out, pos, st, selection.Project(pos, st), false)

	lines := strings.Split(out.String(), "\n")
	// blank, files, rank 8 .. rank 1
	rank2, rank3 := lines[8], lines[7]
	if !strings.HasPrefix(rank2, "2 ") || !strings.Contains(rank2, "["+pawn.Glyph()+"]") {
		t.Errorf("rank 2 row %q lacks the selected pawn", rank2)
	}
	if strings.Count(rank3, " * ") != 1 {
		t.Errorf("rank 3 row %q, want one highlight", rank3)
	}
}

func TestPrintBoardFlipped(t *testing.T) {
	pos := convfen.StartPosition()
	var out bytes.Buffer
	PrintBoard(&out, pos, selection.Empty(), selection.Project(pos, selection.Empty()), true)
	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[2], "1 ") || !strings.HasPrefix(lines[9], "8 ") {
		t.Errorf("flipped board rows:\n%s", out.String())
	}
	if !strings.Contains(lines[1], "h  g  f") {
		t.Errorf("flipped files %q", lines[1])
	}
}
