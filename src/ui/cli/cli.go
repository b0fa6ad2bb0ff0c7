package cli

import (
	"bufio"
	"clickchess/src"
	"clickchess/src/base"
	"fmt"
	"io"
	"strings"
)

type CLIProcessing struct {
	session *src.Session
	in      io.Reader
	out     io.Writer
	flipped bool
}

func NewCLI(s *src.Session, in io.Reader, out io.Writer, flipped bool) *CLIProcessing {
	return &CLIProcessing{session: s, in: in, out: out, flipped: flipped}
}

// line mode: every square name typed is one click
// - "fen" prints the position, "new" restarts, "flip" turns the board
// - "q" quits
func (c *CLIProcessing) Run() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type a square (e.g. e2) to click it. 'fen', 'new', 'flip', 'q' to quit.")
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "fen":
			fmt.Fprintln(c.out, c.session.FEN())
			continue
		case "new":
			c.session.CreateClassic()
			c.redraw()
			continue
		case "flip":
			c.flipped = !c.flipped
			c.redraw()
			continue
		}

		sq, err := base.ParseSquare(line)
		if err != nil {
			fmt.Fprintf(c.out, "Unknown input: %s\n", line)
			continue
		}
		outcome, _ := c.session.Click(sq)
		fmt.Fprintf(c.out, "%s: %s\n", sq, outcome)
		c.redraw()
	}
	return scanner.Err()
}

func (c *CLIProcessing) redraw() {
	pos, st, proj := c.session.Snapshot()
	PrintBoard(c.out, pos, st, proj, c.flipped)
	fmt.Fprintf(c.out, "%s to move, selection: %s\n", pos.ToMove, st)
}
