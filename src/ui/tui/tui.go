package tui

import (
	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/logic/selection"
	"clickchess/src/logx"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	leftMargin  = 4
	topMargin   = 3
	squareWidth = 3 // columns per square, one row per square
)

// Theme holds the tcell colors used to render the board
type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	Highlight   tcell.Color
	Selected    tcell.Color
	Capture     tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
}

var LightTheme = Theme{
	SquareLight: tcell.NewRGBColor(0xcc, 0xb7, 0xae),
	SquareDark:  tcell.NewRGBColor(0x70, 0x66, 0x77),
	Highlight:   tcell.NewRGBColor(0x8f, 0xbc, 0x8f),
	Selected:    tcell.NewRGBColor(0xe6, 0xc8, 0x4c),
	Capture:     tcell.NewRGBColor(0xd0, 0x5a, 0x4e),
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Label:       tcell.ColorReset,
}

var DarkTheme = Theme{
	SquareLight: tcell.NewRGBColor(0x5c, 0x5c, 0x5c),
	SquareDark:  tcell.NewRGBColor(0x2e, 0x2e, 0x2e),
	Highlight:   tcell.NewRGBColor(0x2a, 0x7a, 0x4a),
	Selected:    tcell.NewRGBColor(0x2a, 0xa1, 0xd1),
	Capture:     tcell.NewRGBColor(0xa0, 0x30, 0x30),
	White:       tcell.ColorWhite,
	Black:       tcell.NewRGBColor(0x11, 0x11, 0x11),
	Label:       tcell.ColorReset,
}

func ThemeFromString(name string) Theme {
	if name == "dark" {
		return DarkTheme
	}
	return LightTheme
}

type TUIProcessing struct {
	session     *src.Session
	screen      tcell.Screen
	theme       Theme
	flipped     bool
	logger      logx.Logger
	lastButtons tcell.ButtonMask
	status      string
}

func NewTUI(s *src.Session, screen tcell.Screen, theme Theme, flipped bool, logger logx.Logger) *TUIProcessing {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &TUIProcessing{session: s, screen: screen, theme: theme, flipped: flipped, logger: logger}
}

// Run takes over the terminal until 'q', Esc or Ctrl+C
func (t *TUIProcessing) Run() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("error init screen: %w", err)
	}
	defer t.screen.Fini()
	t.screen.EnableMouse()
	t.screen.Clear()

	for {
		t.Draw()
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !t.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent returns false when the user asked to quit
func (t *TUIProcessing) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'f':
			t.flipped = !t.flipped
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
			t.session.CreateClassic()
			t.status = "new game"
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0
		t.lastButtons = buttons
		if !pressed {
			return true
		}
		x, y := ev.Position()
		sq, ok := CellToSquare(x, y, t.flipped)
		if !ok {
			return true
		}
		outcome, _ := t.session.Click(sq)
		t.status = fmt.Sprintf("%v: %v", sq, outcome)
		t.logger.Debugf("tui click %v: %v", sq, outcome)
	}
	return true
}

// CellToSquare maps a terminal cell to a board square
func CellToSquare(x, y int, flipped bool) (base.Square, bool) {
	col := (x - leftMargin) / squareWidth
	row := y - topMargin
	if x < leftMargin || col > 7 || row < 0 || row > 7 {
		return 0, false
	}
	file, rank := col, 7-row
	if flipped {
		file, rank = 7-col, row
	}
	return base.NewSquare(file, rank)
}

// SquareToCell returns the left-most cell of the square
func SquareToCell(sq base.Square, flipped bool) (int, int) {
	col, row := sq.File(), 7-sq.Rank()
	if flipped {
		col, row = 7-sq.File(), sq.Rank()
	}
	return leftMargin + col*squareWidth, topMargin + row
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *TUIProcessing) squareStyle(sq base.Square, cat selection.Category, st selection.State) tcell.Style {
	bg := t.theme.SquareDark
	if sq.IsLight() {
		bg = t.theme.SquareLight
	}
	selSq, active := st.Square()
	switch {
	case active && sq == selSq:
		bg = t.theme.Selected
	case cat == selection.Highlighted:
		bg = t.theme.Highlight
	case cat == selection.Occupied && st.Moves().Has(sq):
		bg = t.theme.Capture
	}
	return tcell.StyleDefault.Background(bg)
}

func (t *TUIProcessing) Draw() {
	s := t.screen
	s.Clear()
	pos, st, proj := t.session.Snapshot()

	label := tcell.StyleDefault.Foreground(t.theme.Label)
	drawText(s, leftMargin, topMargin-2, label, fmt.Sprintf(" %s to move ", pos.ToMove))

	for i := 0; i < base.NumSquares; i++ {
		sq := base.Square(i)
		x, y := SquareToCell(sq, t.flipped)
		style := t.squareStyle(sq, proj.At(sq), st)
		glyph := ' '
		if pc, ok := pos.PieceAt(sq); ok {
			glyph = []rune(pc.Glyph())[0]
			if pc.Side == base.White {
				style = style.Foreground(t.theme.White)
			} else {
				style = style.Foreground(t.theme.Black)
			}
		} else if proj.At(sq) == selection.Highlighted {
			glyph = '·'
		}
		s.SetContent(x, y, ' ', nil, style)
		s.SetContent(x+1, y, glyph, nil, style)
		s.SetContent(x+2, y, ' ', nil, style)
	}

	for row := 0; row < 8; row++ {
		rank := 8 - row
		if t.flipped {
			rank = row + 1
		}
		drawText(s, leftMargin-2, topMargin+row, label, fmt.Sprint(rank))
	}
	for col := 0; col < 8; col++ {
		file := col
		if t.flipped {
			file = 7 - col
		}
		drawText(s, leftMargin+col*squareWidth+1, topMargin+8, label, string(rune('a'+file)))
	}

	drawText(s, leftMargin, topMargin+10, label, t.status)
	drawText(s, leftMargin, topMargin+11, label, "click a piece, 'f' flip, 'n' new game, 'q' quit")
	s.Show()
}
