package gdraw

import (
	"clickchess/src/base"
	"clickchess/src/logic/selection"
	"clickchess/src/ui/gui/ghelper"
	"clickchess/src/ui/gui/ghelper/gclipboard"
	"clickchess/src/ui/gui/ghelper/gdialog"
	"clickchess/src/ui/gui/glayout"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type loadResult struct {
	fen string
	err error
}

// GUIPlayDrawer draws the board and turns mouse clicks on it into session clicks
type GUIPlayDrawer struct {
	layout  glayout.Layout
	sprites *ghelper.PieceSprites
	frame   *ebiten.Image
	click   glayout.BoardClick

	// buttons
	buttons  []*ghelper.Button
	idxNew   int
	idxFlip  int
	idxLoad  int
	idxCopy  int
	idxPaste int

	status        string
	loading       bool
	loadCh        chan loadResult
	prevMouseDown bool
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		loadCh: make(chan loadResult, 1),
	}
	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *ghelper.GUIGameContext) {
	l := glayout.NewLayout(ctx.Config.WindowW, ctx.Config.WindowH, ctx.Config.Flipped)
	if pd.sprites == nil || pd.sprites.Size() != l.SqSize {
		pd.sprites = ghelper.NewPieceSprites(l.SqSize)
	}
	if _, _, size := l.Frame(); pd.frame == nil || pd.frame.Bounds().Dx() != size {
		pd.frame = ghelper.RenderRoundedRect(size, size, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	}
	pd.layout = l
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *ghelper.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}
	addBtn := func(label string, x, y, w, h int) int {
		pd.buttons = append(pd.buttons, ghelper.NewButton(label, x, y, w, h, ctx.Theme))
		return len(pd.buttons) - 1
	}

	x, y := 30, pd.layout.BoardY+40
	w, h := 160, 48
	pd.idxNew = addBtn("New game", x, y, w, h)
	y += h + 14
	pd.idxFlip = addBtn("Flip board", x, y, w, h)
	y += h + 14
	pd.idxLoad = addBtn("Load FEN", x, y, w, h)
	y += h + 14
	pd.idxCopy = addBtn("Copy FEN", x, y, w, h)
	y += h + 14
	pd.idxPaste = addBtn("Paste FEN", x, y, w, h)
}

func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) error {
	pd.recalcLayout(ctx)

	select {
	case res := <-pd.loadCh:
		pd.loading = false
		pd.applyLoad(ctx, res)
	default:
	}

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		if !clicked {
			continue
		}
		switch i {
		case pd.idxNew:
			ctx.Session.CreateClassic()
			pd.status = "new game"
		case pd.idxFlip:
			ctx.Config.Flipped = !ctx.Config.Flipped
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Warnf("error save config: %v", err)
			}
		case pd.idxLoad:
			if !pd.loading {
				pd.loading = true
				go pd.openFENAsync()
			}
		case pd.idxCopy:
			if fen, err := gclipboard.CopyFEN(ctx.Session); err != nil {
				ctx.Logx.Errorf("%v", err)
				pd.status = "copy failed"
			} else {
				ctx.Logx.Debugf("copied FEN %v", fen)
				pd.status = "FEN copied"
			}
		case pd.idxPaste:
			if fen, err := gclipboard.PasteFEN(ctx.Session); err != nil {
				ctx.Logx.Errorf("error paste FEN %q: %v", fen, err)
				pd.status = "bad FEN on clipboard"
			} else {
				pd.status = "position pasted"
			}
		}
	}

	// one click per press and release that both land on the board
	if sq, ok := pd.click.Update(pd.layout, mx, my, justPressed, justReleased); ok && !pd.loading {
		outcome, _ := ctx.Session.Click(sq)
		pd.status = fmt.Sprintf("%v: %v", sq, outcome)
	}
	return nil
}

// the dialog blocks, so it runs outside the game loop
func (pd *GUIPlayDrawer) openFENAsync() {
	res, err := gdialog.OpenFile("Load FEN position")
	if err != nil {
		pd.loadCh <- loadResult{err: err}
		return
	}
	pd.loadCh <- loadResult{fen: strings.TrimSpace(string(res.Data))}
}

func (pd *GUIPlayDrawer) applyLoad(ctx *ghelper.GUIGameContext, res loadResult) {
	if res.err != nil {
		if !gdialog.IsCancelled(res.err) {
			ctx.Logx.Errorf("error open FEN file: %v", res.err)
			pd.status = "cannot open file"
		}
		return
	}
	if err := ctx.Session.CreateFromFEN(res.fen); err != nil {
		ctx.Logx.Errorf("error load FEN: %v", err)
		pd.status = "bad FEN"
		return
	}
	pd.status = "position loaded"
}

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	l := pd.layout
	pos, st, proj := ctx.Session.Snapshot()
	selSq, active := st.Square()
	moves := st.Moves()
	sqf := float32(l.SqSize)

	fx, fy, _ := l.Frame()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(fx), float64(fy))
	screen.DrawImage(pd.frame, op)

	for i := 0; i < base.NumSquares; i++ {
		sq := base.Square(i)
		x, y := l.SquareOrigin(sq)
		fx, fy := float32(x), float32(y)
		col := ctx.Theme.SquareDark
		if sq.IsLight() {
			col = ctx.Theme.SquareLight
		}
		vector.DrawFilledRect(screen, fx, fy, sqf, sqf, col, false)

		cx, cy := l.SquareCenter(sq)
		switch proj.At(sq) {
		case selection.Highlighted:
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), sqf*0.15, ctx.Theme.Highlight, true)
		case selection.Occupied:
			if moves.Has(sq) {
				vector.StrokeCircle(screen, float32(cx), float32(cy), sqf*0.45, 4, ctx.Theme.Capture, true)
			}
			pc, _ := pos.PieceAt(sq)
			if img := pd.sprites.Piece(pc); img != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(y))
				op.Filter = ebiten.FilterLinear
				screen.DrawImage(img, op)
			}
		}

		if active && sq == selSq {
			vector.StrokeRect(screen, fx+2, fy+2, sqf-4, sqf-4, 3, ctx.Theme.Selected, false)
		}
	}

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("%s to move", pos.ToMove), face, l.BoardX, l.BoardY-12, ctx.Theme.MenuText)
	text.Draw(screen, pd.status, face, l.BoardX, l.BoardY+l.BoardSize+24, ctx.Theme.MenuText)

	for _, b := range pd.buttons {
		b.Draw(screen, face, ctx.Theme)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}
