package ghelper

import (
	"clickchess/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Button is a rounded rect with a label; it fires on release over itself
type Button struct {
	Label      string
	X, Y, W, H int

	normal  *ebiten.Image
	pressed *ebiten.Image
	down    bool
	hover   bool
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	return &Button{
		Label:   label,
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		normal:  RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3),
		pressed: RenderRoundedRect(w, h, 12, theme.ButtonStroke, theme.ButtonStroke, 3),
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is fed every frame and reports a completed click
func (b *Button) HandleInput(px, py int, justPressed, justReleased bool) bool {
	b.hover = b.Contains(px, py)
	switch {
	case justPressed && b.hover:
		b.down = true
	case justReleased:
		clicked := b.down && b.hover
		b.down = false
		return clicked
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	img := b.normal
	if b.down && b.hover {
		img = b.pressed
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.X), float64(b.Y))
	if b.hover && !b.down {
		op.ColorScale.Scale(0.95, 0.95, 0.95, 1)
	}
	screen.DrawImage(img, op)

	bounds := text.BoundString(face, b.Label)
	tx := b.X + (b.W-bounds.Dx())/2
	ty := b.Y + (b.H+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, theme.ButtonText)
}
