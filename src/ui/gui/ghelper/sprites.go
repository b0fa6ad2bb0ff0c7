package ghelper

import (
	"clickchess/src/base"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

// PieceSprites caches one rendered image per piece for a square size
type PieceSprites struct {
	size   int
	images map[base.Piece]*ebiten.Image
}

func NewPieceSprites(size int) *PieceSprites {
	ps := &PieceSprites{size: size, images: make(map[base.Piece]*ebiten.Image)}
	for _, side := range []base.Side{base.White, base.Black} {
		for _, kind := range base.AllKinds {
			pc := base.Piece{Kind: kind, Side: side}
			ps.images[pc] = ebiten.NewImageFromImage(renderPiece(pc, size))
		}
	}
	return ps
}

func (ps *PieceSprites) Size() int { return ps.size }

func (ps *PieceSprites) Piece(pc base.Piece) *ebiten.Image {
	return ps.images[pc]
}

// a disc in the side's colour with the piece letter on it
func renderPiece(pc base.Piece, size int) image.Image {
	var fill, stroke, ink color.Color
	if pc.Side == base.White {
		fill, stroke, ink = color.RGBA{0xfa, 0xfa, 0xf5, 0xff}, color.RGBA{0x33, 0x33, 0x33, 0xff}, color.Black
	} else {
		fill, stroke, ink = color.RGBA{0x22, 0x22, 0x22, 0xff}, color.RGBA{0xdd, 0xdd, 0xdd, 0xff}, color.White
	}

	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	dc.DrawCircle(c, c, float64(size)*0.38)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(ink)
	scale := float64(size) / 28
	if scale < 1 {
		scale = 1
	}
	dc.ScaleAbout(scale, scale, c, c)
	letter := string(base.Piece{Kind: pc.Kind, Side: base.White}.Rune())
	dc.DrawStringAnchored(letter, c, c, 0.5, 0.35)
	return dc.Image()
}
