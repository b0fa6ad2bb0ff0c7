package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	SquareLight  color.RGBA
	SquareDark   color.RGBA
	Highlight    color.RGBA
	Capture      color.RGBA
	Selected     color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

// unknown names fall back to light
func PaletteFromString(p string) Palette {
	if p == "dark" {
		return DarkPalette
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	SquareLight:  color.RGBA{0xcc, 0xb7, 0xae, 0xff},
	SquareDark:   color.RGBA{0x70, 0x66, 0x77, 0xff},
	Highlight:    color.RGBA{0x22, 0x88, 0x44, 0xaa},
	Capture:      color.RGBA{0xcc, 0x33, 0x33, 0xcc},
	Selected:     color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	SquareLight:  color.RGBA{0x5c, 0x5c, 0x5c, 0xff},
	SquareDark:   color.RGBA{0x2e, 0x2e, 0x2e, 0xff},
	Highlight:    color.RGBA{0x3c, 0xb3, 0x71, 0xaa},
	Capture:      color.RGBA{0xe0, 0x50, 0x50, 0xcc},
	Selected:     color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}
