package gui

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/src/ui/gconf"
	"clickchess/src/ui/gui/gbase"
	"clickchess/src/ui/gui/gdraw"
	"clickchess/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	play *gdraw.GUIPlayDrawer
	ctx  *ghelper.GUIGameContext
}

func NewGUI(s *src.Session, cfg *gconf.Config, logger logx.Logger) *GUIProcessing {
	ctx := ghelper.NewGUIGameContext(s, cfg, logger)
	return &GUIProcessing{play: gdraw.NewGUIPlayDrawer(ctx), ctx: ctx}
}

// Run blocks until the window is closed or Esc is pressed (gbase.ErrExit)
func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("ClickChess")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return gbase.ErrExit
	}
	return gp.play.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.play.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.ctx.Config.WindowW = outsideWidth
	gp.ctx.Config.WindowH = outsideHeight
	return outsideWidth, outsideHeight
}
