package ghelper

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/src/ui/gconf"
	"clickchess/src/ui/gui/gbase"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Session *src.Session
	Config  *gconf.Config
	Theme   gbase.Palette
	Logx    logx.Logger
}

func NewGUIGameContext(s *src.Session, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Session: s,
		Config:  c,
		Theme:   gbase.PaletteFromString(c.Theme),
		Logx:    l,
	}
}
