package cli

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// PrepareTerminal enables escape sequences and turns colour off when stdout
// is redirected
func PrepareTerminal(out *os.File) {
	if !term.IsTerminal(int(out.Fd())) {
		color.NoColor = true
		return
	}
	EnableANSI()
}
