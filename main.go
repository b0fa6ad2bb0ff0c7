package main

import (
	"clickchess/src/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunClickChess(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "clickchess: %v\n", err)
		os.Exit(1)
	}
}
