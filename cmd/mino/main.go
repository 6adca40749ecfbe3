package main

import (
	"fmt"
	"os"

	apppkg "github.com/mino-editor/mino/internal/app"
)

func usage() {
	fmt.Fprint(os.Stderr, `mino - minimal terminal text viewer

USAGE:
    mino FILE

KEYS:
    h/j/k/l, arrows   move
    i                 insert mode (keys are echoed, not inserted)
    Esc               back to normal mode
    Ctrl-R            repaint
    Ctrl-Q            quit
`)
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	app, err := apppkg.New(os.Args[1])
	if err == nil {
		err = app.Run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mino: %v\n", err)
		os.Exit(1)
	}
}
