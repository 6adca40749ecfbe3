// Package app wires the terminal controller, document store, decoder
// and renderer into the key loop.
package app

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/mino-editor/mino/internal/doc"
	"github.com/mino-editor/mino/internal/editor"
	"github.com/mino-editor/mino/internal/key"
	"github.com/mino-editor/mino/internal/screen"
	termctl "github.com/mino-editor/mino/internal/term"
)

// Application is the running viewer.
type Application struct {
	path     string
	terminal *termctl.Controller
	state    *editor.State
	document *doc.Document
	renderer *screen.Renderer
	decoder  *key.Decoder
	logger   *clog.Logger
}

// New prepares an Application for the file at path. The terminal is
// untouched until Run.
func New(path string) (*Application, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("stdin: not a terminal")
	}

	return &Application{
		path:     path,
		terminal: termctl.New(os.Stdin, os.Stdout),
		renderer: screen.NewRenderer(os.Stdout),
		decoder:  key.NewDecoder(os.Stdin),
		logger:   newLogger(),
	}, nil
}

// Run owns the terminal from raw-mode entry to restoration. Every
// return path, error or not, goes through cleanup, so a fatal error
// reported by the caller lands on a restored cooked-mode screen.
func (app *Application) Run() error {
	if err := app.terminal.EnterRaw(); err != nil {
		return err
	}
	defer app.cleanup()

	rows, cols, err := app.terminal.Size()
	if err != nil {
		return err
	}
	app.state = &editor.State{ScreenRows: rows, ScreenCols: cols}
	app.logger.Debug("screen sized", "rows", rows, "cols", cols)

	app.document, err = doc.Load(app.path)
	if err != nil {
		return err
	}
	app.logger.Debug("document loaded", "path", app.path, "rows", app.document.RowCount())

	if err := app.renderer.Refresh(app.state, app.document); err != nil {
		return err
	}
	return app.loop()
}

// cleanup clears the screen and reapplies the pristine terminal
// attributes. The clear is written first, while the program still owns
// the screen in raw mode; restoration follows, and only then does the
// caller print, so the message is readable in the user's normal shell.
// A restoration failure has nowhere better to go than stderr.
func (app *Application) cleanup() {
	if err := app.renderer.Clear(); err != nil {
		app.logger.Error("clear screen", "err", err)
	}
	if err := app.terminal.Restore(); err != nil {
		app.logger.Error("restore terminal", "err", err)
		fmt.Fprintf(os.Stderr, "mino: %v\n", err)
	}
}

// newLogger builds the debug logger. The screen belongs to the
// renderer, so logs go to the file named by $MINO_LOG and nowhere
// else; without it everything is discarded.
func newLogger() *clog.Logger {
	path := os.Getenv("MINO_LOG")
	if path == "" {
		return clog.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return clog.New(io.Discard)
	}
	return clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Level:           clog.DebugLevel,
	})
}
