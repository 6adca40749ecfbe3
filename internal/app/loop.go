package app

import (
	"fmt"

	"github.com/mino-editor/mino/internal/editor"
)

// loop runs until the quit key or a fatal error. One key in, one state
// transition, at most one screen operation out.
func (app *Application) loop() error {
	for {
		k, err := app.decoder.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		switch app.state.ProcessKey(k, app.document.RowCount()) {
		case editor.ActionQuit:
			app.logger.Debug("quit")
			return nil
		case editor.ActionRefresh:
			if err := app.renderer.Refresh(app.state, app.document); err != nil {
				return err
			}
		case editor.ActionReposition:
			if err := app.renderer.Position(app.state); err != nil {
				return err
			}
		case editor.ActionEcho:
			if err := app.renderer.Echo(k); err != nil {
				return err
			}
		}
	}
}
