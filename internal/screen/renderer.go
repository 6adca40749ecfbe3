// Package screen turns document and editor state into terminal
// escape-sequence output.
package screen

import (
	"fmt"
	"io"

	"github.com/mino-editor/mino/internal/doc"
	"github.com/mino-editor/mino/internal/editor"
	"github.com/mino-editor/mino/internal/key"
)

// Control sequences this renderer emits. The exact byte strings matter
// for terminal compatibility.
const (
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	homeCursor     = "\x1b[H"
	clearScreen    = "\x1b[2J"
	clearLineRight = "\x1b[K"

	cursorPositionFmt = "\x1b[%d;%dH"
)

// Renderer paints the viewport. Full repaints are staged in a Frame
// and flushed in one write; cursor-only moves are written directly.
type Renderer struct {
	w     io.Writer
	frame Frame
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Refresh repaints the whole screen: every visible document row
// truncated to the screen width, `~` fill markers past the end of the
// document, and the hardware cursor left at the editor position. The
// scroll offset is recomputed first so the frame always contains the
// cursor row. Identical state yields a byte-identical frame.
func (r *Renderer) Refresh(st *editor.State, d *doc.Document) error {
	st.Scroll()

	r.frame.AppendString(hideCursor)
	r.frame.AppendString(homeCursor)
	r.drawRows(st, d)
	r.frame.Appendf(cursorPositionFmt, st.CursorRow-st.RowOffset+1, st.CursorCol+1)
	r.frame.AppendString(showCursor)

	_, err := r.w.Write(r.frame.Bytes())
	r.frame.Reset()
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (r *Renderer) drawRows(st *editor.State, d *doc.Document) {
	for y := 0; y < st.ScreenRows; y++ {
		fileRow := y + st.RowOffset
		if fileRow < d.RowCount() {
			line := d.Row(fileRow).Bytes()
			if len(line) > st.ScreenCols {
				line = line[:st.ScreenCols]
			}
			r.frame.Append(line)
		} else {
			r.frame.AppendString("~")
		}
		r.frame.AppendString(clearLineRight)
		if y < st.ScreenRows-1 {
			// OPOST is off; the linefeed needs its carriage return.
			r.frame.AppendString("\r\n")
		}
	}
}

// Position moves only the hardware cursor. Motion that stays inside
// the viewport never needs the row content repainted.
func (r *Renderer) Position(st *editor.State) error {
	if _, err := fmt.Fprintf(r.w, cursorPositionFmt, st.CursorRow-st.RowOffset+1, st.CursorCol+1); err != nil {
		return fmt.Errorf("write cursor position: %w", err)
	}
	return nil
}

// Clear wipes the screen and homes the cursor, leaving the terminal
// presentable for whatever runs next. Used on exit and on the fatal
// path.
func (r *Renderer) Clear() error {
	if _, err := io.WriteString(r.w, clearScreen+homeCursor); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// Echo writes a keypress diagnostic at the cursor. Text entry is out
// of scope, so INSERT mode acknowledges keys instead of inserting
// them.
func (r *Renderer) Echo(k key.Key) error {
	if _, err := fmt.Fprintf(r.w, "%d ('%c')\r\n", int(k), rune(k)); err != nil {
		return fmt.Errorf("write echo: %w", err)
	}
	return nil
}
