// Package editor is the cursor, viewport and mode state machine. It
// owns no I/O; keys come in, an Action telling the caller what screen
// work is needed comes out.
package editor

import "github.com/mino-editor/mino/internal/key"

// Mode is the interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	// ModeVisual is reserved; no key transitions into it yet.
	ModeVisual
)

// Action is what a processed key asks of the caller.
type Action int

const (
	// ActionNone requires no screen work.
	ActionNone Action = iota
	// ActionReposition moves only the hardware cursor.
	ActionReposition
	// ActionRefresh repaints the whole screen.
	ActionRefresh
	// ActionEcho acknowledges an INSERT-mode key with a diagnostic.
	ActionEcho
	// ActionQuit ends the session.
	ActionQuit
)

// State holds the cursor position (zero-based), the first visible
// document row, the screen dimensions and the mode. After Scroll, the
// viewport always contains the cursor row.
type State struct {
	CursorRow  int
	CursorCol  int
	RowOffset  int
	ScreenRows int
	ScreenCols int
	Mode       Mode
}

// Scroll recomputes the vertical offset so that
// RowOffset <= CursorRow < RowOffset+ScreenRows, reporting whether the
// offset moved. A moved offset means the rows on screen are stale and
// need a full repaint.
func (s *State) Scroll() bool {
	scrolled := false
	if s.CursorRow < s.RowOffset {
		s.RowOffset = s.CursorRow
		scrolled = true
	}
	if s.CursorRow >= s.RowOffset+s.ScreenRows {
		s.RowOffset = s.CursorRow - s.ScreenRows + 1
		scrolled = true
	}
	return scrolled
}

// ProcessKey applies one key to the state. rowCount is the document
// length, which bounds vertical motion.
func (s *State) ProcessKey(k key.Key, rowCount int) Action {
	if s.Mode == ModeInsert {
		return s.processInsertKey(k)
	}
	return s.processNormalKey(k, rowCount)
}

func (s *State) processNormalKey(k key.Key, rowCount int) Action {
	switch k {
	case key.Down:
		if s.CursorRow < rowCount-1 {
			s.CursorRow++
		}
		return s.verticalAction()
	case key.Up:
		if s.CursorRow > 0 {
			s.CursorRow--
		}
		return s.verticalAction()
	case key.Right:
		// Clamped to the screen edge, not the row end: the cursor may
		// rest past the last character of a short line.
		if s.CursorCol < s.ScreenCols-1 {
			s.CursorCol++
		}
		return ActionReposition
	case key.Left:
		if s.CursorCol > 0 {
			s.CursorCol--
		}
		return ActionReposition
	case 'i':
		s.Mode = ModeInsert
		return ActionNone
	case key.CtrlQ:
		return ActionQuit
	case key.CtrlR:
		return ActionRefresh
	}
	return ActionNone
}

// verticalAction decides between a full repaint and a cursor move:
// only motion that crossed a viewport boundary repaints row content.
func (s *State) verticalAction() Action {
	if s.Scroll() {
		return ActionRefresh
	}
	return ActionReposition
}

func (s *State) processInsertKey(k key.Key) Action {
	switch k {
	case key.Escape:
		s.Mode = ModeNormal
		return ActionNone
	case key.CtrlQ:
		return ActionQuit
	case key.CtrlR:
		return ActionRefresh
	}
	return ActionEcho
}
