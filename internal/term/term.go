// Package term owns the terminal's mode for the life of the process.
// Exactly one Controller exists; it captures the pristine attribute set
// at startup and is the only code that ever changes terminal modes.
package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Stubbed in tests.
var (
	tcGetAttr = unix.IoctlGetTermios
	tcSetAttr = unix.IoctlSetTermios
)

// Controller switches the controlling terminal between cooked and raw
// mode and answers size queries. The pristine snapshot taken by
// EnterRaw is never mutated; Restore reapplies it verbatim.
type Controller struct {
	in    *os.File
	out   *os.File
	saved *unix.Termios
}

func New(in, out *os.File) *Controller {
	return &Controller{in: in, out: out}
}

// EnterRaw snapshots the current attributes and applies the raw-mode
// set. Callers must treat a returned error as fatal: without raw mode
// active, key decoding and rendering are both undefined.
func (c *Controller) EnterRaw() error {
	attrs, err := tcGetAttr(int(c.in.Fd()), ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	c.saved = attrs

	raw := rawAttrs(*attrs)
	if err := tcSetAttr(int(c.in.Fd()), ioctlWriteTermios, &raw); err != nil {
		c.saved = nil
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// Restore reapplies the pristine snapshot. Safe to call more than once
// and before EnterRaw, so every exit path can run it unconditionally.
func (c *Controller) Restore() error {
	if c.saved == nil {
		return nil
	}
	if err := tcSetAttr(int(c.in.Fd()), ioctlWriteTermios, c.saved); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// rawAttrs derives the raw-mode attribute set from a snapshot:
// no flow control, no CR->LF translation, no break signals, no parity
// or bit stripping on input; no output post-processing (callers emit
// "\r\n" themselves); 8-bit frames; no echo, no canonical buffering,
// no signal or literal-next keys. VMIN=0/VTIME=1 makes each read
// return whatever is available, waiting at most one decisecond.
func rawAttrs(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}
