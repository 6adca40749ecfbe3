package term

import (
	"fmt"

	xterm "golang.org/x/term"
)

// Stubbed in tests.
var termGetSize = xterm.GetSize

// Size reports the terminal dimensions as rows, columns. The size
// ioctl is authoritative; when it fails or reports zero columns, the
// cursor-probe fallback asks the terminal itself.
func (c *Controller) Size() (rows, cols int, err error) {
	width, height, err := termGetSize(int(c.out.Fd()))
	if err == nil && width > 0 {
		return height, width, nil
	}
	return c.probeSize()
}

// probeSize pushes the cursor toward the bottom-right extreme and asks
// where it landed. 999 exceeds any real terminal, so the cursor stops
// at the true corner and the reported position is the screen size.
// Best-effort: only reached when the size ioctl is unavailable.
func (c *Controller) probeSize() (rows, cols int, err error) {
	if _, err := c.out.WriteString("\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("size probe: %w", err)
	}
	return c.cursorPosition()
}

// cursorPosition issues a Device Status Report query and reads the
// "\x1b[{row};{col}R" reply.
func (c *Controller) cursorPosition() (rows, cols int, err error) {
	if _, err := c.out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("cursor query: %w", err)
	}

	reply := make([]byte, 0, 32)
	buf := make([]byte, 1)
	for len(reply) < 31 {
		n, _ := c.in.Read(buf)
		if n != 1 || buf[0] == 'R' {
			break
		}
		reply = append(reply, buf[0])
	}
	return parseCursorReport(reply)
}

// parseCursorReport parses "\x1b[{row};{col}", the final 'R' already
// consumed by the reader.
func parseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("cursor query: malformed report %q", reply)
	}
	if n, _ := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); n != 2 {
		return 0, 0, fmt.Errorf("cursor query: malformed report %q", reply)
	}
	return rows, cols, nil
}
