package term

import (
	"errors"
	"os"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestRawAttrsClearsLineDiscipline(t *testing.T) {
	var pristine unix.Termios
	pristine.Iflag = unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP | unix.IGNBRK
	pristine.Oflag = unix.OPOST
	pristine.Lflag = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHOE

	raw := rawAttrs(pristine)

	if raw.Iflag&(unix.IXON|unix.ICRNL|unix.BRKINT|unix.INPCK|unix.ISTRIP) != 0 {
		t.Fatalf("input flags not cleared: %#x", raw.Iflag)
	}
	if raw.Iflag&unix.IGNBRK == 0 {
		t.Fatalf("unrelated input flag was dropped")
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Fatalf("output post-processing still enabled")
	}
	if raw.Cflag&unix.CS8 != unix.CS8 {
		t.Fatalf("8-bit frames not forced")
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN) != 0 {
		t.Fatalf("local flags not cleared: %#x", raw.Lflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Fatalf("read policy VMIN=%d VTIME=%d, want 0/1", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
}

func TestRawAttrsDoesNotMutatePristine(t *testing.T) {
	var pristine unix.Termios
	pristine.Lflag = unix.ECHO | unix.ICANON
	before := pristine

	_ = rawAttrs(pristine)

	if pristine != before {
		t.Fatalf("pristine snapshot was mutated")
	}
}

func TestParseCursorReport(t *testing.T) {
	rows, cols, err := parseCursorReport([]byte("\x1b[24;80"))
	if err != nil {
		t.Fatalf("parseCursorReport: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Fatalf("got %dx%d, want 24x80", rows, cols)
	}
}

func TestParseCursorReportMalformed(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("24;80"),
		[]byte("\x1b[garbage"),
		[]byte("\x1b["),
	}
	for _, reply := range cases {
		if _, _, err := parseCursorReport(reply); err == nil {
			t.Fatalf("expected error for reply %q", reply)
		}
	}
}

func TestSizeFallsBackToCursorProbe(t *testing.T) {
	original := termGetSize
	t.Cleanup(func() { termGetSize = original })
	termGetSize = func(fd int) (int, int, error) {
		return 0, 0, errors.New("inappropriate ioctl for device")
	}

	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})

	// Terminal's reply to the position query, queued up front.
	if _, err := inW.WriteString("\x1b[24;80R"); err != nil {
		t.Fatalf("queue reply: %v", err)
	}

	c := New(inR, outW)
	rows, cols, err := c.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Fatalf("got %dx%d, want 24x80", rows, cols)
	}

	outW.Close()
	probe := make([]byte, 64)
	n, _ := outR.Read(probe)
	if got, want := string(probe[:n]), "\x1b[999C\x1b[999B\x1b[6n"; got != want {
		t.Fatalf("probe wrote %q, want %q", got, want)
	}
}

func TestEnterRawOnNonTerminalNamesFailingCall(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	c := New(r, w)
	err = c.EnterRaw()
	if err == nil {
		t.Fatalf("EnterRaw succeeded on a pipe")
	}
	if !strings.Contains(err.Error(), "tcgetattr") {
		t.Fatalf("error %q does not name the failing call", err)
	}
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore after failed EnterRaw: %v", err)
	}
}

func stubAttrCalls(t *testing.T, get func(int, uint) (*unix.Termios, error), set func(int, uint, *unix.Termios) error) {
	t.Helper()
	origGet, origSet := tcGetAttr, tcSetAttr
	t.Cleanup(func() {
		tcGetAttr, tcSetAttr = origGet, origSet
	})
	tcGetAttr = get
	tcSetAttr = set
}

func TestEnterRawApplyFailureNamesFailingCall(t *testing.T) {
	stubAttrCalls(t,
		func(int, uint) (*unix.Termios, error) {
			return &unix.Termios{Lflag: unix.ECHO | unix.ICANON}, nil
		},
		func(int, uint, *unix.Termios) error {
			return errors.New("inappropriate ioctl for device")
		})

	c := New(os.Stdin, os.Stdout)
	err := c.EnterRaw()
	if err == nil {
		t.Fatalf("EnterRaw succeeded with failing apply")
	}
	if !strings.Contains(err.Error(), "tcsetattr") {
		t.Fatalf("error %q does not name the failing call", err)
	}
	// No raw state was installed, so there is nothing to reapply.
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore after failed apply: %v", err)
	}
}

func TestRestoreReappliesPristineAttributes(t *testing.T) {
	pristine := unix.Termios{Lflag: unix.ECHO | unix.ICANON | unix.ISIG}
	var applied []unix.Termios
	stubAttrCalls(t,
		func(int, uint) (*unix.Termios, error) {
			snapshot := pristine
			return &snapshot, nil
		},
		func(_ int, _ uint, value *unix.Termios) error {
			applied = append(applied, *value)
			return nil
		})

	c := New(os.Stdin, os.Stdout)
	if err := c.EnterRaw(); err != nil {
		t.Fatalf("EnterRaw: %v", err)
	}
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if len(applied) != 2 {
		t.Fatalf("expected raw apply then restore, got %d applies", len(applied))
	}
	if applied[0] != rawAttrs(pristine) {
		t.Fatalf("raw apply did not use the derived attribute set")
	}
	if applied[1] != pristine {
		t.Fatalf("restore applied %+v, want pristine snapshot", applied[1])
	}
}

func TestRestoreBeforeEnterIsNoOp(t *testing.T) {
	c := New(os.Stdin, os.Stdout)
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore before EnterRaw: %v", err)
	}
}
