// Package key turns the raw byte stream of a terminal in raw mode into
// discrete key events.
package key

import (
	"errors"
	"io"
)

// Key is one decoded logical keypress. Plain bytes are their own Key
// value.
type Key int

// The directional keys deliberately share values with the literal
// bytes h/j/k/l: a bare 'j' and a decoded down-arrow sequence are the
// same Key downstream, which lets one dispatch table drive both
// vim-style and arrow-key navigation. The flip side is that h/j/k/l
// can never be bound to anything else in NORMAL mode.
const (
	Left  Key = 'h'
	Down  Key = 'j'
	Up    Key = 'k'
	Right Key = 'l'

	Escape Key = 0x1b

	CtrlQ Key = 'q' & 0x1f
	CtrlR Key = 'r' & 0x1f
)

// Decoder reads keys from a terminal whose read policy is
// VMIN=0/VTIME=1: every read returns within a decisecond, possibly
// with nothing.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one logical key is decoded, polling across read
// timeouts. Read errors other than the timeout are returned as-is.
func (d *Decoder) ReadKey() (Key, error) {
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		if Key(b) == Escape {
			return d.readEscape()
		}
		return Key(b), nil
	}
}

// readEscape resolves the bytes following an ESC. A real escape
// sequence split across the read timeout degrades to a bare Escape;
// that imprecision is accepted rather than carrying decode state
// between calls.
func (d *Decoder) readEscape() (Key, error) {
	first, ok, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return Escape, nil
	}
	second, ok, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return Escape, nil
	}

	if first != '[' {
		return Escape, nil
	}
	switch second {
	case 'A':
		return Up, nil
	case 'B':
		return Down, nil
	case 'C':
		return Right, nil
	case 'D':
		return Left, nil
	}
	return Escape, nil
}

// readByte performs one bounded read. ok is false when the timeout
// expired with no input; a zero-byte read surfaces as io.EOF on an
// *os.File and is folded into the same case.
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	return 0, false, err
}
