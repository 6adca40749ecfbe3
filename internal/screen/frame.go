package screen

import "fmt"

// Frame is the append-only buffer one repaint is staged into, so the
// terminal sees a single write per refresh. Many small writes produce
// visible flicker and carry no atomicity guarantee; one batched write
// avoids both.
type Frame struct {
	buf []byte
}

func (f *Frame) Append(p []byte) {
	f.buf = append(f.buf, p...)
}

func (f *Frame) AppendString(s string) {
	f.buf = append(f.buf, s...)
}

func (f *Frame) Appendf(format string, args ...any) {
	f.buf = fmt.Appendf(f.buf, format, args...)
}

func (f *Frame) Len() int { return len(f.buf) }

func (f *Frame) Bytes() []byte { return f.buf }

// Reset empties the frame while keeping its backing storage for the
// next repaint.
func (f *Frame) Reset() { f.buf = f.buf[:0] }
