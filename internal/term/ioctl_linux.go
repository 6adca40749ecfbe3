package term

import "golang.org/x/sys/unix"

// TCSETSF drains pending output and discards unread input before the
// new attributes take effect, matching tcsetattr(fd, TCSAFLUSH, ...).
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
