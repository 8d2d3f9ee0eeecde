// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 16

// NotifySignals returns a channel on which the signals that inductive handles
// get delivered. On platforms without such signals, nothing is ever sent.
func NotifySignals() chan os.Signal { return notifySignals() }

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const dumpStackBufSizeInit = 8192

// DumpStack returns the stack traces of all goroutines.
func DumpStack() string {
	buf := make([]byte, dumpStackBufSizeInit)
	for {
		n := runtime.Stack(buf, true)
		if n < cap(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, cap(buf)*2)
	}
}
