// Package terminal reports whether a file descriptor is attached to a terminal.
package terminal

import "os"

// IsTerminal returns true if the given file descriptor is a terminal
func IsTerminal(fd uintptr) bool {
	return isatty(fd)
}

// IsFileTerminal is IsTerminal for an open file. A nil file is not a terminal.
func IsFileTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty(f.Fd())
}
