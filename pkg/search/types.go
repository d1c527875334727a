// Package search implements the line scan at the heart of grrs.
package search

import "errors"

// ErrWrite is returned when writing a match to the output sink fails.
var ErrWrite = errors.New("couldn't write to stdout")

// Result summarizes a single scan.
type Result struct {
	Matched bool
	Count   int
}

// Options controls how matching lines are rendered.
type Options struct {
	// LineNumbers prefixes every match with its 1-based line number.
	LineNumbers bool
	// Highlight wraps each occurrence of the pattern in ANSI color.
	Highlight bool
}
