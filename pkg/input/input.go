// Package input loads the file grrs searches.
package input

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidText is returned when a file is not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// ReadError describes a file that could not be read as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadFile reads the whole file at path and returns it as text.
func ReadFile(path string) (string, error) {
	// #nosec G304 - Reading a user-chosen file is the purpose of the tool
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: ErrInvalidText}
	}

	return string(data), nil
}
