// Package testutil provides test doubles shared by the grrs packages.
package testutil

import (
	"bytes"
	"errors"
	"sync"
)

// ErrMockWrite is the default error returned by MockWriter once it fails.
var ErrMockWrite = errors.New("mock write failure")

// MockWriter is an io.Writer that records writes and can be told to fail
// after a number of successful calls.
type MockWriter struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	writes    int
	attempts  int
	failAfter int
	writeErr  error
}

// NewMockWriter creates a writer that never fails
func NewMockWriter() *MockWriter {
	return &MockWriter{failAfter: -1}
}

// NewFailingWriter creates a writer whose writes fail after n successful calls.
func NewFailingWriter(n int) *MockWriter {
	return &MockWriter{
		failAfter: n,
		writeErr:  ErrMockWrite,
	}
}

// Write implements io.Writer
func (m *MockWriter) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Always track the attempt
	m.attempts++

	if m.failAfter >= 0 && m.writes >= m.failAfter {
		err := m.writeErr
		if err == nil {
			err = ErrMockWrite
		}
		return 0, err
	}

	m.writes++
	return m.buf.Write(p)
}

// SetError sets the error returned once the writer starts failing
func (m *MockWriter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// String returns everything written successfully so far
func (m *MockWriter) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

// GetWriteCount returns the number of successful writes
func (m *MockWriter) GetWriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// GetAttempts returns the number of write calls including failures
func (m *MockWriter) GetAttempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}
