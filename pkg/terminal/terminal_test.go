//go:build linux || darwin
// +build linux darwin

package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
)

func TestIsTerminal_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("PTY not available: %v", err)
	}
	defer func() {
		_ = tty.Close()
		_ = ptmx.Close()
	}()

	if !IsTerminal(tty.Fd()) {
		t.Error("expected pty slave to be a terminal")
	}
	if !IsFileTerminal(tty) {
		t.Error("expected IsFileTerminal to report the pty slave as a terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if IsTerminal(f.Fd()) {
		t.Error("expected regular file not to be a terminal")
	}
}

func TestIsTerminal_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	if IsFileTerminal(w) {
		t.Error("expected pipe not to be a terminal")
	}
}

func TestIsFileTerminal_Nil(t *testing.T) {
	if IsFileTerminal(nil) {
		t.Error("expected nil file not to be a terminal")
	}
}
