package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Veraticus/grrs/pkg/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		wantInfo    bool
		wantWarning bool
	}{
		{
			name:        "quiet by default",
			verbose:     false,
			wantInfo:    false,
			wantWarning: false,
		},
		{
			name:        "verbose shows info and warnings",
			verbose:     true,
			wantInfo:    true,
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, cleanup, err := New(Options{Verbose: tt.verbose, Console: &buf})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer cleanup()

			logger.Info("starting up")
			logger.Warn("target file is empty")
			logger.Error("could not read file", zap.String("path", "/missing"))

			out := buf.String()
			if got := strings.Contains(out, "starting up"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v\noutput:\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "target file is empty"); got != tt.wantWarning {
				t.Errorf("warning logged = %v, want %v\noutput:\n%s", got, tt.wantWarning, out)
			}
			if !strings.Contains(out, "could not read file") {
				t.Errorf("errors must always be logged\noutput:\n%s", out)
			}
		})
	}
}

func TestNew_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "grrs.log")

	logger, cleanup, err := New(Options{
		Verbose: true,
		Console: &bytes.Buffer{},
		File: config.LogConfig{
			File:       logPath,
			MaxSizeMB:  1,
			MaxBackups: 1,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("scan finished", zap.Int("matches", 3))
	cleanup()
	// Second call must be harmless
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	line := strings.TrimSpace(string(data))
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log file line is not JSON: %v\n%s", err, line)
	}
	if entry["msg"] != "scan finished" {
		t.Errorf("expected msg %q but got %v", "scan finished", entry["msg"])
	}
	if entry["matches"] != float64(3) {
		t.Errorf("expected matches=3 but got %v", entry["matches"])
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	cfg.Log.File = "/tmp/grrs.log"

	opts := OptionsFromConfig(cfg)
	if !opts.Verbose {
		t.Error("expected Verbose to carry over")
	}
	if opts.Console != os.Stderr {
		t.Error("expected console output on stderr")
	}
	if opts.File.File != "/tmp/grrs.log" {
		t.Errorf("expected log file to carry over, got %q", opts.File.File)
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}
	logger.Error("discarded")
}
