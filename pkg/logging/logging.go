// Package logging builds the diagnostic logger used by grrs.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Veraticus/grrs/pkg/config"
)

// Options controls logger construction.
type Options struct {
	// Verbose lowers the console level from error to info.
	Verbose bool
	// Console receives human readable log lines, normally os.Stderr.
	Console io.Writer
	// File, when set, receives JSON log lines through a rotating writer.
	File config.LogConfig
}

// OptionsFromConfig derives logger options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Verbose: cfg.Verbose,
		Console: os.Stderr,
		File:    cfg.Log,
	}
}

// New creates a logger. The returned cleanup flushes buffered entries and
// closes the log file; it is safe to call more than once.
func New(opts Options) (*zap.Logger, func(), error) {
	level := zapcore.ErrorLevel
	if opts.Verbose {
		level = zapcore.InfoLevel
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.AddSync(console),
			level,
		),
	}

	var rotator *lumberjack.Logger
	if opts.File.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File.File), 0755); err != nil {
			return nil, nil, err
		}

		rotator = &lumberjack.Logger{
			Filename:   opts.File.File,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
		}

		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileCfg),
			zapcore.AddSync(rotator),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))

	closed := false
	cleanup := func() {
		if closed {
			return
		}
		closed = true
		_ = logger.Sync() // Best effort; stderr may not support fsync
		if rotator != nil {
			_ = rotator.Close()
		}
	}

	return logger, cleanup, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
