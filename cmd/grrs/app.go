package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Veraticus/grrs/pkg/config"
	"github.com/Veraticus/grrs/pkg/input"
	"github.com/Veraticus/grrs/pkg/logging"
	"github.com/Veraticus/grrs/pkg/search"
	"github.com/Veraticus/grrs/pkg/terminal"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Stdout    io.Writer
	Highlight bool
	cleanup   func()
}

// NewDependencies creates all dependencies with the given configuration.
// Matches go to stdout and diagnostics to stderr.
func NewDependencies(cfg *config.Config, stdout, stderr io.Writer) (*Dependencies, error) {
	logOpts := logging.OptionsFromConfig(cfg)
	logOpts.Console = stderr

	logger, cleanup, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Stdout:    stdout,
		Highlight: shouldHighlight(cfg.Color, stdout),
		cleanup:   cleanup,
	}, nil
}

// shouldHighlight resolves the color mode against the actual output.
func shouldHighlight(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		f, ok := out.(*os.File)
		return ok && terminal.IsFileTerminal(f)
	default:
		return false
	}
}

// Close flushes the logger and releases the log file
func (d *Dependencies) Close() {
	if d.cleanup != nil {
		d.cleanup()
		d.cleanup = nil
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run searches the file at path for pattern and prints the matching lines,
// or the no-match message when there are none.
func (a *Application) Run(pattern, path string) error {
	logger := a.deps.Logger
	logger.Info("starting up", zap.String("pattern", pattern), zap.String("path", path))

	content, err := input.ReadFile(path)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(a.deps.Stdout)

	// Nothing to scan
	if content == "" {
		logger.Warn("target file is empty", zap.String("path", path))
		return a.finish(out, false)
	}

	matcher := search.NewMatcher(pattern, search.Options{
		LineNumbers: a.deps.Config.LineNumber,
		Highlight:   a.deps.Highlight,
	})
	res, err := matcher.Scan(content, out)
	if err != nil {
		return err
	}

	logger.Info("scan finished", zap.Int("matches", res.Count))
	return a.finish(out, res.Matched)
}

// finish reports a miss if needed and flushes the buffered output.
func (a *Application) finish(out *bufio.Writer, matched bool) error {
	if !matched && a.deps.Config.NoMatchMessage != "" {
		if _, err := fmt.Fprintln(out, a.deps.Config.NoMatchMessage); err != nil {
			return fmt.Errorf("%w: %w", search.ErrWrite, err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", search.ErrWrite, err)
	}
	return nil
}
