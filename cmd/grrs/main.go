package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/grrs/pkg/config"
	flag "github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// cliOptions holds the parsed command line
type cliOptions struct {
	configPath string
	verbose    bool
	lineNumber bool
	color      string

	pattern string
	path    string

	// changed records which flags were given explicitly
	changed map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes grrs with args and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout)
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run 'grrs --help' for usage.\n")
		return exitUsage
	}

	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitUsage
	}

	// Command line flags take precedence over file and environment
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	deps, err := NewDependencies(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
		return exitError
	}
	defer deps.Close()

	app := NewApplication(deps)
	if err := app.Run(opts.pattern, opts.path); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	return exitOK
}

func newFlagSet(opts *cliOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("grrs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	fs.BoolVarP(&opts.lineNumber, "line-number", "n", false, "Prefix each match with its line number")
	fs.StringVar(&opts.color, "color", string(config.ColorAuto), "Highlight matches: auto, always or never")
	return fs
}

// parseArgs parses flags and the two positional arguments
func parseArgs(args []string) (*cliOptions, error) {
	opts := &cliOptions{changed: map[string]bool{}}
	fs := newFlagSet(opts)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	positional := fs.Args()
	if len(positional) != 2 {
		return nil, fmt.Errorf("expected <pattern> <path>, got %d argument(s)", len(positional))
	}
	opts.pattern = positional[0]
	opts.path = positional[1]

	fs.Visit(func(f *flag.Flag) {
		opts.changed[f.Name] = true
	})

	return opts, nil
}

// apply overrides cfg with the flags given on the command line
func (o *cliOptions) apply(cfg *config.Config) error {
	if o.changed["verbose"] {
		cfg.Verbose = o.verbose
	}
	if o.changed["line-number"] {
		cfg.LineNumber = o.lineNumber
	}
	if o.changed["color"] {
		mode, err := config.ParseColorMode(o.color)
		if err != nil {
			return err
		}
		cfg.Color = mode
	}
	return nil
}

func printUsage(w io.Writer) {
	fs := newFlagSet(&cliOptions{})

	fmt.Fprintln(w, "grrs - search a file for lines containing a pattern")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: grrs [OPTIONS] <pattern> <path>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  GRRS_VERBOSE           Log diagnostics to stderr (true/false)")
	fmt.Fprintln(w, "  GRRS_LINE_NUMBER       Prefix matches with line numbers (true/false)")
	fmt.Fprintln(w, "  GRRS_COLOR             Highlight matches: auto, always or never")
	fmt.Fprintln(w, "  GRRS_NO_MATCH_MESSAGE  Text printed when nothing matches (default: no match)")
	fmt.Fprintln(w, "  GRRS_LOG_FILE          Also write diagnostics to this rotating log file")
	fmt.Fprintln(w, "  GRRS_CONFIG            Path to config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/grrs/config.yaml")
}
