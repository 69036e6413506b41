package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/regexbench/pkg/bench"
	"github.com/Veraticus/regexbench/pkg/config"
	"github.com/Veraticus/regexbench/pkg/engine"
	"github.com/Veraticus/regexbench/pkg/logging"
)

const usageLine = "Usage: benchmark <input-file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options mirrors the command line flags
type options struct {
	configPath     string
	engine         string
	set            string
	label          string
	onCompileError string
	mmap           bool
	noProgress     bool
	debug          bool
	help           bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("benchmark", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.engine, "engine", engine.Default, "Regex engine ("+strings.Join(engine.Names(), ", ")+")")
	fs.StringVar(&opts.set, "set", "default", "Pattern set (default, extended)")
	fs.StringVar(&opts.label, "label", "", "Header label (default: engine label)")
	fs.StringVar(&opts.onCompileError, "on-compile-error", "abort", "What to do when a pattern fails: abort or report")
	fs.BoolVar(&opts.mmap, "mmap", false, "Memory-map the input file")
	fs.BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress line on stderr")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")

	return fs
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, usageLine)
		return 1
	}

	if opts.help {
		printUsage(stdout, fs)
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usageLine)
		return 1
	}
	inputPath := fs.Arg(0)

	// Point the loader at an explicit config file
	if opts.configPath != "" {
		if err := os.Setenv("REGEXBENCH_CONFIG", opts.configPath); err != nil {
			fmt.Fprintf(stderr, "Error setting config path: %v\n", err)
			return 1
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	applyFlags(cfg, fs, &opts)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.InitLogger(stderr, cfg.Debug)
	logger.Debug().
		Str("engine", cfg.Engine).
		Str("set", cfg.PatternSet).
		Str("on_compile_error", cfg.OnCompileError).
		Bool("mmap", cfg.Mmap).
		Msg("configuration loaded")

	deps, err := NewDependencies(cfg, stdout, stderr, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create dependencies")
		return 1
	}
	defer deps.Close()

	app := NewApplication(deps)
	if err := app.Run(inputPath); err != nil {
		var perr *bench.PatternError
		if errors.As(err, &perr) {
			logger.Error().Err(perr.Err).Str("pattern", perr.Pattern).Msgf("benchmark aborted: %s failed", perr.Op)
		} else {
			logger.Error().Err(err).Msg("benchmark failed")
		}
		return 1
	}

	return 0
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config, fs *flag.FlagSet, opts *options) {
	if fs.Changed("engine") {
		cfg.Engine = opts.engine
	}
	if fs.Changed("set") {
		cfg.PatternSet = opts.set
	}
	if fs.Changed("label") {
		cfg.Label = opts.label
	}
	if fs.Changed("on-compile-error") {
		cfg.OnCompileError = opts.onCompileError
	}
	if fs.Changed("mmap") {
		cfg.Mmap = opts.mmap
	}
	if opts.noProgress {
		cfg.Progress = false
	}
	if fs.Changed("debug") {
		cfg.Debug = opts.debug
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "benchmark - time a fixed set of regular expressions against a text file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: benchmark [OPTIONS] <input-file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  REGEXBENCH_ENGINE             Regex engine (default: coregex)")
	fmt.Fprintln(w, "  REGEXBENCH_SET                Pattern set (default, extended)")
	fmt.Fprintln(w, "  REGEXBENCH_LABEL              Header label")
	fmt.Fprintln(w, "  REGEXBENCH_ON_COMPILE_ERROR   abort or report (default: abort)")
	fmt.Fprintln(w, "  REGEXBENCH_MMAP               Memory-map the input (true/false)")
	fmt.Fprintln(w, "  REGEXBENCH_PROGRESS           Show progress on a terminal (default: true)")
	fmt.Fprintln(w, "  REGEXBENCH_DEBUG              Debug logging (true/false)")
	fmt.Fprintln(w, "  REGEXBENCH_CONFIG             Path to config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/regexbench/config.yaml")
}
