package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/Veraticus/regexbench/pkg/bench"
	"github.com/Veraticus/regexbench/pkg/config"
	"github.com/Veraticus/regexbench/pkg/corpus"
	"github.com/Veraticus/regexbench/pkg/engine"
	"github.com/Veraticus/regexbench/pkg/status"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config          *config.Config
	Engine          engine.Engine
	Loader          *corpus.Loader
	Runner          *bench.Runner
	StatusIndicator *status.Indicator
	StatusReporter  *status.Reporter
	Logger          zerolog.Logger
}

// NewDependencies creates all dependencies with the given configuration.
// The report goes to stdout; progress and logs go to stderr.
func NewDependencies(cfg *config.Config, stdout, stderr io.Writer, logger zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	eng, err := engine.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	deps.Engine = eng

	set, err := cfg.Patterns()
	if err != nil {
		return nil, err
	}

	deps.Loader = corpus.NewLoader(cfg.Mmap)

	// The progress line is only drawn on an interactive terminal
	statusEnabled := cfg.Progress && isTerminal(stderr)
	deps.StatusIndicator = status.NewIndicator(stderr, statusEnabled)
	deps.StatusReporter = status.NewReporter(deps.StatusIndicator)

	deps.Runner = bench.NewRunner(eng, set, stdout)
	deps.Runner.SetLabel(cfg.Label)
	deps.Runner.SetPolicy(bench.Policy(cfg.OnCompileError))
	deps.Runner.SetProgressReporter(deps.StatusReporter)
	deps.Runner.SetLogger(logger)

	return deps, nil
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.StatusIndicator != nil {
		_ = d.StatusIndicator.Clear() // Best effort
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
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

// Run loads the input file and measures every pattern against it
func (a *Application) Run(inputPath string) error {
	c, err := a.deps.Loader.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	defer func() { _ = c.Close() }()

	a.deps.Logger.Debug().
		Str("engine", a.deps.Engine.Name()).
		Str("input", inputPath).
		Int("bytes", c.Len()).
		Bool("mapped", c.Mapped).
		Msg("corpus loaded")

	return a.deps.Runner.Run(c)
}
