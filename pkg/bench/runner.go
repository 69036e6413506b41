// Package bench measures how long a regex engine takes to find every match
// of each benchmark pattern in a corpus, printing one row per pattern.
//
// Patterns are measured one at a time, in order. A row is written as soon as
// its measurement finishes so partial output survives a later failure.
package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/regexbench/pkg/corpus"
	"github.com/Veraticus/regexbench/pkg/engine"
	"github.com/Veraticus/regexbench/pkg/interfaces"
	"github.com/Veraticus/regexbench/pkg/patterns"
)

// Separator is printed under the header line.
var Separator = strings.Repeat("─", 41)

// Policy decides what happens when a pattern cannot be measured.
type Policy string

const (
	// PolicyAbort stops the run at the first failing pattern.
	PolicyAbort Policy = "abort"
	// PolicyReport prints a failed row and moves on to the next pattern.
	PolicyReport Policy = "report"
)

// Result is the measurement of one pattern.
type Result struct {
	Name    string
	Elapsed time.Duration
	Count   int
	Err     error
}

// Milliseconds returns Elapsed as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// PatternError reports a pattern that failed to compile or scan.
type PatternError struct {
	Pattern string
	Op      string // "compile" or "match"
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s: %v", e.Pattern, e.Op, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

type nopProgress struct{}

func (nopProgress) ReportStart(string)   {}
func (nopProgress) ReportDone(string)    {}
func (nopProgress) ReportFailure(string) {}

// Runner executes the benchmark.
type Runner struct {
	engine   engine.Engine
	patterns []patterns.Pattern
	out      io.Writer
	label    string
	policy   Policy
	progress interfaces.ProgressReporter
	clock    interfaces.Clock
	logger   zerolog.Logger
}

// NewRunner creates a runner that measures set with eng and writes the
// report to out.
func NewRunner(eng engine.Engine, set []patterns.Pattern, out io.Writer) *Runner {
	return &Runner{
		engine:   eng,
		patterns: set,
		out:      out,
		label:    eng.Label(),
		policy:   PolicyAbort,
		progress: nopProgress{},
		clock:    interfaces.SystemClock{},
		logger:   zerolog.Nop(),
	}
}

// SetLabel overrides the header label. An empty label keeps the engine's.
func (r *Runner) SetLabel(label string) {
	if label != "" {
		r.label = label
	}
}

// SetPolicy sets the failure policy.
func (r *Runner) SetPolicy(p Policy) {
	r.policy = p
}

// SetProgressReporter sets the reporter notified around each pattern.
func (r *Runner) SetProgressReporter(p interfaces.ProgressReporter) {
	if p == nil {
		p = nopProgress{}
	}
	r.progress = p
}

// SetClock replaces the monotonic clock, for tests.
func (r *Runner) SetClock(c interfaces.Clock) {
	r.clock = c
}

// SetLogger sets the diagnostics logger.
func (r *Runner) SetLogger(l zerolog.Logger) {
	r.logger = l
}

// Run prints the header and one row per pattern. Under PolicyAbort the first
// failure is returned as a *PatternError.
func (r *Runner) Run(c *corpus.Corpus) error {
	if err := r.writeHeader(c); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, p := range r.patterns {
		res := r.Measure(p, c.Data)
		if res.Err != nil && r.policy != PolicyReport {
			r.progress.ReportFailure(p.Name)
			return res.Err
		}

		if err := r.writeRow(res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if res.Err != nil {
			r.progress.ReportFailure(p.Name)
		} else {
			r.progress.ReportDone(p.Name)
		}
	}

	return nil
}

// Measure compiles p and times a full scan of data. Compilation is not part
// of the measured time.
func (r *Runner) Measure(p patterns.Pattern, data []byte) Result {
	r.progress.ReportStart(p.Name)
	res := Result{Name: p.Name}

	compileStart := r.clock.Now()
	m, err := r.engine.Compile(p.Source)
	if err != nil {
		res.Err = &PatternError{Pattern: p.Name, Op: "compile", Err: err}
		return res
	}
	r.logger.Debug().
		Str("pattern", p.Name).
		Str("engine", r.engine.Name()).
		Dur("compile", r.clock.Since(compileStart)).
		Msg("compiled")

	start := r.clock.Now()
	n, err := m.Count(data)
	res.Elapsed = r.clock.Since(start)
	if err != nil {
		res.Err = &PatternError{Pattern: p.Name, Op: "match", Err: err}
		return res
	}
	res.Count = n

	r.logger.Debug().
		Str("pattern", p.Name).
		Int("matches", n).
		Dur("elapsed", res.Elapsed).
		Msg("measured")

	return res
}

func (r *Runner) writeHeader(c *corpus.Corpus) error {
	if _, err := fmt.Fprintf(r.out, "%s (input: %.2f MB)\n", r.label, c.SizeMiB()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, Separator)
	return err
}

func (r *Runner) writeRow(res Result) error {
	var err error
	if res.Err != nil {
		_, err = fmt.Fprintf(r.out, "%-15s %10s ms  %6s matches  (%v)\n", res.Name, "-", "-", res.Err)
	} else {
		_, err = fmt.Fprintf(r.out, "%-15s %10.2f ms  %6d matches\n", res.Name, res.Milliseconds(), res.Count)
	}
	return err
}
