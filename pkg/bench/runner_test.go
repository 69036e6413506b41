package bench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/regexbench/pkg/corpus"
	"github.com/Veraticus/regexbench/pkg/engine"
	"github.com/Veraticus/regexbench/pkg/patterns"
	"github.com/Veraticus/regexbench/pkg/testutil"
)

func TestRunFormatsReport(t *testing.T) {
	set := []patterns.Pattern{
		{Name: "literal_alt", Source: "a"},
		{Name: "ip", Source: "b"},
	}
	eng := testutil.NewMockEngine(map[string]int{"a": 3, "b": 123456})

	var out bytes.Buffer
	r := NewRunner(eng, set, &out)
	r.SetClock(testutil.NewFakeClock(1500 * time.Microsecond))

	require.NoError(t, r.Run(corpus.New(make([]byte, 3*1024*1024))))

	want := "Mock engine (input: 3.00 MB)\n" +
		"─────────────────────────────────────────\n" +
		"literal_alt           1.50 ms       3 matches\n" +
		"ip                    1.50 ms  123456 matches\n"
	assert.Equal(t, want, out.String())
}

func TestSeparatorWidth(t *testing.T) {
	assert.Equal(t, 41, len([]rune(Separator)))
}

func TestSetLabel(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(testutil.NewMockEngine(nil), nil, &out)
	r.SetLabel("")
	r.SetLabel("Custom")
	require.NoError(t, r.Run(corpus.New(nil)))
	assert.Equal(t, "Custom (input: 0.00 MB)\n"+Separator+"\n", out.String())
}

func TestRunAbortsOnCompileError(t *testing.T) {
	set := []patterns.Pattern{
		{Name: "first", Source: "ok"},
		{Name: "broken", Source: "("},
		{Name: "never", Source: "later"},
	}
	eng := testutil.NewMockEngine(map[string]int{"ok": 1})
	eng.SetBroken("(")
	progress := testutil.NewMockProgressReporter()

	var out bytes.Buffer
	r := NewRunner(eng, set, &out)
	r.SetProgressReporter(progress)

	err := r.Run(corpus.New([]byte("text")))
	require.Error(t, err)

	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "broken", perr.Pattern)
	assert.Equal(t, "compile", perr.Op)
	assert.True(t, errors.Is(err, testutil.ErrMockCompile))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header, separator and the first row stay printed")
	assert.True(t, strings.HasPrefix(lines[2], "first "))
	assert.Equal(t, []string{"ok", "("}, eng.GetCompiled())
	assert.Equal(t, []string{"start:first", "done:first", "start:broken", "fail:broken"}, progress.GetEvents())
}

func TestRunReportPolicyContinues(t *testing.T) {
	set := []patterns.Pattern{
		{Name: "broken", Source: "("},
		{Name: "after", Source: "ok"},
	}
	eng := testutil.NewMockEngine(map[string]int{"ok": 2})
	eng.SetBroken("(")
	progress := testutil.NewMockProgressReporter()

	var out bytes.Buffer
	r := NewRunner(eng, set, &out)
	r.SetPolicy(PolicyReport)
	r.SetProgressReporter(progress)
	r.SetClock(testutil.NewFakeClock(time.Millisecond))

	require.NoError(t, r.Run(corpus.New(nil)))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "broken                   - ms       - matches  (pattern \"broken\": compile:"))
	assert.Equal(t, "after                 1.00 ms       2 matches", lines[3])
	assert.Equal(t, []string{"start:broken", "fail:broken", "start:after", "done:after"}, progress.GetEvents())
}

var errClosedPipe = errors.New("closed pipe")

// failingWriter accepts ok writes and then fails every write after.
type failingWriter struct {
	ok int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errClosedPipe
	}
	w.ok--
	return len(p), nil
}

func TestRunWriteFailure(t *testing.T) {
	tests := []struct {
		name string
		ok   int
	}{
		{name: "header", ok: 0},
		{name: "row", ok: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := []patterns.Pattern{{Name: "first", Source: "ok"}}
			eng := testutil.NewMockEngine(map[string]int{"ok": 1})

			r := NewRunner(eng, set, &failingWriter{ok: tt.ok})
			err := r.Run(corpus.New([]byte("text")))

			require.Error(t, err)
			assert.ErrorIs(t, err, errClosedPipe)
			assert.ErrorContains(t, err, "failed to write report")

			var perr *PatternError
			assert.False(t, errors.As(err, &perr))
		})
	}
}

func TestResultMilliseconds(t *testing.T) {
	r := Result{Elapsed: 2250 * time.Microsecond}
	assert.InDelta(t, 2.25, r.Milliseconds(), 1e-9)
}

func runDefault(t *testing.T, name string, input string) (string, []Result) {
	t.Helper()

	eng, err := engine.New(name)
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner(eng, patterns.Default, &out)
	require.NoError(t, r.Run(corpus.New([]byte(input))))

	results := make([]Result, 0, len(patterns.Default))
	for _, p := range patterns.Default {
		res := r.Measure(p, []byte(input))
		require.NoError(t, res.Err)
		results = append(results, res)
	}
	return out.String(), results
}

func countsByName(results []Result) map[string]int {
	counts := make(map[string]int, len(results))
	for _, res := range results {
		counts[res.Name] = res.Count
	}
	return counts
}

func TestRunPrintsOneRowPerPattern(t *testing.T) {
	inputs := []string{
		"",
		"plain words only",
		"HTTP/1.1 200 OK\n[error] see https://example.com/x?y=1 from 10.0.0.1 at a@example.com notes.md\n",
	}

	for _, name := range engine.Names() {
		for _, input := range inputs {
			out, _ := runDefault(t, name, input)
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, 2+len(patterns.Default))
			assert.Equal(t, Separator, lines[1])
			for i, p := range patterns.Default {
				assert.True(t, strings.HasPrefix(lines[i+2], p.Name+" "), "row %d: %q", i, lines[i+2])
				assert.True(t, strings.HasSuffix(lines[i+2], " matches"))
			}
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	out, results := runDefault(t, engine.NameCoregex, "")
	assert.True(t, strings.HasPrefix(out, "Go coregex (input: 0.00 MB)\n"))
	for _, res := range results {
		assert.Zero(t, res.Count, res.Name)
	}
}

func TestRunContactLine(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			_, results := runDefault(t, name, "contact us at foo@example.com or bar@test.org")
			counts := countsByName(results)
			assert.Equal(t, 2, counts["email"])
			assert.Equal(t, 1, counts["inner_literal"])
			assert.Equal(t, 0, counts["anchored"])
		})
	}
}

func TestRunCountsAreDeterministic(t *testing.T) {
	var buf bytes.Buffer
	_, err := corpus.Generate(&buf, corpus.GenerateOptions{Size: 128 * 1024, Seed: corpus.DefaultSeed})
	require.NoError(t, err)

	_, first := runDefault(t, engine.NameCoregex, buf.String())
	_, second := runDefault(t, engine.NameCoregex, buf.String())
	assert.Equal(t, countsByName(first), countsByName(second))

	// the generator starts with an HTTP request line
	assert.Equal(t, 1, countsByName(first)["anchored"])

	_, stdlib := runDefault(t, engine.NameStdlib, buf.String())
	assert.Equal(t, countsByName(first), countsByName(stdlib))
}
