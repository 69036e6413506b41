package engine

import "github.com/dlclark/regexp2"

// Regexp2 drives github.com/dlclark/regexp2, a backtracking engine with
// Perl/.NET syntax. It has no match timeout, so a pathological pattern
// blocks the caller.
type Regexp2 struct{}

func (Regexp2) Name() string  { return NameRegexp2 }
func (Regexp2) Label() string { return "Go regexp2" }

// Compile parses source with regexp2 default options.
func (Regexp2) Compile(source string) (Matcher, error) {
	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, err
	}
	return regexp2Matcher{re: re}, nil
}

type regexp2Matcher struct {
	re *regexp2.Regexp
}

// Count walks the match iterator. regexp2 only works on strings, so the
// buffer is converted once per scan.
func (m regexp2Matcher) Count(data []byte) (int, error) {
	n := 0
	match, err := m.re.FindStringMatch(string(data))
	for err == nil && match != nil {
		n++
		match, err = m.re.FindNextMatch(match)
	}
	return n, err
}
