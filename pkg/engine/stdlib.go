package engine

import "regexp"

// Stdlib drives the standard library regexp package.
type Stdlib struct{}

func (Stdlib) Name() string  { return NameStdlib }
func (Stdlib) Label() string { return "Go stdlib" }

// Compile parses source with regexp.Compile.
func (Stdlib) Compile(source string) (Matcher, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	return stdlibMatcher{re: re}, nil
}

type stdlibMatcher struct {
	re *regexp.Regexp
}

func (m stdlibMatcher) Count(data []byte) (int, error) {
	return len(m.re.FindAllIndex(data, -1)), nil
}
