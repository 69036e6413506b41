package engine

import "github.com/coregx/coregex"

// Coregex drives github.com/coregx/coregex, an accelerated RE2-compatible engine.
type Coregex struct{}

func (Coregex) Name() string  { return NameCoregex }
func (Coregex) Label() string { return "Go coregex" }

// Compile parses source with coregex.
func (Coregex) Compile(source string) (Matcher, error) {
	re, err := coregex.Compile(source)
	if err != nil {
		return nil, err
	}
	return coregexMatcher{re: re}, nil
}

type coregexMatcher struct {
	re *coregex.Regex
}

func (m coregexMatcher) Count(data []byte) (int, error) {
	return len(m.re.FindAllIndex(data, -1)), nil
}
