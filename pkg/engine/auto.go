package engine

import "strings"

// Auto compiles with coregex unless the source uses syntax only a
// backtracking engine supports, in which case regexp2 is used.
type Auto struct{}

func (Auto) Name() string  { return NameAuto }
func (Auto) Label() string { return "Go auto" }

// Compile picks a backend for source and compiles it there.
func (Auto) Compile(source string) (Matcher, error) {
	if NeedsBacktracking(source) {
		return Regexp2{}.Compile(source)
	}
	return Coregex{}.Compile(source)
}

// backtrackOnly lists constructs RE2-family engines reject.
var backtrackOnly = []string{
	// lookaround
	"(?=", "(?!", "(?<=", "(?<!",
	// atomic, branch reset, conditional, comment, recursion
	"(?>", "(?|", "(?(", "(?#", "(?R)", "(?P>", "(?&",
	// escapes RE2 does not know
	`\h`, `\H`, `\R`, `\X`, `\K`, `\G`, `\Z`,
	// named backreferences
	`\k<`, `\k'`, `\k{`, `(?P=`,
}

// NeedsBacktracking reports whether source uses features that only a
// backtracking engine can execute.
func NeedsBacktracking(source string) bool {
	for _, tok := range backtrackOnly {
		if strings.Contains(source, tok) {
			return true
		}
	}

	// numbered backreferences \1..\9, ignoring escaped backslashes
	escaped := false
	for i := 0; i < len(source); i++ {
		if source[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(source) && source[i+1] >= '1' && source[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// .NET/PCRE named groups; RE2 only accepts the (?P<name>) form
	if !strings.Contains(source, "(?P<") &&
		(strings.Contains(source, "(?<") || strings.Contains(source, "(?'")) {
		return true
	}

	return false
}
