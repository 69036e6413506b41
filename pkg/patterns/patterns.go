// Package patterns holds the benchmark pattern table.
package patterns

import (
	"errors"
	"fmt"
)

// ErrUnknownSet is returned by Lookup for an unrecognized set name.
var ErrUnknownSet = errors.New("unknown pattern set")

// Set names accepted by Lookup.
const (
	SetDefault  = "default"
	SetExtended = "extended"
)

// Pattern is a named regular expression used as a benchmark case.
type Pattern struct {
	Name   string `yaml:"name" validate:"required"`
	Source string `yaml:"regex" validate:"required"`
}

// Default is the fixed benchmark table. Order is the reporting order.
var Default = []Pattern{
	{"literal_alt", `error|warning|fatal|critical`},
	{"anchored", `^HTTP/[12]\.[01]`},
	{"inner_literal", `.*@example\.com`},
	{"suffix", `.*\.(txt|log|md)`},
	{"char_class", `[\w]+`},
	{"email", `[\w.+-]+@[\w.-]+\.[\w.-]+`},
	{"uri", `[\w]+://[^/\s?#]+[^\s?#]+(?:\?[^\s#]*)?(?:#[^\s]*)?`},
	{"ip", `(?:(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`},
}

// extra cases appended to Default by the extended set
var extra = []Pattern{
	{"multi_literal", `apple|banana|cherry|date|elderberry|fig|grape|honeydew|kiwi|lemon|mango|orange`},
	{"version", `\d+\.\d+\.\d+`},
}

// Lookup returns a copy of the named pattern set.
func Lookup(set string) ([]Pattern, error) {
	switch set {
	case "", SetDefault:
		return append([]Pattern(nil), Default...), nil
	case SetExtended:
		out := make([]Pattern, 0, len(Default)+len(extra))
		out = append(out, Default...)
		return append(out, extra...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSet, set)
	}
}

// Names returns the pattern names in order.
func Names(ps []Pattern) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}
