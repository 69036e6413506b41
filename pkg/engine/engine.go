// Package engine abstracts the regex engines the benchmark can drive.
//
// Every engine compiles a pattern source into a Matcher whose only job is to
// count the non-overlapping matches in a buffer, scanning left to right.
package engine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEngine is returned by New for an unrecognized engine name.
var ErrUnknownEngine = errors.New("unknown regex engine")

// Engine names accepted by New.
const (
	NameCoregex = "coregex"
	NameStdlib  = "stdlib"
	NameRegexp2 = "regexp2"
	NameAuto    = "auto"
)

// Default is the engine used when none is configured.
const Default = NameCoregex

// Engine compiles pattern sources.
type Engine interface {
	// Name is the identifier used on the command line.
	Name() string
	// Label is printed in the report header.
	Label() string
	Compile(source string) (Matcher, error)
}

// Matcher counts matches of a compiled pattern.
type Matcher interface {
	Count(data []byte) (int, error)
}

var constructors = map[string]func() Engine{
	NameCoregex: func() Engine { return Coregex{} },
	NameStdlib:  func() Engine { return Stdlib{} },
	NameRegexp2: func() Engine { return Regexp2{} },
	NameAuto:    func() Engine { return Auto{} },
}

// New returns the engine registered under name.
func New(name string) (Engine, error) {
	if name == "" {
		name = Default
	}
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return ctor(), nil
}

// Names lists the registered engine names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
