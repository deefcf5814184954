package flat

import "strings"

// Positional is a declared positional argument. It only affects help output; the
// parser accepts any number of positional tokens unless strict mode is enabled.
type Positional struct {
	Name        string
	Description string
	Syntax      string
}

// Variadic is true when the syntax (or the name when no syntax is set) marks the
// argument as repeatable, as in "number..." or "[file...]".
func (p Positional) Variadic() bool {
	s := p.Syntax
	if s == "" {
		s = p.Name
	}

	return strings.HasSuffix(strings.TrimRight(s, "]>"), "...")
}
