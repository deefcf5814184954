// Package flat implements a single-level command line parser: options with aliases,
// switches and value options, compacted short switches and positional arguments.
//
// It knows nothing about commands. The hierarchical resolver in package qcli drives it
// once per command level, adding options cumulatively as it descends.
package flat

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/qcli/errs"
	"github.com/napalu/qcli/i18n"
	"github.com/napalu/qcli/internal/parse"
	"github.com/napalu/qcli/internal/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Parser is a flat option parser. Declarations survive Parse calls; results are reset
// by every call.
type Parser struct {
	options     *orderedmap.OrderedMap[string, *Option]
	declared    []*Option
	positionals []Positional
	strict      bool
	width       int
	renderer    Renderer
	bundle      *i18n.Bundle
	logger      *slog.Logger

	values  map[*Option][]string
	seen    []string
	unknown []string
	args    []string
	err     error
}

// NewParser returns an empty parser. The help width defaults to the width of the
// terminal behind stdout.
func NewParser() *Parser {
	s := &Parser{
		options: orderedmap.New[string, *Option](),
		width:   util.TerminalWidth(os.Stdout),
		bundle:  i18n.Default(),
		logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		values:  map[*Option][]string{},
	}
	s.renderer = NewRenderer(s)

	return s
}

// AddOption declares o. No alias of o may already be declared.
func (s *Parser) AddOption(o *Option) error {
	if o == nil {
		return errs.ErrEmptyOptionName
	}
	if err := o.Validate(); err != nil {
		return err
	}
	for _, name := range o.Names {
		if _, found := s.options.Get(name); found {
			return errs.ErrFlagAlreadyExists.WithArgs(name)
		}
	}
	for _, name := range o.Names {
		s.options.Set(name, o)
	}
	s.declared = append(s.declared, o)

	return nil
}

// AddOptions declares every option it can. Options whose aliases collide with already
// declared ones are skipped and reported in the joined error.
func (s *Parser) AddOptions(opts ...*Option) error {
	var errList []error
	for _, o := range opts {
		if err := s.AddOption(o); err != nil {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}

// ClearOptions removes every declared option.
func (s *Parser) ClearOptions() {
	s.options = orderedmap.New[string, *Option]()
	s.declared = nil
}

// Options returns the declared options in declaration order.
func (s *Parser) Options() []*Option {
	return append([]*Option(nil), s.declared...)
}

// IsKnown reports whether name is a declared alias.
func (s *Parser) IsKnown(name string) bool {
	_, found := s.options.Get(name)
	return found
}

func (s *Parser) AddPositionalArgument(name, description, syntax string) {
	s.positionals = append(s.positionals, Positional{Name: name, Description: description, Syntax: syntax})
}

func (s *Parser) ClearPositionalArguments() {
	s.positionals = nil
}

// Positionals returns the declared positional arguments.
func (s *Parser) Positionals() []Positional {
	return append([]Positional(nil), s.positionals...)
}

// SetStrictPositionals makes Parse fail when more positional tokens are given than declared,
// unless the last declaration is variadic.
func (s *Parser) SetStrictPositionals(strict bool) {
	s.strict = strict
}

func (s *Parser) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SetHelpWidth overrides the line width used by Help.
func (s *Parser) SetHelpWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// SetBundle sets the message bundle used for help texts.
func (s *Parser) SetBundle(bundle *i18n.Bundle) {
	if bundle != nil {
		s.bundle = bundle
	}
}

func (s *Parser) SetRenderer(renderer Renderer) {
	if renderer != nil {
		s.renderer = renderer
	}
}

// Parse processes args, which must not contain the program name. It returns false on
// error; positional tokens and recognised options are collected either way.
func (s *Parser) Parse(args []string) bool {
	s.values = map[*Option][]string{}
	s.seen = nil
	s.unknown = nil
	s.args = nil
	s.err = nil

	state := parse.NewState(args)
loop:
	for state.Advance() {
		arg := state.CurrentArg()
		switch {
		case arg == "--":
			s.args = append(s.args, state.Rest()...)
			break loop
		case strings.HasPrefix(arg, "--"):
			s.parseLong(state, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			s.parseShort(state, arg)
		default:
			s.args = append(s.args, arg)
		}
	}

	if s.err == nil && len(s.unknown) == 1 {
		s.err = errs.ErrUnknownFlag.WithArgs(s.unknown[0])
	} else if s.err == nil && len(s.unknown) > 1 {
		s.err = errs.ErrUnknownFlags.WithArgs(strings.Join(s.unknown, ", "))
	}
	if s.err == nil && s.strict {
		s.checkPositionalCount()
	}

	return s.err == nil
}

func (s *Parser) parseLong(state parse.State, arg string) {
	name, value, hasValue := strings.Cut(arg[2:], "=")
	o, found := s.options.Get(name)
	if !found {
		s.unknown = append(s.unknown, name)
		return
	}

	if !o.TakesValue() {
		if hasValue {
			s.setError(errs.ErrUnexpectedValue.WithArgs("--" + name))
			return
		}
		s.record(o, name, "")
		return
	}

	if !hasValue {
		next, ok := state.Peek()
		if !ok {
			s.setError(errs.ErrFlagExpectsValue.WithArgs(arg))
			return
		}
		state.Skip()
		value = next
	}
	s.record(o, name, value)
}

func (s *Parser) parseShort(state parse.State, arg string) {
	chars := []rune(arg[1:])
	for i, r := range chars {
		name := string(r)
		o, found := s.options.Get(name)
		if !found {
			s.unknown = append(s.unknown, name)
			continue
		}
		if !o.TakesValue() {
			s.record(o, name, "")
			continue
		}

		rest := strings.TrimPrefix(string(chars[i+1:]), "=")
		if rest == "" {
			next, ok := state.Peek()
			if !ok {
				s.setError(errs.ErrFlagExpectsValue.WithArgs("-" + name))
				return
			}
			state.Skip()
			rest = next
		}
		s.record(o, name, rest)
		return
	}
}

func (s *Parser) record(o *Option, name, value string) {
	s.seen = append(s.seen, name)
	s.values[o] = append(s.values[o], value)
}

func (s *Parser) setError(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Parser) checkPositionalCount() {
	if len(s.positionals) > 0 && s.positionals[len(s.positionals)-1].Variadic() {
		return
	}
	if len(s.args) > len(s.positionals) {
		s.err = errs.ErrTooManyArguments.WithArgs(len(s.positionals), len(s.args))
	}
}

func (s *Parser) lookup(name string) (*Option, bool) {
	o, found := s.options.Get(name)
	if !found {
		s.logger.Debug("option not declared", "name", name)
	}

	return o, found
}

// IsSet reports whether any alias of the option name was given on the last Parse.
func (s *Parser) IsSet(name string) bool {
	o, found := s.lookup(name)
	if !found {
		return false
	}

	return len(s.values[o]) > 0
}

// Value returns the last value given for name, or the last default value when the
// option was not given.
func (s *Parser) Value(name string) string {
	values := s.Values(name)
	if len(values) == 0 {
		return ""
	}

	return values[len(values)-1]
}

// Values returns every value given for name, or the default values when the option
// was not given. Switches yield one empty string per occurrence.
func (s *Parser) Values(name string) []string {
	o, found := s.lookup(name)
	if !found {
		return nil
	}
	if values, ok := s.values[o]; ok {
		return append([]string(nil), values...)
	}

	return append([]string(nil), o.DefaultValues...)
}

// OptionNames returns the option names given on the last Parse, in order of appearance
// and without the leading dashes. An option given twice appears twice.
func (s *Parser) OptionNames() []string {
	return append([]string(nil), s.seen...)
}

// UnknownOptionNames returns the undeclared option names seen on the last Parse.
func (s *Parser) UnknownOptionNames() []string {
	return append([]string(nil), s.unknown...)
}

// PositionalArguments returns the tokens of the last Parse that were not options
// or option values.
func (s *Parser) PositionalArguments() []string {
	return append([]string(nil), s.args...)
}

// Err returns the error of the last Parse or nil.
func (s *Parser) Err() error {
	return s.err
}

// ErrorText returns the message of the last Parse error or "".
func (s *Parser) ErrorText() string {
	if s.err == nil {
		return ""
	}

	return s.err.Error()
}
