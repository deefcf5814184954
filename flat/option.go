package flat

import (
	"strings"

	"github.com/napalu/qcli/errs"
)

// Option describes a command line option: one or more aliases, an optional value
// placeholder and default values. An Option without ValueName is a boolean switch.
// Single-character aliases are given as -x, longer ones as --name.
type Option struct {
	Names         []string
	Description   string
	ValueName     string
	DefaultValues []string
	Hidden        bool
}

// ConfigureOptionFunc configures an Option. A non-nil *error reports a configuration failure.
type ConfigureOptionFunc func(*Option, *error)

// NewOption creates an option with the given aliases.
func NewOption(names ...string) *Option {
	return &Option{Names: names}
}

// NewOptionWith creates an option with the given aliases and configuration. The option
// is validated after all configs have been applied.
//
//	opt, err := flat.NewOptionWith([]string{"s", "size"},
//	    flat.WithDescription("The tree size"),
//	    flat.WithValueName("size"),
//	    flat.WithDefault("42"))
func NewOptionWith(names []string, configs ...ConfigureOptionFunc) (*Option, error) {
	o := NewOption(names...)
	if err := o.Set(configs...); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Set applies configs in order and stops at the first error.
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that the option has at least one alias and that no alias is empty,
// starts with '-' or contains '='.
func (o *Option) Validate() error {
	if len(o.Names) == 0 {
		return errs.ErrEmptyOptionName
	}
	for _, name := range o.Names {
		if name == "" {
			return errs.ErrEmptyOptionName
		}
		if strings.HasPrefix(name, "-") || strings.ContainsAny(name, "= \t") {
			return errs.ErrInvalidOptionName.WithArgs(name)
		}
	}

	return nil
}

// TakesValue is true when the option expects a value.
func (o *Option) TakesValue() bool {
	return o.ValueName != ""
}

// HasName reports whether name is one of the option's aliases.
func (o *Option) HasName(name string) bool {
	for _, n := range o.Names {
		if n == name {
			return true
		}
	}

	return false
}

// Clone returns a copy that shares no slices with o.
func (o *Option) Clone() *Option {
	c := *o
	c.Names = append([]string(nil), o.Names...)
	c.DefaultValues = append([]string(nil), o.DefaultValues...)

	return &c
}

func WithDescription(description string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.Description = description
	}
}

// WithValueName turns the option into a value option displayed as <name>.
func WithValueName(name string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.ValueName = name
	}
}

// WithDefault sets a single default value.
func WithDefault(value string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.DefaultValues = []string{value}
	}
}

func WithDefaults(values ...string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.DefaultValues = append([]string(nil), values...)
	}
}

// WithAlias adds further names to the option.
func WithAlias(names ...string) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.Names = append(o.Names, names...)
	}
}

// SetHidden hides the option from help output. Hidden options still parse.
func SetHidden(hidden bool) ConfigureOptionFunc {
	return func(o *Option, err *error) {
		o.Hidden = hidden
	}
}
