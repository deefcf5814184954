package qcli

import "github.com/napalu/qcli/flat"

// Option is a command line option attached to a Node. Single-character names are
// given as -x, longer names as --name.
type Option = flat.Option

// ConfigureOptionFunc configures an Option.
type ConfigureOptionFunc = flat.ConfigureOptionFunc

// NewOption creates a boolean switch with the given names.
func NewOption(names ...string) *Option {
	return flat.NewOption(names...)
}

// NewOptionWith creates and validates an option.
//
//	size, err := qcli.NewOptionWith([]string{"size"},
//	    qcli.WithDescription("Choose the <size> (in pixels) the tree should be high"),
//	    qcli.WithValueName("size"),
//	    qcli.WithDefault("42"))
func NewOptionWith(names []string, configs ...ConfigureOptionFunc) (*Option, error) {
	return flat.NewOptionWith(names, configs...)
}

func WithDescription(description string) ConfigureOptionFunc {
	return flat.WithDescription(description)
}

// WithValueName makes the option expect a value shown as <name> in help.
func WithValueName(name string) ConfigureOptionFunc {
	return flat.WithValueName(name)
}

func WithDefault(value string) ConfigureOptionFunc {
	return flat.WithDefault(value)
}

func WithDefaults(values ...string) ConfigureOptionFunc {
	return flat.WithDefaults(values...)
}

func WithAlias(names ...string) ConfigureOptionFunc {
	return flat.WithAlias(names...)
}

func SetHidden(hidden bool) ConfigureOptionFunc {
	return flat.SetHidden(hidden)
}
