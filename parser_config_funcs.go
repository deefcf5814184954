package qcli

import (
	"io"
	"log/slog"
)

func WithApplicationName(name string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetApplicationName(name)
	}
}

func WithApplicationVersion(version string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetApplicationVersion(version)
	}
}

func WithApplicationDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetApplicationDescription(description)
	}
}

// WithHelpOption is a wrapper for AddHelpOption.
func WithHelpOption() ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddHelpOption()
	}
}

// WithVersionOption is a wrapper for AddVersionOption.
func WithVersionOption() ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddVersionOption()
	}
}

// WithOption declares o on the root context, which makes it valid at every level.
func WithOption(o *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(o)
	}
}

func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetStdout(w)
	}
}

func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetStderr(w)
	}
}

// WithExitFunc replaces os.Exit in Process. Tests use it to observe the exit code.
func WithExitFunc(exitFunc func(code int)) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetExitFunc(exitFunc)
	}
}

func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}
