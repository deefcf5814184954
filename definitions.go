package qcli

import (
	"io"
	"log/slog"

	"github.com/napalu/qcli/errs"
	"github.com/napalu/qcli/flat"
	"github.com/napalu/qcli/i18n"
)

// Process exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Names of the built-in options. IsSet is queried with these after every level.
const (
	HelpOptionName    = "help"
	VersionOptionName = "version"
)

// blankSyntax is the help syntax of every command placeholder after the first one.
// The first placeholder already lists all commands.
const blankSyntax = " \b"

// Parser resolves a command line against a tree of contexts and leaves. It is itself
// the root Context of that tree.
type Parser struct {
	*Context
	flat *flat.Parser

	chain     []string
	readIndex int
	err       error

	appName        string
	appVersion     string
	appDescription string

	stdout   io.Writer
	stderr   io.Writer
	exitFunc func(code int)
	logger   *slog.Logger
	bundle   *i18n.Bundle
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// leafError is returned when the flat parser rejects the arguments of a leaf. Its text
// is the flat parser's message; errors.Is matches both errs.ErrLeafParse and the
// flat parser's own error.
type leafError struct {
	err error
}

func (e *leafError) Error() string {
	return e.err.Error()
}

func (e *leafError) Unwrap() []error {
	return []error{errs.ErrLeafParse, e.err}
}

// ContextError attaches the command chain resolved so far to a resolution error. It
// unwraps to the errs sentinel of the failure.
type ContextError struct {
	err   error
	chain []string
	text  string
}

func (e *ContextError) Error() string {
	return e.text
}

func (e *ContextError) Unwrap() error {
	return e.err
}

// Chain returns the command chain resolved before the failure.
func (e *ContextError) Chain() []string {
	return append([]string(nil), e.chain...)
}
