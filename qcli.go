// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package qcli provides hierarchical command line parsing.
//
// A command line is described as a tree: a Context holds named sub-commands, a Leaf
// accepts positional arguments, and both may declare options. Parsing walks the tree
// one command token at a time. Options declared at a level stay valid at every level
// below it, so global options may appear anywhere on the command line:
//
//	parser, _ := qcli.NewParser(qcli.WithHelpOption(), qcli.WithApplicationName("demo"))
//	printCtx, _ := parser.AddContext("print", "Print various things to the console")
//	tree, _ := printCtx.AddLeaf("tree", "print a tree")
//	_ = tree.AddOption(qcli.NewOption("size"))
//
//	if parser.Parse([]string{"print", "tree", "--size", "3"}) {
//	    fmt.Println(parser.ContextChain()) // [print tree]
//	}
//
// The resolved chain is typically handed to an eval.Evaluator, which dispatches it to
// a handler method.
package qcli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/napalu/qcli/errs"
	"github.com/napalu/qcli/flat"
	"github.com/napalu/qcli/i18n"
	"github.com/napalu/qcli/internal/parse"
	"github.com/napalu/qcli/internal/util"
)

// NewParser creates a parser with an empty root context and applies configs in order.
// The parser is nil when a config fails.
//
//	parser, err := qcli.NewParser(
//	    qcli.WithApplicationName("qcliparser-demo"),
//	    qcli.WithApplicationVersion("4.2.0"),
//	    qcli.WithVersionOption(),
//	    qcli.WithHelpOption())
func NewParser(configs ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{
		Context:   NewContext(),
		flat:      flat.NewParser(),
		readIndex: -1,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		exitFunc:  os.Exit,
		logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		bundle:    i18n.Default(),
	}
	if len(os.Args) > 0 {
		p.appName = filepath.Base(os.Args[0])
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, errs.ErrConfiguringParser.Wrap(err)
		}
	}

	return p, nil
}

// Parse resolves args against the command tree. args should not contain the program
// name; when args[0] equals os.Args[0] it is dropped. Parse returns false on failure,
// see Err and ErrorText.
//
// Parse panics with errs.ErrEmptyContext when it reaches a context without children.
func (p *Parser) Parse(args []string) bool {
	pruneExecPathFromArgs(&args)
	if p.readIndex != -1 {
		p.logger.Warn("parsing while inside a context scope; the scope is reset", "context", p.CurrentContext())
	}

	p.chain = nil
	p.readIndex = -1
	p.err = nil
	p.flat.ClearOptions()
	p.flat.ClearPositionalArguments()

	err := p.parseContext(p.Context, append([]string(nil), args...))
	if err == nil {
		return true
	}
	if len(p.chain) > 0 {
		err = p.withChain(err)
	}
	p.err = err
	p.logger.Debug("parse failed", "error", err, "chain", p.chain)

	return false
}

// ParseString splits argString with shell quoting rules and calls Parse.
func (p *Parser) ParseString(argString string) bool {
	args, err := parse.Split(argString)
	if err != nil {
		p.chain = nil
		p.readIndex = -1
		p.err = err
		return false
	}

	return p.Parse(args)
}

// Process calls Parse and acts on the result: on failure the error is written to stderr
// and the exit func is called with ExitFailure; when help or version was requested, the
// contextual help or the version is written to stdout and the exit func is called with
// ExitSuccess. Process returns normally otherwise, or when the exit func returns.
func (p *Parser) Process(args []string) {
	if !p.Parse(args) {
		p.printError(p.ErrorText())
		p.exitFunc(ExitFailure)
		return
	}

	switch {
	case p.isBuiltinSet(HelpOptionName):
		p.PrintHelp(p.stdout)
		p.exitFunc(ExitSuccess)
	case p.isBuiltinSet(VersionOptionName):
		_, _ = fmt.Fprintf(p.stdout, "%s %s\n", p.appName, p.appVersion)
		p.exitFunc(ExitSuccess)
	}
}

// Err returns the error of the last Parse, or nil.
func (p *Parser) Err() error {
	return p.err
}

// ErrorText returns the message of the last Parse error, or "". When the failure
// happened below the root, the message ends with the resolved chain:
//
//	Unknown command "bogus"
//	Command-Context: print -> tree
func (p *Parser) ErrorText() string {
	if p.err == nil {
		return ""
	}

	return p.err.Error()
}

// ContextChain returns the names of the commands resolved by the last Parse.
func (p *Parser) ContextChain() []string {
	return append([]string(nil), p.chain...)
}

// EnterContext moves the read cursor one level down if the next command of the chain
// is name.
func (p *Parser) EnterContext(name string) bool {
	next := p.readIndex + 1
	if next < 0 || next >= len(p.chain) {
		return false
	}
	if p.chain[next] != name {
		return false
	}
	p.readIndex = next

	return true
}

// CurrentContext returns the command at the read cursor, or "" outside any context.
func (p *Parser) CurrentContext() string {
	if p.readIndex < 0 || p.readIndex >= len(p.chain) {
		return ""
	}

	return p.chain[p.readIndex]
}

// LeaveContext moves the read cursor one level up. It returns false at the top.
func (p *Parser) LeaveContext() bool {
	if p.readIndex < 0 {
		return false
	}
	p.readIndex--

	return true
}

// IsSet reports whether the option name (any alias) was given. Options of every level
// resolved by the last Parse can be queried.
func (p *Parser) IsSet(name string) bool {
	return p.flat.IsSet(name)
}

// IsKnown reports whether name was a declared option at the level where the last
// Parse stopped.
func (p *Parser) IsKnown(name string) bool {
	return p.flat.IsKnown(name)
}

// Value returns the last value of the option name, or its last default.
func (p *Parser) Value(name string) string {
	return p.flat.Value(name)
}

// Values returns all values of the option name, or its defaults.
func (p *Parser) Values(name string) []string {
	return p.flat.Values(name)
}

// PositionalArguments returns the positional tokens of the resolved leaf.
func (p *Parser) PositionalArguments() []string {
	return p.flat.PositionalArguments()
}

// OptionNames returns the option names given on the command line, in order.
func (p *Parser) OptionNames() []string {
	return p.flat.OptionNames()
}

// Flat returns the underlying flat parser. It holds the state of the level where the
// last Parse stopped.
func (p *Parser) Flat() *flat.Parser {
	return p.flat
}

// AddHelpOption declares -h, --help and -? on the root context.
func (p *Parser) AddHelpOption() error {
	return p.AddOption(&Option{
		Names:       []string{"h", HelpOptionName, "?"},
		Description: p.bundle.T(errs.MsgHelpDescriptionKey),
	})
}

// AddVersionOption declares -v and --version on the root context.
func (p *Parser) AddVersionOption() error {
	return p.AddOption(&Option{
		Names:       []string{"v", VersionOptionName},
		Description: p.bundle.T(errs.MsgVersionDescriptionKey),
	})
}

func (p *Parser) SetApplicationName(name string) {
	p.appName = name
}

func (p *Parser) ApplicationName() string {
	return p.appName
}

func (p *Parser) SetApplicationVersion(version string) {
	p.appVersion = version
}

func (p *Parser) ApplicationVersion() string {
	return p.appVersion
}

func (p *Parser) SetApplicationDescription(description string) {
	p.appDescription = description
}

func (p *Parser) ApplicationDescription() string {
	return p.appDescription
}

// SetStdout sets the writer used for help and version output.
func (p *Parser) SetStdout(w io.Writer) {
	if w != nil {
		p.stdout = w
	}
}

// SetStderr sets the writer used for error output.
func (p *Parser) SetStderr(w io.Writer) {
	if w != nil {
		p.stderr = w
	}
}

// SetExitFunc replaces os.Exit in Process.
func (p *Parser) SetExitFunc(exitFunc func(code int)) {
	if exitFunc != nil {
		p.exitFunc = exitFunc
	}
}

func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
		p.flat.SetLogger(logger)
	}
}

// Help returns the help text of the level where the last Parse stopped.
func (p *Parser) Help() string {
	return p.flat.Help(p.appName, p.appDescription)
}

// PrintHelp writes Help to writer.
func (p *Parser) PrintHelp(writer io.Writer) {
	_, _ = io.WriteString(writer, p.Help())
}

func (p *Parser) printError(text string) {
	util.PrintError(p.stderr, text)
}
