// Package eval dispatches a resolved command chain to handler methods.
//
// Handlers are registered on a path of the command tree. Exec starts at the deepest
// registered prefix of the chain and walks towards the root until a handler exposes a
// method named after the rest of the chain:
//
//	type Evaluator struct {
//	    Scream bool
//	}
//
//	func (e *Evaluator) Exec_message_echo(message string) int { ... }
//
//	ev := eval.New()
//	_ = ev.RegisterEvaluator(eval.Reflect[Evaluator]())
//	os.Exit(ev.Exec(parser))
package eval

import (
	"io"
	"log/slog"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/napalu/qcli/errs"
	"github.com/napalu/qcli/flat"
	"github.com/napalu/qcli/i18n"
	"github.com/napalu/qcli/internal/util"
	"github.com/napalu/qcli/types/multitree"
)

// ExitFailure is returned by Exec whenever dispatch fails.
const ExitFailure = 1

// Result is the outcome of a parse as the Evaluator consumes it. *qcli.Parser
// implements it; FlatResult adapts a *flat.Parser.
type Result interface {
	ContextChain() []string
	PositionalArguments() []string
	IsKnown(name string) bool
	IsSet(name string) bool
	Value(name string) string
	Values(name string) []string
}

// FlatResult presents a bare flat parse as a Result with an empty chain, dispatching
// to the root Exec methods.
type FlatResult struct {
	*flat.Parser
}

func (FlatResult) ContextChain() []string {
	return nil
}

type Evaluator struct {
	evaluators  *multitree.Tree[string, Descriptor]
	registry    *Registry
	autoResolve bool
	methodName  Namer
	typeName    Namer
	stderr      io.Writer
	logger      *slog.Logger
	bundle      *i18n.Bundle
}

type ConfigureEvaluatorFunc func(*Evaluator)

// New creates an Evaluator using the default registry with auto-resolution enabled.
func New(configs ...ConfigureEvaluatorFunc) *Evaluator {
	e := &Evaluator{
		evaluators:  multitree.New[string, Descriptor](),
		registry:    defaultRegistry,
		autoResolve: true,
		methodName:  MethodName,
		typeName:    TypeName,
		stderr:      os.Stderr,
		logger:      slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		bundle:      i18n.Default(),
	}
	for _, config := range configs {
		config(e)
	}

	return e
}

// RegisterEvaluator binds d to path. An empty path registers the root handler.
// Registering a path twice replaces the earlier descriptor.
func (e *Evaluator) RegisterEvaluator(d Descriptor, path ...string) error {
	if d == nil {
		return errs.ErrNilDescriptor
	}
	e.evaluators.Find(path).SetValue(d)

	return nil
}

// RegisterEvaluatorName binds the descriptor registered under name to path.
func (e *Evaluator) RegisterEvaluatorName(name string, path ...string) error {
	d, found := e.registry.Lookup(name)
	if !found {
		return errs.ErrDescriptorNotFound.WithArgs(name)
	}

	return e.RegisterEvaluator(d, path...)
}

// SetAutoResolve controls whether handlers are looked up in the registry by their
// conventional type name (see TypeName) when no explicit handler matches.
func (e *Evaluator) SetAutoResolve(autoResolve bool) {
	e.autoResolve = autoResolve
}

func (e *Evaluator) AutoResolve() bool {
	return e.autoResolve
}

// Clone returns an Evaluator with the same settings and a copy of the registrations.
func (e *Evaluator) Clone() *Evaluator {
	c := *e
	c.evaluators = e.evaluators.Clone()

	return &c
}

// Exec dispatches r and returns the exit status of the handler, or ExitFailure.
// Failures are written to stderr.
func (e *Evaluator) Exec(r Result) int {
	code, _ := e.ExecErr(r)
	return code
}

// ExecErr is like Exec and also returns the error that made dispatch fail.
//
// Every depth of the chain is tried, deepest first: the handler registered there, if
// any, then the handler auto-resolved by type name. Registration nodes are never
// created by dispatch.
func (e *Evaluator) ExecErr(r Result) (int, error) {
	chain := r.ContextChain()
	node := e.evaluators.Deepest(chain)
	for depth := len(chain); depth >= 0; depth-- {
		localPath := chain[depth:]

		if node != nil && node.Depth() == depth {
			if d, ok := node.Value(); ok {
				if code, matched, err := e.tryExec(d, r, localPath); matched {
					return e.finish(code, err)
				}
			}
			node = node.Parent()
		}
		if !e.autoResolve {
			continue
		}
		if d, ok := e.registry.Lookup(e.typeName(chain[:depth])); ok {
			if code, matched, err := e.tryExec(d, r, localPath); matched {
				return e.finish(code, err)
			}
		}
	}

	return e.finish(ExitFailure, errs.ErrNoEvaluatorFound.WithArgs(strings.Join(chain, ", ")))
}

// tryExec calls the first method of d named after localPath that accepts the
// positional arguments. matched is false when d has no method of that name.
func (e *Evaluator) tryExec(d Descriptor, r Result, localPath []string) (code int, matched bool, err error) {
	name := e.methodName(localPath)
	args := r.PositionalArguments()
	minRequired, maxAccepted := math.MaxInt, 0

	for _, m := range d.Methods() {
		if m.Name != name || m.Invoke == nil {
			continue
		}
		required, variadic := arity(m)
		minRequired = min(minRequired, required)
		if variadic {
			maxAccepted = math.MaxInt
		} else {
			maxAccepted = max(maxAccepted, required)
		}
		if len(args) < required || (!variadic && len(args) > required) {
			continue
		}

		code, err = e.invoke(d, m, r, args, required, variadic)
		return code, true, err
	}

	if minRequired == math.MaxInt {
		return 0, false, nil
	}

	return ExitFailure, true, errs.ErrArityMismatch.WithArgs(e.arityMessage(minRequired, maxAccepted, len(args)))
}

func (e *Evaluator) invoke(d Descriptor, m Method, r Result, args []string, required int, variadic bool) (int, error) {
	inst, err := d.New()
	if err != nil || inst == nil {
		return ExitFailure, errs.ErrInstanceCreation.WithArgs(d.Name()).Wrap(err)
	}
	if err = e.setAttributes(inst, r); err != nil {
		return ExitFailure, err
	}

	values := make([]reflect.Value, 0, len(m.Params))
	for i := 0; i < required; i++ {
		v, err := util.ConvertString(args[i], m.Params[i])
		if err != nil {
			return ExitFailure, errs.ErrConversion.WithArgs(i, m.Params[i]).Wrap(err)
		}
		values = append(values, v)
	}
	if variadic {
		rest, err := util.ConvertSlice(args[required:], m.Params[required])
		if err != nil {
			return ExitFailure, errs.ErrConversion.WithArgs(required, m.Params[required]).Wrap(err)
		}
		values = append(values, rest)
	}

	code, err := m.Invoke(inst, values)
	if err != nil {
		return ExitFailure, errs.ErrInvocation.WithArgs(m.Name, d.Name()).Wrap(err)
	}

	return code, nil
}

// setAttributes writes every set option to the attribute of the same name.
func (e *Evaluator) setAttributes(inst Instance, r Result) error {
	for _, a := range inst.Attributes() {
		if a.Set == nil || a.Type == nil || !r.IsKnown(a.Name) || !r.IsSet(a.Name) {
			continue
		}

		var v reflect.Value
		var err error
		switch {
		case a.Type.Kind() == reflect.Bool:
			v = reflect.ValueOf(true).Convert(a.Type)
		case a.Type.Kind() == reflect.Slice && a.Type.Elem().Kind() != reflect.Uint8:
			v, err = util.ConvertSlice(r.Values(a.Name), a.Type)
		default:
			v, err = util.ConvertString(r.Value(a.Name), a.Type)
		}
		if err == nil {
			err = a.Set(v)
		}
		if err != nil {
			return errs.ErrAttributeConversion.WithArgs(a.Name, a.Type).Wrap(err)
		}
	}

	return nil
}

func (e *Evaluator) arityMessage(minRequired, maxAccepted, given int) string {
	var sb strings.Builder
	sb.WriteString(e.bundle.T(errs.MsgArityExpectedKey))
	if minRequired > 0 {
		sb.WriteString(e.bundle.T(errs.MsgArityAtLeastKey, minRequired))
	}
	if maxAccepted != math.MaxInt {
		if minRequired > 0 {
			sb.WriteString(e.bundle.T(errs.MsgArityAndKey))
		}
		sb.WriteString(e.bundle.T(errs.MsgArityAtMostKey, maxAccepted))
	}
	sb.WriteString(e.bundle.T(errs.MsgArityPassedKey, given))

	return sb.String()
}

func (e *Evaluator) finish(code int, err error) (int, error) {
	if err != nil {
		e.logger.Debug("dispatch failed", "error", err)
		util.PrintError(e.stderr, err.Error())
	}

	return code, err
}
