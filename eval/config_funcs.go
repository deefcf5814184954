package eval

import (
	"io"
	"log/slog"

	"github.com/napalu/qcli/i18n"
)

// WithRegistry makes the Evaluator resolve names in r instead of the default registry.
func WithRegistry(r *Registry) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		if r != nil {
			e.registry = r
		}
	}
}

func WithAutoResolve(autoResolve bool) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		e.autoResolve = autoResolve
	}
}

// WithMethodNamer replaces MethodName.
func WithMethodNamer(namer Namer) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		if namer != nil {
			e.methodName = namer
		}
	}
}

// WithTypeNamer replaces TypeName.
func WithTypeNamer(namer Namer) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		if namer != nil {
			e.typeName = namer
		}
	}
}

// WithStderr sets the writer dispatch failures are printed to.
func WithStderr(w io.Writer) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		if w != nil {
			e.stderr = w
		}
	}
}

func WithLogger(logger *slog.Logger) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBundle sets the bundle the arity message is built from.
func WithBundle(bundle *i18n.Bundle) ConfigureEvaluatorFunc {
	return func(e *Evaluator) {
		if bundle != nil {
			e.bundle = bundle
		}
	}
}
