package eval

import "reflect"

// Descriptor describes a handler type the Evaluator can instantiate and call.
// Reflect builds one from a Go struct; hand-written descriptors work as well.
type Descriptor interface {
	// Name is the name the descriptor is registered under in a Registry.
	Name() string
	// New creates a fresh handler instance for a single invocation.
	New() (Instance, error)
	// Methods lists the callable int-returning methods, in a stable order.
	Methods() []Method
}

// Instance is a handler created by Descriptor.New.
type Instance interface {
	// Attributes lists the writable attributes. Set options are written to the
	// attribute of the same name before a method is called.
	Attributes() []Attribute
}

// Method is a callable member of a handler. A method whose last parameter is a
// []string, [][]byte or []any receives all remaining positional arguments there, as
// does a Variadic method whatever the element type of its last parameter.
type Method struct {
	Name     string
	Params   []reflect.Type
	Variadic bool
	Invoke   func(inst Instance, args []reflect.Value) (int, error)
}

// Attribute is a writable, named member of an Instance.
type Attribute struct {
	Name string
	Type reflect.Type
	Set  func(v reflect.Value) error
}

var (
	intType       = reflect.TypeOf(0)
	stringsType   = reflect.TypeOf([]string(nil))
	bytesListType = reflect.TypeOf([][]byte(nil))
	anysType      = reflect.TypeOf([]any(nil))
)

// isListParam reports whether t collects the remaining positional arguments.
func isListParam(t reflect.Type) bool {
	return t == stringsType || t == bytesListType || t == anysType
}

// arity returns the number of positional arguments a method needs and whether its
// last parameter takes the rest.
func arity(m Method) (required int, variadic bool) {
	required = len(m.Params)
	if required == 0 {
		return 0, false
	}
	last := m.Params[required-1]
	if isListParam(last) || (m.Variadic && last.Kind() == reflect.Slice) {
		return required - 1, true
	}

	return required, false
}
