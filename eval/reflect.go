package eval

import (
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/napalu/qcli/errs"
	"github.com/napalu/qcli/internal/util"
)

// TagName is the struct tag read by Reflect. `qcli:"name"` sets the option name an
// attribute is bound to and `qcli:"-"` excludes the field.
const TagName = "qcli"

type reflectDescriptor[T any] struct {
	name    string
	newFn   func() (*T, error)
	methods []Method
}

type reflectInstance struct {
	v reflect.Value
}

// Reflect returns a Descriptor for *T named after T. New allocates a zero T.
//
// Every exported method of *T returning a single int is a Method, unless one of its
// parameters cannot be converted from a positional argument. A variadic method takes
// the remaining arguments in its last parameter. Every exported,
// non-embedded field of T is an Attribute whose name is the kebab-cased field name
// (ExitCode becomes exit-code) unless a qcli tag says otherwise.
func Reflect[T any]() Descriptor {
	return ReflectWith[T]("", nil)
}

// ReflectWith is like Reflect with an explicit name and constructor. An empty name
// falls back to the name of T and a nil newFn to new(T).
func ReflectWith[T any](name string, newFn func() (*T, error)) Descriptor {
	ptr := reflect.TypeOf((*T)(nil))
	if name == "" {
		name = ptr.Elem().Name()
	}
	if newFn == nil {
		newFn = func() (*T, error) { return new(T), nil }
	}

	return &reflectDescriptor[T]{
		name:    name,
		newFn:   newFn,
		methods: reflectMethods(name, ptr),
	}
}

func (d *reflectDescriptor[T]) Name() string {
	return d.name
}

func (d *reflectDescriptor[T]) New() (Instance, error) {
	t, err := d.newFn()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errs.ErrInvalidDescriptor.WithArgs(d.name, "constructor returned nil")
	}

	return &reflectInstance{v: reflect.ValueOf(t)}, nil
}

func (d *reflectDescriptor[T]) Methods() []Method {
	return append([]Method(nil), d.methods...)
}

// reflect lists methods sorted by name, which is the order they are tried in
func reflectMethods(owner string, ptr reflect.Type) []Method {
	var methods []Method
	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)
		ft := m.Type
		if ft.NumOut() != 1 || ft.Out(0) != intType {
			continue
		}
		params := make([]reflect.Type, 0, ft.NumIn()-1)
		for j := 1; j < ft.NumIn(); j++ {
			params = append(params, ft.In(j))
		}

		index, variadic := m.Index, ft.IsVariadic()
		if !convertibleParams(params, variadic) {
			continue
		}
		methods = append(methods, Method{
			Name:     m.Name,
			Params:   params,
			Variadic: variadic,
			Invoke: func(inst Instance, args []reflect.Value) (int, error) {
				ri, ok := inst.(*reflectInstance)
				if !ok || ri.v.Type() != ptr {
					return 0, fmt.Errorf("%T is not an instance of %s", inst, owner)
				}
				if len(args) != len(params) {
					return 0, fmt.Errorf("expected %d arguments, got %d", len(params), len(args))
				}
				for k, arg := range args {
					if !arg.IsValid() || !arg.Type().AssignableTo(params[k]) {
						return 0, fmt.Errorf("argument %d is not assignable to %v", k, params[k])
					}
				}

				fn := ri.v.Method(index)
				var out []reflect.Value
				if variadic {
					out = fn.CallSlice(args)
				} else {
					out = fn.Call(args)
				}

				return int(out[0].Int()), nil
			},
		})
	}

	return methods
}

// convertibleParams reports whether every parameter can be built from positional
// arguments. A trailing slice that takes the rest needs a convertible element type.
func convertibleParams(params []reflect.Type, variadic bool) bool {
	for k, t := range params {
		last := k == len(params)-1
		if last && (variadic || isListParam(t)) {
			if !util.CanConvert(t.Elem()) {
				return false
			}
			continue
		}
		if !util.CanConvert(t) {
			return false
		}
	}

	return true
}

func (i *reflectInstance) Attributes() []Attribute {
	elem := i.v.Elem()
	if elem.Kind() != reflect.Struct {
		return nil
	}

	t := elem.Type()
	attrs := make([]Attribute, 0, t.NumField())
	for k := 0; k < t.NumField(); k++ {
		sf := t.Field(k)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name := sf.Tag.Get(TagName)
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToKebab(sf.Name)
		}
		field := elem.Field(k)
		if !field.CanSet() {
			continue
		}

		attrs = append(attrs, Attribute{
			Name: name,
			Type: sf.Type,
			Set: func(v reflect.Value) error {
				switch {
				case !v.IsValid():
					return errs.ErrUnsupportedTypeConversion.WithArgs(sf.Type)
				case v.Type().AssignableTo(sf.Type):
				case v.Type().ConvertibleTo(sf.Type):
					v = v.Convert(sf.Type)
				default:
					return errs.ErrUnsupportedTypeConversion.WithArgs(sf.Type)
				}
				field.Set(v)
				return nil
			},
		})
	}

	return attrs
}
