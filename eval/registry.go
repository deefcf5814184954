package eval

import (
	"reflect"
	"sort"
	"sync"

	"github.com/napalu/qcli/errs"
)

// Registry maps names to descriptors. The Evaluator uses it for RegisterEvaluatorName
// and to resolve handlers by their conventional type name.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

var defaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// DefaultRegistry returns the registry used by Register, Lookup and evaluators
// created without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds d under d.Name().
func (r *Registry) Register(d Descriptor) error {
	if d == nil {
		return errs.ErrNilDescriptor
	}
	name := d.Name()
	if name == "" {
		return errs.ErrInvalidDescriptor.WithArgs(reflect.TypeOf(d), "the name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.descriptors[name]; found {
		return errs.ErrDescriptorExists.WithArgs(name)
	}
	r.descriptors[name] = d

	return nil
}

func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, found := r.descriptors[name]

	return d, found
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Register adds d to the default registry.
func Register(d Descriptor) error {
	return defaultRegistry.Register(d)
}

// Lookup finds a descriptor in the default registry.
func Lookup(name string) (Descriptor, bool) {
	return defaultRegistry.Lookup(name)
}
