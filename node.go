package qcli

import (
	"github.com/napalu/qcli/errs"
	"github.com/napalu/qcli/flat"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is an element of the command tree: either a *Context or a *Leaf. A node does
// not know its own name; names belong to the parent context.
type Node interface {
	Options() []*Option
	Hidden() bool
	SetHidden(hidden bool)
	AddOption(o *Option) error
	AddOptions(opts ...*Option) error

	base() *nodeBase
}

type nodeBase struct {
	options []*Option
	keys    map[string]struct{}
	hidden  bool
}

func (n *nodeBase) base() *nodeBase {
	return n
}

// Options returns the options declared on this node, in declaration order.
func (n *nodeBase) Options() []*Option {
	return append([]*Option(nil), n.options...)
}

func (n *nodeBase) Hidden() bool {
	return n.hidden
}

// SetHidden hides the node from the command synopsis and help. Hidden nodes still parse.
func (n *nodeBase) SetHidden(hidden bool) {
	n.hidden = hidden
}

func (n *nodeBase) AddOption(o *Option) error {
	return n.AddOptions(o)
}

// AddOptions adds all of opts or none of them. It fails when an option is invalid or
// when any name is already used on this node or twice within opts.
func (n *nodeBase) AddOptions(opts ...*Option) error {
	batch := make(map[string]struct{})
	for _, o := range opts {
		if o == nil {
			return errs.ErrEmptyOptionName
		}
		if err := o.Validate(); err != nil {
			return err
		}
		for _, name := range o.Names {
			if _, found := n.keys[name]; found {
				return errs.ErrOptionAliasConflict.WithArgs(name)
			}
			if _, found := batch[name]; found {
				return errs.ErrOptionAliasConflict.WithArgs(name)
			}
			batch[name] = struct{}{}
		}
	}

	if n.keys == nil {
		n.keys = make(map[string]struct{}, len(batch))
	}
	for name := range batch {
		n.keys[name] = struct{}{}
	}
	n.options = append(n.options, opts...)

	return nil
}

// Leaf is a terminal command. It accepts positional arguments.
type Leaf struct {
	nodeBase
	arguments []flat.Positional
}

func NewLeaf() *Leaf {
	return &Leaf{}
}

// AddPositionalArgument declares a positional argument for help output. syntax defaults
// to name; a trailing "..." (as in "number...") marks the argument as variadic.
func (l *Leaf) AddPositionalArgument(name, description, syntax string) {
	if syntax == "" {
		syntax = name
	}
	l.arguments = append(l.arguments, flat.Positional{Name: name, Description: description, Syntax: syntax})
}

// Arguments returns the declared positional arguments.
func (l *Leaf) Arguments() []flat.Positional {
	return append([]flat.Positional(nil), l.arguments...)
}

type child struct {
	description string
	node        Node
}

// Context is a command with sub-commands. Children keep their insertion order,
// which is also the order used in help output.
type Context struct {
	nodeBase
	children    *orderedmap.OrderedMap[string, child]
	defaultNode string
}

func NewContext() *Context {
	return &Context{children: orderedmap.New[string, child]()}
}

// AddNode attaches node under name.
func (c *Context) AddNode(name, description string, node Node) error {
	if node == nil {
		return errs.ErrNilNode.WithArgs(name)
	}
	if c.children == nil {
		c.children = orderedmap.New[string, child]()
	}
	if _, found := c.children.Get(name); found {
		return errs.ErrNodeAlreadyExists.WithArgs(name)
	}
	c.children.Set(name, child{description: description, node: node})

	return nil
}

// AddContext creates a sub-context and attaches it under name.
func (c *Context) AddContext(name, description string) (*Context, error) {
	ctx := NewContext()
	if err := c.AddNode(name, description, ctx); err != nil {
		return nil, err
	}

	return ctx, nil
}

// AddLeaf creates a leaf and attaches it under name.
func (c *Context) AddLeaf(name, description string) (*Leaf, error) {
	leaf := NewLeaf()
	if err := c.AddNode(name, description, leaf); err != nil {
		return nil, err
	}

	return leaf, nil
}

// SetDefault selects the child used when no command is given. An empty name removes
// the default.
func (c *Context) SetDefault(name string) error {
	if name != "" {
		if _, found := c.lookup(name); !found {
			return errs.ErrUnknownDefaultNode.WithArgs(name)
		}
	}
	c.defaultNode = name

	return nil
}

func (c *Context) Default() string {
	return c.defaultNode
}

// Node returns the child called name.
func (c *Context) Node(name string) (Node, bool) {
	ch, found := c.lookup(name)
	if !found {
		return nil, false
	}

	return ch.node, true
}

// Description returns the description the child called name was added with.
func (c *Context) Description(name string) string {
	ch, _ := c.lookup(name)
	return ch.description
}

// Names returns the names of all children in insertion order, hidden ones included.
func (c *Context) Names() []string {
	return c.names(true)
}

// Len returns the number of children.
func (c *Context) Len() int {
	if c.children == nil {
		return 0
	}

	return c.children.Len()
}

func (c *Context) names(withHidden bool) []string {
	if c.children == nil {
		return nil
	}
	names := make([]string, 0, c.children.Len())
	for pair := c.children.Oldest(); pair != nil; pair = pair.Next() {
		if withHidden || !pair.Value.node.Hidden() {
			names = append(names, pair.Key)
		}
	}

	return names
}

func (c *Context) lookup(name string) (child, bool) {
	if c.children == nil {
		return child{}, false
	}

	return c.children.Get(name)
}

// NodeAs returns the child called name if it exists and is of type T.
//
//	tree, ok := qcli.NodeAs[*qcli.Leaf](printCtx, "tree")
func NodeAs[T Node](c *Context, name string) (T, bool) {
	var zero T
	n, found := c.Node(name)
	if !found {
		return zero, false
	}
	t, ok := n.(T)
	if !ok {
		return zero, false
	}

	return t, true
}
