// Package multitree provides a generic trie keyed by sequences of K with an optional
// payload V at every node. The evaluator uses it to map command chains to descriptors.
package multitree

import (
	"github.com/ef-ds/deque"
	"github.com/napalu/qcli/internal/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is a trie node. Children are owned by their parent; the parent link is a plain
// back pointer and never keeps a detached subtree alive on its own.
type Node[K comparable, V any] struct {
	parent   *Node[K, V]
	key      K
	children *orderedmap.OrderedMap[K, *Node[K, V]]
	value    V
	hasValue bool
}

func newNode[K comparable, V any](parent *Node[K, V], key K) *Node[K, V] {
	return &Node[K, V]{
		parent:   parent,
		key:      key,
		children: orderedmap.New[K, *Node[K, V]](),
	}
}

// Child returns the child at key, creating it when absent.
func (n *Node[K, V]) Child(key K) *Node[K, V] {
	if c, ok := n.children.Get(key); ok {
		return c
	}
	c := newNode(n, key)
	n.children.Set(key, c)

	return c
}

// Lookup returns the child at key without creating it.
func (n *Node[K, V]) Lookup(key K) (*Node[K, V], bool) {
	return n.children.Get(key)
}

// Find returns the node at the end of keys, creating the missing nodes on the way.
func (n *Node[K, V]) Find(keys []K) *Node[K, V] {
	cur := n
	for _, k := range keys {
		cur = cur.Child(k)
	}

	return cur
}

// Deepest follows keys as far as existing nodes allow and returns the last node reached.
// The tree is not modified.
func (n *Node[K, V]) Deepest(keys []K) *Node[K, V] {
	cur := n
	for _, k := range keys {
		next, ok := cur.children.Get(k)
		if !ok {
			break
		}
		cur = next
	}

	return cur
}

func (n *Node[K, V]) HasValue() bool {
	return n.hasValue
}

// Value returns the payload and whether one is set. The zero V is returned when unset.
func (n *Node[K, V]) Value() (V, bool) {
	return n.value, n.hasValue
}

func (n *Node[K, V]) SetValue(v V) {
	n.value = v
	n.hasValue = true
}

func (n *Node[K, V]) ClearValue() {
	var zero V
	n.value = zero
	n.hasValue = false
}

// Parent returns nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Depth is 0 for the root.
func (n *Node[K, V]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// Key returns the path of keys leading from the root to n. The root yields an empty path.
func (n *Node[K, V]) Key() []K {
	path := make([]K, 0, n.Depth())
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.key)
	}
	util.Reverse(path)

	return path
}

// Children returns the direct children in insertion order.
func (n *Node[K, V]) Children() []*Node[K, V] {
	out := make([]*Node[K, V], 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Clone deep-copies the subtree rooted at n. The copy is detached: its parent is nil
// and it shares no nodes with the original.
func (n *Node[K, V]) Clone() *Node[K, V] {
	root := newNode[K, V](nil, n.key)
	root.value, root.hasValue = n.value, n.hasValue

	type job struct {
		src *Node[K, V]
		dst *Node[K, V]
	}
	q := deque.New()
	q.PushBack(job{src: n, dst: root})
	for q.Len() > 0 {
		v, _ := q.PopFront()
		j := v.(job)
		for pair := j.src.children.Oldest(); pair != nil; pair = pair.Next() {
			c := newNode(j.dst, pair.Key)
			c.value, c.hasValue = pair.Value.value, pair.Value.hasValue
			j.dst.children.Set(pair.Key, c)
			q.PushBack(job{src: pair.Value, dst: c})
		}
	}

	return root
}

// Tree owns a root node that carries no key.
type Tree[K comparable, V any] struct {
	root *Node[K, V]
}

func New[K comparable, V any]() *Tree[K, V] {
	var zero K
	return &Tree[K, V]{root: newNode[K, V](nil, zero)}
}

func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

func (t *Tree[K, V]) Child(key K) *Node[K, V] {
	return t.root.Child(key)
}

func (t *Tree[K, V]) Find(keys []K) *Node[K, V] {
	return t.root.Find(keys)
}

func (t *Tree[K, V]) Deepest(keys []K) *Node[K, V] {
	return t.root.Deepest(keys)
}

// Clear drops every node. Nodes obtained before the call stay valid but are detached.
func (t *Tree[K, V]) Clear() {
	var zero K
	t.root = newNode[K, V](nil, zero)
}

func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{root: t.root.Clone()}
}

// Walk visits every node breadth first, root included. Returning false stops the walk.
func (t *Tree[K, V]) Walk(fn func(*Node[K, V]) bool) {
	q := deque.New()
	q.PushBack(t.root)
	for q.Len() > 0 {
		v, _ := q.PopFront()
		n := v.(*Node[K, V])
		if !fn(n) {
			return
		}
		for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
			q.PushBack(pair.Value)
		}
	}
}
