package ostree

import (
	"math"

	"github.com/npillmayer/containers/list"
	"github.com/npillmayer/containers/stack"
	"golang.org/x/exp/constraints"
)

// Tree is an order-statistics binary search tree. A tree has to be created
// with one of the constructors; the zero value has no comparator.
//
// Trees are not safe for concurrent use.
type Tree[T any] struct {
	root *node[T]
	cfg  Config[T]
	path []step[T] // scratch buffer for descents which modify counts
}

// step is one edge of a root-to-node descent.
type step[T any] struct {
	n    *node[T]
	left bool
}

// New creates a tree with the natural ordering of T, which rejects
// duplicates, and inserts values.
func New[T constraints.Ordered](values ...T) *Tree[T] {
	t, err := NewWithConfig(Config[T]{Compare: Natural[T]}, values...)
	assert(err == nil, "natural ordering must form a valid configuration")
	return t
}

// NewMulti creates a tree with the natural ordering of T, which stores
// duplicates, and inserts values.
func NewMulti[T constraints.Ordered](values ...T) *Tree[T] {
	t, err := NewWithConfig(Config[T]{
		Compare:    Natural[T],
		Duplicates: AllowDuplicates,
	}, values...)
	assert(err == nil, "natural ordering must form a valid configuration")
	return t
}

// NewWithConfig creates a tree from a configuration and inserts values.
// It returns ErrInvalidConfig if the configuration is incomplete.
func NewWithConfig[T any](cfg Config[T], values ...T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[T]{cfg: cfg}
	for _, v := range values {
		t.Insert(v)
	}
	return t, nil
}

// Config returns the configuration of t.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of values in t.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.size()
}

// Empty is true for a tree without values.
func (t *Tree[T]) Empty() bool {
	return t.Len() == 0
}

// MaxSize is the theoretical limit of the number of values in a tree.
func (t *Tree[T]) MaxSize() int {
	return math.MaxInt
}

func (t *Tree[T]) compare(a, b T) Ordering {
	return t.cfg.Compare(a, b)
}

// findNode locates the topmost node holding a value equal to v.
// For trees with duplicates this is the equal value of lowest rank.
func (t *Tree[T]) findNode(v T) *node[T] {
	cur := t.root
	for cur != nil {
		switch t.compare(cur.value, v) {
		case Equal:
			return cur
		case Bigger:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Contains is true if t holds a value equal to v.
func (t *Tree[T]) Contains(v T) bool {
	return t.findNode(v) != nil
}

// Find returns an iterator at the first value equal to v, or End() if there is
// none. The rank of the iterator is computed by a second descent.
func (t *Tree[T]) Find(v T) Iterator[T] {
	n := t.findNode(v)
	if n == nil {
		return t.End()
	}
	return Iterator[T]{tree: t, cur: n, index: t.rankOf(v)}
}

// Clear removes all values from t. The configuration is kept.
// Nodes are unlinked one at a time, so the depth of the tree does not matter.
func (t *Tree[T]) Clear() {
	if t.root == nil {
		return
	}
	var zero T
	cnt := 0
	nodes := stack.New(t.root)
	for !nodes.Empty() {
		n, _ := nodes.Pop()
		if n.left != nil {
			nodes.Push(n.left)
		}
		if n.right != nil {
			nodes.Push(n.right)
		}
		n.detach()
		n.value = zero
		cnt++
	}
	t.root = nil
	tracer().Debugf("ostree: cleared %d nodes", cnt)
}

// Clone creates a deep copy of t: same shape, same counts, same configuration.
// Values are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{cfg: t.cfg}
	if t.root == nil {
		return c
	}
	c.root = copyNode(t.root)
	src, dst := stack.New(t.root), stack.New(c.root)
	for !src.Empty() {
		s, _ := src.Pop()
		d, _ := dst.Pop()
		if s.left != nil {
			d.left = copyNode(s.left)
			src.Push(s.left)
			dst.Push(d.left)
		}
		if s.right != nil {
			d.right = copyNode(s.right)
			src.Push(s.right)
			dst.Push(d.right)
		}
	}
	return c
}

// Move transfers the nodes and configuration of src to t, discarding the
// previous content of t. src is left empty but keeps its configuration.
func (t *Tree[T]) Move(src *Tree[T]) {
	if src == nil || src == t {
		return
	}
	t.Clear()
	t.root, t.cfg = src.root, src.cfg
	src.root = nil
}

// Swap exchanges the contents of t and other, including their configurations.
func (t *Tree[T]) Swap(other *Tree[T]) {
	if other == nil || other == t {
		return
	}
	t.root, other.root = other.root, t.root
	t.cfg, other.cfg = other.cfg, t.cfg
}

// Merge moves every value of other which t accepts into t. Values rejected
// as duplicates stay in other. Merging a tree with itself is a no-op.
func (t *Tree[T]) Merge(other *Tree[T]) {
	if other == nil || other == t || other.root == nil {
		return
	}
	absorbed := list.New[T]()
	for v := range other.All() {
		if _, ok := t.Insert(v); ok {
			absorbed.PushFront(v)
		}
	}
	for v := range absorbed.All() {
		other.Erase(v)
	}
	tracer().Debugf("ostree: merge absorbed %d values, %d left behind", absorbed.Len(), other.Len())
}
