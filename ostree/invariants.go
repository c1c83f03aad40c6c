package ostree

import (
	"fmt"

	"github.com/npillmayer/containers/queue"
	"github.com/npillmayer/containers/stack"
)

// Check validates the structural invariants of t:
//
//   - the left and right counts of every node match the sizes of its subtrees,
//   - every value in a left subtree is smaller than the subtree's parent,
//   - every value in a right subtree is not smaller than the subtree's parent,
//   - a tree which rejects duplicates holds no two equal values.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: tree is nil", ErrCorrupt)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.root == nil {
		return nil
	}
	var preorder []*node[T]
	pending := stack.New(bounded[T]{n: t.root})
	for !pending.Empty() {
		f, _ := pending.Pop()
		v := f.n.value
		if f.lo != nil {
			c := t.compare(v, *f.lo)
			if c == Smaller {
				return fmt.Errorf("%w: value %v is placed right of bigger value %v", ErrCorrupt, v, *f.lo)
			}
			if c == Equal && t.cfg.Duplicates == RejectDuplicates {
				return fmt.Errorf("%w: duplicate value %v", ErrCorrupt, v)
			}
		}
		if f.hi != nil && t.compare(v, *f.hi) != Smaller {
			return fmt.Errorf("%w: value %v is placed left of value %v", ErrCorrupt, v, *f.hi)
		}
		preorder = append(preorder, f.n)
		if f.n.right != nil {
			pending.Push(bounded[T]{n: f.n.right, lo: &f.n.value, hi: f.hi})
		}
		if f.n.left != nil {
			pending.Push(bounded[T]{n: f.n.left, lo: f.lo, hi: &f.n.value})
		}
	}
	sizes := make(map[*node[T]]int, len(preorder))
	size := func(n *node[T]) int {
		if n == nil {
			return 0
		}
		return sizes[n]
	}
	for i := len(preorder) - 1; i >= 0; i-- { // children before parents
		n := preorder[i]
		l, r := size(n.left), size(n.right)
		if n.leftCount != l || n.rightCount != r {
			return fmt.Errorf("%w: node %v has counts %d/%d, subtrees have %d/%d nodes",
				ErrCorrupt, n.value, n.leftCount, n.rightCount, l, r)
		}
		sizes[n] = l + r + 1
	}
	return nil
}

// bounded is a node together with the range its value has to lie in:
// lo <= value < hi, where nil means unbounded.
type bounded[T any] struct {
	n      *node[T]
	lo, hi *T
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	level := queue.New(t.root)
	for !level.Empty() {
		h++
		next := queue.New[*node[T]]()
		for n := range level.All() {
			if n.left != nil {
				next.Push(n.left)
			}
			if n.right != nil {
				next.Push(n.right)
			}
		}
		level = next
	}
	return h
}
