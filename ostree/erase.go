package ostree

import (
	"github.com/npillmayer/containers/stack"
)

// Erase removes the first value equal to v from t. It returns false if t
// does not contain such a value.
//
// The node holding the value is cut out together with its subtree, and all
// other nodes of that subtree are inserted again in sorted order.
// Erasing the root therefore rebuilds the whole tree.
func (t *Tree[T]) Erase(v T) bool {
	path := t.path[:0]
	cur := t.root
	for cur != nil {
		c := t.compare(cur.value, v)
		if c == Equal {
			break
		}
		path = append(path, step[T]{n: cur, left: c == Bigger})
		if c == Bigger {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		t.path = path[:0]
		return false
	}
	t.cut(path, cur)
	return true
}

// EraseAt removes the value addressed by it. It returns false for an end
// iterator, for an iterator of another tree, and for an iterator which no
// longer addresses the node it was created for.
func (t *Tree[T]) EraseAt(it Iterator[T]) bool {
	if it.tree != t || it.IsEnd() {
		return false
	}
	path := t.path[:0]
	i := it.index
	cur := t.root
	for cur != nil && i != cur.leftCount {
		if i < cur.leftCount {
			path = append(path, step[T]{n: cur, left: true})
			cur = cur.left
		} else {
			i -= cur.leftCount + 1
			path = append(path, step[T]{n: cur, left: false})
			cur = cur.right
		}
	}
	if cur == nil || cur != it.cur {
		t.path = path[:0]
		return false
	}
	t.cut(path, cur)
	return true
}

// cut unlinks node d, found by descending along path, and reinserts every
// other node of d's subtree.
func (t *Tree[T]) cut(path []step[T], d *node[T]) {
	if len(path) == 0 {
		assert(d == t.root, "empty erase path must lead to the root")
		t.root = nil
		if d.size() > 1 {
			tracer().Debugf("ostree: erasing the root, rebuilding from %d nodes", d.size()-1)
		}
	} else {
		// ancestors lose the whole subtree; reinsertion adds back all but d
		k := d.size()
		for _, s := range path {
			if s.left {
				s.n.leftCount -= k
			} else {
				s.n.rightCount -= k
			}
		}
		if parent := path[len(path)-1]; parent.left {
			parent.n.left = nil
		} else {
			parent.n.right = nil
		}
	}
	clear(path)
	t.path = path[:0]
	orphans := make([]*node[T], 0, d.size()-1)
	inorder(d.left, func(n *node[T]) bool {
		orphans = append(orphans, n)
		return true
	})
	inorder(d.right, func(n *node[T]) bool {
		orphans = append(orphans, n)
		return true
	})
	d.detach()
	for _, n := range orphans {
		n.detach()
		_, ok := t.insertNode(n)
		assert(ok, "reinserted node must not be rejected")
	}
}

// inorder visits the nodes of the subtree at root in sorted order, until fn
// returns false. It reports whether the walk completed.
func inorder[T any](root *node[T], fn func(*node[T]) bool) bool {
	pending := stack.New[*node[T]]()
	cur := root
	for cur != nil || !pending.Empty() {
		for ; cur != nil; cur = cur.left {
			pending.Push(cur)
		}
		n, _ := pending.Pop()
		if !fn(n) {
			return false
		}
		cur = n.right
	}
	return true
}

// reverseorder visits the nodes of the subtree at root in descending order,
// until fn returns false.
func reverseorder[T any](root *node[T], fn func(*node[T]) bool) bool {
	pending := stack.New[*node[T]]()
	cur := root
	for cur != nil || !pending.Empty() {
		for ; cur != nil; cur = cur.right {
			pending.Push(cur)
		}
		n, _ := pending.Pop()
		if !fn(n) {
			return false
		}
		cur = n.left
	}
	return true
}
