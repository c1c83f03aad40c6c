package ostree

// Insert adds v to t. It returns an iterator at the new value together with
// true, or, if t rejects duplicates and already holds a value equal to v,
// an iterator at that value together with false. The tree is unchanged in
// the latter case.
func (t *Tree[T]) Insert(v T) (Iterator[T], bool) {
	return t.insertNode(newNode(v))
}

// insertNode links a detached leaf n into t. Equal values go to the right of
// their equals. Counts along the path are adjusted only after the position
// for n has been found, so a rejected value leaves every count untouched.
func (t *Tree[T]) insertNode(n *node[T]) (Iterator[T], bool) {
	if t.root == nil {
		t.root = n
		return Iterator[T]{tree: t, cur: n, index: 0}, true
	}
	path := t.path[:0]
	rank := 0
	cur := t.root
	for cur != nil {
		c := t.compare(cur.value, n.value)
		if c == Equal && t.cfg.Duplicates == RejectDuplicates {
			t.path = path[:0]
			return Iterator[T]{tree: t, cur: cur, index: rank + cur.leftCount}, false
		}
		if c == Bigger {
			path = append(path, step[T]{n: cur, left: true})
			cur = cur.left
		} else {
			path = append(path, step[T]{n: cur, left: false})
			rank += cur.leftCount + 1
			cur = cur.right
		}
	}
	for _, s := range path {
		if s.left {
			s.n.leftCount++
		} else {
			s.n.rightCount++
		}
	}
	if parent := path[len(path)-1]; parent.left {
		parent.n.left = n
	} else {
		parent.n.right = n
	}
	clear(path)
	t.path = path[:0]
	return Iterator[T]{tree: t, cur: n, index: rank}, true
}
