package ostree

// nodeAt descends from the root to the node of rank i.
func (t *Tree[T]) nodeAt(i int) *node[T] {
	if i < 0 || i >= t.Len() {
		return nil
	}
	cur := t.root
	for cur != nil {
		switch {
		case i < cur.leftCount:
			cur = cur.left
		case i == cur.leftCount:
			return cur
		default:
			i -= cur.leftCount + 1
			cur = cur.right
		}
	}
	panic("ostree: subtree counts do not match the tree")
}

// rankOf returns the rank of the topmost node equal to v, or -1.
func (t *Tree[T]) rankOf(v T) int {
	rank := 0
	cur := t.root
	for cur != nil {
		switch t.compare(cur.value, v) {
		case Equal:
			return rank + cur.leftCount
		case Bigger:
			cur = cur.left
		default:
			rank += cur.leftCount + 1
			cur = cur.right
		}
	}
	return -1
}

// lowerRank counts the values smaller than v.
func (t *Tree[T]) lowerRank(v T) int {
	rank := 0
	cur := t.root
	for cur != nil {
		if t.compare(cur.value, v) == Smaller {
			rank += cur.leftCount + 1
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	return rank
}

// upperRank counts the values not bigger than v.
func (t *Tree[T]) upperRank(v T) int {
	rank := 0
	cur := t.root
	for cur != nil {
		if t.compare(cur.value, v) == Bigger {
			cur = cur.left
		} else {
			rank += cur.leftCount + 1
			cur = cur.right
		}
	}
	return rank
}

// At returns an iterator at rank i, or End() if i is out of range.
func (t *Tree[T]) At(i int) Iterator[T] {
	n := t.nodeAt(i)
	if n == nil {
		return t.End()
	}
	return Iterator[T]{tree: t, cur: n, index: i}
}

// LowerBound returns an iterator at the first value not smaller than v.
func (t *Tree[T]) LowerBound(v T) Iterator[T] {
	return t.At(t.lowerRank(v))
}

// UpperBound returns an iterator at the first value bigger than v.
func (t *Tree[T]) UpperBound(v T) Iterator[T] {
	return t.At(t.upperRank(v))
}

// EqualRange returns the half-open range of values equal to v.
func (t *Tree[T]) EqualRange(v T) (Iterator[T], Iterator[T]) {
	return t.LowerBound(v), t.UpperBound(v)
}

// Count returns the number of values equal to v.
func (t *Tree[T]) Count(v T) int {
	if t.Empty() {
		return 0
	}
	return t.upperRank(v) - t.lowerRank(v)
}
