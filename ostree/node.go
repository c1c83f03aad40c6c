package ostree

// node is a node of the tree. Each node exclusively owns its children.
// leftCount and rightCount cache the number of nodes in the left and right
// subtree, not counting the node itself.
type node[T any] struct {
	value       T
	left, right *node[T]
	leftCount   int
	rightCount  int
}

func newNode[T any](v T) *node[T] {
	return &node[T]{value: v}
}

// size is the number of nodes of the subtree rooted at n.
func (n *node[T]) size() int {
	if n == nil {
		return 0
	}
	return n.leftCount + n.rightCount + 1
}

// detach turns n into a leaf, ready to be inserted again.
func (n *node[T]) detach() {
	n.left, n.right = nil, nil
	n.leftCount, n.rightCount = 0, 0
}

// copyNode duplicates the value and counts of n, but not its links.
func copyNode[T any](n *node[T]) *node[T] {
	return &node[T]{
		value:      n.value,
		leftCount:  n.leftCount,
		rightCount: n.rightCount,
	}
}
