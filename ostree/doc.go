/*
Package ostree provides an order-statistics binary search tree.

Every node caches the number of nodes in its left and right subtree. These
counts let the tree compute the rank of a value (its position in sorted
order) and find the value at a given rank by a single descent from the root.
There are no parent pointers and no threading.

Iterators are ranks: stepping an iterator forward or backward, or by n
positions, descends from the root again. This trades iteration speed for
nodes which need no back-links.

Erasing a node does not splice in a successor. Instead the node's whole
subtree is detached and every descendant is inserted again, one by one.
Insert is therefore the single place where the shape invariants are
established. The tree never rebalances: sorted input degrades it to a list.

Status:
  - value-keyed Insert, Find, Contains, Erase,
  - rank-keyed iterators (At, Begin, End, Advance, Next, Prev),
  - bounds for duplicate keys (LowerBound, UpperBound, EqualRange, Count),
  - Clone, Move, Swap, Merge,
  - invariant checking (Check) and debug output (DOT, console, HTML).

Clear, Clone and all walks use explicit stacks, so trees of any depth can be
processed without deep recursion.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ostree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
