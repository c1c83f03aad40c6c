/*
Package containers is a small family of generic containers for Go.

Ordered containers

The interesting part of this module is package ostree, an order-statistics
binary search tree. Every node caches the sizes of its left and right
subtree, which lets clients address elements by rank (their position in
sorted order) without parent pointers or threading. Iterators are nothing
more than a rank: stepping an iterator is a fresh descent from the root.

Packages treemap, treeset and multiset are thin façades on top of the tree.
They supply a comparator and a duplicate policy and translate key/value or
key-only operations into tree primitives.

	Operation     |   ostree        |  sorted slice
	--------------+-----------------+--------------
	Insert        |   O(depth)      |   O(n)
	Find          |   O(depth)      |   O(log n)
	Rank/Select   |   O(depth)      |   O(1)
	Iterate step  |   O(depth)      |   O(1)
	Erase         |   O(k·depth)    |   O(n)

where k is the size of the erased node's subtree. The tree does not
rebalance; depth is log n for random input and n for sorted input.

Linear containers

Packages list, stack, queue, vector and array are straightforward linked or
slice-backed containers. ostree uses list and stack as scratch storage.

None of the containers is safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged whenever an element is accessed at a position
// (or by a key) which does not exist, including dereferencing an end iterator.
const ErrOutOfRange = ContainerError("out of range")

// ErrEmpty is flagged when top/front/back/pop is called on an empty container.
const ErrEmpty = ContainerError("container is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")

// ErrLengthMismatch is flagged when two fixed-length containers of different
// lengths are combined.
const ErrLengthMismatch = ContainerError("length mismatch")
