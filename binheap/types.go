// SPDX-License-Identifier: MIT

package binheap

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates PeekMin/ExtractMin on a heap with no elements.
	ErrEmptyHeap = errors.New("binheap: heap is empty")

	// ErrInvalidHandle indicates a handle that was never issued by this heap,
	// or whose element has already been extracted or removed.
	ErrInvalidHandle = errors.New("binheap: invalid or stale handle")

	// ErrKeyIncreased indicates DecrementKey was asked to raise a value.
	ErrKeyIncreased = errors.New("binheap: new key orders after current key")
)

// nilIndex marks an absent parent/child/sibling link or a free slot.
const nilIndex int32 = -1

// heapIDs hands out owner tags so handles cannot cross heaps.
var heapIDs atomic.Uint64

// Handle designates one element inside one Heap. The zero Handle is never valid.
type Handle struct {
	owner uint64
	slot  int32
	gen   uint32
}

// node is one arena slot. Children form a singly linked list starting at
// child, ordered by strictly decreasing degree.
type node[T any] struct {
	value   T
	parent  int32
	child   int32
	sibling int32
	degree  int32
	handle  int32 // owning handle slot; nilIndex when the node is free
}

// handleSlot maps a handle to the node currently carrying its payload.
type handleSlot struct {
	node int32 // nilIndex when the handle is released
	gen  uint32
}

// Heap is a binomial min-heap ordered by less.
type Heap[T any] struct {
	less func(a, b T) bool
	id   uint64

	nodes       []node[T]
	freeNodes   []int32
	handles     []handleSlot
	freeHandles []int32

	roots  []int32 // tree roots by strictly increasing degree
	minPos int     // index into roots of the minimum root; -1 when empty
	count  int
}
