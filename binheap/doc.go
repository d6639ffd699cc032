// SPDX-License-Identifier: MIT

// Package binheap implements a mergeable min-priority queue as a forest of
// binomial trees, with stable handles for decrease-key.
//
// Shape invariant: the forest never holds two trees of the same degree, so
// the number of trees equals the number of set bits in Len(). Every tree is
// heap-ordered: a node's value never orders after any of its children.
//
// Union is binary addition with carry: roots are walked in increasing degree
// order and two trees of equal degree are linked (larger root becomes the
// first child of the smaller), producing a single carry of the next degree.
//
// Storage is an arena of nodes addressed by int32 indices. Callers receive a
// Handle on Insert; a handle is generation-checked, so using it after its
// element was extracted or removed yields ErrInvalidHandle instead of
// silently aliasing a reused slot.
//
// Handle identity:
//
//	DecrementKey sifts values up along the fixed tree shape by swapping
//	payloads with ancestors. The handle bookkeeping travels with the payload,
//	so a handle always designates the element it was returned for, never
//	"whatever now sits in the original slot".
//
// Complexity:
//
//	Insert, ExtractMin, DecrementKey, Remove, Meld: O(log n)
//	PeekMin, Len, Trees:                           O(1)
//
// A Heap is not safe for concurrent use.
package binheap
