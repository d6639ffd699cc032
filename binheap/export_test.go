// SPDX-License-Identifier: MIT

package binheap

import (
	"fmt"
	"math/bits"
)

// Validate checks every structural invariant of the forest and the handle
// table. Tests call it after mutations.
func (h *Heap[T]) Validate() error {
	if got, want := len(h.roots), bits.OnesCount(uint(h.count)); got != want {
		return fmt.Errorf("trees=%d, popcount(%d)=%d", got, h.count, want)
	}

	total := 0
	for i, r := range h.roots {
		if i > 0 && h.nodes[h.roots[i-1]].degree >= h.nodes[r].degree {
			return fmt.Errorf("root degrees not strictly increasing at %d", i)
		}
		if h.nodes[r].parent != nilIndex || h.nodes[r].sibling != nilIndex {
			return fmt.Errorf("root %d has parent or sibling link", r)
		}
		size, err := h.validateTree(r)
		if err != nil {
			return err
		}
		total += size
	}
	if total != h.count {
		return fmt.Errorf("tree sizes sum to %d, count=%d", total, h.count)
	}

	if h.count > 0 {
		m := h.nodes[h.roots[h.minPos]].value
		for _, r := range h.roots {
			if h.less(h.nodes[r].value, m) {
				return fmt.Errorf("cached minimum is stale")
			}
		}
	}

	return nil
}

// validateTree checks heap order, binomial shape and handle back-links of
// the subtree at n, returning its size.
func (h *Heap[T]) validateTree(n int32) (int, error) {
	nd := h.nodes[n]
	if nd.handle == nilIndex || h.handles[nd.handle].node != n {
		return 0, fmt.Errorf("node %d handle link broken", n)
	}

	size := 1
	want := nd.degree - 1
	for c := nd.child; c != nilIndex; c = h.nodes[c].sibling {
		if h.nodes[c].parent != n {
			return 0, fmt.Errorf("node %d parent link broken", c)
		}
		if h.nodes[c].degree != want {
			return 0, fmt.Errorf("node %d degree=%d, want %d", c, h.nodes[c].degree, want)
		}
		if h.less(h.nodes[c].value, nd.value) {
			return 0, fmt.Errorf("heap order violated at node %d", c)
		}
		sub, err := h.validateTree(c)
		if err != nil {
			return 0, err
		}
		size += sub
		want--
	}
	if want != -1 {
		return 0, fmt.Errorf("node %d has %d missing children", n, want+1)
	}
	if size != 1<<nd.degree {
		return 0, fmt.Errorf("tree at %d has %d nodes, want %d", n, size, 1<<nd.degree)
	}

	return size, nil
}
