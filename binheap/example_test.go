package binheap_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/binheap"
)

// ExampleHeap_DecrementKey lowers a tracked element and drains the heap.
func ExampleHeap_DecrementKey() {
	h := binheap.NewOrdered[int]()
	h.Insert(4)
	b := h.Insert(7)
	h.Insert(5)

	_ = h.DecrementKey(b, 2)

	for h.Len() > 0 {
		v, _ := h.ExtractMin()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 2 4 5
}
