package bplus

import "sync"

// DefaultFreeListSize is the cap on recycled nodes kept per free list.
const DefaultFreeListSize = 32

// FreeList recycles detached nodes so merge-heavy workloads do not churn
// the heap. By default each tree owns one; trees may share a list.
type FreeList[K, V any] struct {
	mu       sync.Mutex
	freelist []*node[K, V]
}

// NewFreeList creates a free list holding at most size recycled nodes.
func NewFreeList[K, V any](size int) *FreeList[K, V] {
	return &FreeList[K, V]{freelist: make([]*node[K, V], 0, size)}
}

func (f *FreeList[K, V]) get() *node[K, V] {
	f.mu.Lock()
	defer f.mu.Unlock()
	index := len(f.freelist) - 1
	if index < 0 {
		return nil
	}
	n := f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	return n
}

func (f *FreeList[K, V]) put(n *node[K, V]) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.freelist) >= cap(f.freelist) {
		return false
	}
	f.freelist = append(f.freelist, n)
	return true
}

// newNode hands out a node of the given type, reusing a recycled node's
// backing arrays when one is available.
func (t *BPlusTree[K, V]) newNode(nodeType NodeType) *node[K, V] {
	n := t.freelist.get()
	if n == nil {
		n = &node[K, V]{}
	}
	n.nodeType = nodeType
	return n
}

// freeNode detaches n from the tree and offers it to the free list.
// Slices are truncated, not reallocated, so their capacity is reused.
func (t *BPlusTree[K, V]) freeNode(n *node[K, V]) {
	var zeroK K
	var zeroV V
	for i := range n.keys {
		n.keys[i] = zeroK
	}
	for i := range n.vals {
		n.vals[i] = zeroV
	}
	for i := range n.children {
		n.children[i] = nil
	}
	n.keys = n.keys[:0]
	n.vals = n.vals[:0]
	n.children = n.children[:0]
	n.next = nil
	t.freelist.put(n)
}
