package bplus

import "go.uber.org/zap"

// New creates an empty B+ tree of the given order (max keys per node).
// Orders below MinOrder are clamped; 0 selects DefaultOrder. The tree
// starts as a single empty leaf.
func New[K, V any](order int, cmp CompareFunc[K]) *BPlusTree[K, V] {
	return NewWithFreeList(order, cmp, NewFreeList[K, V](DefaultFreeListSize))
}

// NewWithFreeList creates a B+ tree that recycles nodes through the given
// free list. Multiple trees may share one free list.
func NewWithFreeList[K, V any](order int, cmp CompareFunc[K], f *FreeList[K, V]) *BPlusTree[K, V] {
	if order == 0 {
		order = DefaultOrder
	}
	if order < MinOrder {
		order = MinOrder
	}
	t := &BPlusTree[K, V]{
		order:    order,
		minKeys:  order / 2,
		cmp:      cmp,
		freelist: f,
	}
	t.root = t.newNode(NodeLeaf)
	t.height = 1
	return t
}

// SetLogger routes debug diagnostics (splits, rotations, merges, root
// changes) to l. A nil logger disables logging.
func (t *BPlusTree[K, V]) SetLogger(l *zap.Logger) {
	t.logger = l
}

// Clear releases every node back to the free list and resets the tree to
// a single empty leaf. Values are not owned by the tree and are untouched.
func (t *BPlusTree[K, V]) Clear() {
	if t.root != nil {
		t.releaseSubtree(t.root)
	}
	t.root = t.newNode(NodeLeaf)
	t.height = 1
	t.count = 0
}

func (t *BPlusTree[K, V]) releaseSubtree(n *node[K, V]) {
	if n.nodeType == NodeInternal {
		for _, c := range n.children {
			t.releaseSubtree(c)
		}
	}
	t.freeNode(n)
}
