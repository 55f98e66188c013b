// Structure of B+ Tree
/*
Tree
 ├── Internal Node (keys + child pointers)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values + next pointer)


- keys: sorted ascending order under the tree's comparator
- internal nodes: children length == len(keys)+1
- leaf nodes: values length == len(keys)
- leaf nodes linked with `next` for fast range scans
- all leaf nodes at same depth

*/
package bplus

import (
	"errors"

	"go.uber.org/zap"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

const (
	// DefaultOrder is the max keys per node when the caller passes 0.
	DefaultOrder = 32
	// MinOrder is the smallest usable order; smaller values are clamped.
	MinOrder = 3
)

var (
	ErrDuplicateKey = errors.New("bplus: duplicate key")
	ErrKeyNotFound  = errors.New("bplus: key not found")
	ErrInvalidInput = errors.New("bplus: invalid bulk load input")
)

// CompareFunc establishes a total order over keys: negative if a < b,
// zero if equal, positive if a > b (same shape as bytes.Compare).
type CompareFunc[K any] func(a, b K) int

// Pair is one (key, value) entry, used by BulkLoad input.
type Pair[K, V any] struct {
	Key   K
	Value V
}

type node[K, V any] struct {
	nodeType NodeType
	keys     []K
	vals     []V           // only for leaf node
	children []*node[K, V] // only for internal node
	next     *node[K, V]   // only for leaf node
}

func (n *node[K, V]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// BPlusTree is an in-memory ordered index. All ordering decisions funnel
// through cmp. The tree assumes single-threaded access; callers needing
// concurrency must wrap it in external mutual exclusion.
type BPlusTree[K, V any] struct {
	root    *node[K, V]
	order   int // max keys per node (M)
	minKeys int // order / 2 — occupancy floor for non-root nodes
	height  int // number of levels; 1 when root is a leaf
	count   int // total live entries

	cmp      CompareFunc[K]
	freelist *FreeList[K, V]
	logger   *zap.Logger // nil disables debug logging

	// path is the deletion engine's parent stack, reused across calls and
	// grown as the tree grows.
	path []pathEntry[K, V]
}
