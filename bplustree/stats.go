package bplus

// Stats is a structural snapshot of the tree.
type Stats struct {
	Count     int // live entries
	Height    int // levels, 1 when the root is a leaf
	NodeCount int // total nodes, counted by post-order traversal
}

// Stats walks the tree and returns entry count, height and node count.
func (t *BPlusTree[K, V]) Stats() Stats {
	return Stats{
		Count:     t.count,
		Height:    t.height,
		NodeCount: countNodes(t.root),
	}
}

func countNodes[K, V any](n *node[K, V]) int {
	total := 0
	if n.nodeType == NodeInternal {
		for _, c := range n.children {
			total += countNodes(c)
		}
	}
	return total + 1
}

// Len returns the number of live entries.
func (t *BPlusTree[K, V]) Len() int { return t.count }

// Height returns the number of levels in the tree.
func (t *BPlusTree[K, V]) Height() int { return t.height }

// Order returns the maximum keys per node the tree was built with.
func (t *BPlusTree[K, V]) Order() int { return t.order }
