// Package bplus: tree inspection for debugging.
// Use DumpTo(w) to print a human-readable, level-by-level dump of the tree.

package bplus

import (
	"fmt"
	"io"
	"os"
)

// Dump prints the tree structure to stdout.
func (t *BPlusTree[K, V]) Dump() {
	t.DumpTo(os.Stdout)
}

// DumpTo writes a human-readable dump of the tree to w: one block per
// level (BFS order), internal nodes with their separators, leaves with
// their key → value entries.
func (t *BPlusTree[K, V]) DumpTo(w io.Writer) {
	p := func(format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }

	p("B+ tree: order=%d count=%d height=%d\n", t.order, t.count, t.height)
	if t.count == 0 {
		p("  (empty tree)\n")
		return
	}

	queue := []*node[K, V]{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			n := queue[i]
			if n.nodeType == NodeInternal {
				p("    INTERNAL keys=%v children=%d\n", n.keys, len(n.children))
				queue = append(queue, n.children...)
			} else {
				p("    LEAF numKeys=%d\n", len(n.keys))
				for j, k := range n.keys {
					p("      %v -> %v\n", k, n.vals[j])
				}
			}
		}
		p("  ---\n")
		queue = queue[size:]
		level++
	}
}
