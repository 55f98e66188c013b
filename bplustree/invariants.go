package bplus

import "fmt"

// CheckInvariants validates the tree's structure and returns the first
// violation found, or nil. It is a debug aid with no side effects and no
// self-repair. Checked: per-node key ordering, fill bounds on non-root
// nodes, children count on internals, uniform leaf depth,
// separator-equals-right-min, a strictly ascending leaf chain covering
// every entry, and count/height bookkeeping.
func (t *BPlusTree[K, V]) CheckInvariants() error {
	if t.root == nil {
		return fmt.Errorf("check: nil root")
	}

	depth, err := t.checkNode(t.root, 1)
	if err != nil {
		return err
	}
	if depth != t.height {
		return fmt.Errorf("check: leaf depth %d != height %d", depth, t.height)
	}

	// Walk the leaf chain: strictly ascending, covers count exactly.
	seen := 0
	leaf := leftmostLeaf(t.root)
	var prev K
	havePrev := false
	for l := leaf; l != nil; l = l.next {
		for i, k := range l.keys {
			if havePrev && t.cmp(prev, k) >= 0 {
				return fmt.Errorf("check: leaf chain not ascending at entry %d", seen+i)
			}
			prev = k
			havePrev = true
		}
		seen += len(l.keys)
	}
	if seen != t.count {
		return fmt.Errorf("check: leaf chain holds %d entries, count is %d", seen, t.count)
	}
	return nil
}

// checkNode validates the subtree rooted at n and returns its leaf depth.
func (t *BPlusTree[K, V]) checkNode(n *node[K, V], depth int) (int, error) {
	for i := 1; i < len(n.keys); i++ {
		if t.cmp(n.keys[i-1], n.keys[i]) >= 0 {
			return 0, fmt.Errorf("check: keys out of order at depth %d index %d", depth, i)
		}
	}
	if len(n.keys) > t.order {
		return 0, fmt.Errorf("check: node overflows: %d keys, order %d", len(n.keys), t.order)
	}

	isRoot := n == t.root
	if !isRoot && len(n.keys) < t.minKeys {
		return 0, fmt.Errorf("check: non-root node underfull: %d keys, floor %d", len(n.keys), t.minKeys)
	}

	if n.isLeaf() {
		if len(n.vals) != len(n.keys) {
			return 0, fmt.Errorf("check: leaf has %d values for %d keys", len(n.vals), len(n.keys))
		}
		return depth, nil
	}

	if isRoot && len(n.keys) == 0 {
		return 0, fmt.Errorf("check: internal root has no keys")
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, fmt.Errorf("check: internal has %d children for %d keys", len(n.children), len(n.keys))
	}

	leafDepth := 0
	for i, c := range n.children {
		d, err := t.checkNode(c, depth+1)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			leafDepth = d
		} else if d != leafDepth {
			return 0, fmt.Errorf("check: uneven leaf depth under node at depth %d", depth)
		}
		// Subtree i holds keys in [keys[i-1], keys[i]). Deleting a subtree
		// minimum legitimately leaves the separator below it, so the lower
		// bound is inclusive-or-stale, never above.
		if i > 0 {
			min := leftmostLeaf(c).keys[0]
			if t.cmp(min, n.keys[i-1]) < 0 {
				return 0, fmt.Errorf("check: subtree %d minimum below separator at depth %d", i, depth)
			}
		}
		if i < len(n.keys) {
			max := rightmostLeaf(c)
			if t.cmp(max.keys[len(max.keys)-1], n.keys[i]) >= 0 {
				return 0, fmt.Errorf("check: subtree %d maximum reaches separator at depth %d", i, depth)
			}
		}
	}
	return leafDepth, nil
}
