package bplus

import "go.uber.org/zap"

// Delete removes key from the tree. It returns ErrKeyNotFound when the
// key is absent; failure is non-destructive.
//
// The walk is iterative: descent records each (parent, child index) on a
// stack, the leaf entry is removed, then underflow is repaired bottom-up.
// A rotation ends propagation; a merge may underflow the parent and
// continues. If the root ends as a keyless internal, it collapses to its
// only child and the tree shrinks by one level.
func (t *BPlusTree[K, V]) Delete(key K) error {
	leaf, stack := t.findLeafPath(key, t.path[:0])
	t.path = stack[:0]

	pos := lowerBound(leaf.keys, key, t.cmp)
	if pos >= len(leaf.keys) || t.cmp(key, leaf.keys[pos]) != 0 {
		return ErrKeyNotFound
	}

	leaf.keys = remove(leaf.keys, pos)
	leaf.vals = remove(leaf.vals, pos)

	cur := leaf
	for cur != t.root && len(cur.keys) < t.minKeys {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.repairUnderflow(top.node, top.idx, cur) {
			break // a rotation restores the invariant locally
		}
		cur = top.node // a merge may have underflowed the parent
	}

	// Root shrink: a keyless internal root has exactly one child left.
	if !t.root.isLeaf() && len(t.root.keys) == 0 {
		old := t.root
		t.root = old.children[0]
		t.freeNode(old)
		t.height--
		if t.logger != nil {
			t.logger.Debug("root shrank", zap.Int("height", t.height))
		}
	}

	t.count--
	return nil
}

// repairUnderflow fixes parent.children[idx] (== cur) holding fewer than
// minKeys keys. Preference order: rotate from the left sibling, rotate
// from the right sibling, merge (into the left sibling when it exists).
// Returns true when a rotation ended the repair, false after a merge.
func (t *BPlusTree[K, V]) repairUnderflow(parent *node[K, V], idx int, cur *node[K, V]) bool {
	var left, right *node[K, V]
	if idx > 0 {
		left = parent.children[idx-1]
	}
	if idx < len(parent.children)-1 {
		right = parent.children[idx+1]
	}

	if left != nil && len(left.keys) > t.minKeys {
		t.rotateFromLeft(parent, idx, left, cur)
		return true
	}
	if right != nil && len(right.keys) > t.minKeys {
		t.rotateFromRight(parent, idx, cur, right)
		return true
	}

	if left != nil {
		t.mergeIntoLeft(parent, idx, left, cur)
	} else {
		// No left sibling: absorb the right sibling into cur instead.
		t.mergeIntoLeft(parent, idx+1, cur, right)
	}
	return false
}

// rotateFromLeft moves the left sibling's last entry (or last child) into
// the front of cur, routing the key through the parent separator.
func (t *BPlusTree[K, V]) rotateFromLeft(parent *node[K, V], idx int, left, cur *node[K, V]) {
	last := len(left.keys) - 1
	if cur.isLeaf() {
		cur.keys = insert(cur.keys, 0, left.keys[last])
		cur.vals = insert(cur.vals, 0, left.vals[last])
		left.keys = remove(left.keys, last)
		left.vals = remove(left.vals, last)
		// Separator between them is the underfull leaf's new first key.
		parent.keys[idx-1] = cur.keys[0]
	} else {
		cur.keys = insert(cur.keys, 0, parent.keys[idx-1])
		cur.children = insert(cur.children, 0, left.children[len(left.children)-1])
		parent.keys[idx-1] = left.keys[last]
		left.keys = remove(left.keys, last)
		left.children = remove(left.children, len(left.children)-1)
	}
	t.debugRebalance("rotate_left", parent, idx)
}

// rotateFromRight moves the right sibling's first entry (or first child)
// onto the end of cur, routing the key through the parent separator.
func (t *BPlusTree[K, V]) rotateFromRight(parent *node[K, V], idx int, cur, right *node[K, V]) {
	if cur.isLeaf() {
		cur.keys = append(cur.keys, right.keys[0])
		cur.vals = append(cur.vals, right.vals[0])
		right.keys = remove(right.keys, 0)
		right.vals = remove(right.vals, 0)
		// Separator between them is the right sibling's new first key.
		parent.keys[idx] = right.keys[0]
	} else {
		cur.keys = append(cur.keys, parent.keys[idx])
		cur.children = append(cur.children, right.children[0])
		parent.keys[idx] = right.keys[0]
		right.keys = remove(right.keys, 0)
		right.children = remove(right.children, 0)
	}
	t.debugRebalance("rotate_right", parent, idx)
}

// mergeIntoLeft fuses parent.children[idx] into its left neighbor and
// drops the now-redundant separator and child pointer from the parent.
// The merged-away node is released to the free list.
func (t *BPlusTree[K, V]) mergeIntoLeft(parent *node[K, V], idx int, left, victim *node[K, V]) {
	if victim.isLeaf() {
		left.keys = append(left.keys, victim.keys...)
		left.vals = append(left.vals, victim.vals...)
		left.next = victim.next // keep the leaf chain contiguous
	} else {
		left.keys = append(left.keys, parent.keys[idx-1])
		left.keys = append(left.keys, victim.keys...)
		left.children = append(left.children, victim.children...)
	}
	parent.keys = remove(parent.keys, idx-1)
	parent.children = remove(parent.children, idx)
	t.freeNode(victim)
	t.debugRebalance("merge", parent, idx)
}

func (t *BPlusTree[K, V]) debugRebalance(step string, parent *node[K, V], idx int) {
	if t.logger != nil {
		t.logger.Debug("rebalance",
			zap.String("step", step),
			zap.Int("child_index", idx),
			zap.Int("parent_keys", len(parent.keys)))
	}
}
