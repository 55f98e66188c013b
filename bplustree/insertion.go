package bplus

import "go.uber.org/zap"

// promotion is a split's upward contribution: one separator key plus the
// freshly allocated right sibling, consumed by the parent.
type promotion[K, V any] struct {
	key   K
	right *node[K, V]
}

// Insert adds (key, value) to the tree. It returns ErrDuplicateKey if the
// key already exists; values are never overwritten by Insert.
func (t *BPlusTree[K, V]) Insert(key K, value V) error {
	promo, _, err := t.insertInto(t.root, key, value, false)
	if err != nil {
		return err
	}
	if promo != nil {
		t.growRoot(promo.key, t.root, promo.right)
	}
	t.count++
	return nil
}

// Upsert adds (key, value), overwriting the stored value in place when the
// key already exists. The overwrite path makes no structural change.
func (t *BPlusTree[K, V]) Upsert(key K, value V) {
	promo, replaced, _ := t.insertInto(t.root, key, value, true)
	if promo != nil {
		t.growRoot(promo.key, t.root, promo.right)
	}
	if !replaced {
		t.count++
	}
}

// insertInto descends recursively. A non-nil promotion means the child
// split and the caller must absorb (sep, right) — or split in turn.
func (t *BPlusTree[K, V]) insertInto(n *node[K, V], key K, value V, upsert bool) (*promotion[K, V], bool, error) {
	if n.isLeaf() {
		pos := lowerBound(n.keys, key, t.cmp)
		if pos < len(n.keys) && t.cmp(key, n.keys[pos]) == 0 {
			if !upsert {
				return nil, false, ErrDuplicateKey
			}
			n.vals[pos] = value
			return nil, true, nil
		}
		if len(n.keys) < t.order {
			n.keys = insert(n.keys, pos, key)
			n.vals = insert(n.vals, pos, value)
			return nil, false, nil
		}
		sep, right := t.splitLeaf(n, pos, key, value)
		return &promotion[K, V]{key: sep, right: right}, false, nil
	}

	i := upperBound(n.keys, key, t.cmp)
	promo, replaced, err := t.insertInto(n.children[i], key, value, upsert)
	if err != nil || promo == nil {
		return nil, replaced, err
	}

	// Absorb the child's promotion: separator at i, new child at i+1.
	if len(n.keys) < t.order {
		n.keys = insert(n.keys, i, promo.key)
		n.children = insert(n.children, i+1, promo.right)
		return nil, replaced, nil
	}
	sep, right := t.splitInternal(n, i, promo.key, promo.right)
	return &promotion[K, V]{key: sep, right: right}, replaced, nil
}

func (t *BPlusTree[K, V]) debugSplit(kind string, leftKeys, rightKeys int) {
	if t.logger != nil {
		t.logger.Debug("node split",
			zap.String("kind", kind),
			zap.Int("left_keys", leftKeys),
			zap.Int("right_keys", rightKeys),
			zap.Int("height", t.height))
	}
}
