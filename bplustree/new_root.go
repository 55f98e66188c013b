package bplus

import "go.uber.org/zap"

// growRoot installs a fresh internal root with one separator and two
// children after a root split, and bumps the height.
func (t *BPlusTree[K, V]) growRoot(sep K, left, right *node[K, V]) {
	root := t.newNode(NodeInternal)
	root.keys = append(root.keys, sep)
	root.children = append(root.children, left, right)
	t.root = root
	t.height++

	if t.logger != nil {
		t.logger.Debug("root grew", zap.Int("height", t.height))
	}
}
