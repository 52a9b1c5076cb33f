package bstree

import "fmt"

// Check validates structural tree invariants: search order, item count and
// the absence of shared or cyclic node references.
//
// This checker is meant for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Comparator == nil {
		return fmt.Errorf("%w: tree has no comparator", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0, has %d", ErrCorrupted, t.count)
		}
		return nil
	}
	seen := make(map[*node[T]]struct{}, t.count)
	n, err := t.checkNode(t.root, nil, nil, seen)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("%w: count mismatch (%d nodes, count=%d)", ErrCorrupted, n, t.count)
	}
	return nil
}

// checkNode validates subtree n, whose values must lie within [low, high).
// A nil bound is open.
func (t *Tree[T]) checkNode(n *node[T], low, high *T, seen map[*node[T]]struct{}) (int, error) {
	if n == nil {
		return 0, nil
	}
	if _, dup := seen[n]; dup {
		return 0, fmt.Errorf("%w: node %v reachable twice", ErrCorrupted, n.value)
	}
	seen[n] = struct{}{}
	if low != nil && t.compare(n.value, *low) < 0 {
		return 0, fmt.Errorf("%w: %v in right subtree of %v", ErrCorrupted, n.value, *low)
	}
	if high != nil && t.compare(n.value, *high) >= 0 {
		return 0, fmt.Errorf("%w: %v in left subtree of %v", ErrCorrupted, n.value, *high)
	}
	l, err := t.checkNode(n.left, low, &n.value, seen)
	if err != nil {
		return 0, err
	}
	r, err := t.checkNode(n.right, &n.value, high, seen)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
