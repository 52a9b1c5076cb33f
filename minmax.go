package bstree

// TreeMin returns the smallest value in the tree. If several values compare
// equal to the minimum, one of them is returned.
//
// TreeMin scans the whole tree and does not rely on the search order.
func (t *Tree[T]) TreeMin() (T, error) {
	return t.extreme(func(candidate, best T) bool {
		return t.compare(candidate, best) < 0
	})
}

// TreeMax returns the largest value in the tree. If several values compare
// equal to the maximum, one of them is returned.
//
// TreeMax scans the whole tree and does not rely on the search order.
func (t *Tree[T]) TreeMax() (T, error) {
	return t.extreme(func(candidate, best T) bool {
		return t.compare(candidate, best) > 0
	})
}

func (t *Tree[T]) extreme(better func(candidate, best T) bool) (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, ErrEmptyTree
	}
	best, found := scan(t.root, better, zero, false)
	assert(found, "extreme: scan of non-empty tree found no value")
	return best, nil
}

// scan folds the values of subtree n into a running best value.
// found tells whether best holds a value at all.
func scan[T any](n *node[T], better func(candidate, best T) bool, best T, found bool) (T, bool) {
	if n == nil {
		return best, found
	}
	if !found || better(n.value, best) {
		best, found = n.value, true
	}
	best, found = scan(n.left, better, best, found)
	return scan(n.right, better, best, found)
}
