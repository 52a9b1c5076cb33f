package bstree

// node is a tree node. Each child slot exclusively owns its subtree.
type node[T any] struct {
	value       T
	left, right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
