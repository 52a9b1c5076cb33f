package bstree

// NodeView is a read-only handle to a node of a tree, for renderers and
// debugging tools which need to see the tree's shape. The zero NodeView
// denotes an absent node.
//
// A NodeView must not be used after the tree has been modified.
type NodeView[T any] struct {
	n *node[T]
}

// Root returns a view of the root node. It is invalid for an empty tree.
func (t *Tree[T]) Root() NodeView[T] {
	if t == nil {
		return NodeView[T]{}
	}
	return NodeView[T]{n: t.root}
}

// Valid reports whether v denotes a node.
func (v NodeView[T]) Valid() bool {
	return v.n != nil
}

// Value returns the node's value, or the zero value for an absent node.
func (v NodeView[T]) Value() T {
	if v.n == nil {
		var zero T
		return zero
	}
	return v.n.value
}

// Left returns a view of the left child.
func (v NodeView[T]) Left() NodeView[T] {
	if v.n == nil {
		return v
	}
	return NodeView[T]{n: v.n.left}
}

// Right returns a view of the right child.
func (v NodeView[T]) Right() NodeView[T] {
	if v.n == nil {
		return v
	}
	return NodeView[T]{n: v.n.right}
}

// IsLeaf reports whether v is a node without children.
func (v NodeView[T]) IsLeaf() bool {
	return v.n != nil && v.n.isLeaf()
}
