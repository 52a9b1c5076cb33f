package bstree

import "fmt"

// TraversalKind selects the visiting order of Traverse.
type TraversalKind int

const (
	// InOrder visits left subtree, value, right subtree.
	InOrder TraversalKind = iota
	// PreOrder visits value, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, value.
	PostOrder
)

func (k TraversalKind) String() string {
	switch k {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return fmt.Sprintf("TraversalKind(%d)", int(k))
}

// Traverse collects all values of the tree in the order given by kind.
// The result is computed afresh on every call.
//
// An unknown kind results in an error wrapping ErrInvalidArgument.
func (t *Tree[T]) Traverse(kind TraversalKind) ([]T, error) {
	var collect func(*node[T], []T) []T
	switch kind {
	case InOrder:
		collect = inOrder[T]
	case PreOrder:
		collect = preOrder[T]
	case PostOrder:
		collect = postOrder[T]
	default:
		tracer().Errorf("traverse: unknown traversal kind %d", int(kind))
		return nil, fmt.Errorf("%w: unknown traversal kind %s", ErrInvalidArgument, kind)
	}
	if t.IsEmpty() {
		return []T{}, nil
	}
	return collect(t.root, make([]T, 0, t.count)), nil
}

func inOrder[T any](n *node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = inOrder(n.left, out)
	out = append(out, n.value)
	return inOrder(n.right, out)
}

func preOrder[T any](n *node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = append(out, n.value)
	out = preOrder(n.left, out)
	return preOrder(n.right, out)
}

func postOrder[T any](n *node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = postOrder(n.left, out)
	out = postOrder(n.right, out)
	return append(out, n.value)
}
