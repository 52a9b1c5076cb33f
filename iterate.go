package bstree

import "iter"

// Iterator walks a tree in-order without recursion.
//
// An iterator is single-use. It must not be used after the tree has been
// modified.
type Iterator[T any] struct {
	current    *node[T]
	stack      []*node[T] // ancestors still to be visited
	goLeftNext bool       // descend left from current before visiting it
}

// NewIterator returns an iterator positioned before the smallest value.
func (t *Tree[T]) NewIterator() *Iterator[T] {
	it := &Iterator[T]{goLeftNext: true}
	if t != nil {
		it.current = t.root
	}
	return it
}

// Next returns the next value in order. It returns false if all values
// have been visited.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it == nil || it.current == nil {
		return zero, false
	}
	if it.goLeftNext {
		for it.current.left != nil {
			it.stack = append(it.stack, it.current)
			it.current = it.current.left
		}
	}
	value := it.current.value
	if it.current.right != nil {
		it.current = it.current.right
		it.goLeftNext = true
	} else if top := len(it.stack) - 1; top >= 0 {
		it.current = it.stack[top]
		it.stack[top] = nil
		it.stack = it.stack[:top]
		it.goLeftNext = false
	} else {
		it.current = nil
	}
	return value, true
}

// Values returns an iterator over all values in ascending order.
// Every range over the sequence starts afresh at the root.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.NewIterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Each visits all values in ascending order.
//
// Iteration stops at the first callback error and returns that error to the caller.
func (t *Tree[T]) Each(f func(T) error) error {
	for v := range t.Values() {
		if err := f(v); err != nil {
			return err
		}
	}
	return nil
}
