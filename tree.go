package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Tree is an unbalanced binary search tree over values of type T.
//
// For every node, values in its left subtree compare less than the node's
// value, values in its right subtree compare greater or equal. The comparator
// is fixed at creation time.
//
// The zero value is not usable; create trees with New, NewOrdered,
// NewWithComparator or NewWithConfig.
type Tree[T any] struct {
	cfg     Config[T]
	root    *node[T]
	count   int
	added   []EventHandler[T]
	removed []EventHandler[T]
}

// New creates an empty tree ordered by the natural ordering of T.
//
// If T has no natural ordering (see NaturalOrder), New returns an error
// wrapping ErrNoNaturalOrder and no tree.
func New[T any]() (*Tree[T], error) {
	order, err := NaturalOrder[T]()
	if err != nil {
		tracer().Errorf("cannot create tree: %v", err)
		return nil, err
	}
	return NewWithConfig(Config[T]{Comparator: order})
}

// NewOrdered creates an empty tree for an ordered type. It cannot fail.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	t, err := NewWithComparator(Comparator[T](cmp.Compare[T]))
	assert(err == nil, "NewOrdered: cannot create tree")
	return t
}

// NewWithComparator creates an empty tree ordered by a client-supplied comparator.
func NewWithComparator[T any](order Comparator[T]) (*Tree[T], error) {
	return NewWithConfig(Config[T]{Comparator: order})
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg}
	t.OnAdded(cfg.OnAdded)
	t.OnRemoved(cfg.OnRemoved)
	return t, nil
}

// Name returns the tree's label.
func (t *Tree[T]) Name() string {
	return t.cfg.Name
}

// Comparator returns the ordering of the tree.
func (t *Tree[T]) Comparator() Comparator[T] {
	return t.cfg.Comparator
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path,
// where 0 means empty.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

func (t *Tree[T]) compare(a, b T) int {
	return t.cfg.Comparator(a, b)
}

// Insert adds item as a new leaf. Items comparing equal to an existing value
// are placed to the right of it.
//
// Insert returns an error wrapping ErrInvalidArgument if item is a nil
// reference; the tree is unchanged in this case.
func (t *Tree[T]) Insert(item T) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if isNil(item) {
		tracer().Errorf("%s: refusing to insert nil item", t.cfg.Name)
		return fmt.Errorf("%w: cannot insert nil item", ErrInvalidArgument)
	}
	n := &node[T]{value: item}
	if t.root == nil {
		t.root = n
	} else {
		cur := t.root
		for {
			if t.compare(item, cur.value) < 0 {
				if cur.left == nil {
					cur.left = n
					break
				}
				cur = cur.left
			} else {
				if cur.right == nil {
					cur.right = n
					break
				}
				cur = cur.right
			}
		}
	}
	t.count++
	tracer().Debugf("%s: inserted %v, count=%d", t.cfg.Name, item, t.count)
	t.fire(ItemAdded, item)
	return nil
}

// Contains reports whether an item comparing equal to item is in the tree.
func (t *Tree[T]) Contains(item T) bool {
	if t == nil {
		return false
	}
	n, _ := t.findWithParent(item)
	return n != nil
}

// findWithParent returns the first node on the search path whose value compares
// equal to item, together with its parent. parent is nil if the node is the
// root; both are nil if no such node exists.
func (t *Tree[T]) findWithParent(item T) (n, parent *node[T]) {
	n = t.root
	for n != nil {
		c := t.compare(item, n.value)
		switch {
		case c < 0:
			parent, n = n, n.left
		case c > 0:
			parent, n = n, n.right
		default:
			return n, parent
		}
	}
	return nil, nil
}

// Remove deletes one item comparing equal to item and reports whether one
// has been found. Removing an absent item is not an error.
func (t *Tree[T]) Remove(item T) bool {
	if t == nil {
		return false
	}
	target, parent := t.findWithParent(item)
	if target == nil {
		return false
	}
	var replacement *node[T]
	switch {
	case target.right == nil:
		// left subtree (possibly empty) moves up
		replacement = target.left
		tracer().Debugf("%s: remove %v, no right child", t.cfg.Name, target.value)
	case target.right.left == nil:
		// right child is the successor
		replacement = target.right
		replacement.left = target.left
		tracer().Debugf("%s: remove %v, right child is successor", t.cfg.Name, target.value)
	default:
		successorParent, successor := target.right, target.right.left
		for successor.left != nil {
			successorParent, successor = successor, successor.left
		}
		successorParent.left = successor.right
		successor.left = target.left
		successor.right = target.right
		replacement = successor
		tracer().Debugf("%s: remove %v, splicing successor %v", t.cfg.Name,
			target.value, successor.value)
	}
	t.replaceChild(parent, target, replacement)
	target.left, target.right = nil, nil
	t.count--
	assert(t.count >= 0, "Remove: negative item count")
	t.fire(ItemRemoved, target.value)
	return true
}

// replaceChild links replacement into the slot of parent which holds target.
// The slot is selected by comparing values, not by identity.
func (t *Tree[T]) replaceChild(parent, target, replacement *node[T]) {
	if parent == nil {
		t.root = replacement
		return
	}
	if t.compare(parent.value, target.value) > 0 {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
}
