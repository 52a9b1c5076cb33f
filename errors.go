package bstree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bstree: invalid configuration")
	// ErrNoNaturalOrder signals that a tree has been requested without a
	// comparator for a type which does not have a natural ordering.
	// It wraps ErrInvalidConfig.
	ErrNoNaturalOrder = fmt.Errorf("%w: type has no natural ordering", ErrInvalidConfig)
	// ErrInvalidArgument signals a nil item or an unknown traversal kind.
	ErrInvalidArgument = errors.New("bstree: invalid argument")
	// ErrEmptyTree is returned by queries which need at least one item.
	ErrEmptyTree = errors.New("bstree: tree is empty")
	// ErrCorrupted is flagged by Check if the node structure violates an invariant.
	ErrCorrupted = errors.New("bstree: tree structure corrupted")
)
