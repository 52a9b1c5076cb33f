package bstree

import (
	"cmp"
	"fmt"
	"reflect"
)

// DefaultName is the label used for tracing and rendering if Config.Name is empty.
const DefaultName = "bstree"

// Comparator is a total ordering over T. It returns a negative number if a < b,
// zero if a == b, and a positive number if a > b.
type Comparator[T any] func(a, b T) int

// Comparable is implemented by types which define their own natural ordering.
// Compare follows the same sign conventions as Comparator.
type Comparable[T any] interface {
	Compare(other T) int
}

// EventHandler is called with every Event a tree emits.
type EventHandler[T any] func(Event[T])

// Config configures a binary search tree.
type Config[T any] struct {
	// Comparator orders the tree's values. It is required.
	Comparator Comparator[T]
	// OnAdded, if set, is registered as the first handler for insertions.
	OnAdded EventHandler[T]
	// OnRemoved, if set, is registered as the first handler for removals.
	OnRemoved EventHandler[T]
	// Name labels the tree in trace output and renderings.
	Name string
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Comparator == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

// NaturalOrder returns the natural ordering of T, if T has one.
//
// T is naturally ordered if it implements Comparable[T], or if its underlying
// type is an integer, float or string type. Otherwise NaturalOrder returns an
// error wrapping ErrNoNaturalOrder.
func NaturalOrder[T any]() (Comparator[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Implements(reflect.TypeFor[Comparable[T]]()) {
		return func(a, b T) int {
			return any(a).(Comparable[T]).Compare(b)
		}, nil
	}
	var zero T
	switch any(zero).(type) { // fast paths for predeclared types
	case int:
		return ordered[int, T](), nil
	case int8:
		return ordered[int8, T](), nil
	case int16:
		return ordered[int16, T](), nil
	case int32:
		return ordered[int32, T](), nil
	case int64:
		return ordered[int64, T](), nil
	case uint:
		return ordered[uint, T](), nil
	case uint8:
		return ordered[uint8, T](), nil
	case uint16:
		return ordered[uint16, T](), nil
	case uint32:
		return ordered[uint32, T](), nil
	case uint64:
		return ordered[uint64, T](), nil
	case uintptr:
		return ordered[uintptr, T](), nil
	case float32:
		return ordered[float32, T](), nil
	case float64:
		return ordered[float64, T](), nil
	case string:
		return ordered[string, T](), nil
	}
	// named types with an ordered underlying type
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoNaturalOrder, typ)
}

func ordered[O cmp.Ordered, T any]() Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(any(a).(O), any(b).(O))
	}
}

// isNil reports whether item is a nil reference. Value types are never nil.
func isNil[T any](item T) bool {
	v := any(item)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
