package bstree

import (
	"errors"
	"slices"
	"testing"
)

func TestTraverseOrders(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	tree := intTree(t, 5, 3, 8)
	for _, tc := range []struct {
		kind TraversalKind
		want []int
	}{
		{InOrder, []int{3, 5, 8}},
		{PreOrder, []int{5, 3, 8}},
		{PostOrder, []int{3, 8, 5}},
	} {
		got, err := tree.Traverse(tc.kind)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.kind, err)
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("%s = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestTraverseLargerTree(t *testing.T) {
	tree := intTree(t, 5, 3, 8, 1, 4, 7, 9)
	pre, _ := tree.Traverse(PreOrder)
	if want := []int{5, 3, 1, 4, 8, 7, 9}; !slices.Equal(pre, want) {
		t.Errorf("pre-order = %v, want %v", pre, want)
	}
	post, _ := tree.Traverse(PostOrder)
	if want := []int{1, 4, 3, 7, 9, 8, 5}; !slices.Equal(post, want) {
		t.Errorf("post-order = %v, want %v", post, want)
	}
}

func TestTraverseUnknownKind(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	tree := intTree(t, 1)
	_, err := tree.Traverse(TraversalKind(42))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	_, err = NewOrdered[int]().Traverse(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty tree: expected ErrInvalidArgument, got %v", err)
	}
}

func TestTraverseEmptyTree(t *testing.T) {
	tree := NewOrdered[string]()
	for _, kind := range []TraversalKind{InOrder, PreOrder, PostOrder} {
		got, err := tree.Traverse(kind)
		if err != nil || len(got) != 0 {
			t.Errorf("%s of empty tree = %v, %v", kind, got, err)
		}
	}
}

func TestTraverseIsFreshlyComputed(t *testing.T) {
	tree := intTree(t, 2, 1)
	first, _ := tree.Traverse(InOrder)
	first[0] = 99
	_ = tree.Insert(3)
	second, _ := tree.Traverse(InOrder)
	if want := []int{1, 2, 3}; !slices.Equal(second, want) {
		t.Errorf("in-order = %v, want %v", second, want)
	}
}

func TestTraversalKindString(t *testing.T) {
	if InOrder.String() != "in-order" || PostOrder.String() != "post-order" {
		t.Errorf("unexpected names: %s, %s", InOrder, PostOrder)
	}
	if TraversalKind(7).String() != "TraversalKind(7)" {
		t.Errorf("unexpected name for unknown kind: %s", TraversalKind(7))
	}
}
