package bstree

import (
	"testing"
)

func TestEventsAreFiredAfterMutation(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	var tree *Tree[int]
	var events []Event[int]
	var counts []int
	tree, err := NewWithConfig(Config[int]{
		Comparator: func(a, b int) int { return a - b },
		OnAdded: func(e Event[int]) {
			events = append(events, e)
			counts = append(counts, tree.Len())
			if !tree.Contains(e.Value) {
				t.Errorf("added handler called before %d is in the tree", e.Value)
			}
		},
		OnRemoved: func(e Event[int]) {
			events = append(events, e)
			counts = append(counts, tree.Len())
			if tree.Contains(e.Value) {
				t.Errorf("removed handler called while %d is still in the tree", e.Value)
			}
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = tree.Insert(7)
	_ = tree.Insert(3)
	tree.Remove(7)
	tree.Remove(100)
	want := []Event[int]{
		{Kind: ItemAdded, Value: 7, Message: MsgItemAdded},
		{Kind: ItemAdded, Value: 3, Message: MsgItemAdded},
		{Kind: ItemRemoved, Value: 7, Message: MsgItemRemoved},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
	for i, c := range []int{1, 2, 1} {
		if counts[i] != c {
			t.Errorf("count seen by handler %d = %d, want %d", i, counts[i], c)
		}
	}
}

func TestMultipleHandlersInRegistrationOrder(t *testing.T) {
	tree := NewOrdered[string]()
	var order []string
	tree.OnAdded(func(Event[string]) { order = append(order, "first") })
	tree.OnAdded(nil)
	tree.OnAdded(func(Event[string]) { order = append(order, "second") })
	_ = tree.Insert("x")
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("handlers called as %v", order)
	}
}

func TestNoEventOnFailedInsert(t *testing.T) {
	tree, _ := NewWithComparator(func(a, b []byte) int { return len(a) - len(b) })
	fired := false
	tree.OnAdded(func(Event[[]byte]) { fired = true })
	if err := tree.Insert(nil); err == nil {
		t.Fatalf("nil slice should be rejected")
	}
	if fired {
		t.Fatalf("no event may be fired for a rejected insert")
	}
}

func TestEventKindString(t *testing.T) {
	if ItemAdded.String() != "added" || ItemRemoved.String() != "removed" {
		t.Errorf("unexpected event kind names")
	}
}
