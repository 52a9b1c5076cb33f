package notify

import "github.com/npillmayer/bstree"

// Recorder keeps a log of tree events.
type Recorder[T any] struct {
	events []bstree.Event[T]
}

// Attach registers r as a handler for both insertions and removals of tree.
func (r *Recorder[T]) Attach(tree *bstree.Tree[T]) {
	tree.OnAdded(r.Record)
	tree.OnRemoved(r.Record)
}

// Record appends an event to the log. It is a bstree.EventHandler.
func (r *Recorder[T]) Record(e bstree.Event[T]) {
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events, oldest first.
func (r *Recorder[T]) Events() []bstree.Event[T] {
	return append([]bstree.Event[T](nil), r.events...)
}

// Values returns the values of recorded events of a given kind, oldest first.
func (r *Recorder[T]) Values(kind bstree.EventKind) []T {
	var values []T
	for _, e := range r.events {
		if e.Kind == kind {
			values = append(values, e.Value)
		}
	}
	return values
}

// Reset drops all recorded events.
func (r *Recorder[T]) Reset() {
	r.events = nil
}
