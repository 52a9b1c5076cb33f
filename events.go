package bstree

// EventKind discriminates tree events.
type EventKind int8

const (
	// ItemAdded is emitted after an item has been inserted.
	ItemAdded EventKind = iota + 1
	// ItemRemoved is emitted after an item has been removed.
	ItemRemoved
)

// Messages carried by events.
const (
	MsgItemAdded   = "Item has been added"
	MsgItemRemoved = "Item has been removed"
)

func (k EventKind) String() string {
	switch k {
	case ItemAdded:
		return "added"
	case ItemRemoved:
		return "removed"
	}
	return "unknown"
}

// Event notifies about a structural change of a tree.
type Event[T any] struct {
	Kind    EventKind
	Value   T      // the value inserted or removed
	Message string // MsgItemAdded or MsgItemRemoved
}

// OnAdded registers a handler to be called after every successful Insert.
// Handlers are called in order of registration. A nil handler is ignored.
func (t *Tree[T]) OnAdded(h EventHandler[T]) {
	if h == nil {
		return
	}
	t.added = append(t.added, h)
}

// OnRemoved registers a handler to be called after every successful Remove.
// Handlers are called in order of registration. A nil handler is ignored.
func (t *Tree[T]) OnRemoved(h EventHandler[T]) {
	if h == nil {
		return
	}
	t.removed = append(t.removed, h)
}

func (t *Tree[T]) fire(kind EventKind, value T) {
	var handlers []EventHandler[T]
	event := Event[T]{Kind: kind, Value: value}
	switch kind {
	case ItemAdded:
		handlers, event.Message = t.added, MsgItemAdded
	case ItemRemoved:
		handlers, event.Message = t.removed, MsgItemRemoved
	default:
		panic("unknown tree event kind")
	}
	for _, h := range handlers {
		h(event)
	}
}
