package notify

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstree"
)

// Broadcaster publishes tree events to channel subscribers.
type Broadcaster[T any] struct {
	cast *caster.Caster
}

// NewBroadcaster creates a broadcaster. If ctx is cancelled, the broadcaster
// closes and all subscriber channels are closed. ctx may be nil.
func NewBroadcaster[T any](ctx context.Context) *Broadcaster[T] {
	return &Broadcaster[T]{
		cast: caster.New(ctx),
	}
}

// Attach registers b as a handler for both insertions and removals of tree.
func (b *Broadcaster[T]) Attach(tree *bstree.Tree[T]) {
	tree.OnAdded(b.Publish)
	tree.OnRemoved(b.Publish)
	tracer().P("notify", tree.Name()).Debugf("broadcaster attached")
}

// Publish hands an event to the caster. It is a bstree.EventHandler.
//
// Publish never blocks the tree: subscribers whose buffers are full miss the
// event. Events published after Close are dropped.
func (b *Broadcaster[T]) Publish(e bstree.Event[T]) {
	if b.closed() {
		tracer().Infof("notify: dropping %s event, broadcaster closed", e.Kind)
		return
	}
	if !b.cast.TryPub(e) {
		tracer().Infof("notify: %s event of %v not delivered to all subscribers", e.Kind, e.Value)
	}
}

func (b *Broadcaster[T]) closed() bool {
	select {
	case <-b.cast.Done():
		return true
	default:
		return false
	}
}

// Subscribe returns a channel of events with a buffer of capacity events.
// The channel is closed when ctx is done or the broadcaster is closed.
func (b *Broadcaster[T]) Subscribe(ctx context.Context, capacity uint) (<-chan bstree.Event[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.closed() {
		return nil, ErrClosed
	}
	sub, _ := b.cast.Sub(ctx, capacity)
	out := make(chan bstree.Event[T], capacity)
	go func() {
		defer close(out)
		for {
			var m interface{}
			var ok bool
			select {
			case m, ok = <-sub:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
			e, ok := m.(bstree.Event[T])
			if !ok {
				tracer().Errorf("notify: unexpected message type %T", m)
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			case <-b.cast.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts down the broadcaster and closes all subscriber channels.
func (b *Broadcaster[T]) Close() {
	b.cast.Close()
}
