/*
Package notify distributes tree events to interested parties.

A bstree.Tree calls its event handlers synchronously. Broadcaster is such a
handler which publishes every event to a caster (see
https://github.com/guiguan/caster), fanning it out to any number of channel
subscribers. Delivery to subscribers is asynchronous and never blocks the
tree; subscribers receive events in the order the tree emitted them. A
subscriber which falls behind by more than its buffer capacity misses events.

Recorder is a synchronous handler which keeps a log of events, e.g. for
auditing or tests.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package notify

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrClosed is returned when subscribing to a closed broadcaster.
var ErrClosed = errors.New("notify: broadcaster closed")
