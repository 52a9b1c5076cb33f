/*
Package display renders binary search trees for humans.

Console prints a tree sideways to a fixed-width terminal, with the right
subtree above and the left subtree below each node:

	    ┌── 9
	┌── 8
	│   └── 7
	5
	│   ┌── 4
	└── 3
	    └── 1

HTML renders a tree as nested lists.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package display

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var graphemeSetup sync.Once

func setupGraphemes() {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
}
