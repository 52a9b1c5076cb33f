/*
Package bstree offers a generic, comparator-driven binary search tree.

Trees

A Tree keeps values of an arbitrary type T ordered by a comparator which is
fixed when the tree is created. Values are inserted as new leaves; the tree
never rotates or rebalances, so its shape depends solely on the order of
insert and remove operations. Sorted input will degenerate the tree into a
list. This is accepted: clients needing guaranteed logarithmic depth should
use a balanced structure instead.

Values comparing equal are permitted. An equal value is always routed to the
right subtree of the first equal node met during descent, so a tree behaves
like a multiset.

	tree := bstree.NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
	    tree.Insert(v)
	}
	for v := range tree.Values() {
	    fmt.Println(v)   // 1 3 4 5 7 8 9
	}

Trees are not safe for concurrent use. Mutating a tree while iterating over
Values is undefined.

Events

Clients may register handlers for insertions and removals. Handlers are
called synchronously, after the structural change is complete and before the
mutating call returns. Sub-package notify offers a broadcaster to fan events
out to channels.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
