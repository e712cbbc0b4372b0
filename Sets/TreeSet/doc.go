/*
Package TreeSet implements an ordered set on a 2-3 tree.

Keys live in the leaves, all at the same depth. Every internal node has 2 or 3
children and caches the largest key and the number of leaves below it, which
gives O(log n) insertion, removal, lookup, rank and select.

Nodes are kept in an index arena. A node is referred to by its index of type S,
with 0 as nil, and iterators hold a (index, generation) handle so that using an
iterator after its element was erased is detected instead of reading a reused slot.

A TreeSet isn't safe for concurrent use.
*/
package TreeSet

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
