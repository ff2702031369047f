/*
Package vector implements immutable persistent vectors, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(append, prepend, update or pop) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of the nodes on the path to the change only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

Vectors are 32-way bitmapped tries plus small tail buffers. Three variants share
one capability contract (interface Vector) and differ in which end is cheap to grow:

	Appendable   trie + trailing tail; Append/Popped are O(1) amortized
	Prependable  the same trie, addressed in reverse; Cons/Tail are O(1) amortized
	Deque        trie + leading and trailing tails; both ends are O(1) amortized

Operating on the “wrong” end of an Appendable or Prependable hands off to the
other representation in O(n), so a run of operations on the same end stays cheap.

Besides the core variants the package offers List, a slice-backed reference vector,
and two lazy decorators, Projection and View.

Immutable vectors are inherently concurrency-safe: no node is ever written to after
a vector referencing it has been returned to a client.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.vector'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.vector")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
