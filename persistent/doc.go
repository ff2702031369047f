/*
Package persistent is the home of the persistent data structures of this module.

Persistent data structures are immutable: every modification returns a new
version and leaves the original unchanged. Versions share most of their memory
(structural sharing), so deriving a modified copy is cheap in time and space,
and versions may be handed to other goroutines without locking.

The sub-package vector offers indexed sequences on a 32-way trie, in flavours
optimized for growth at the back, at the front, or at both ends.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
