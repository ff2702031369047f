package vector

// trie is the engine shared by Appendable and Prependable: a 32-way trie
// holding the body of a vector, plus a tail of 1…32 items at the growing end.
//
// Addresses are internal positions, 0 being the oldest item. The trie
// contains the items [0, tailOffset), the tail the items [tailOffset, length).
// An empty trie has root == nil and shift == 0; otherwise shift ≥ bits and
// the root is an inner node.
type trie[T any] struct {
	length int
	shift  uint
	root   *node[T]
	tail   []T
}

// buildTrie creates a trie for items, bottom up and with minimal depth.
// The trie takes ownership of items.
func buildTrie[T any](items []T) trie[T] {
	n := len(items)
	if n == 0 {
		return trie[T]{}
	}
	tailLen := (n-1)%width + 1
	t := trie[T]{length: n, tail: items[n-tailLen : n : n]}
	if n > tailLen {
		t.root, t.shift = buildLevels(chunkLeafs(items[:n-tailLen]), false)
	}
	return t
}

func (t trie[T]) tailOffset() int {
	return t.length - len(t.tail)
}

func (t trie[T]) get(i int) T {
	if i >= t.tailOffset() {
		return t.tail[i-t.tailOffset()]
	}
	return leafAt(t.root, t.shift, i).items[i&mask]
}

func (t trie[T]) last() T {
	return t.tail[len(t.tail)-1]
}

func (t trie[T]) set(i int, x T) trie[T] {
	if off := t.tailOffset(); i >= off {
		tail := cloneTail(t.tail, len(t.tail))
		tail[i-off] = x
		return trie[T]{length: t.length, shift: t.shift, root: t.root, tail: tail}
	}
	return trie[T]{length: t.length, shift: t.shift, root: setPath(t.root, t.shift, i, x), tail: t.tail}
}

// push appends x at address length. A full tail is moved into the trie
// first, growing the trie by one level if the root is saturated.
func (t trie[T]) push(x T) trie[T] {
	if len(t.tail) < width {
		tail := cloneTail(t.tail, len(t.tail)+1)
		tail[len(t.tail)] = x
		return trie[T]{length: t.length + 1, shift: t.shift, root: t.root, tail: tail}
	}
	leaf := newLeaf(t.tail)
	off := t.tailOffset()
	root, shift := t.root, t.shift
	switch {
	case root == nil:
		root, shift = newInner([]*node[T]{leaf}, false), bits
	case off == 1<<(shift+bits): // root overflow
		root = &node[T]{children: []*node[T]{root, newPath(shift, leaf)}}
		shift += bits
		tracer().Debugf("vector: root overflow at length %d, depth is now %d", t.length, shift/bits+1)
	default:
		root = pushTail(root, shift, off, leaf)
	}
	return trie[T]{length: t.length + 1, shift: shift, root: root, tail: []T{x}}
}

// newPath creates a chain of single-child nodes from level down to leaf.
func newPath[T any](level uint, leaf *node[T]) *node[T] {
	if level == 0 {
		return leaf
	}
	return &node[T]{children: []*node[T]{newPath(level-bits, leaf)}}
}

// pushTail inserts leaf as the new rightmost leaf at address i, copying the
// rightmost path of n. If a level has no child for i yet, a fresh path is
// hung off it.
func pushTail[T any](n *node[T], level uint, i int, leaf *node[T]) *node[T] {
	sub := (i >> level) & mask
	if level == bits {
		assertThat(sub == len(n.children), "leaf pushed at slot %d of node with %d children", sub, len(n.children))
		return n.withAppendedChild(leaf)
	}
	if sub < len(n.children) {
		return n.withChild(sub, pushTail(n.children[sub], level-bits, i, leaf))
	}
	return n.withAppendedChild(newPath(level-bits, leaf))
}

// pop removes the item at address length-1. If the tail runs empty, the
// rightmost leaf of the trie becomes the new tail; the trie contracts when
// its root is left with a single child.
func (t trie[T]) pop() trie[T] {
	assertThat(t.length > 0, "attempt to pop from empty trie")
	if t.length == 1 {
		return trie[T]{}
	}
	if len(t.tail) > 1 {
		return trie[T]{length: t.length - 1, shift: t.shift, root: t.root, tail: t.tail[: len(t.tail)-1 : len(t.tail)-1]}
	}
	i := t.tailOffset() - 1
	tail := leafAt(t.root, t.shift, i).items
	root, shift := popTail(t.root, t.shift, i), t.shift
	if root == nil {
		shift = 0
	} else if shift > bits && len(root.children) == 1 {
		root, shift = root.children[0], shift-bits
		tracer().Debugf("vector: contracted root at length %d, depth is now %d", t.length-1, shift/bits+1)
	}
	return trie[T]{length: t.length - 1, shift: shift, root: root, tail: tail}
}

// popTail removes the rightmost leaf, which holds address i. It returns nil
// if n has no children left afterwards.
func popTail[T any](n *node[T], level uint, i int) *node[T] {
	sub := (i >> level) & mask
	if level > bits {
		child := popTail(n.children[sub], level-bits, i)
		if child != nil {
			return n.withChild(sub, child)
		}
	}
	if sub == 0 {
		return nil
	}
	return n.withoutLastChild()
}

// --- Traversal -------------------------------------------------------------

func (t trie[T]) ascend(yield func(T) bool) {
	each := func(items []T) bool {
		for _, x := range items {
			if !yield(x) {
				return false
			}
		}
		return true
	}
	if t.root != nil && !eachLeaf(t.root, t.shift, each) {
		return
	}
	each(t.tail)
}

func (t trie[T]) descend(yield func(T) bool) {
	each := func(items []T) bool {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return false
			}
		}
		return true
	}
	if !each(t.tail) || t.root == nil {
		return
	}
	eachLeafBackward(t.root, t.shift, each)
}

// toSlice copies the items in address order, a leaf at a time.
func (t trie[T]) toSlice() []T {
	items := make([]T, 0, t.length)
	if t.root != nil {
		eachLeaf(t.root, t.shift, func(leaf []T) bool {
			items = append(items, leaf...)
			return true
		})
	}
	return append(items, t.tail...)
}
