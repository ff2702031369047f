package vector

import (
	"fmt"
	"strings"
)

const (
	bits  uint = 5 // will produce nodes with degree  2 ^ 5 = 32
	width int  = 1 << bits
	mask  int  = width - 1
)

// node represents a node in the trie a vector is made of. Whether a node is
// an inner node or a leaf follows from the level it is found at: nodes at
// level 0 are leafs and carry items, all others carry children.
//
// Nodes are never modified after they have been linked into a vector handed
// out to clients. All the with…-methods return fresh copies.
type node[T any] struct {
	children []*node[T]
	items    []T
}

func newLeaf[T any](items []T) *node[T] {
	return &node[T]{items: items}
}

// newInner creates an inner node for a run of children. If fixed is set, the
// node is padded to the full degree (the deque body addresses slots absolutely).
func newInner[T any](children []*node[T], fixed bool) *node[T] {
	size := len(children)
	if fixed {
		size = width
	}
	ch := make([]*node[T], size)
	copy(ch, children)
	return &node[T]{children: ch}
}

func (n *node[T]) isLeaf() bool {
	return n.children == nil
}

func (n *node[T]) lastChild() *node[T] {
	assertThat(len(n.children) > 0, "attempt to get last child of empty inner node")
	return n.children[len(n.children)-1]
}

func (n *node[T]) withChild(i int, child *node[T]) *node[T] {
	ch := make([]*node[T], len(n.children))
	copy(ch, n.children)
	ch[i] = child
	return &node[T]{children: ch}
}

func (n *node[T]) withAppendedChild(child *node[T]) *node[T] {
	ch := make([]*node[T], len(n.children)+1)
	copy(ch, n.children)
	ch[len(n.children)] = child
	return &node[T]{children: ch}
}

func (n *node[T]) withoutLastChild() *node[T] {
	ch := make([]*node[T], len(n.children)-1)
	copy(ch, n.children)
	return &node[T]{children: ch}
}

func (n *node[T]) withItem(i int, x T) *node[T] {
	items := cloneTail(n.items, len(n.items))
	items[i] = x
	return &node[T]{items: items}
}

// occupied counts the non-nil children of an inner node and reports the
// position of the last one found.
func (n *node[T]) occupied() (count int, at int) {
	for i, c := range n.children {
		if c != nil {
			count++
			at = i
		}
	}
	return
}

func (n *node[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if n.isLeaf() {
		for i, l := range n.items {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// cloneTail returns a copy of tail with length l. If l exceeds the length of
// tail, the copy is padded with zero values.
func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

// --- Building bottom-up ----------------------------------------------------

// chunkLeafs cuts items into leafs of full width. len(items) has to be a
// multiple of the width. The leafs share the backing array of items, which
// therefore must be owned by the caller.
func chunkLeafs[T any](items []T) []*node[T] {
	assertThat(len(items)%width == 0, "leaf run of length %d is not a multiple of %d", len(items), width)
	leafs := make([]*node[T], 0, len(items)/width)
	for i := 0; i < len(items); i += width {
		leafs = append(leafs, newLeaf(items[i:i+width:i+width]))
	}
	return leafs
}

// buildLevels stacks inner nodes on top of a run of leafs until they fit
// below a single root. The last node of every level holds exactly the
// remaining children, unless fixed is set.
func buildLevels[T any](nodes []*node[T], fixed bool) (*node[T], uint) {
	assertThat(len(nodes) > 0, "cannot build a trie without leafs")
	shift := bits
	for len(nodes) > width {
		parents := make([]*node[T], 0, (len(nodes)+width-1)/width)
		for i := 0; i < len(nodes); i += width {
			parents = append(parents, newInner(nodes[i:min(i+width, len(nodes))], fixed))
		}
		nodes = parents
		shift += bits
	}
	return newInner(nodes, fixed), shift
}

// --- Traversal -------------------------------------------------------------

// eachLeaf calls f for every leaf below n, left to right. n lives at level
// `level`; nil children are skipped. Returns false if f stopped the walk.
func eachLeaf[T any](n *node[T], level uint, f func([]T) bool) bool {
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if level == bits {
			if !f(c.items) {
				return false
			}
		} else if !eachLeaf(c, level-bits, f) {
			return false
		}
	}
	return true
}

// eachLeafBackward is the right-to-left version of eachLeaf.
func eachLeafBackward[T any](n *node[T], level uint, f func([]T) bool) bool {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if c == nil {
			continue
		}
		if level == bits {
			if !f(c.items) {
				return false
			}
		} else if !eachLeafBackward(c, level-bits, f) {
			return false
		}
	}
	return true
}

// --- Path copying ----------------------------------------------------------

// setPath returns a copy of the path from n down to the leaf holding address
// i, with the item replaced by x. Every sibling sub-tree is shared.
func setPath[T any](n *node[T], level uint, i int, x T) *node[T] {
	if level == 0 {
		return n.withItem(i&mask, x)
	}
	sub := (i >> level) & mask
	return n.withChild(sub, setPath(n.children[sub], level-bits, i, x))
}

// leafAt walks from n down to the leaf containing address i.
func leafAt[T any](n *node[T], level uint, i int) *node[T] {
	for ; level > 0; level -= bits {
		n = n.children[(i>>level)&mask]
	}
	return n
}
