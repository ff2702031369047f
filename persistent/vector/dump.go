package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the internal structure of a vector as a tree, for debugging.
// Vectors without a trie are rendered as a header line only.
func Dump[T any](v Vector[T]) string {
	switch w := v.(type) {
	case Appendable[T]:
		return dumpTrie("Appendable", w.t)
	case Prependable[T]:
		return dumpTrie("Prependable", w.t)
	case Deque[T]:
		header := fmt.Sprintf("Deque(len=%d, depth=%d, origin=%d, body=%d)",
			w.length, depth(w.shift), w.origin, w.size)
		printer := tp.NewWithRoot(header)
		printer.AddNode(fmt.Sprintf("left %v", w.left))
		if w.root != nil {
			printNode(printer, w.root, w.shift, 0)
		}
		printer.AddNode(fmt.Sprintf("right %v", w.right))
		return printer.String()
	}
	return fmt.Sprintf("%s(len=%d)\n", v.Kind(), v.Len())
}

func dumpTrie[T any](name string, t trie[T]) string {
	header := fmt.Sprintf("%s(len=%d, depth=%d)", name, t.length, depth(t.shift))
	printer := tp.NewWithRoot(header)
	if t.root != nil {
		printNode(printer, t.root, t.shift, 0)
	}
	printer.AddNode(fmt.Sprintf("tail %v", t.tail))
	return printer.String()
}

func depth(shift uint) int {
	if shift == 0 {
		return 0
	}
	return int(shift/bits) + 1
}

// printNode adds n, living at the given level and covering addresses
// starting at a, to printer.
func printNode[T any](printer tp.Tree, n *node[T], level uint, a int) {
	if level == 0 {
		printer.AddNode(fmt.Sprintf("%d…%d %s", a, a+len(n.items)-1, n))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("@%d %s", a, n))
	for i, ch := range n.children {
		if ch != nil {
			printNode(branch, ch, level-bits, a+i<<level)
		}
	}
}
