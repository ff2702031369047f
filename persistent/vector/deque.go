package vector

import (
	"iter"
	"slices"
)

// Deque is a persistent vector which grows and shrinks cheaply at both ends.
// Two buffers of up to 32 items each, left and right, straddle a body of
// full 32-item leafs.
//
// The body is a trie with fixed-width nodes. Body item b lives at trie
// address origin+b, where origin is a multiple of 32. Growing the body at
// the front decrements origin; when origin reaches 0, the trie grows a level
// with the old root as its last child. Growing at the back works the same
// way with the old root as the first child. Nodes which run empty are
// dropped, and a root with a single child is replaced by that child.
//
// The zero value is an empty vector ready to use.
type Deque[T any] struct {
	length int
	left   []T // front buffer, in vector order
	right  []T // back buffer, in vector order
	root   *node[T]
	shift  uint
	origin int // trie address of the first body item
	size   int // number of body items, a multiple of 32
}

// NewDeque creates a Deque holding a copy of items.
func NewDeque[T any](items ...T) Deque[T] {
	return dequeFrom(slices.Clone(items))
}

// dequeFrom takes ownership of items. All but the last 1…32 items go into
// the body, the rest into the right buffer.
func dequeFrom[T any](items []T) Deque[T] {
	n := len(items)
	if n == 0 {
		return Deque[T]{}
	}
	rlen := (n-1)%width + 1
	d := Deque[T]{length: n, right: items[n-rlen : n : n], size: n - rlen}
	if d.size > 0 {
		d.root, d.shift = buildLevels(chunkLeafs(items[:d.size]), true)
	}
	return d
}

func (d Deque[T]) Len() int {
	return d.length
}

func (d Deque[T]) Kind() Kind {
	return KindDeque
}

func (d Deque[T]) get(k int) T {
	if k < len(d.left) {
		return d.left[k]
	}
	k -= len(d.left)
	if k < d.size {
		a := d.origin + k
		return leafAt(d.root, d.shift, a).items[a&mask]
	}
	return d.right[k-d.size]
}

func (d Deque[T]) At(k int) (T, error) {
	if err := checkIndex(k, d.length); err != nil {
		var zero T
		return zero, err
	}
	return d.get(k), nil
}

func (d Deque[T]) Head() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, emptyError("get head")
	}
	return d.get(0), nil
}

func (d Deque[T]) End() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, emptyError("get end")
	}
	return d.get(d.length - 1), nil
}

// Set returns a copy of d with the item at position k replaced by x.
func (d Deque[T]) Set(k int, x T) (Deque[T], error) {
	if err := checkIndex(k, d.length); err != nil {
		return d, err
	}
	switch b := k - len(d.left); {
	case k < len(d.left):
		d.left = cloneTail(d.left, len(d.left))
		d.left[k] = x
	case b < d.size:
		d.root = setPath(d.root, d.shift, d.origin+b, x)
	default:
		d.right = cloneTail(d.right, len(d.right))
		d.right[b-d.size] = x
	}
	return d, nil
}

func (d Deque[T]) Update(k int, x T) (Vector[T], error) {
	w, err := d.Set(k, x)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Push returns a copy of d with x appended.
func (d Deque[T]) Push(x T) Deque[T] {
	if len(d.right) == width {
		d = d.pushBack(newLeaf(d.right))
		d.right = nil
	}
	right := cloneTail(d.right, len(d.right)+1)
	right[len(d.right)] = x
	d.right = right
	d.length++
	return d
}

// Prepend returns a copy of d with x as its new first item.
func (d Deque[T]) Prepend(x T) Deque[T] {
	if len(d.left) == width {
		d = d.pushFront(newLeaf(d.left))
		d.left = nil
	}
	left := make([]T, len(d.left)+1)
	left[0] = x
	copy(left[1:], d.left)
	d.left = left
	d.length++
	return d
}

// Pop returns a copy of d without its last item.
func (d Deque[T]) Pop() (Deque[T], error) {
	if d.length == 0 {
		return d, emptyError("pop")
	}
	switch {
	case len(d.right) > 0:
	case d.size > 0:
		d = d.pullBack()
	default:
		d.left = d.left[: len(d.left)-1 : len(d.left)-1]
		d.length--
		return d, nil
	}
	d.right = d.right[: len(d.right)-1 : len(d.right)-1]
	d.length--
	return d, nil
}

// PopFront returns a copy of d without its first item.
func (d Deque[T]) PopFront() (Deque[T], error) {
	if d.length == 0 {
		return d, emptyError("drop head")
	}
	switch {
	case len(d.left) > 0:
	case d.size > 0:
		d = d.pullFront()
	default:
		d.right = d.right[1:]
		d.length--
		return d, nil
	}
	d.left = d.left[1:]
	d.length--
	return d, nil
}

func (d Deque[T]) Append(x T) Vector[T] {
	return d.Push(x)
}

func (d Deque[T]) Cons(x T) Vector[T] {
	return d.Prepend(x)
}

func (d Deque[T]) Popped() (Vector[T], error) {
	w, err := d.Pop()
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (d Deque[T]) Tail() (Vector[T], error) {
	w, err := d.PopFront()
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Concat appends every item of seq, one at a time.
func (d Deque[T]) Concat(seq iter.Seq[T]) Vector[T] {
	for x := range seq {
		d = d.Push(x)
	}
	return d
}

func (d Deque[T]) Filter(pred func(T) bool) Vector[T] {
	return dequeFrom(filtered(d.Values(), pred, d.length))
}

func (d Deque[T]) Reduce(f func(T, T) T) (T, error) {
	return reduce(d.Values(), f)
}

func (d Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		each := func(items []T) bool {
			for _, x := range items {
				if !yield(x) {
					return false
				}
			}
			return true
		}
		if !each(d.left) {
			return
		}
		if d.root != nil && !eachLeaf(d.root, d.shift, each) {
			return
		}
		each(d.right)
	}
}

func (d Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		each := func(items []T) bool {
			for i := len(items) - 1; i >= 0; i-- {
				if !yield(items[i]) {
					return false
				}
			}
			return true
		}
		if !each(d.right) {
			return
		}
		if d.root != nil && !eachLeafBackward(d.root, d.shift, each) {
			return
		}
		each(d.left)
	}
}

func (d Deque[T]) All() iter.Seq2[int, T] {
	return enumerate(d.Values())
}

func (d Deque[T]) ToSlice() []T {
	items := make([]T, 0, d.length)
	items = append(items, d.left...)
	if d.root != nil {
		eachLeaf(d.root, d.shift, func(leaf []T) bool {
			items = append(items, leaf...)
			return true
		})
	}
	return append(items, d.right...)
}

func (d Deque[T]) Slice(start, n int) (Vector[T], error) {
	return nil, unsupported("slice", KindDeque)
}

// --- Body maintenance ------------------------------------------------------

func (d Deque[T]) capacity() int {
	return 1 << (d.shift + bits)
}

// pushBack adds a full leaf after the last body item.
func (d Deque[T]) pushBack(leaf *node[T]) Deque[T] {
	if d.root == nil {
		return d.plant(leaf)
	}
	if d.origin+d.size == d.capacity() {
		d.root = newInner([]*node[T]{d.root}, true)
		d.shift += bits
		tracer().Debugf("deque: body grows at back, depth is now %d", d.shift/bits+1)
	}
	d.root = insertLeaf(d.root, d.shift, d.origin+d.size, leaf)
	d.size += width
	return d
}

// pushFront adds a full leaf before the first body item.
func (d Deque[T]) pushFront(leaf *node[T]) Deque[T] {
	if d.root == nil {
		return d.plant(leaf)
	}
	if d.origin == 0 {
		root := &node[T]{children: make([]*node[T], width)}
		root.children[width-1] = d.root
		d.root = root
		d.origin += (width - 1) << (d.shift + bits)
		d.shift += bits
		tracer().Debugf("deque: body grows at front, depth is now %d", d.shift/bits+1)
	}
	d.origin -= width
	d.root = insertLeaf(d.root, d.shift, d.origin, leaf)
	d.size += width
	return d
}

// plant starts an empty body with a single leaf.
func (d Deque[T]) plant(leaf *node[T]) Deque[T] {
	d.root = newInner([]*node[T]{leaf}, true)
	d.shift = bits
	d.origin = 0
	d.size = width
	return d
}

// pullBack moves the last body leaf into the (empty) right buffer.
func (d Deque[T]) pullBack() Deque[T] {
	assertThat(len(d.right) == 0, "pulling body leaf into non-empty right buffer")
	a := d.origin + d.size - width
	d.right = leafAt(d.root, d.shift, a).items
	d.root = removeLeaf(d.root, d.shift, a)
	d.size -= width
	return d.contract()
}

// pullFront moves the first body leaf into the (empty) left buffer.
func (d Deque[T]) pullFront() Deque[T] {
	assertThat(len(d.left) == 0, "pulling body leaf into non-empty left buffer")
	a := d.origin
	d.left = leafAt(d.root, d.shift, a).items
	d.root = removeLeaf(d.root, d.shift, a)
	d.origin += width
	d.size -= width
	return d.contract()
}

// contract lowers the root while it has a single child.
func (d Deque[T]) contract() Deque[T] {
	if d.size == 0 {
		assertThat(d.root == nil, "empty deque body still has a root")
		d.shift, d.origin = 0, 0
		return d
	}
	for d.shift > bits {
		count, at := d.root.occupied()
		if count != 1 {
			break
		}
		d.root = d.root.children[at]
		d.origin -= at << d.shift
		d.shift -= bits
		tracer().Debugf("deque: contracted body, depth is now %d", d.shift/bits+1)
	}
	return d
}

// insertLeaf returns a copy of n with leaf linked in at address a. Missing
// nodes on the path are created.
func insertLeaf[T any](n *node[T], level uint, a int, leaf *node[T]) *node[T] {
	if n == nil {
		n = &node[T]{children: make([]*node[T], width)}
	}
	sub := (a >> level) & mask
	if level == bits {
		return n.withChild(sub, leaf)
	}
	return n.withChild(sub, insertLeaf(n.children[sub], level-bits, a, leaf))
}

// removeLeaf returns a copy of n with the leaf at address a unlinked, or nil
// if no children are left.
func removeLeaf[T any](n *node[T], level uint, a int) *node[T] {
	sub := (a >> level) & mask
	var child *node[T]
	if level > bits {
		child = removeLeaf(n.children[sub], level-bits, a)
	}
	m := n.withChild(sub, child)
	if count, _ := m.occupied(); count == 0 {
		return nil
	}
	return m
}

var _ Vector[int] = Deque[int]{}
