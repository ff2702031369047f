package vector

import (
	"iter"
	"slices"
)

// Appendable is a persistent vector optimized for growing and shrinking at
// its end. Append, Popped, At and Update are effectively O(1)
// (O(log32 n)). Cons and Tail hand off to a Prependable in O(n).
//
// The zero value is an empty vector ready to use.
type Appendable[T any] struct {
	t trie[T]
}

// NewAppendable creates an Appendable holding a copy of items.
func NewAppendable[T any](items ...T) Appendable[T] {
	return Appendable[T]{t: buildTrie(slices.Clone(items))}
}

func (v Appendable[T]) Len() int {
	return v.t.length
}

func (v Appendable[T]) Kind() Kind {
	return KindAppendable
}

func (v Appendable[T]) At(i int) (T, error) {
	if err := checkIndex(i, v.t.length); err != nil {
		var zero T
		return zero, err
	}
	return v.t.get(i), nil
}

func (v Appendable[T]) Head() (T, error) {
	if v.t.length == 0 {
		var zero T
		return zero, emptyError("get head")
	}
	return v.t.get(0), nil
}

func (v Appendable[T]) End() (T, error) {
	if v.t.length == 0 {
		var zero T
		return zero, emptyError("get end")
	}
	return v.t.last(), nil
}

// Set returns a copy of v with the item at position i replaced by x.
func (v Appendable[T]) Set(i int, x T) (Appendable[T], error) {
	if err := checkIndex(i, v.t.length); err != nil {
		return v, err
	}
	return Appendable[T]{t: v.t.set(i, x)}, nil
}

func (v Appendable[T]) Update(i int, x T) (Vector[T], error) {
	w, err := v.Set(i, x)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Push returns a copy of v with x appended.
func (v Appendable[T]) Push(x T) Appendable[T] {
	return Appendable[T]{t: v.t.push(x)}
}

func (v Appendable[T]) Append(x T) Vector[T] {
	return v.Push(x)
}

// Pop returns a copy of v without its last item.
func (v Appendable[T]) Pop() (Appendable[T], error) {
	if v.t.length == 0 {
		return v, emptyError("pop")
	}
	return Appendable[T]{t: v.t.pop()}, nil
}

func (v Appendable[T]) Popped() (Vector[T], error) {
	w, err := v.Pop()
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Cons prepends x. An Appendable is not suited for this, so the result is a
// Prependable, rebuilt in O(n).
func (v Appendable[T]) Cons(x T) Vector[T] {
	items := make([]T, 0, v.t.length+1)
	items = append(items, x)
	items = append(items, v.t.toSlice()...)
	tracer().Debugf("vector: cons on appendable, hand-off of %d items to prependable", len(items))
	return prependableFrom(items)
}

// Tail drops the first item. The result is a Prependable, rebuilt in O(n).
func (v Appendable[T]) Tail() (Vector[T], error) {
	if v.t.length == 0 {
		return nil, emptyError("drop head")
	}
	tracer().Debugf("vector: tail of appendable, hand-off of %d items to prependable", v.t.length-1)
	return prependableFrom(v.t.toSlice()[1:]), nil
}

// Concat appends every item of seq, one at a time.
func (v Appendable[T]) Concat(seq iter.Seq[T]) Vector[T] {
	t := v.t
	for x := range seq {
		t = t.push(x)
	}
	return Appendable[T]{t: t}
}

func (v Appendable[T]) Filter(pred func(T) bool) Vector[T] {
	return Appendable[T]{t: buildTrie(filtered(v.Values(), pred, v.t.length))}
}

func (v Appendable[T]) Reduce(f func(T, T) T) (T, error) {
	return reduce(v.Values(), f)
}

func (v Appendable[T]) Values() iter.Seq[T] {
	return v.t.ascend
}

func (v Appendable[T]) Backward() iter.Seq[T] {
	return v.t.descend
}

func (v Appendable[T]) All() iter.Seq2[int, T] {
	return enumerate(v.Values())
}

func (v Appendable[T]) ToSlice() []T {
	return v.t.toSlice()
}

func (v Appendable[T]) Slice(start, n int) (Vector[T], error) {
	return nil, unsupported("slice", KindAppendable)
}

var _ Vector[int] = Appendable[int]{}
