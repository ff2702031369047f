package vector

import (
	"iter"
	"slices"
)

// Prependable is a persistent vector optimized for growing and shrinking at
// its front. It uses the same trie as Appendable, but stores items in reverse
// order: position k of the vector lives at address Len()-k-1. Cons, Tail,
// At and Update are effectively O(1). Append and Popped hand off to an
// Appendable in O(n).
//
// The zero value is an empty vector ready to use.
type Prependable[T any] struct {
	t trie[T]
}

// NewPrependable creates a Prependable holding a copy of items, in the
// order given.
func NewPrependable[T any](items ...T) Prependable[T] {
	return prependableFrom(slices.Clone(items))
}

// prependableFrom takes ownership of items.
func prependableFrom[T any](items []T) Prependable[T] {
	slices.Reverse(items)
	return Prependable[T]{t: buildTrie(items)}
}

func (v Prependable[T]) addr(k int) int {
	return v.t.length - k - 1
}

func (v Prependable[T]) Len() int {
	return v.t.length
}

func (v Prependable[T]) Kind() Kind {
	return KindPrependable
}

func (v Prependable[T]) At(k int) (T, error) {
	if err := checkIndex(k, v.t.length); err != nil {
		var zero T
		return zero, err
	}
	return v.t.get(v.addr(k)), nil
}

func (v Prependable[T]) Head() (T, error) {
	if v.t.length == 0 {
		var zero T
		return zero, emptyError("get head")
	}
	return v.t.last(), nil
}

func (v Prependable[T]) End() (T, error) {
	if v.t.length == 0 {
		var zero T
		return zero, emptyError("get end")
	}
	return v.t.get(0), nil
}

// Set returns a copy of v with the item at position k replaced by x.
func (v Prependable[T]) Set(k int, x T) (Prependable[T], error) {
	if err := checkIndex(k, v.t.length); err != nil {
		return v, err
	}
	return Prependable[T]{t: v.t.set(v.addr(k), x)}, nil
}

func (v Prependable[T]) Update(k int, x T) (Vector[T], error) {
	w, err := v.Set(k, x)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Prepend returns a copy of v with x as its new first item.
func (v Prependable[T]) Prepend(x T) Prependable[T] {
	return Prependable[T]{t: v.t.push(x)}
}

func (v Prependable[T]) Cons(x T) Vector[T] {
	return v.Prepend(x)
}

// PopFront returns a copy of v without its first item.
func (v Prependable[T]) PopFront() (Prependable[T], error) {
	if v.t.length == 0 {
		return v, emptyError("drop head")
	}
	return Prependable[T]{t: v.t.pop()}, nil
}

func (v Prependable[T]) Tail() (Vector[T], error) {
	w, err := v.PopFront()
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Append adds x after the last item. A Prependable is not suited for this,
// so the result is an Appendable, rebuilt in O(n).
func (v Prependable[T]) Append(x T) Vector[T] {
	items := v.ToSlice()
	items = append(items, x)
	tracer().Debugf("vector: append on prependable, hand-off of %d items to appendable", len(items))
	return Appendable[T]{t: buildTrie(items)}
}

// Popped drops the last item. The result is an Appendable, rebuilt in O(n).
func (v Prependable[T]) Popped() (Vector[T], error) {
	if v.t.length == 0 {
		return nil, emptyError("pop")
	}
	items := v.ToSlice()
	tracer().Debugf("vector: pop on prependable, hand-off of %d items to appendable", len(items)-1)
	return Appendable[T]{t: buildTrie(items[:len(items)-1])}, nil
}

// Concat appends every item of seq. The vector is rebuilt as a Prependable
// in O(n+m).
func (v Prependable[T]) Concat(seq iter.Seq[T]) Vector[T] {
	return prependableFrom(slices.AppendSeq(v.ToSlice(), seq))
}

func (v Prependable[T]) Filter(pred func(T) bool) Vector[T] {
	return prependableFrom(filtered(v.Values(), pred, v.t.length))
}

func (v Prependable[T]) Reduce(f func(T, T) T) (T, error) {
	return reduce(v.Values(), f)
}

func (v Prependable[T]) Values() iter.Seq[T] {
	return v.t.descend
}

func (v Prependable[T]) Backward() iter.Seq[T] {
	return v.t.ascend
}

func (v Prependable[T]) All() iter.Seq2[int, T] {
	return enumerate(v.Values())
}

func (v Prependable[T]) ToSlice() []T {
	items := v.t.toSlice()
	slices.Reverse(items)
	return items
}

func (v Prependable[T]) Slice(start, n int) (Vector[T], error) {
	return nil, unsupported("slice", KindPrependable)
}

var _ Vector[int] = Prependable[int]{}
