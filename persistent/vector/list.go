package vector

import (
	"iter"
	"slices"
)

// List is a vector backed by a plain slice. Every write copies the whole
// slice, so it is O(n) for everything except reads. It serves as the
// reference implementation the trie based variants are checked against.
type List[T any] struct {
	items []T
}

// NewList creates a List holding a copy of items.
func NewList[T any](items ...T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

func (l List[T]) Len() int {
	return len(l.items)
}

func (l List[T]) Kind() Kind {
	return KindList
}

func (l List[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[i], nil
}

func (l List[T]) Head() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, emptyError("get head")
	}
	return l.items[0], nil
}

func (l List[T]) End() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, emptyError("get end")
	}
	return l.items[len(l.items)-1], nil
}

func (l List[T]) Update(i int, x T) (Vector[T], error) {
	if err := checkIndex(i, len(l.items)); err != nil {
		return nil, err
	}
	items := slices.Clone(l.items)
	items[i] = x
	return List[T]{items: items}, nil
}

func (l List[T]) Append(x T) Vector[T] {
	items := make([]T, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return List[T]{items: append(items, x)}
}

func (l List[T]) Cons(x T) Vector[T] {
	return List[T]{items: slices.Insert(slices.Clone(l.items), 0, x)}
}

func (l List[T]) Popped() (Vector[T], error) {
	if len(l.items) == 0 {
		return nil, emptyError("pop")
	}
	return List[T]{items: slices.Clone(l.items[:len(l.items)-1])}, nil
}

func (l List[T]) Tail() (Vector[T], error) {
	if len(l.items) == 0 {
		return nil, emptyError("drop head")
	}
	return List[T]{items: slices.Clone(l.items[1:])}, nil
}

func (l List[T]) Concat(seq iter.Seq[T]) Vector[T] {
	return List[T]{items: slices.AppendSeq(slices.Clone(l.items), seq)}
}

func (l List[T]) Filter(pred func(T) bool) Vector[T] {
	return List[T]{items: filtered(l.Values(), pred, len(l.items))}
}

func (l List[T]) Reduce(f func(T, T) T) (T, error) {
	return reduce(l.Values(), f)
}

func (l List[T]) Values() iter.Seq[T] {
	return slices.Values(l.items)
}

func (l List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range slices.Backward(l.items) {
			if !yield(x) {
				return
			}
		}
	}
}

func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

func (l List[T]) ToSlice() []T {
	return slices.Clone(l.items)
}

// Slice copies the window [start, start+n) in O(n).
func (l List[T]) Slice(start, n int) (Vector[T], error) {
	if err := checkWindow(start, n, len(l.items)); err != nil {
		return nil, err
	}
	return List[T]{items: slices.Clone(l.items[start : start+n])}, nil
}

var _ Vector[int] = List[int]{}
