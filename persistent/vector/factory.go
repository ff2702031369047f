package vector

import (
	"iter"
	"slices"
)

// New creates a vector of the given kind, holding a copy of items.
// The result equals the vector built by appending items one at a time to
// an empty one.
func New[T any](kind Kind, items ...T) Vector[T] {
	return build(kind, slices.Clone(items))
}

// Collect creates a vector of the given kind from a finite sequence.
func Collect[T any](kind Kind, seq iter.Seq[T]) Vector[T] {
	return build(kind, slices.Collect(seq))
}

// build takes ownership of items.
func build[T any](kind Kind, items []T) Vector[T] {
	switch kind {
	case KindAppendable:
		return Appendable[T]{t: buildTrie(items)}
	case KindPrependable:
		return prependableFrom(items)
	case KindDeque:
		return dequeFrom(items)
	case KindList:
		return List[T]{items: items}
	}
	panic("persistent.vector: unknown kind of vector: " + kind.String())
}

// AsAppendable returns v as an Appendable. If v already is one, it is
// returned unchanged, otherwise it is rebuilt in O(n).
func AsAppendable[T any](v Vector[T]) Appendable[T] {
	if a, ok := v.(Appendable[T]); ok {
		return a
	}
	return Appendable[T]{t: buildTrie(v.ToSlice())}
}

// AsPrependable returns v as a Prependable. If v already is one, it is
// returned unchanged, otherwise it is rebuilt in O(n).
func AsPrependable[T any](v Vector[T]) Prependable[T] {
	if p, ok := v.(Prependable[T]); ok {
		return p
	}
	return prependableFrom(v.ToSlice())
}

// AsDeque returns v as a Deque. If v already is one, it is returned
// unchanged, otherwise it is rebuilt in O(n).
func AsDeque[T any](v Vector[T]) Deque[T] {
	if d, ok := v.(Deque[T]); ok {
		return d
	}
	return dequeFrom(v.ToSlice())
}
