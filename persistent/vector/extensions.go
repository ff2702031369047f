package vector

import (
	"cmp"
	"slices"

	"github.com/npillmayer/pvec/maybe"
	"github.com/npillmayer/pvec/result"
)

// SortFunc returns a copy of v sorted by cmp. The sort is stable and the
// result has the same kind as v.
func SortFunc[T any](v Vector[T], cmp func(a, b T) int) Vector[T] {
	items := v.ToSlice()
	slices.SortStableFunc(items, cmp)
	return build(v.Kind(), items)
}

// Sorted returns a copy of v in ascending order.
func Sorted[T cmp.Ordered](v Vector[T]) Vector[T] {
	return SortFunc(v, cmp.Compare[T])
}

// SortedDescending returns a copy of v in descending order.
func SortedDescending[T cmp.Ordered](v Vector[T]) Vector[T] {
	return SortFunc(v, func(a, b T) int { return cmp.Compare(b, a) })
}

// First returns the first item of v satisfying pred, or the very first
// item if pred is nil.
func First[T any](v Vector[T], pred func(T) bool) maybe.Maybe[T] {
	for x := range v.Values() {
		if pred == nil || pred(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// Last returns the last item of v satisfying pred, or the very last item
// if pred is nil.
func Last[T any](v Vector[T], pred func(T) bool) maybe.Maybe[T] {
	for x := range v.Backward() {
		if pred == nil || pred(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// Single returns the only item of v satisfying pred. If there is none or
// more than one, Single returns Nothing.
func Single[T any](v Vector[T], pred func(T) bool) maybe.Maybe[T] {
	found := maybe.Nothing[T]()
	for x := range v.Values() {
		if pred != nil && !pred(x) {
			continue
		}
		if !found.IsNothing() {
			return maybe.Nothing[T]()
		}
		found = maybe.Just(x)
	}
	return found
}

// ElementAt returns the item at position i as a Result.
func ElementAt[T any](v Vector[T], i int) result.Result[T] {
	x, err := v.At(i)
	return result.FromError(x, err)
}

// TryElementAt returns the item at position i, or Nothing if i is out of
// range.
func TryElementAt[T any](v Vector[T], i int) maybe.Maybe[T] {
	return result.ToMaybe(ElementAt(v, i))
}

// ElementAtOrDefault returns the item at position i, or def if i is out
// of range.
func ElementAtOrDefault[T any](v Vector[T], i int, def T) T {
	return ElementAt(v, i).WithDefault(def)
}

// Count returns the number of items satisfying pred.
func Count[T any](v Vector[T], pred func(T) bool) int {
	return Foldl(v, func(n int, x T) int {
		if pred(x) {
			return n + 1
		}
		return n
	}, 0)
}
