package vector

import (
	"iter"
	"slices"

	"github.com/npillmayer/pvec"
)

// Map applies f to every item of v. The result has the same kind as v.
func Map[T, U any](v Vector[T], f func(T) U) Vector[U] {
	items := make([]U, 0, v.Len())
	for x := range v.Values() {
		items = append(items, f(x))
	}
	return build(v.Kind(), items)
}

// FlatMap applies f to every item of v and concatenates the resulting
// sequences. The result has the same kind as v.
func FlatMap[T, U any](v Vector[T], f func(T) iter.Seq[U]) Vector[U] {
	items := make([]U, 0, v.Len())
	for x := range v.Values() {
		items = slices.AppendSeq(items, f(x))
	}
	return build(v.Kind(), items)
}

// Foldl reduces v from left to right, starting with seed.
func Foldl[T, A any](v Vector[T], f func(A, T) A, seed A) A {
	acc := seed
	for x := range v.Values() {
		acc = f(acc, x)
	}
	return acc
}

// Foldr reduces v from right to left, starting with seed.
func Foldr[T, A any](v Vector[T], f func(A, T) A, seed A) A {
	acc := seed
	for x := range v.Backward() {
		acc = f(acc, x)
	}
	return acc
}

// Zip pairs the items of v and w position by position. The result is as
// long as the shorter of both and has the same kind as v.
func Zip[T, U any](v Vector[T], w Vector[U]) Vector[pvec.Pair[T, U]] {
	n := min(v.Len(), w.Len())
	items := make([]pvec.Pair[T, U], 0, n)
	next, stop := iter.Pull(w.Values())
	defer stop()
	for x := range v.Values() {
		y, ok := next()
		if !ok {
			break
		}
		items = append(items, pvec.P(x, y))
	}
	return build(v.Kind(), items)
}

// Equal reports whether v and w hold the same items in the same order.
// The kinds of v and w do not matter.
func Equal[T comparable](v, w Vector[T]) bool {
	return EqualFunc(v, w, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares items with eq.
func EqualFunc[T, U any](v Vector[T], w Vector[U], eq func(T, U) bool) bool {
	if v.Len() != w.Len() {
		return false
	}
	next, stop := iter.Pull(w.Values())
	defer stop()
	for x := range v.Values() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}
