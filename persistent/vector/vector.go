package vector

import (
	"fmt"
	"iter"
	"strings"
)

// Vector is the capability contract every vector variant of this package
// fulfills. Variants holding the same sequence of items are indistinguishable
// by any read operation; they differ in performance only.
//
// All operations leave the receiver unchanged. Operations which cannot
// succeed return an error wrapping one of ErrIndexOutOfRange, ErrEmptyVector
// or ErrUnsupported.
//
// Operations introducing a new item type (Map, FlatMap, Foldl, Foldr, Zip)
// are package functions, as Go methods cannot have type parameters.
type Vector[T any] interface {
	Len() int
	Kind() Kind

	At(i int) (T, error)   // item at position i
	Head() (T, error)      // first item
	End() (T, error)       // last item
	Update(i int, x T) (Vector[T], error)

	Append(x T) Vector[T]         // add x after the last item
	Cons(x T) Vector[T]           // add x before the first item
	Popped() (Vector[T], error)   // drop the last item
	Tail() (Vector[T], error)     // drop the first item
	Concat(seq iter.Seq[T]) Vector[T]

	Filter(pred func(T) bool) Vector[T]
	// Reduce combines all items left to right, seeded with the first one.
	Reduce(f func(T, T) T) (T, error)

	Values() iter.Seq[T]
	Backward() iter.Seq[T]
	All() iter.Seq2[int, T]
	ToSlice() []T

	// Slice returns the window [start, start+n). Core variants do not
	// support slicing and return ErrUnsupported; see NewView for lazy
	// windows.
	Slice(start, n int) (Vector[T], error)
}

// Kind identifies the representation of a vector.
type Kind int8

// Representations of vectors, see the package documentation.
const (
	KindAppendable Kind = iota
	KindPrependable
	KindDeque
	KindList
)

var kindNames = [...]string{"appendable", "prependable", "deque", "list"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind for a name as produced by Kind.String.
// Case is ignored.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return KindAppendable, fmt.Errorf("unknown kind of vector: %q", s)
}

// --- Helpers shared by the variants ----------------------------------------

func enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := range seq {
			if !yield(i, x) {
				return
			}
			i++
		}
	}
}

func reduce[T any](seq iter.Seq[T], f func(T, T) T) (T, error) {
	var acc T
	first := true
	for x := range seq {
		if first {
			acc, first = x, false
			continue
		}
		acc = f(acc, x)
	}
	if first {
		return acc, emptyError("reduce")
	}
	return acc, nil
}

func filtered[T any](seq iter.Seq[T], pred func(T) bool, hint int) []T {
	items := make([]T, 0, hint)
	for x := range seq {
		if pred(x) {
			items = append(items, x)
		}
	}
	return items
}

func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return indexError(i, length)
	}
	return nil
}
