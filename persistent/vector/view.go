package vector

import (
	"fmt"
	"iter"
)

// View is a lazy window [start, start+n) onto a vector. Reads are delegated
// to the source, dropping items at either end narrows the window. Any other
// write materializes the window into a vector of the source's kind.
type View[T any] struct {
	source   Vector[T]
	start, n int
}

// NewView creates a window of n items onto source, starting at position
// start. The window has to lie within source, otherwise ErrIndexOutOfRange
// is returned. Empty windows are allowed.
func NewView[T any](source Vector[T], start, n int) (View[T], error) {
	if err := checkWindow(start, n, source.Len()); err != nil {
		return View[T]{}, err
	}
	return View[T]{source: source, start: start, n: n}, nil
}

func checkWindow(start, n, length int) error {
	if start < 0 || n < 0 || start > length || n > length-start {
		return fmt.Errorf("%w: window of %d items at %d with length %d", ErrIndexOutOfRange, n, start, length)
	}
	return nil
}

func (w View[T]) Len() int {
	return w.n
}

func (w View[T]) Kind() Kind {
	if w.source == nil {
		return KindAppendable
	}
	return w.source.Kind()
}

func (w View[T]) at(i int) T {
	x, err := w.source.At(w.start + i)
	assertThat(err == nil, "view window out of sync with source: %v", err)
	return x
}

func (w View[T]) At(i int) (T, error) {
	if err := checkIndex(i, w.n); err != nil {
		var zero T
		return zero, err
	}
	return w.at(i), nil
}

func (w View[T]) Head() (T, error) {
	if w.n == 0 {
		var zero T
		return zero, emptyError("get head")
	}
	return w.at(0), nil
}

func (w View[T]) End() (T, error) {
	if w.n == 0 {
		var zero T
		return zero, emptyError("get end")
	}
	return w.at(w.n - 1), nil
}

func (w View[T]) Update(i int, x T) (Vector[T], error) {
	if err := checkIndex(i, w.n); err != nil {
		return nil, err
	}
	items := w.ToSlice()
	items[i] = x
	return build(w.Kind(), items), nil
}

func (w View[T]) Append(x T) Vector[T] {
	return build(w.Kind(), w.ToSlice()).Append(x)
}

func (w View[T]) Cons(x T) Vector[T] {
	return build(w.Kind(), w.ToSlice()).Cons(x)
}

func (w View[T]) Popped() (Vector[T], error) {
	if w.n == 0 {
		return nil, emptyError("pop")
	}
	w.n--
	return w, nil
}

func (w View[T]) Tail() (Vector[T], error) {
	if w.n == 0 {
		return nil, emptyError("drop head")
	}
	w.start++
	w.n--
	return w, nil
}

func (w View[T]) Concat(seq iter.Seq[T]) Vector[T] {
	return build(w.Kind(), w.ToSlice()).Concat(seq)
}

func (w View[T]) Filter(pred func(T) bool) Vector[T] {
	return build(w.Kind(), filtered(w.Values(), pred, w.n))
}

func (w View[T]) Reduce(f func(T, T) T) (T, error) {
	return reduce(w.Values(), f)
}

func (w View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < w.n; i++ {
			if !yield(w.at(i)) {
				return
			}
		}
	}
}

func (w View[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := w.n - 1; i >= 0; i-- {
			if !yield(w.at(i)) {
				return
			}
		}
	}
}

func (w View[T]) All() iter.Seq2[int, T] {
	return enumerate(w.Values())
}

func (w View[T]) ToSlice() []T {
	items := make([]T, 0, w.n)
	for x := range w.Values() {
		items = append(items, x)
	}
	return items
}

// Slice narrows the window. start is relative to the window.
func (w View[T]) Slice(start, n int) (Vector[T], error) {
	if err := checkWindow(start, n, w.n); err != nil {
		return nil, err
	}
	return View[T]{source: w.source, start: w.start + start, n: n}, nil
}

var _ Vector[int] = View[int]{}
