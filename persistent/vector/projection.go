package vector

import (
	"iter"

	"github.com/npillmayer/pvec"
)

// Projection is a lazy mapping of a vector. Reads apply the mapping function
// to the source items on access; dropping items at either end keeps the
// projection lazy. Any other write materializes the projection into a
// vector of the source's kind.
//
// The mapping function has to be pure, as it may be called more than once
// for the same item.
type Projection[S, T any] struct {
	source Vector[S]
	f      func(S) T
}

// NewProjection creates a lazy projection of source through f.
func NewProjection[S, T any](source Vector[S], f func(S) T) Projection[S, T] {
	assertThat(source != nil && f != nil, "projection needs a source and a mapping")
	return Projection[S, T]{source: source, f: f}
}

// Reproject stacks another mapping onto p. The mappings are fused into one,
// the source is not touched.
func Reproject[S, T, U any](p Projection[S, T], g func(T) U) Projection[S, U] {
	return Projection[S, U]{source: p.source, f: pvec.Compose(p.f, g)}
}

// Source returns the vector p maps over.
func (p Projection[S, T]) Source() Vector[S] {
	return p.source
}

func (p Projection[S, T]) Len() int {
	return p.source.Len()
}

func (p Projection[S, T]) Kind() Kind {
	return p.source.Kind()
}

func (p Projection[S, T]) lift(x S, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return p.f(x), nil
}

func (p Projection[S, T]) At(i int) (T, error) {
	return p.lift(p.source.At(i))
}

func (p Projection[S, T]) Head() (T, error) {
	return p.lift(p.source.Head())
}

func (p Projection[S, T]) End() (T, error) {
	return p.lift(p.source.End())
}

func (p Projection[S, T]) materialize() []T {
	items := make([]T, 0, p.source.Len())
	for x := range p.source.Values() {
		items = append(items, p.f(x))
	}
	return items
}

func (p Projection[S, T]) Update(i int, x T) (Vector[T], error) {
	if err := checkIndex(i, p.Len()); err != nil {
		return nil, err
	}
	items := p.materialize()
	items[i] = x
	return build(p.Kind(), items), nil
}

func (p Projection[S, T]) Append(x T) Vector[T] {
	return build(p.Kind(), p.materialize()).Append(x)
}

func (p Projection[S, T]) Cons(x T) Vector[T] {
	return build(p.Kind(), p.materialize()).Cons(x)
}

func (p Projection[S, T]) Popped() (Vector[T], error) {
	src, err := p.source.Popped()
	if err != nil {
		return nil, err
	}
	return Projection[S, T]{source: src, f: p.f}, nil
}

func (p Projection[S, T]) Tail() (Vector[T], error) {
	src, err := p.source.Tail()
	if err != nil {
		return nil, err
	}
	return Projection[S, T]{source: src, f: p.f}, nil
}

func (p Projection[S, T]) Concat(seq iter.Seq[T]) Vector[T] {
	return build(p.Kind(), p.materialize()).Concat(seq)
}

func (p Projection[S, T]) Filter(pred func(T) bool) Vector[T] {
	return build(p.Kind(), filtered(p.Values(), pred, p.Len()))
}

func (p Projection[S, T]) Reduce(f func(T, T) T) (T, error) {
	return reduce(p.Values(), f)
}

func (p Projection[S, T]) mapped(seq iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range seq {
			if !yield(p.f(x)) {
				return
			}
		}
	}
}

func (p Projection[S, T]) Values() iter.Seq[T] {
	return p.mapped(p.source.Values())
}

func (p Projection[S, T]) Backward() iter.Seq[T] {
	return p.mapped(p.source.Backward())
}

func (p Projection[S, T]) All() iter.Seq2[int, T] {
	return enumerate(p.Values())
}

func (p Projection[S, T]) ToSlice() []T {
	return p.materialize()
}

// Slice returns a lazy window onto p, see NewView.
func (p Projection[S, T]) Slice(start, n int) (Vector[T], error) {
	w, err := NewView[T](p, start, n)
	if err != nil {
		return nil, err
	}
	return w, nil
}

var _ Vector[string] = Projection[int, string]{}
