/*
Package result implements values of computations which may fail, in the
spirit of Elm's Result type.
*/
package result

import "github.com/npillmayer/pvec/maybe"

// Result is either Ok with a value of type T or Err with an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// FromError bridges the Go idiom of returning (value, error).
func FromError[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// ToMaybe drops the error of r, if any.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	x, err := r.Get()
	return maybe.FromOK(x, err == nil)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
