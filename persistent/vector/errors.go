package vector

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned if an index or a range is not inside [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmptyVector is returned by operations which need at least one element,
// e.g., Popped, Reduce, Head or End.
var ErrEmptyVector = errors.New("vector is empty")

// ErrUnsupported is returned by operations this package deliberately does not
// implement, e.g., Slice on a core vector.
var ErrUnsupported = errors.New("operation not supported")

func indexError(i, length int) error {
	return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, length)
}

func emptyError(op string) error {
	return fmt.Errorf("%w: cannot %s", ErrEmptyVector, op)
}

func unsupported(op string, k Kind) error {
	return fmt.Errorf("%w: %s of %s vector", ErrUnsupported, op, k)
}
