package pvec

import "fmt"

// Pair is a 2-tuple. Vectors are zipped into vectors of pairs.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
