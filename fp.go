/*
Package pvec is the root of a small collection of persistent data structures.
It holds the handful of functional helpers the sub-packages share.

The vectors themselves live in package persistent/vector.
*/
package pvec

// Compose returns h = f ∘ g, i.e., h(a) = f(g(a)).
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Identity returns its argument.
func Identity[T any](x T) T {
	return x
}
