package lift

import (
	"github.com/npillmayer/maybe"
)

// Unary lifts f to a function over Maybe: Nothing in, Nothing out,
// otherwise apply and re-wrap.
func Unary[T, R any](f func(T) R) func(maybe.Maybe[T]) maybe.Maybe[R] {
	return func(x maybe.Maybe[T]) maybe.Maybe[R] {
		if x.IsNothing() {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(x.Unwrap()))
	}
}

// UnaryM lifts a function which itself may come up empty. The result is
// forwarded as is; no nested Maybe is ever produced.
func UnaryM[T, R any](f func(T) maybe.Maybe[R]) func(maybe.Maybe[T]) maybe.Maybe[R] {
	return func(x maybe.Maybe[T]) maybe.Maybe[R] {
		if x.IsNothing() {
			return maybe.Nothing[R]()
		}
		return f(x.Unwrap())
	}
}

// Binary lifts a two-argument function. The lifted function is Nothing if
// either argument is.
func Binary[A, B, R any](f func(A, B) R) func(maybe.Maybe[A], maybe.Maybe[B]) maybe.Maybe[R] {
	return func(a maybe.Maybe[A], b maybe.Maybe[B]) maybe.Maybe[R] {
		if a.IsNothing() || b.IsNothing() {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(a.Unwrap(), b.Unwrap()))
	}
}

// BinaryM lifts a two-argument function which itself may come up empty.
func BinaryM[A, B, R any](f func(A, B) maybe.Maybe[R]) func(maybe.Maybe[A], maybe.Maybe[B]) maybe.Maybe[R] {
	return func(a maybe.Maybe[A], b maybe.Maybe[B]) maybe.Maybe[R] {
		if a.IsNothing() || b.IsNothing() {
			return maybe.Nothing[R]()
		}
		return f(a.Unwrap(), b.Unwrap())
	}
}

// Ternary lifts a three-argument function. Higher arities have to be
// enumerated; Go generics cannot abstract over arity.
func Ternary[A, B, C, R any](f func(A, B, C) R) func(maybe.Maybe[A], maybe.Maybe[B], maybe.Maybe[C]) maybe.Maybe[R] {
	return func(a maybe.Maybe[A], b maybe.Maybe[B], c maybe.Maybe[C]) maybe.Maybe[R] {
		if a.IsNothing() || b.IsNothing() || c.IsNothing() {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(a.Unwrap(), b.Unwrap(), c.Unwrap()))
	}
}

// TernaryM lifts a three-argument function which itself may come up empty.
func TernaryM[A, B, C, R any](f func(A, B, C) maybe.Maybe[R]) func(maybe.Maybe[A], maybe.Maybe[B], maybe.Maybe[C]) maybe.Maybe[R] {
	return func(a maybe.Maybe[A], b maybe.Maybe[B], c maybe.Maybe[C]) maybe.Maybe[R] {
		if a.IsNothing() || b.IsNothing() || c.IsNothing() {
			return maybe.Nothing[R]()
		}
		return f(a.Unwrap(), b.Unwrap(), c.Unwrap())
	}
}

// Compose returns h = f . g, composition of base functions, handy for
// building a pipeline before lifting it as a whole.
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
