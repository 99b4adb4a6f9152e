package do

import (
	"github.com/npillmayer/maybe"
)

// Step is one binding step of a do-expression. It receives the value
// bound by the preceding step (the zero value of T for the first step)
// and produces the next binding, or Nothing.
type Step[T any] func(T) maybe.Maybe[T]

// Bind makes a step from a function which may come up empty.
func Bind[T any](f func(T) maybe.Maybe[T]) Step[T] {
	return Step[T](f)
}

// Let makes a step from a plain function; its result is implicitly
// wrapped as Just.
func Let[T any](f func(T) T) Step[T] {
	return func(x T) maybe.Maybe[T] {
		return maybe.Just(f(x))
	}
}

// Eval runs steps strictly in declaration order and returns the last
// step's value. The first step yielding Nothing aborts the evaluation:
// the result is Nothing and no later step runs. Zero steps evaluate to
// Nothing.
func Eval[T any](steps ...Step[T]) maybe.Maybe[T] {
	res := maybe.Nothing[T]()
	var cur T
	for i, step := range steps {
		res = step(cur)
		if res.IsNothing() {
			tracer().Debugf("do-expression aborts at step #%d", i)
			return maybe.Nothing[T]()
		}
		cur = res.Unwrap()
	}
	return res
}
