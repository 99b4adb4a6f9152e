package lift

import (
	"github.com/npillmayer/maybe"
)

// Fold reduces a sequence of optional values with a binary combinator op,
// left to right.
//
// Absent inputs are skipped, they do not annihilate the fold: Nothing
// entries are discarded up front, preserving the order of the rest. If no
// entries remain the fold is Nothing; a single remaining entry is the
// result as is. The combinator itself, however, does propagate: if op
// yields Nothing for some intermediate pair, the whole fold is Nothing
// immediately, regardless of entries still unconsumed.
//
// This pairing, tolerating absent inputs while respecting an absent
// combine, is what makes Fold useful for picking a result out of
// candidates which may individually be missing:
//
//	least := lift.Fold(lift.Min[int], x.At(0), x.At(5), x.At(2))
func Fold[T any](op func(T, T) maybe.Maybe[T], args ...maybe.Maybe[T]) maybe.Maybe[T] {
	var acc T
	have := false
	for i, a := range args {
		if a.IsNothing() {
			continue
		}
		if !have {
			acc = a.Unwrap()
			have = true
			continue
		}
		r := op(acc, a.Unwrap())
		if r.IsNothing() {
			tracer().Debugf("fold aborts: combinator returned Nothing at arg #%d", i)
			return maybe.Nothing[T]()
		}
		acc = r.Unwrap()
	}
	if !have {
		return maybe.Nothing[T]()
	}
	return maybe.Just(acc)
}
