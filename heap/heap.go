package heap

import (
	"github.com/npillmayer/maybe"
	"github.com/npillmayer/maybe/lift"
	"golang.org/x/exp/constraints"
)

// MList wraps a slice so element access returns optional values: an index
// out of range reads as Nothing, never as a fault. Writes of Nothing and
// writes out of range are dropped silently.
type MList[T any] struct {
	items []T
}

// Wrap creates an MList sharing the memory of items.
func Wrap[T any](items []T) MList[T] {
	return MList[T]{items: items}
}

// Len returns the number of elements.
func (l MList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i, or Nothing if i is out of range.
func (l MList[T]) At(i int) maybe.Maybe[T] {
	if i < 0 || i >= len(l.items) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.items[i])
}

// Set stores v at index i. Nothing values and out-of-range indices are
// ignored.
func (l MList[T]) Set(i int, v maybe.Maybe[T]) {
	if i < 0 || i >= len(l.items) {
		return
	}
	if v.IsJust() {
		l.items[i] = v.Unwrap()
	}
}

// SiftDown performs one swap-down step of a binary min-heap stored in x:
// the element at position p changes place with its smaller child, if that
// child is smaller than the element itself.
//
// The children of p live at 2p+1 and 2p+2; near the bottom of the heap
// one or both reads come up Nothing. The comparisons make the policy
// explicit: a missing child is never smaller than its parent
// (WithDefault false), and never loses against a missing sibling
// (WithDefault true).
func SiftDown[T constraints.Ordered](p int, x MList[T]) {
	me, left, right := x.At(p), x.At(2*p+1), x.At(2*p+2)
	if lift.Less(left, me).WithDefault(false) && lift.Less(left, right).WithDefault(true) {
		tracer().Debugf("sift: swapping %d with left child %d", p, 2*p+1)
		x.Set(p, left)
		x.Set(2*p+1, me)
	}
	if lift.Less(right, me).WithDefault(false) && lift.Less(right, left).WithDefault(true) {
		tracer().Debugf("sift: swapping %d with right child %d", p, 2*p+2)
		x.Set(p, right)
		x.Set(2*p+2, me)
	}
}
