package maybe

import "fmt"

// Maybe is an optional value of type T: either Just(x) or Nothing.
//
// Maybe is a closed value type with exactly two states; there is no third
// state and no way for T itself to leak a sentinel through. The zero value
// of Maybe[T] is Nothing.
//
// A Maybe deliberately has no boolean interpretation: clients have to
// unwrap, default or match before branching on it.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x in a Maybe.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if m contains a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing returns true if m is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// NothingError is the panic value for Unwrap on a Nothing. It signals a
// logic error on the caller's side: unwrapping without checking.
type NothingError struct{}

func (NothingError) Error() string {
	return "tried to unwrap a Nothing value"
}

// Unwrap returns the contained value, or panics with a NothingError if m
// is Nothing. It is the single designated unsafe accessor; clients which
// cannot guarantee presence should use WithDefault or Match instead.
func (m Maybe[T]) Unwrap() T {
	if m.IsNothing() {
		panic(NothingError{})
	}
	return m.value
}

// WithDefault returns the contained value, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.IsJust() {
		return m.Unwrap()
	}
	return def
}

// Map applies f to the contained value, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.IsJust() {
		return Just(f(m.Unwrap()))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.IsJust() {
		return fmt.Sprintf("Just(%v)", m.Unwrap())
	}
	return "Nothing"
}

// Map applies f to the value contained in x, if any. The package-level
// version of Maybe.Map; it may change the contained type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if x.IsJust() {
		return Just(f(x.Unwrap()))
	}
	return Nothing[S]()
}

// AndThen chains x into a function f which itself may come up empty.
// Nothing is passed through; no nested Maybe is ever produced.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.IsJust() {
		return f(x.Unwrap())
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based pattern matching on a Maybe:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//		…   // v bound to the contained value
//	case m.Nothing():
//		…
//	}
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match creates a Matcher for m.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.IsJust() {
		*v = mm.m.Unwrap()
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if mm.m.IsNothing() {
		return mm
	}
	return nil
}
