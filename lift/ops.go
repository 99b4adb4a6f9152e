package lift

import (
	"math"

	"github.com/npillmayer/maybe"
	"golang.org/x/exp/constraints"
)

// Numeric is the capability required by the arithmetic operator lifts:
// a type closed under negation, addition, subtraction, multiplication
// and division.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Instantiating an operator for a type which lacks the capability is a
// compile-time error: Less over a struct type will not build, rather than
// fail at run-time.

// Neg negates the contained value.
func Neg[T Numeric](x maybe.Maybe[T]) maybe.Maybe[T] {
	return Unary(func(a T) T { return -a })(x)
}

// Add adds two optional numbers.
func Add[T Numeric](a, b maybe.Maybe[T]) maybe.Maybe[T] {
	return Binary(func(x, y T) T { return x + y })(a, b)
}

// Sub subtracts two optional numbers.
func Sub[T Numeric](a, b maybe.Maybe[T]) maybe.Maybe[T] {
	return Binary(func(x, y T) T { return x - y })(a, b)
}

// Mul multiplies two optional numbers.
func Mul[T Numeric](a, b maybe.Maybe[T]) maybe.Maybe[T] {
	return Binary(func(x, y T) T { return x * y })(a, b)
}

// Pow raises a to the power of b, with float semantics for all numeric
// types.
func Pow[T Numeric](a, b maybe.Maybe[T]) maybe.Maybe[T] {
	return Binary(func(x, y T) T {
		return T(math.Pow(float64(x), float64(y)))
	})(a, b)
}

// Div divides two optional numbers. A divisor of zero yields Nothing:
// division by zero is absence, not a fault.
func Div[T Numeric](a, b maybe.Maybe[T]) maybe.Maybe[T] {
	return BinaryM(func(x, y T) maybe.Maybe[T] {
		if y == 0 {
			return maybe.Nothing[T]()
		}
		return maybe.Just(x / y)
	})(a, b)
}

// FloorDiv divides and rounds towards negative infinity (not towards
// zero, as Go's integer division does). A divisor of zero yields Nothing.
func FloorDiv[T Numeric](a, b maybe.Maybe[T]) maybe.Maybe[T] {
	return BinaryM(func(x, y T) maybe.Maybe[T] {
		if y == 0 {
			return maybe.Nothing[T]()
		}
		return maybe.Just(T(math.Floor(float64(x) / float64(y))))
	})(a, b)
}

// Less compares two optional values. The result is an optional boolean:
// Nothing compares as Nothing, never as less-than or greater-than.
// Callers have to collapse it, e.g. with WithDefault(false), before
// branching on it.
func Less[T constraints.Ordered](a, b maybe.Maybe[T]) maybe.Maybe[bool] {
	return Binary(func(x, y T) bool { return x < y })(a, b)
}

// Greater compares two optional values; see Less.
func Greater[T constraints.Ordered](a, b maybe.Maybe[T]) maybe.Maybe[bool] {
	return Binary(func(x, y T) bool { return x > y })(a, b)
}

// Min is a combinator for Fold: the smaller of two values, always present.
func Min[T constraints.Ordered](a, b T) maybe.Maybe[T] {
	if b < a {
		return maybe.Just(b)
	}
	return maybe.Just(a)
}

// Max is a combinator for Fold: the larger of two values, always present.
func Max[T constraints.Ordered](a, b T) maybe.Maybe[T] {
	if b > a {
		return maybe.Just(b)
	}
	return maybe.Just(a)
}
