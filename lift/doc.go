/*
Package lift wraps ordinary functions and operators so they work over
Maybe values.

A lifted function propagates absence instead of failing: it returns
Nothing as soon as any of its arguments is Nothing, and otherwise applies
the base function to the unwrapped arguments and re-wraps the result.

	sqrt := lift.Unary(math.Sqrt)
	sqrt(maybe.Just(4.0))        // Just(2)
	sqrt(maybe.Nothing[float64]())  // Nothing

Operator lifts (Add, Mul, Less, …) are pre-lifted arithmetic and
comparison operators, gated by type constraints: comparisons require an
ordered type, arithmetic a numeric one, checked at compile time when the
operator is instantiated. Division by zero yields Nothing, not a fault.

Fold reduces a sequence of Maybe values with a binary combinator,
skipping absent inputs (see Fold for the exact policy).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lift

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'maybe.lift'.
func tracer() tracing.Trace {
	return tracing.Select("maybe.lift")
}
