/*
Package quadratic computes the real roots of a quadratic equation.

It is a worked example for the maybe module: every partial step (the
square root of a possibly negative discriminant, the division by a
possibly zero leading coefficient) returns Nothing instead of failing,
and the lifted operators thread that absence through to the final result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quadratic

import (
	"math"

	"github.com/npillmayer/maybe"
	"github.com/npillmayer/maybe/lift"
)

// Sqrt computes the real square root of x, or Nothing for negative x.
func Sqrt(x float64) maybe.Maybe[float64] {
	if x < 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(math.Sqrt(x))
}

// Inv computes 1/x, or Nothing for x = 0.
func Inv(x float64) maybe.Maybe[float64] {
	if x == 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(1 / x)
}

// Roots returns the two roots (-b ∓ √(b²−4ac)) / 2a of the equation
// ax² + bx + c = 0. A root is Nothing if the discriminant is negative
// (no real roots) or the equation is degenerate (a = 0).
func Roots(a, b, c float64) (maybe.Maybe[float64], maybe.Maybe[float64]) {
	sq := Sqrt(b*b - 4*a*c)
	nb := lift.Neg(maybe.Just(b))
	den := lift.Mul(maybe.Just(2.0), maybe.Just(a))
	return lift.Div(lift.Sub(nb, sq), den), lift.Div(lift.Add(nb, sq), den)
}

// Pair holds both roots of a quadratic equation.
type Pair struct {
	Lo, Hi float64
}

// Roots2 computes both roots at once, chaining the two partial steps
// (reciprocal of 2a, square root of the discriminant) so that either
// one coming up empty makes the whole result Nothing.
func Roots2(a, b, c float64) maybe.Maybe[Pair] {
	return maybe.AndThen(func(i float64) maybe.Maybe[Pair] {
		return maybe.AndThen(func(sq float64) maybe.Maybe[Pair] {
			return maybe.Just(Pair{Lo: (-b - sq) * i, Hi: (-b + sq) * i})
		}, Sqrt(b*b-4*a*c))
	}, Inv(2*a))
}
