/*
Package do evaluates a sequence of dependent optional-producing steps,
aborting on the first Nothing.

It stands in for the do-notation of functional languages: an ordered list
of binding steps over one Maybe type, evaluated eagerly and in order. Each
step receives the value bound by the step before it; the first step which
comes up empty ends the whole evaluation with Nothing, and no later step
runs. The result of a complete run is the last step's value.

	r := do.Eval(
		do.Bind(func(float64) maybe.Maybe[float64] { return Inv(2 * a) }),
		do.Let(func(i float64) float64 { return (-b) * i }),
	)

Steps with side effects observe declaration order, up to and including
the aborting step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package do

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'maybe.do'.
func tracer() tracing.Trace {
	return tracing.Select("maybe.do")
}
