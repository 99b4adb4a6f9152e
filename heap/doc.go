/*
Package heap walks a binary min-heap laid out in a slice, using optional
values for bounds-checked access.

It is a worked example for the maybe module: element access through
MList returns Nothing for an out-of-range index instead of panicking,
and the sibling comparisons of a sift-down step collapse optional
booleans with explicit defaults; a missing child never wins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package heap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'maybe.heap'.
func tracer() tracing.Trace {
	return tracing.Select("maybe.heap")
}
