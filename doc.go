/*
Package maybe implements an optional-value type Maybe, together with
pattern matching on it.

A Maybe can help with optional arguments, error handling, and records
with optional fields. It is a container which either holds a value of
type T (“Just x”) or holds nothing (“Nothing”). This corrects a defect
of sentinel encodings (nil, NaN, -1, …), where “no value” is conflated
with the value space of every type.

	one := maybe.Just(1)
	none := maybe.Nothing[int]()

Clients inspect a Maybe with pattern matching:

	var v int
	switch m := one.Match(); m {
	case m.Just(&v):
		// v is bound to the contained value
	case m.Nothing():
		// no value
	}

or collapse it with a default:

	n := none.WithDefault(0)

Sub-packages lift and do provide combinators which let ordinary
functions and operators work over Maybe values, propagating Nothing
instead of failing.

Status

Split out of the fp module; requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe
