package maybe

// Interop with APIs that encode absence as a nil pointer.
//
// Pointer-optionals are widespread in Go (JSON decoding, database scans,
// protobuf optional fields). The functions in this file convert between
// that representation and Maybe at the boundary, and assert presence on
// the raw representation directly.

// FromPtr converts a pointer-optional to a Maybe, copying the pointee.
// A nil pointer becomes Nothing.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Ptr converts m to a pointer-optional: a pointer to a copy of the
// contained value, or nil for Nothing.
func Ptr[T any](m Maybe[T]) *T {
	if m.IsNothing() {
		return nil
	}
	v := m.Unwrap()
	return &v
}

// Unwrap returns the pointee, or panics with a NothingError if p is nil.
// The free-function counterpart of Maybe.Unwrap for values which never
// passed through FromPtr.
func Unwrap[T any](p *T) T {
	if p == nil {
		panic(NothingError{})
	}
	return *p
}
