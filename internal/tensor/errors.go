package tensor

import "errors"

// Sentinel errors returned by tensor constructors and conversions.
// Callers match them with errors.Is; messages add context per call site.
var (
	// ErrShape reports a malformed or inconsistent shape: a negative
	// dimension, ragged nesting, or element data whose length does not
	// match the shape.
	ErrShape = errors.New("invalid tensor shape")

	// ErrElementType reports element values whose native type is not
	// supported, or a nested literal mixing unrelated element types.
	ErrElementType = errors.New("unsupported element type")

	// ErrStringElement reports a value that is not a byte-string where a
	// byte-string tensor requires one.
	ErrStringElement = errors.New("element is not a byte-string")

	// ErrCast reports an element type conversion with no defined result,
	// such as numeric to string.
	ErrCast = errors.New("unsupported cast")
)
