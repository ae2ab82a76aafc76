package decimal

import "github.com/pkg/errors"

// ErrNaN is panicked by an operation whose operands violate its
// mathematical domain (division by zero, logarithm of a non-positive
// value, arcsine outside [-1, 1], ...) when that operand's Config has
// ThrowOnError set. This mirrors the teacher package's own ErrNaN
// panic convention for domain errors (see decsqrt.go's handling of a
// negative Sqrt argument), generalized to every domain-sensitive
// operation this package exposes.
//
// When ThrowOnError is false, the same operations return NaN or a
// signed Infinity instead of panicking.
type ErrNaN struct {
	Msg string
}

func (e ErrNaN) Error() string {
	if e.Msg == "" {
		return "decimal: NaN"
	}
	return "decimal: " + e.Msg
}

// IllegalOperationError reports an operation that could not produce its
// result: a narrowing conversion (the To* family) that could not
// represent a Decimal's value in the requested Go type while the
// Decimal's Config had ThrowOnError set, a malformed string passed to
// ParseString (whatever the Config), or an Infinity or NaN passed to
// ToHex. Unlike ErrNaN, which is panicked, this is returned as an
// ordinary error, matching the idiom Go's own strconv package uses for
// range-exceeded conversions.
type IllegalOperationError struct {
	cause error
}

func (e *IllegalOperationError) Error() string {
	return e.cause.Error()
}

func (e *IllegalOperationError) Unwrap() error {
	return e.cause
}

func illegalOp(format string, args ...interface{}) *IllegalOperationError {
	return &IllegalOperationError{cause: errors.Errorf(format, args...)}
}
