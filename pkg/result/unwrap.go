package result

import "errors"

// ErrNilErr is the panic value of Unwrap on an Err whose error is nil.
var ErrNilErr = errors.New("result: unwrap on Err with nil error")

// ExpectError is the panic value of Expect.
type ExpectError struct {
	Message string
	Err     error
}

func (e *ExpectError) Error() string {
	if e.Err == nil {
		return e.Message + ": <nil>"
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExpectError) Unwrap() error {
	return e.Err
}

// UnwrapOr returns the value of an Ok, or def on Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.tag == errVariant {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the value of an Ok, or f(err) on Err.
// f is only called on Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.tag == errVariant {
		return f(r.err)
	}
	return r.value
}

// Unwrap returns the value of an Ok and panics with the contained error
// on Err, or with ErrNilErr when that error is nil. Call it only where r
// is known to be Ok, or where a panic is the intended outcome.
func Unwrap[T any, E error](r Result[T, E]) T {
	if r.tag == errVariant {
		if isNil(r.err) {
			panic(ErrNilErr)
		}
		panic(r.err)
	}
	return r.value
}

// Expect is Unwrap with context: on Err it panics with an *ExpectError
// carrying message and the contained error.
func Expect[T any, E error](r Result[T, E], message string) T {
	if r.tag == errVariant {
		var err error
		if !isNil(r.err) {
			err = r.err
		}
		panic(&ExpectError{Message: message, Err: err})
	}
	return r.value
}
