package result

import "fmt"

// PanicError carries a recovered panic value that was not itself an error,
// such as the string panics raised by strings.Repeat or regexp.MustCompile.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// Try runs operation and returns Ok with its value. A panic is recovered and
// returned as Err: an error value (runtime.Error included) as is, any other
// value wrapped in a *PanicError. Fatal runtime errors and runtime.Goexit
// are not panics and pass through.
func Try[T any](operation func() T) (res Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			res = Err[T](panicToError(p))
		}
	}()

	return Ok[error](operation())
}

// TryFunc runs operation and converts its (value, error) pair into a
// Result. Panics are handled as in Try.
func TryFunc[T any](operation func() (T, error)) (res Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			res = Err[T](panicToError(p))
		}
	}()

	return FromTuple(operation())
}

// FromTuple converts a conventional (value, error) pair. A nil error, or a
// typed nil pointer stored in the error, yields Ok.
func FromTuple[T any](value T, err error) Result[T, error] {
	if isNil(err) {
		return Ok[error](value)
	}
	return Err[T](err)
}

func panicToError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &PanicError{Value: p}
}
