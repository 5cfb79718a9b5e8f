package result

// Map applies transform to the value of an Ok. An Err passes through
// untouched and transform is not called.
func Map[T, U, E any](r Result[T, E], transform func(T) U) Result[U, E] {
	switch r.tag {
	case errVariant:
		return Err[U](r.err)
	default:
		return Ok[E](transform(r.value))
	}
}

// MapErr applies transform to the error of an Err. An Ok passes through
// untouched and transform is not called.
func MapErr[T, E, F any](r Result[T, E], transform func(E) F) Result[T, F] {
	switch r.tag {
	case errVariant:
		return Err[T](transform(r.err))
	default:
		return Ok[F](r.value)
	}
}

// And returns other if r is Ok, otherwise r's error. other is already
// evaluated; use AndThen to defer the work.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	switch r.tag {
	case errVariant:
		return Err[U](r.err)
	default:
		return other
	}
}

// AndThen calls f with the value of an Ok and returns its result.
// On Err, f is never called and the error is returned as is.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	switch r.tag {
	case errVariant:
		return Err[U](r.err)
	default:
		return f(r.value)
	}
}

// Or returns r if it is Ok, otherwise other.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	switch r.tag {
	case errVariant:
		return other
	default:
		return Ok[F](r.value)
	}
}

// OrElse calls f with the error of an Err and returns its result.
// On Ok, f is never called.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	switch r.tag {
	case errVariant:
		return f(r.err)
	default:
		return Ok[F](r.value)
	}
}
