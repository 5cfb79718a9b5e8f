package result

import (
	"iter"

	"github.com/ib-77/result/pkg/option"
)

type variant uint8

const (
	okVariant variant = iota
	errVariant
)

// Result is either Ok(value) or Err(err). The zero value is Ok with the zero T.
type Result[T, E any] struct {
	value T
	err   E
	tag   variant
}

// Ok constructs a success. E comes first so callers name only the error
// type and let the value type be inferred: Ok[error](5).
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		tag:   okVariant,
	}
}

// Err constructs a failure. T comes first so callers name only the value
// type and let the error type be inferred: Err[int](io.EOF).
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		tag: errVariant,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.tag == okVariant
}

func (r Result[T, E]) IsErr() bool {
	return r.tag == errVariant
}

// Ok returns the success value, discarding the error.
func (r Result[T, E]) Ok() option.Option[T] {
	switch r.tag {
	case errVariant:
		return option.None[T]()
	default:
		return option.Some(r.value)
	}
}

// Err returns the failure value, discarding the success value.
func (r Result[T, E]) Err() option.Option[E] {
	switch r.tag {
	case errVariant:
		return option.Some(r.err)
	default:
		return option.None[E]()
	}
}

// Iter yields the success value once, or nothing on Err. The returned
// sequence can be ranged over any number of times.
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.tag == okVariant {
			yield(r.value)
		}
	}
}

// Match runs onOk or onErr depending on the variant. A nil callback is skipped.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	switch r.tag {
	case errVariant:
		if onErr != nil {
			onErr(r.err)
		}
	default:
		if onOk != nil {
			onOk(r.value)
		}
	}
}

// Unpack returns (value, zero E) on Ok and (zero T, err) on Err.
func (r Result[T, E]) Unpack() (T, E) {
	var (
		value T
		err   E
	)
	if r.tag == errVariant {
		err = r.err
	} else {
		value = r.value
	}
	return value, err
}
