package option

import (
	"errors"
	"iter"
)

// ErrNone is the panic value of Unwrap on an empty Option.
var ErrNone = errors.New("option: unwrap on None")

// Option holds either one value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value. Panics with ErrNone if empty.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrNone)
	}
	return o.value
}

// UnwrapOr returns the contained value or def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Iter yields the value once if present.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}
