package chain

import (
	"context"

	"github.com/ib-77/result/pkg/result"
)

// Chain pairs a result.Result[T, E] with the context handed to every step.
type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

// Start begins a chain at r.
func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

// FromValue begins a chain at Ok(v); E is named, T is inferred.
func FromValue[E, T any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[E](v))
}

// FromError begins a chain at Err(err); T is named, E is inferred.
func FromError[T, E any](ctx context.Context, err E) Chain[T, E] {
	return Start(ctx, result.Err[T](err))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Context is the context passed to every step of c.
func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return result.Result[T, E]
func (c Chain[T, E]) Then(onOk func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	return To(c, onOk)
}

// Map transforms the successful value
func (c Chain[T, E]) Map(onOk func(ctx context.Context, v T) T) Chain[T, E] {
	return Convert(c, onOk)
}

// MapErr transforms the error
func (c Chain[T, E]) MapErr(onErr func(ctx context.Context, err E) E) Chain[T, E] {
	return Chain[T, E]{
		ctx: c.ctx,
		res: result.MapErr(c.res, func(err E) E { return onErr(c.ctx, err) }),
	}
}

// OrElse gives a failed chain a chance to recover
func (c Chain[T, E]) OrElse(onErr func(ctx context.Context, err E) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{
		ctx: c.ctx,
		res: result.OrElse(c.res, func(err E) result.Result[T, E] { return onErr(c.ctx, err) }),
	}
}

// Or keeps c if it succeeded, otherwise switches to alternative
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And switches to required if c succeeded, otherwise keeps c's failure
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Ensure triggers side effects without changing the result. Nil callbacks are skipped.
func (c Chain[T, E]) Ensure(onOk func(context.Context, T), onErr func(context.Context, E)) Chain[T, E] {
	var okF func(T)
	if onOk != nil {
		okF = func(v T) { onOk(c.ctx, v) }
	}
	var errF func(E)
	if onErr != nil {
		errF = func(err E) { onErr(c.ctx, err) }
	}
	c.res.Match(okF, errF)
	return c
}

// Finally collapses the chain to a final value. A nil callback yields the
// zero T for its branch.
func (c Chain[T, E]) Finally(
	onOk func(context.Context, T) T,
	onErr func(context.Context, E) T,
) T {
	var out T
	c.res.Match(
		func(v T) {
			if onOk != nil {
				out = onOk(c.ctx, v)
			}
		},
		func(err E) {
			if onErr != nil {
				out = onErr(c.ctx, err)
			}
		},
	)
	return out
}

// To switches to a new result.Result[U, E]
func To[T, U, E any](c Chain[T, E], onOk func(ctx context.Context, v T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.AndThen(c.res, func(v T) result.Result[U, E] { return onOk(c.ctx, v) }),
	}
}

// Convert transforms the successful value to a new type
func Convert[T, U, E any](c Chain[T, E], onOk func(ctx context.Context, v T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.Map(c.res, func(v T) U { return onOk(c.ctx, v) }),
	}
}

// ThenTry composes functions that return (U, error), like repo calls.
// A panic with an error value becomes a failure as in result.Try.
func ThenTry[T, U any](c Chain[T, error], try func(ctx context.Context, v T) (U, error)) Chain[U, error] {
	return To(c, func(ctx context.Context, v T) result.Result[U, error] {
		return result.TryFunc(func() (U, error) { return try(ctx, v) })
	})
}
