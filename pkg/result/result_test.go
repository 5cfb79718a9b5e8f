package result

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/result/pkg/option"
)

var errBoom = errors.New("boom")

func TestOk_Variant(t *testing.T) {
	t.Parallel()

	r := Ok[error](5)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
}

func TestErr_Variant(t *testing.T) {
	t.Parallel()

	r := Err[int](errBoom)
	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())
}

func TestErr_NonErrorType(t *testing.T) {
	t.Parallel()

	r := Err[int]("too small")
	assert.True(t, r.IsErr())
	assert.Equal(t, option.Some("too small"), r.Err())
}

func TestZeroValueIsOk(t *testing.T) {
	t.Parallel()

	var r Result[int, error]
	assert.True(t, r.IsOk())
	assert.Equal(t, Ok[error](0), r)
}

func TestErrOfZeroValueIsStillErr(t *testing.T) {
	t.Parallel()

	r := Err[int](0)
	assert.True(t, r.IsErr())
	assert.NotEqual(t, Ok[int](0), r)
}

func TestOk_Projection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, option.Some(5), Ok[error](5).Ok())
	assert.Equal(t, option.None[int](), Err[int](errBoom).Ok())
}

func TestErr_Projection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, option.Some(errBoom), Err[int](errBoom).Err())
	assert.Equal(t, option.None[error](), Ok[error](5).Err())
}

func TestIter_Ok(t *testing.T) {
	t.Parallel()

	r := Ok[error]("v")
	seq := r.Iter()

	assert.Equal(t, []string{"v"}, slices.Collect(seq))
	// ranging the same sequence again starts over
	assert.Equal(t, []string{"v"}, slices.Collect(seq))
	assert.Equal(t, []string{"v"}, slices.Collect(r.Iter()))
	assert.True(t, r.IsOk())
}

func TestIter_Err(t *testing.T) {
	t.Parallel()

	r := Err[string](errBoom)
	count := 0
	for range r.Iter() {
		count++
	}
	assert.Zero(t, count)
	assert.Empty(t, slices.Collect(r.Iter()))
}

func TestIter_EarlyBreak(t *testing.T) {
	t.Parallel()

	got := 0
	for v := range Ok[error](3).Iter() {
		got = v
		break
	}
	assert.Equal(t, 3, got)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	var okV int
	var errV error
	okCalls, errCalls := 0, 0
	onOk := func(v int) { okCalls++; okV = v }
	onErr := func(e error) { errCalls++; errV = e }

	Ok[error](7).Match(onOk, onErr)
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 0, errCalls)
	assert.Equal(t, 7, okV)

	Err[int](errBoom).Match(onOk, onErr)
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)
	assert.Same(t, errBoom, errV)

	require.NotPanics(t, func() {
		Ok[error](1).Match(nil, nil)
		Err[int](errBoom).Match(nil, nil)
	})
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	v, err := Ok[error](9).Unpack()
	assert.Equal(t, 9, v)
	assert.NoError(t, err)

	v, err = Err[int](errBoom).Unpack()
	assert.Zero(t, v)
	assert.ErrorIs(t, err, errBoom)
}
