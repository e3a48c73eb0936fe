// unwrap_test.go - verification of the discoverable unwrap helpers.
package fallible

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverUnwrap runs f and returns the *UnwrapPanic it raised, failing the
// test if it did not panic with one.
func recoverUnwrap(t *testing.T, f func()) (p *UnwrapPanic) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		p, ok = r.(*UnwrapPanic)
		require.Truef(t, ok, "panic value %T is not *UnwrapPanic", r)
	}()
	f()
	return nil
}

func TestOption_UnwrapPresent(t *testing.T) {
	t.Parallel()

	o := Some(7)
	assert.Equal(t, 7, o.UnwrapAssert("constructed with Some"))
	assert.Equal(t, 7, o.UnwrapTest())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, o.IsSome())
}

func TestOption_UnwrapAbsentPanics(t *testing.T) {
	t.Parallel()

	o := None[string]()
	assert.False(t, o.IsSome())

	p := recoverUnwrap(t, func() { o.UnwrapAssert("lookup key was inserted above") })
	assert.Equal(t, "lookup key was inserted above", p.Explanation)
	assert.ErrorIs(t, p, ErrNoValue)
	assert.Equal(t, `unwrap asserted (lookup key was inserted above): category=RelationDebug msg="no value"`, p.Error())

	p = recoverUnwrap(t, func() { o.UnwrapTest() })
	assert.Empty(t, p.Explanation)
	assert.Equal(t, `unwrap in test: category=RelationDebug msg="no value"`, p.Error())
}

func TestFallible_UnwrapOk(t *testing.T) {
	t.Parallel()

	slice := []int{1, 2, 3}
	r := Ok(slice)
	got := r.UnwrapAssert("literal input")
	assert.Same(t, &slice[0], &got[0], "value must be returned unchanged")
	assert.Equal(t, slice, r.UnwrapTest())
	assert.True(t, r.IsOk())
	assert.NoError(t, r.Err())
}

func TestFallible_UnwrapFailedPanics(t *testing.T) {
	t.Parallel()

	cause := Err(InvalidDistance, "d_in must be non-negative")
	r := Failed[float64](cause)
	assert.False(t, r.IsOk())

	v, err := r.Get()
	assert.Zero(t, v)
	assert.Equal(t, error(cause), err)

	assert.PanicsWithError(t,
		`unwrap asserted (distance was validated by the caller): category=InvalidDistance msg="d_in must be non-negative"`,
		func() { r.UnwrapAssert("distance was validated by the caller") })
	assert.PanicsWithError(t,
		`unwrap in test: category=InvalidDistance msg="d_in must be non-negative"`,
		func() { r.UnwrapTest() })

	p := recoverUnwrap(t, func() { r.UnwrapTest() })
	assert.ErrorIs(t, p, cause)
}

func TestFailed_NilErrorStillFails(t *testing.T) {
	t.Parallel()

	r := Failed[int](nil)
	assert.False(t, r.IsOk())
	assert.Equal(t, error(New(FailedFunction)), r.Err())
	assert.Panics(t, func() { r.UnwrapTest() })
}

func TestOf_CapturesPair(t *testing.T) {
	t.Parallel()

	ok := Of(strconv.Atoi("12"))
	assert.Equal(t, 12, ok.UnwrapAssert("literal is a valid int"))

	bad := Of(strconv.Atoi("x"))
	_, err := bad.Get()
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)

	p := recoverUnwrap(t, func() { bad.UnwrapTest() })
	assert.ErrorAs(t, p, &numErr)
	assert.Equal(t, "unwrap in test: "+err.Error(), p.Error())
}

func TestFreeForms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Assert("x", nil, "no error possible"))
	assert.Equal(t, "x", MustTest("x", nil))
	assert.Equal(t, 1.5, AssertOK(1.5, true, "key present"))
	assert.Equal(t, 1.5, MustTestOK(1.5, true))

	boom := errors.New("boom")
	assert.PanicsWithError(t, "unwrap asserted (why): boom", func() { Assert(0, boom, "why") })
	assert.PanicsWithError(t, "unwrap in test: boom", func() { MustTest(0, boom) })
	assert.Panics(t, func() { AssertOK(0, false, "why") })
	assert.Panics(t, func() { MustTestOK(0, false) })
}

func TestUnwrapper_Interface(t *testing.T) {
	t.Parallel()

	for _, u := range []Unwrapper[int]{Some(4), Ok(4)} {
		assert.Equal(t, 4, u.UnwrapAssert("present"))
		assert.Equal(t, 4, u.UnwrapTest())
	}
	for _, u := range []Unwrapper[int]{None[int](), Failed[int](New(FailedCast))} {
		assert.Panics(t, func() { u.UnwrapAssert("absent") })
		assert.Panics(t, func() { u.UnwrapTest() })
	}
}

func TestAssert_WrappedCauseKeepsMessage(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("ctx: %w", Err(FailedCast, "expected i32 got f64"))
	assert.PanicsWithError(t,
		`unwrap asserted (why): ctx: FailedCast msg="expected i32 got f64"`,
		func() { Assert(0, cause, "why") })
	assert.PanicsWithError(t,
		`unwrap in test: ctx: FailedCast msg="expected i32 got f64"`,
		func() { MustTest(0, cause) })

	bare := fmt.Errorf("ctx: %w", New(FailedCast))
	assert.PanicsWithError(t, "unwrap in test: ctx: FailedCast", func() { MustTest(0, bare) })

	e := Err(MakeDomain, "empty bounds")
	ptr := fmt.Errorf("ctx: %w", &e)
	assert.PanicsWithError(t, `unwrap in test: ctx: MakeDomain msg="empty bounds"`, func() { MustTest(0, ptr) })
}
