// result.go - containers that hold either a value or its absence/failure.
//
// Functions in the library return (T, error). These containers exist for the
// places where a result has to be stored or passed around as one value, and
// they are what the Unwrapper capability is implemented on.
package fallible

// Option holds a value of T or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and whether there was one.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// Fallible holds either a value of T or the error that prevented it.
type Fallible[T any] struct {
	value T
	err   error
}

// Ok returns a successful Fallible holding v.
func Ok[T any](v T) Fallible[T] { return Fallible[T]{value: v} }

// Failed returns a Fallible in the failure state. A nil err is replaced by
// an Error with category FailedFunction so the result can never be both
// failed and error-free.
func Failed[T any](err error) Fallible[T] {
	if err == nil {
		err = New(FailedFunction)
	}
	return Fallible[T]{err: err}
}

// Of captures a (T, error) pair.
//
//	r := fallible.Of(strconv.Atoi(s))
func Of[T any](v T, err error) Fallible[T] {
	if err != nil {
		return Fallible[T]{err: err}
	}
	return Fallible[T]{value: v}
}

// Get returns the pair back. On failure the value is the zero T.
func (r Fallible[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// IsOk reports whether r holds a value rather than an error.
func (r Fallible[T]) IsOk() bool { return r.err == nil }

// Err returns the failure, or nil for a successful result.
func (r Fallible[T]) Err() error { return r.err }
