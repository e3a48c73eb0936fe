// unwrap.go - unchecked extraction with a searchable name.
//
// Every unwrap that may panic is spelled one of two ways:
//
//	UnwrapAssert / Assert / AssertOK   the author claims failure is unreachable
//	UnwrapTest / MustTest / MustTestOK the call site only runs under test
//
// Both families share extract and extractOK, so their runtime behavior is
// identical; only the identifier differs, and that is what reviewers grep for.
package fallible

import "fmt"

// Unwrapper is implemented by containers that can be unwrapped with a
// stated intent.
type Unwrapper[T any] interface {
	// UnwrapAssert returns the value, panicking if there is none. The
	// explanation says why the empty/failed case cannot happen and is
	// included in the panic.
	UnwrapAssert(explanation string) T
	// UnwrapTest returns the value, panicking if there is none. Use only in
	// code reachable from tests.
	UnwrapTest() T
}

var (
	_ Unwrapper[int] = Option[int]{}
	_ Unwrapper[int] = Fallible[int]{}
)

// ErrNoValue is the cause reported when an empty Option is unwrapped.
var ErrNoValue = NewMessage(RelationDebug, "no value")

// UnwrapPanic is the value passed to panic by a failed unwrap.
type UnwrapPanic struct {
	// Explanation is the justification given to an assert-style unwrap,
	// empty for test-style unwraps.
	Explanation string
	Cause       error
	test        bool
}

func (p *UnwrapPanic) Error() string {
	cause := describe(p.Cause)
	if p.test {
		return "unwrap in test: " + cause
	}
	return fmt.Sprintf("unwrap asserted (%s): %s", p.Explanation, cause)
}

func (p *UnwrapPanic) Unwrap() error { return p.Cause }

func extract[T any](v T, err error, p *UnwrapPanic) T {
	if err != nil {
		p.Cause = err
		panic(p)
	}
	return v
}

func extractOK[T any](v T, ok bool, p *UnwrapPanic) T {
	if !ok {
		p.Cause = ErrNoValue
		panic(p)
	}
	return v
}

// Assert returns v, panicking with explanation if err is non-nil.
//
//	n, err := strconv.Atoi("12")
//	n = fallible.Assert(n, err, "literal is a valid int")
func Assert[T any](v T, err error, explanation string) T {
	return extract(v, err, &UnwrapPanic{Explanation: explanation})
}

// AssertOK returns v, panicking with explanation if ok is false.
func AssertOK[T any](v T, ok bool, explanation string) T {
	return extractOK(v, ok, &UnwrapPanic{Explanation: explanation})
}

// MustTest returns v, panicking if err is non-nil. Test code only.
func MustTest[T any](v T, err error) T {
	return extract(v, err, &UnwrapPanic{test: true})
}

// MustTestOK returns v, panicking if ok is false. Test code only.
func MustTestOK[T any](v T, ok bool) T {
	return extractOK(v, ok, &UnwrapPanic{test: true})
}

func (o Option[T]) UnwrapAssert(explanation string) T {
	return AssertOK(o.value, o.ok, explanation)
}

func (o Option[T]) UnwrapTest() T { return MustTestOK(o.value, o.ok) }

func (r Fallible[T]) UnwrapAssert(explanation string) T {
	return Assert(r.value, r.err, explanation)
}

func (r Fallible[T]) UnwrapTest() T { return MustTest(r.value, r.err) }
