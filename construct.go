// construct.go - constructors for Error and for failed (T, error) results.
//
// Three arities share one shape:
//
//	New(c)                     category only, no message
//	NewMessage(c, v)           message is fmt.Sprint(v)
//	Newf(c, template, args...) message is fmt.Sprintf(template, args...)
//
// Err dispatches on argument count so call sites can use one spelling, and
// Fail wraps the result as the failure half of a (T, error) return.
package fallible

import (
	"fmt"
	"strings"
)

// New creates an Error with no message. It does not allocate.
func New(c Category) Error {
	return Error{category: c}
}

// NewMessage creates an Error whose message is the string form of v.
func NewMessage(c Category, v any) Error {
	var msg string
	switch m := v.(type) {
	case string:
		msg = m
	default:
		msg = fmt.Sprint(v)
	}
	return Error{category: c, message: msg, hasMessage: true}
}

// Newf creates an Error whose message is formatted from template and args.
func Newf(c Category, template string, args ...any) Error {
	return NewMessage(c, fmt.Sprintf(template, args...))
}

// Err builds an Error from a category and zero or more arguments:
//   - no args: New(c)
//   - one arg: NewMessage(c, args[0])
//   - a string followed by args: Newf(c, args[0], args[1:]...)
//   - otherwise: the string form of each arg, joined by single spaces
func Err(c Category, args ...any) Error {
	switch len(args) {
	case 0:
		return New(c)
	case 1:
		return NewMessage(c, args[0])
	}
	if template, ok := args[0].(string); ok {
		return Newf(c, template, args[1:]...)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return NewMessage(c, strings.Join(parts, " "))
}

// Fail returns the zero T and an Error built by Err, ready to be returned
// from any function with a (T, error) result:
//
//	func size(d Domain) (int, error) {
//		if !d.ok() {
//			return fallible.Fail[int](fallible.DomainMismatch)
//		}
//		...
//	}
func Fail[T any](c Category, args ...any) (T, error) {
	return Promote[T](Err(c, args...))
}

// Promote places e in the failure position of a (T, error) result.
func Promote[T any](e Error) (T, error) {
	var zero T
	return zero, e
}
