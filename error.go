// Package fallible defines the single error type used across the measurement
// library: a category tag plus an optional diagnostic message.
//
// Design tenets:
//   - One comparable value type; equality is structural (==).
//   - Rendering shows the category only; the message is read explicitly.
//   - Interop with errors.Is/As so wrapped chains still classify.
package fallible

import (
	"errors"
	"fmt"
)

// Error is a category plus an optional message.
//
// The zero value has an empty category and no message. Values are immutable:
// there are no setters, and the fields are only reachable through accessors.
// An absent message and a present empty message are different values.
type Error struct {
	category   Category
	message    string
	hasMessage bool
}

// Error renders the category tag. The message is deliberately left out.
func (e Error) Error() string { return string(e.category) }

// Category returns the failure category.
func (e Error) Category() Category { return e.category }

// Message returns the diagnostic message and whether one was supplied.
func (e Error) Message() (string, bool) { return e.message, e.hasMessage }

// Equal reports whether e and other have the same category and message.
func (e Error) Equal(other Error) bool { return e == other }

// Is lets errors.Is match an Error target anywhere in a wrapped chain.
// A pointer target is dereferenced; a nil pointer never matches.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e == t
	case *Error:
		return t != nil && e == *t
	}
	return false
}

// carrier is satisfied by both Error and *Error, so one errors.As walk finds
// whichever form comes first in a chain.
type carrier interface{ fallibleError() Error }

func (e Error) fallibleError() Error { return e }

// AsError returns the first Error in err's chain, whether it was wrapped as a
// value or as a non-nil *Error.
func AsError(err error) (Error, bool) {
	if err == nil {
		return Error{}, false
	}
	var c carrier
	if !errors.As(err, &c) {
		return Error{}, false
	}
	if p, ok := c.(*Error); ok && p == nil {
		return Error{}, false
	}
	return c.fallibleError(), true
}

// CategoryOf returns the category of the first Error in err's chain, or ""
// if there is none.
func CategoryOf(err error) Category {
	e, _ := AsError(err)
	return e.category
}

// HasCategory reports whether the first Error in err's chain carries c.
func HasCategory(err error, c Category) bool {
	e, ok := AsError(err)
	return ok && e.category == c
}

// From converts any error into an Error without discarding detail.
//   - nil -> zero Error and false
//   - an Error or *Error anywhere in the chain -> that Error
//   - anything else -> category c with err.Error() as the message
func From(err error, c Category) (Error, bool) {
	if err == nil {
		return Error{}, false
	}
	if e, ok := AsError(err); ok {
		return e, true
	}
	return NewMessage(c, err.Error()), true
}

// describe renders err for diagnostics that must not lose the message of an
// Error in its chain. A bare Error uses the %+v form; a wrapped one keeps
// the wrapper text and appends msg=.
func describe(err error) string {
	if e, ok := err.(Error); ok {
		return fmt.Sprintf("%+v", e)
	}
	e, ok := AsError(err)
	if !ok || !e.hasMessage {
		return err.Error()
	}
	return fmt.Sprintf("%s msg=%q", err.Error(), e.message)
}
