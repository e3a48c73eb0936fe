// doc.go - package documentation for fallible
//
// Package fallible provides the one error type used throughout the
// measurement library, terse constructors for it, and unwrap helpers whose
// names record why a panic is acceptable.
//
// # The Error value
//
// An Error is a Category plus an optional message:
//
//	fallible.New(fallible.NotImplemented)                     // no message
//	fallible.NewMessage(fallible.FailedCast, "bad input")     // message
//	fallible.Newf(fallible.FailedCast, "expected %s got %s", "i32", "f64")
//
// Err accepts all three shapes through one spelling, which is what most call
// sites use:
//
//	fallible.Err(fallible.MakeDomain)
//	fallible.Err(fallible.MakeDomain, "bounds must be finite")
//	fallible.Err(fallible.MakeDomain, "lower %v exceeds upper %v", lo, hi)
//
// Error values are comparable. Two errors are equal exactly when category and
// message agree, and "no message" differs from an empty message. Error()
// prints the category only; read Message() for the detail, or format with
// %+v.
//
// # Returning failures
//
// Functions return (T, error). Fail builds the error and the zero T in one
// expression:
//
//	func sensitivity(m Metric) (float64, error) {
//		if !m.bounded() {
//			return fallible.Fail[float64](fallible.MetricMismatch, "unbounded metric")
//		}
//		...
//	}
//
// # Categories
//
// Category is a string type. The built-in set can grow, and packages may
// declare their own. A switch over categories always needs a default arm.
//
// # Discoverable unwraps
//
// Panicking extraction is allowed only through names that state intent:
//
//   - UnwrapAssert(explanation) / Assert / AssertOK: failure is claimed to be
//     impossible; the explanation is part of the panic message.
//   - UnwrapTest() / MustTest / MustTestOK: the call site only runs in tests.
//
// Both behave identically at runtime, so grep decides which is which.
//
// # Boundaries
//
// The core does not log or speak any transport. The grpcstatus package maps
// errors to gRPC statuses and back; the kitlog package turns them into go-kit
// log key/values.
package fallible
