//go:build testplot

package fallible

// FromText wraps a plain text failure from a plotting dependency as a
// FailedFunction Error. Only built with the testplot tag.
func FromText(s string) Error {
	return NewMessage(FailedFunction, s)
}
