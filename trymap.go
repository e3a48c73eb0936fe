package fallible

import (
	"fmt"

	"go.uber.org/multierr"
)

// TryMap applies f to every element of xs. Every element is visited even
// after a failure; if any call fails the result is a single FailedMap Error
// whose message lists each failing index and its error, in order.
func TryMap[T, U any](xs []T, f func(T) (U, error)) ([]U, error) {
	out := make([]U, len(xs))
	var errs error
	for i, x := range xs {
		u, err := f(x)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("element %d: %w", i, detailed(err)))
			continue
		}
		out[i] = u
	}
	if errs != nil {
		return nil, NewMessage(FailedMap, errs.Error())
	}
	return out, nil
}

// detailed keeps an element's message in the combined text, which Error()
// alone would drop.
func detailed(err error) error {
	e, ok := AsError(err)
	if !ok || !e.hasMessage {
		return err
	}
	return fmt.Errorf("%s: %s", err.Error(), e.message)
}
